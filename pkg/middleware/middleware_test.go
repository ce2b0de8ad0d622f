package middleware

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTokenExtractor(t *testing.T) {
	cases := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "Bearer", header: "Bearer abc.def.ghi", expected: "abc.def.ghi"},
		{name: "LowerCase", header: "bearer abc.def.ghi", expected: "abc.def.ghi"},
		{name: "NoHeader", header: "", expected: ""},
		{name: "OtherScheme", header: "Basic dXNlcjpwYXNz", expected: ""},
		{name: "PrefixOnly", header: "Bearer ", expected: ""},
	}

	for _, c := range cases {
		var got string
		h := TokenExtractor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = TokenFromContext(r.Context())
		}))

		r := httptest.NewRequest(http.MethodPost, "/posts", nil)
		if c.header != "" {
			r.Header.Set("Authorization", c.header)
		}
		h.ServeHTTP(httptest.NewRecorder(), r)

		if got != c.expected {
			t.Errorf("%s: expected token %q, but was %q", c.name, c.expected, got)
		}
	}
}

func TestRecover(t *testing.T) {
	h := Recover(zap.NewNop().Sugar(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("wrong status code: %d, but expected %d", w.Code, http.StatusInternalServerError)
	}

	body, _ := ioutil.ReadAll(w.Body)
	if string(body) != `{"error":"internal server error"}` {
		t.Fatalf("unexpected response: %s", body)
	}
}

func TestLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := Log(zap.New(core).Sugar(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/posts/1", nil))

	entries := logs.FilterMessage("access").All()
	if len(entries) != 1 {
		t.Fatalf("expected one access log entry, but was %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["method"] != http.MethodDelete || fields["path"] != "/posts/1" || fields["status"] != int64(http.StatusTeapot) {
		t.Fatalf("unexpected fields: %v", fields)
	}
}
