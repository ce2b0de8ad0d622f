package session

import (
	"context"
	"io/ioutil"
	"reflect"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
)

var testTime = time.Date(2999, 11, 17, 20, 34, 58, 651387237, time.UTC)
var testTimeExpired = time.Date(1999, 11, 17, 20, 34, 58, 651387237, time.UTC)

func TestCreateAndCheckJWT(t *testing.T) {
	sm, err := NewTestSessionManager()
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	ctx := context.Background()
	u := &User{Username: "mluukkai", ID: 34}
	sessID := "480f0886-bbbb-40e8-9c2b-a47e8aa7a666"

	token, err := sm.Create(ctx, u, sessID, testTime.Unix())
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	sess, err := sm.Check(ctx, token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	expected := &Session{User: &User{ID: 34, Username: "mluukkai"}, SessionID: sessID, StandardClaims: jwt.StandardClaims{ExpiresAt: testTime.Unix()}}
	if !reflect.DeepEqual(sess, expected) {
		t.Errorf("test fail, expected %v but was %v", expected, sess)
	}
}

func TestCheckJWTExpired(t *testing.T) {
	sm, err := NewTestSessionManager()
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	ctx := context.Background()
	token, err := sm.Create(ctx, &User{Username: "mluukkai", ID: 34}, "sess", testTimeExpired.Unix())
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	_, err = sm.Check(ctx, token)
	if err == nil {
		t.Fatal("expected expired token error, but was nil")
	}

	verr, ok := err.(*jwt.ValidationError)
	if !ok {
		t.Fatalf("expected jwt validation error, but was %v", err)
	}

	if verr.Errors&jwt.ValidationErrorExpired != jwt.ValidationErrorExpired {
		t.Fatalf("expected jwt expired error, but was %v", verr.Errors)
	}
}

func TestCheckJWTRejected(t *testing.T) {
	sm, err := NewTestSessionManager()
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	ctx := context.Background()
	valid, err := sm.Create(ctx, &User{Username: "mluukkai", ID: 34}, "sess", testTime.Unix())
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	hs256, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Session{
		User:           &User{Username: "mluukkai", ID: 34},
		StandardClaims: jwt.StandardClaims{ExpiresAt: testTime.Unix()},
	}).SignedString([]byte("shared secret"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodRS256, &Session{
		StandardClaims: jwt.StandardClaims{ExpiresAt: testTime.Unix()},
	}).SignedString(sm.privateKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	noExpiry, err := sm.Create(ctx, &User{Username: "mluukkai", ID: 34}, "sess", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	tokens := map[string]string{
		"empty":     "",
		"garbage":   "not.a.token",
		"tampered":  valid[:len(valid)-4] + "AAAA",
		"hs256":     hs256,
		"no user":   noUser,
		"no expiry": noExpiry,
	}

	for name, token := range tokens {
		_, err := sm.Check(ctx, token)
		if err == nil {
			t.Errorf("%s token: expected error, but was nil", name)
			continue
		}
		if !IsRejected(err) {
			t.Errorf("%s token: expected a rejection, but was %v", name, err)
		}
	}
}

func NewTestSessionManager() (*SessionManagerJWT, error) {
	testPrivateKeyBytes, err := ioutil.ReadFile("testdata/test_key.rsa")
	if err != nil {
		return nil, err
	}

	testPublicKeyBytes, err := ioutil.ReadFile("testdata/test_key.rsa.pub")
	if err != nil {
		return nil, err
	}

	return NewSessionsJWTManager(testPrivateKeyBytes, testPublicKeyBytes)
}
