package middleware

import (
	"context"
	"net/http"
	"strings"
)

type key int

const keyToken key = iota

const bearerPrefix = "bearer "

// TokenExtractor stores the bearer token of the Authorization header in the
// request context. Verification is left to the handlers that need it.
func TokenExtractor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if len(auth) <= len(bearerPrefix) || !strings.EqualFold(auth[:len(bearerPrefix)], bearerPrefix) {
			next.ServeHTTP(w, r)
			return
		}

		token := strings.TrimSpace(auth[len(bearerPrefix):])
		ctx := context.WithValue(r.Context(), keyToken, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TokenFromContext returns an empty string when the request carried no token.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(keyToken).(string)
	return token
}
