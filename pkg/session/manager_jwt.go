package session

import (
	"context"
	"crypto/rsa"
	"fmt"

	"github.com/dgrijalva/jwt-go"
)

type SessionManagerJWT struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
}

func NewSessionsJWTManager(privateKeyBytes, publicKeyBytes []byte) (*SessionManagerJWT, error) {
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privateKeyBytes)
	if err != nil {
		return nil, err
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyBytes)
	if err != nil {
		return nil, err
	}

	return &SessionManagerJWT{
		privateKey: privateKey,
		publicKey:  publicKey,
	}, nil
}

func (sm *SessionManagerJWT) Create(ctx context.Context, user *User, sessID string, expiresAt int64) (string, error) {
	sess := &Session{
		User:      &User{Username: user.Username, ID: user.ID},
		SessionID: sessID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expiresAt,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, sess)
	return token.SignedString(sm.privateKey)
}

// Check verifies signature and expiry. Only RS256 is accepted.
func (sm *SessionManagerJWT) Check(ctx context.Context, tokenString string) (*Session, error) {
	payload := &Session{}
	token, err := jwt.ParseWithClaims(tokenString, payload, func(token *jwt.Token) (interface{}, error) {
		method, ok := token.Method.(*jwt.SigningMethodRSA)
		if !ok || method.Alg() != "RS256" {
			return nil, fmt.Errorf("bad sign method")
		}
		return sm.publicKey, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", ErrMalformedToken)
	}

	if payload.User == nil {
		return nil, fmt.Errorf("%w: no user", ErrMalformedToken)
	}

	// jwt-go skips the expiry check when exp is absent
	if payload.ExpiresAt == 0 {
		return nil, fmt.Errorf("%w: no expiry", ErrMalformedToken)
	}

	return payload, nil
}

// Destroy is a no-op: a signed token stays valid until it expires.
func (sm *SessionManagerJWT) Destroy(context.Context, *Session) error {
	return nil
}
