package session

import (
	"context"
	"errors"

	"github.com/dgrijalva/jwt-go"
)

//go:generate mockgen -source=session.go -destination=mock_session_manager.go -package=session

var (
	ErrNoSession      = errors.New("session not found")
	ErrWrongUser      = errors.New("session belongs to another user")
	ErrMalformedToken = errors.New("malformed token claims")
)

// IsRejected reports whether err means the token itself is unacceptable,
// as opposed to a failure of the session store.
func IsRejected(err error) bool {
	var verr *jwt.ValidationError
	return errors.As(err, &verr) ||
		errors.Is(err, ErrNoSession) ||
		errors.Is(err, ErrWrongUser) ||
		errors.Is(err, ErrMalformedToken)
}

// SessionManager issues and verifies bearer tokens.
type SessionManager interface {
	Create(ctx context.Context, u *User, sessID string, expiresAt int64) (string, error)
	Check(ctx context.Context, token string) (*Session, error)
	Destroy(ctx context.Context, sess *Session) error
}

type Session struct {
	User      *User `json:"user"`
	SessionID string
	jwt.StandardClaims
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
