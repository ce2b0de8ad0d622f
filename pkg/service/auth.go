package service

import (
	"context"
	"fmt"
	"time"

	"bloglist/pkg/session"
	"bloglist/pkg/user"

	"github.com/google/uuid"
)

// Authenticator turns bearer tokens into users and issues new tokens on login.
type Authenticator struct {
	Sessions session.SessionManager
	Users    UsersRepo
	TokenTTL time.Duration
}

func NewAuthenticator(sm session.SessionManager, users UsersRepo, ttl time.Duration) *Authenticator {
	return &Authenticator{Sessions: sm, Users: users, TokenTTL: ttl}
}

// Resolve fails with ErrInvalidToken for anything the session manager
// rejects and with ErrUnknownIdentity when the token user no longer exists.
// Session store failures are returned as they are.
func (a *Authenticator) Resolve(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	sess, err := a.check(ctx, token)
	if err != nil {
		return nil, err
	}

	u, err := a.Users.GetByID(ctx, sess.User.ID)
	if err != nil {
		return nil, err
	}

	if u == nil {
		return nil, ErrUnknownIdentity
	}

	return u, nil
}

func (a *Authenticator) Login(ctx context.Context, username, password string) (*LoginView, error) {
	u, err := a.Users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if u == nil || !user.CheckPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}

	sessID := uuid.New().String()
	expiresAt := time.Now().Add(a.TokenTTL).Unix()
	token, err := a.Sessions.Create(ctx, &session.User{ID: u.ID, Username: u.Username}, sessID, expiresAt)
	if err != nil {
		return nil, err
	}

	return &LoginView{Token: token, Username: u.Username, DisplayName: u.DisplayName}, nil
}

func (a *Authenticator) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidToken
	}

	sess, err := a.check(ctx, token)
	if err != nil {
		return err
	}

	return a.Sessions.Destroy(ctx, sess)
}

func (a *Authenticator) check(ctx context.Context, token string) (*session.Session, error) {
	sess, err := a.Sessions.Check(ctx, token)
	if session.IsRejected(err) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if err != nil {
		return nil, err
	}

	return sess, nil
}
