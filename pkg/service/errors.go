package service

import (
	"errors"

	"bloglist/pkg/blogs"
)

var (
	ErrInvalidToken       = errors.New("token missing or invalid")
	ErrUnknownIdentity    = errors.New("token user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotFound           = blogs.ErrNotFound
)

// ValidationError is a client error; Msg is safe to show to the caller.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

var (
	ErrUsernameTooShort   = &ValidationError{Msg: "username must be longer than 3 characters"}
	ErrUsernameTooLong    = &ValidationError{Msg: "username must be at most 50 characters"}
	ErrDisplayNameTooLong = &ValidationError{Msg: "display name must be at most 100 characters"}
	ErrPasswordTooShort   = &ValidationError{Msg: "password must be longer than 3 characters"}
	ErrUsernameNotUnique  = &ValidationError{Msg: "expected username to be unique"}
	ErrTitleURLRequired   = &ValidationError{Msg: "title and url required"}
	ErrNegativeLikes      = &ValidationError{Msg: "likes must be a non-negative integer"}
)
