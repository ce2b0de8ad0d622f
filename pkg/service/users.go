package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"bloglist/pkg/user"
)

const (
	minUsernameLen = 3
	minPasswordLen = 3
)

type UserService struct {
	Users UsersRepo
	Blogs BlogsRepo
}

// CreateUser checks username length, then password length, then the
// display name, and leaves uniqueness to the store's unique index.
func (s *UserService) CreateUser(ctx context.Context, username, displayName, password string) (*UserView, error) {
	if utf8.RuneCountInString(username) < minUsernameLen {
		return nil, ErrUsernameTooShort
	}

	if utf8.RuneCountInString(username) > user.MaxUsernameLen {
		return nil, ErrUsernameTooLong
	}

	if utf8.RuneCountInString(password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}

	if utf8.RuneCountInString(displayName) > user.MaxDisplayNameLen {
		return nil, ErrDisplayNameTooLong
	}

	passHash, err := user.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		Username:    username,
		DisplayName: displayName,
		Password:    passHash,
	}

	u.ID, err = s.Users.Add(ctx, u)
	if errors.Is(err, user.ErrDuplicateUsername) {
		return nil, ErrUsernameNotUnique
	}
	if err != nil {
		return nil, err
	}

	return NewUserView(u, nil), nil
}

// ListUsers attaches blog summaries; ids of blogs that no longer exist
// are skipped.
func (s *UserService) ListUsers(ctx context.Context) ([]*UserView, error) {
	users, err := s.Users.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	all, err := s.Blogs.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*BlogSummary, len(all))
	for _, b := range all {
		byID[b.ID.Hex()] = NewBlogSummary(b)
	}

	views := make([]*UserView, 0, len(users))
	for _, u := range users {
		owned := make([]*BlogSummary, 0, len(u.Blogs))
		for _, id := range u.Blogs {
			if b, ok := byID[id]; ok {
				owned = append(owned, b)
			}
		}
		views = append(views, NewUserView(u, owned))
	}

	return views, nil
}
