package service

import (
	"context"

	"bloglist/pkg/blogs"
	"bloglist/pkg/user"
)

//go:generate mockgen -source=repo.go -destination=mock_repo.go -package=service

type BlogsRepo interface {
	GetAll(ctx context.Context) ([]*blogs.Blog, error)
	Add(ctx context.Context, b *blogs.Blog) (*blogs.Blog, error)
	Delete(ctx context.Context, id string) (*blogs.Blog, error)
	UpdateLikes(ctx context.Context, id string, likes int64) (*blogs.Blog, error)
}

type UsersRepo interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
	GetByUsername(ctx context.Context, username string) (*user.User, error)
	GetAll(ctx context.Context) ([]*user.User, error)
	Add(ctx context.Context, u *user.User) (int64, error)
	AppendBlog(ctx context.Context, userID int64, blogID string) error
	DetachBlog(ctx context.Context, blogID string) error
}

// IdentityResolver maps a bearer token to the user it was issued for.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*user.User, error)
}
