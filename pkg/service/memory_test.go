package service

import (
	"context"
	"sync"

	"bloglist/pkg/blogs"
	"bloglist/pkg/user"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryBlogs and memoryUsers are isolated per-test stores with the same
// contract as the Mongo and MySQL repositories.
type memoryBlogs struct {
	mu   *sync.Mutex
	data []*blogs.Blog
}

func newMemoryBlogs() *memoryBlogs {
	return &memoryBlogs{mu: &sync.Mutex{}, data: make([]*blogs.Blog, 0, 10)}
}

func (r *memoryBlogs) GetAll(ctx context.Context) ([]*blogs.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]*blogs.Blog, 0, len(r.data))
	for _, b := range r.data {
		cp := *b
		res = append(res, &cp)
	}
	return res, nil
}

func (r *memoryBlogs) Add(ctx context.Context, b *blogs.Blog) (*blogs.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = primitive.NewObjectID()
	cp := *b
	r.data = append(r.data, &cp)
	return b, nil
}

func (r *memoryBlogs) Delete(ctx context.Context, id string) (*blogs.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.data {
		if b.ID.Hex() == id {
			r.data = append(r.data[:i], r.data[i+1:]...)
			return b, nil
		}
	}
	return nil, nil
}

func (r *memoryBlogs) UpdateLikes(ctx context.Context, id string, likes int64) (*blogs.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.data {
		if b.ID.Hex() == id {
			b.Likes = likes
			cp := *b
			return &cp, nil
		}
	}
	return nil, blogs.ErrNotFound
}

type memoryUsers struct {
	mu     *sync.Mutex
	lastID int64
	data   []*user.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{mu: &sync.Mutex{}, data: make([]*user.User, 0, 10)}
}

func (r *memoryUsers) find(match func(*user.User) bool) *user.User {
	for _, u := range r.data {
		if match(u) {
			cp := *u
			cp.Blogs = append([]string{}, u.Blogs...)
			return &cp
		}
	}
	return nil
}

func (r *memoryUsers) GetByID(ctx context.Context, id int64) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.find(func(u *user.User) bool { return u.ID == id }), nil
}

func (r *memoryUsers) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.find(func(u *user.User) bool { return u.Username == username }), nil
}

func (r *memoryUsers) GetAll(ctx context.Context) ([]*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]*user.User, 0, len(r.data))
	for _, u := range r.data {
		cp := *u
		cp.Password = nil
		cp.Blogs = append([]string{}, u.Blogs...)
		res = append(res, &cp)
	}
	return res, nil
}

func (r *memoryUsers) Add(ctx context.Context, u *user.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.data {
		if existing.Username == u.Username {
			return 0, user.ErrDuplicateUsername
		}
	}
	r.lastID++
	cp := *u
	cp.ID = r.lastID
	cp.Blogs = []string{}
	r.data = append(r.data, &cp)
	return cp.ID, nil
}

func (r *memoryUsers) AppendBlog(ctx context.Context, userID int64, blogID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.data {
		if u.ID == userID {
			u.Blogs = append(u.Blogs, blogID)
		}
	}
	return nil
}

func (r *memoryUsers) DetachBlog(ctx context.Context, blogID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.data {
		kept := u.Blogs[:0]
		for _, id := range u.Blogs {
			if id != blogID {
				kept = append(kept, id)
			}
		}
		u.Blogs = kept
	}
	return nil
}

// staticResolver resolves every non-empty token to the user with that username.
type staticResolver struct {
	users *memoryUsers
}

func (r *staticResolver) Resolve(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	u, _ := r.users.GetByUsername(ctx, token)
	if u == nil {
		return nil, ErrUnknownIdentity
	}
	return u, nil
}
