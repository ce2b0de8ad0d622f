package service

import (
	"context"

	"bloglist/pkg/blogs"
	"bloglist/pkg/user"

	"go.uber.org/zap"
)

// BlogService owns the blog use cases: listing, authoring, likes and
// the summary view.
type BlogService struct {
	Blogs  BlogsRepo
	Users  UsersRepo
	Auth   IdentityResolver
	Logger *zap.SugaredLogger
}

func (s *BlogService) ListPosts(ctx context.Context) ([]*BlogView, error) {
	all, err := s.Blogs.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	owners, err := s.Users.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*user.User, len(owners))
	for _, u := range owners {
		byID[u.ID] = u
	}

	views := make([]*BlogView, 0, len(all))
	for _, b := range all {
		views = append(views, NewBlogView(b, byID[b.OwnerID]))
	}

	return views, nil
}

// CreatePost stores the blog first and then appends it to the owner's list.
// The two writes are not atomic; a failed append is logged and tolerated.
func (s *BlogService) CreatePost(ctx context.Context, token string, draft *Draft) (*BlogView, error) {
	owner, err := s.Auth.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	if draft.Title == "" || draft.URL == "" {
		return nil, ErrTitleURLRequired
	}

	var likes int64
	if draft.Likes != nil {
		if *draft.Likes < 0 {
			return nil, ErrNegativeLikes
		}
		likes = *draft.Likes
	}

	b, err := s.Blogs.Add(ctx, &blogs.Blog{
		Title:   draft.Title,
		Author:  draft.Author,
		URL:     draft.URL,
		Likes:   likes,
		OwnerID: owner.ID,
	})
	if err != nil {
		return nil, err
	}

	err = s.Users.AppendBlog(ctx, owner.ID, b.ID.Hex())
	if err != nil {
		s.Logger.Errorw("blog stored without owner backlink", "blog", b.ID.Hex(), "user", owner.ID, "error", err)
	}

	return NewBlogView(b, owner), nil
}

// UpdatePostLikes sets the like counter. Any caller may do it.
func (s *BlogService) UpdatePostLikes(ctx context.Context, id string, likes int64) (*BlogView, error) {
	if likes < 0 {
		return nil, ErrNegativeLikes
	}

	b, err := s.Blogs.UpdateLikes(ctx, id, likes)
	if err != nil {
		return nil, err
	}

	owner, err := s.Users.GetByID(ctx, b.OwnerID)
	if err != nil {
		return nil, err
	}

	return NewBlogView(b, owner), nil
}

// DeletePost is idempotent: deleting a missing blog succeeds.
func (s *BlogService) DeletePost(ctx context.Context, id string) error {
	removed, err := s.Blogs.Delete(ctx, id)
	if err != nil {
		return err
	}

	if removed == nil {
		return nil
	}

	err = s.Users.DetachBlog(ctx, removed.ID.Hex())
	if err != nil {
		s.Logger.Errorw("stale owner backlink left behind", "blog", removed.ID.Hex(), "user", removed.OwnerID, "error", err)
	}

	return nil
}

func (s *BlogService) Summary(ctx context.Context) (*Summary, error) {
	all, err := s.Blogs.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{TotalLikes: blogs.TotalLikes(all)}
	if len(all) == 0 {
		return summary, nil
	}

	if summary.MostLiked, err = blogs.MostLiked(all); err != nil {
		return nil, err
	}

	if summary.MostProlificAuthor, err = blogs.MostProlificAuthor(all); err != nil {
		return nil, err
	}

	return summary, nil
}
