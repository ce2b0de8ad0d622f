package service

import (
	"bloglist/pkg/blogs"
	"bloglist/pkg/user"
)

// Draft is the input of CreatePost. Likes is optional and defaults to 0.
type Draft struct {
	Title  string
	Author string
	URL    string
	Likes  *int64
}

type OwnerView struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}

type BlogView struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Author string     `json:"author"`
	URL    string     `json:"url"`
	Likes  int64      `json:"likes"`
	Owner  *OwnerView `json:"owner"`
}

type BlogSummary struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
}

type UserView struct {
	ID          int64          `json:"id"`
	Username    string         `json:"username"`
	DisplayName string         `json:"displayName"`
	Blogs       []*BlogSummary `json:"blogs"`
}

type LoginView struct {
	Token       string `json:"token"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}

// Summary omits the parts that need at least one blog.
type Summary struct {
	TotalLikes         int64              `json:"totalLikes"`
	MostLiked          *blogs.Favorite    `json:"mostLiked,omitempty"`
	MostProlificAuthor *blogs.AuthorStats `json:"mostProlificAuthor,omitempty"`
}

// NewOwnerView never carries the user id or credential.
func NewOwnerView(u *user.User) *OwnerView {
	if u == nil {
		return nil
	}

	return &OwnerView{Username: u.Username, DisplayName: u.DisplayName}
}

func NewBlogView(b *blogs.Blog, owner *user.User) *BlogView {
	return &BlogView{
		ID:     b.ID.Hex(),
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  b.Likes,
		Owner:  NewOwnerView(owner),
	}
}

func NewBlogSummary(b *blogs.Blog) *BlogSummary {
	return &BlogSummary{ID: b.ID.Hex(), Title: b.Title, Author: b.Author, URL: b.URL}
}

func NewUserView(u *user.User, owned []*BlogSummary) *UserView {
	if owned == nil {
		owned = []*BlogSummary{}
	}

	return &UserView{ID: u.ID, Username: u.Username, DisplayName: u.DisplayName, Blogs: owned}
}
