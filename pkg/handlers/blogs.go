package handlers

import (
	"context"
	"net/http"

	"bloglist/pkg/middleware"
	"bloglist/pkg/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

//go:generate mockgen -source=blogs.go -destination=mock_blog_manager.go -package=handlers

type BlogManager interface {
	ListPosts(ctx context.Context) ([]*service.BlogView, error)
	CreatePost(ctx context.Context, token string, draft *service.Draft) (*service.BlogView, error)
	UpdatePostLikes(ctx context.Context, id string, likes int64) (*service.BlogView, error)
	DeletePost(ctx context.Context, id string) error
	Summary(ctx context.Context) (*service.Summary, error)
}

type BlogHandler struct {
	Blogs  BlogManager
	Logger *zap.SugaredLogger
}

type CreateBlogReq struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int64 `json:"likes"`
}

type UpdateLikesReq struct {
	Likes *int64 `json:"likes"`
}

func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	res, err := h.Blogs.ListPosts(r.Context())
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	WriteJSON(w, res, http.StatusOK)
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromContext(r.Context())

	var req CreateBlogReq
	if err := readJSON(r, &req); err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	draft := &service.Draft{Title: req.Title, Author: req.Author, URL: req.URL, Likes: req.Likes}
	res, err := h.Blogs.CreatePost(r.Context(), token, draft)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	WriteJSON(w, res, http.StatusCreated)
}

func (h *BlogHandler) Summary(w http.ResponseWriter, r *http.Request) {
	res, err := h.Blogs.Summary(r.Context())
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	WriteJSON(w, res, http.StatusOK)
}

// Delete answers 204 whether or not the blog existed.
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Blogs.DeletePost(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BlogHandler) UpdateLikes(w http.ResponseWriter, r *http.Request) {
	var req UpdateLikesReq
	if err := readJSON(r, &req); err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	if req.Likes == nil {
		writeServiceError(h.Logger, w, service.ErrNegativeLikes)
		return
	}

	res, err := h.Blogs.UpdatePostLikes(r.Context(), mux.Vars(r)["id"], *req.Likes)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	WriteJSON(w, res, http.StatusOK)
}
