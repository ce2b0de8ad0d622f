package handlers

import (
	"context"
	"net/http"

	"bloglist/pkg/middleware"
	"bloglist/pkg/service"

	"go.uber.org/zap"
)

//go:generate mockgen -source=user.go -destination=mock_user_manager.go -package=handlers

type UserManager interface {
	CreateUser(ctx context.Context, username, displayName, password string) (*service.UserView, error)
	ListUsers(ctx context.Context) ([]*service.UserView, error)
}

type SessionIssuer interface {
	Login(ctx context.Context, username, password string) (*service.LoginView, error)
	Logout(ctx context.Context, token string) error
}

type UserHandler struct {
	Users    UserManager
	Sessions SessionIssuer
	Logger   *zap.SugaredLogger
}

type RegisterReq struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

var errCredentialsRequired = &service.ValidationError{Msg: "username and password required"}

func (u *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterReq
	if err := readJSON(r, &req); err != nil {
		writeServiceError(u.Logger, w, err)
		return
	}

	res, err := u.Users.CreateUser(r.Context(), req.Username, req.DisplayName, req.Password)
	if err != nil {
		writeServiceError(u.Logger, w, err)
		return
	}

	WriteJSON(w, res, http.StatusCreated)
}

func (u *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	res, err := u.Users.ListUsers(r.Context())
	if err != nil {
		writeServiceError(u.Logger, w, err)
		return
	}

	WriteJSON(w, res, http.StatusOK)
}

func (u *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginReq
	if err := readJSON(r, &req); err != nil {
		writeServiceError(u.Logger, w, err)
		return
	}

	if req.Username == "" || req.Password == "" {
		writeServiceError(u.Logger, w, errCredentialsRequired)
		return
	}

	res, err := u.Sessions.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(u.Logger, w, err)
		return
	}

	WriteJSON(w, res, http.StatusOK)
}

func (u *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	err := u.Sessions.Logout(r.Context(), middleware.TokenFromContext(r.Context()))
	if err != nil {
		writeServiceError(u.Logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
