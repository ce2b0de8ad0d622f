package handlers

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"

	"bloglist/pkg/service"

	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

var errBadRequest = errors.New("bad request")

func WriteJSON(w http.ResponseWriter, v interface{}, status int) {
	res, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(res)
}

func WriteError(w http.ResponseWriter, msg string, status int) {
	WriteJSON(w, &ErrorResponse{Error: msg}, status)
}

// NotFound answers requests that matched no route.
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, "unknown endpoint", http.StatusNotFound)
}

func readJSON(r *http.Request, v interface{}) error {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return err
	}

	if err = json.Unmarshal(body, v); err != nil {
		return errBadRequest
	}

	return nil
}

// writeServiceError maps the service error taxonomy onto status codes.
// Anything unclassified is logged and hidden behind a generic 500.
func writeServiceError(logger *zap.SugaredLogger, w http.ResponseWriter, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.Is(err, errBadRequest):
		WriteError(w, errBadRequest.Error(), http.StatusBadRequest)
	case errors.As(err, &vErr):
		WriteError(w, vErr.Msg, http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidToken):
		logger.Debugw("rejected token", "error", err)
		WriteError(w, service.ErrInvalidToken.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrUnknownIdentity):
		WriteError(w, service.ErrUnknownIdentity.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrInvalidCredentials):
		WriteError(w, service.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrNotFound):
		WriteError(w, service.ErrNotFound.Error(), http.StatusNotFound)
	default:
		logger.Error(err.Error())
		WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
