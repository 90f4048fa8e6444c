package api

import (
	"errors"
	"net/http"

	"property-management/internal/auth"
	"property-management/internal/logger"
	"property-management/internal/manager"
	"property-management/internal/schema"
	"property-management/internal/storage"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"description"`
	StatusCode  int    `json:"status_code"`
}

// MessageResponse acknowledges link and unlink operations.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, description string) {
	writeJSON(w, status, ErrorResponse{
		Error:       http.StatusText(status),
		Description: description,
		StatusCode:  status,
	})
}

// notFound carries the per-resource message for a missing row.
type notFound string

// handleError maps err onto a status code. Unknown errors are logged and
// reported as 500.
func handleError(w http.ResponseWriter, r *http.Request, err error, missing notFound) {
	var (
		inputErr *storage.InputError
		valErr   *schema.ValidationError
	)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, string(missing))
	case errors.Is(err, storage.ErrInvalidReference):
		writeError(w, http.StatusBadRequest, "referenced record does not exist")
	case errors.Is(err, storage.ErrInvalidDateRange):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &inputErr):
		writeError(w, http.StatusBadRequest, inputErr.Error())
	case errors.As(err, &valErr):
		writeError(w, http.StatusBadRequest, valErr.Error())
	case errors.Is(err, auth.ErrMissingToken), errors.Is(err, auth.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, auth.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, manager.ErrNotRunning):
		writeError(w, http.StatusConflict, err.Error())
	default:
		logger.FromContext(r.Context()).WithError(err).Error("request failed")
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContext(r.Context()).WithError(err).Debug("rejected unauthenticated request")
	handleError(w, r, err, "")
}
