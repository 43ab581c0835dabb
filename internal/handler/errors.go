package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ledgerd/ledgerd/internal/service"
)

// handleServiceError maps service errors to HTTP responses.
// This is the single place where the error taxonomy meets status codes:
// validation and conflicts are 400, unknown identifiers are 404, everything
// else is 500 with the detail kept out of the response body.
func handleServiceError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var fieldErr *service.FieldError

	switch {
	case errors.As(err, &fieldErr):
		writeError(w, http.StatusBadRequest, fieldErr.Error())
	case errors.Is(err, service.ErrUserExists), errors.Is(err, service.ErrAccountExists):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAccountNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "unexpected error")
	}
}
