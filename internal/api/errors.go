package api

import (
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// Request errors. None of them carry request content.
var (
	ErrInvalidJSON     = errors.New("invalid request body")
	ErrMissingPassword = errors.New("password field is required")
	ErrBodyTooLarge    = errors.New("request body too large")
)

// MapErrorToStatusCode maps request errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrInvalidJSON),
		errors.Is(err, ErrMissingPassword):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for err. Unknown
// errors collapse to a generic message so internal details never leak.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrBodyTooLarge):
		return "Request body too large"
	case errors.Is(err, ErrMissingPassword):
		return "Password field is required"
	case errors.Is(err, ErrInvalidJSON):
		return "Invalid request format"
	default:
		return "Internal server error"
	}
}

// HandleAPIError writes the mapped status and safe message for err.
func HandleAPIError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	status := MapErrorToStatusCode(err)
	traceID := TraceIDFromContext(r.Context())

	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("trace_id", traceID),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		log.Error("request failed", fields...)
	} else {
		log.Debug("request rejected", fields...)
	}

	RespondWithJSON(w, log, status, ErrorResponse{
		Error:   GetSafeErrorMessage(err),
		TraceID: traceID,
	})
}
