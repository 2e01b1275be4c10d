package chat_errors

import (
	"errors"
	"net/http"
)

// Common errors
var (
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrStoreUnavailable   = errors.New("store unavailable")
)

// HTTPStatus maps a service error to the status code returned at the
// request boundary. Anything unrecognized collapses to a generic 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrDuplicateEmail), errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
