package http

import (
	"errors"
	"net/http"

	"github.com/mkhalitov/shoplist/internal/service"
	"github.com/mkhalitov/shoplist/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrMissingCredentials:  http.StatusBadRequest,
	service.ErrCredentialsTooShort: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrTokenInvalid:        http.StatusForbidden,

	store.ErrUsernameTaken: http.StatusConflict,
	store.ErrUserNotFound:  http.StatusNotFound,
	store.ErrItemNotFound:  http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// errorMessageMap holds the exact client-facing text for each sentinel
// error. Internal error strings stay server-side; anything unmapped is
// reported as a generic internal error.
var errorMessageMap = map[error]string{
	service.ErrMissingCredentials:  "Username and password are required",
	service.ErrCredentialsTooShort: "Username must be at least 3 characters and password at least 6 characters",
	service.ErrInvalidCredentials:  "Invalid credentials",
	service.ErrTokenInvalid:        "Invalid or expired token",

	store.ErrUsernameTaken: "Username already exists",
	store.ErrItemNotFound:  "Item not found",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return "Internal server error"
}
