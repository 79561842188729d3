package api

import (
	"errors"
	"net/http"

	"github.com/keyauth/userauth-api/internal/domain"
	"github.com/keyauth/userauth-api/internal/service/auth"
	"github.com/keyauth/userauth-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. Status mapping happens only here, at
// the outermost boundary; the core components return typed errors.
func MapErrorToStatusCode(err error) int {
	switch {
	// Invalid argument errors
	case errors.Is(err, auth.ErrClientIDRequired),
		errors.Is(err, domain.ErrEmptyClientID),
		errors.Is(err, domain.ErrEmptyUserName),
		errors.Is(err, domain.ErrEmptyEmail),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrEmptyPassword),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrClientIDRequired),
		errors.Is(err, domain.ErrEmptyClientID):
		return "ClientId is required"

	case errors.Is(err, store.ErrClientIDExists):
		return "API key already exists for this ClientId"

	case errors.Is(err, store.ErrUserNameExists):
		return "User with this username already exists"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrAPIKeyNotFound):
		return "API key not found"

	case errors.Is(err, domain.ErrEmptyUserName),
		errors.Is(err, domain.ErrEmptyEmail),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrEmptyPassword),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}
