package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrUserNotFound, ErrAPIKeyNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same user name).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrAPIKeyNotFound indicates that the requested API key does not exist in the store.
	ErrAPIKeyNotFound = fmt.Errorf("%w: api key", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrUserNameExists indicates that a user with the given user name already exists.
	ErrUserNameExists = fmt.Errorf("%w: user name", ErrDuplicate)

	// ErrClientIDExists indicates that an API key has already been issued
	// for the given client identifier. Issuance enforces one key per client.
	ErrClientIDExists = fmt.Errorf("%w: client ID", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
