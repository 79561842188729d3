package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common API key validation errors
var (
	ErrEmptyKeyID        = errors.New("API key ID cannot be empty")
	ErrEmptyKey          = errors.New("key cannot be empty")
	ErrEmptyClientID     = errors.New("client ID cannot be empty")
	ErrExpiryNotInFuture = errors.New("valid-until must be strictly in the future")
)

// APIKey represents a long-lived opaque credential issued to a calling
// client. A key is never mutated after creation and never revoked; it
// becomes invalid only once the current time passes ValidUntil.
type APIKey struct {
	ID         uuid.UUID `json:"id"`
	Key        string    `json:"key"`
	ClientID   string    `json:"client_id"`
	ValidUntil time.Time `json:"valid_until"`
}

// NewAPIKey creates a new APIKey with the given secret, client identifier
// and expiry. It generates a new UUID for the record ID.
// Returns an error if validation fails.
func NewAPIKey(key, clientID string, validUntil time.Time) (*APIKey, error) {
	apiKey := &APIKey{
		ID:         uuid.New(),
		Key:        key,
		ClientID:   clientID,
		ValidUntil: validUntil,
	}

	if err := apiKey.Validate(); err != nil {
		return nil, err
	}

	return apiKey, nil
}

// Validate checks if the APIKey has valid data.
// Returns an error if any field fails validation.
func (k *APIKey) Validate() error {
	if k.ID == uuid.Nil {
		return ErrEmptyKeyID
	}

	if k.Key == "" {
		return ErrEmptyKey
	}

	if k.ClientID == "" {
		return ErrEmptyClientID
	}

	if !k.ValidUntil.After(time.Now().UTC()) {
		return ErrExpiryNotInFuture
	}

	return nil
}

// Expired reports whether the key is no longer valid at the given time.
// Expiry is a computed state: a key is valid only while ValidUntil is
// strictly after now.
func (k *APIKey) Expired(now time.Time) bool {
	return !k.ValidUntil.After(now)
}
