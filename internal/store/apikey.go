package store

import (
	"context"

	"github.com/keyauth/userauth-api/internal/domain"
)

// APIKeyStore defines the interface for API key persistence.
//
// Implementations must back Create with an atomic check-and-insert
// (a uniqueness constraint on both the key and the client identifier)
// so that two concurrent issue calls for the same client can never both
// succeed: the loser observes ErrClientIDExists.
type APIKeyStore interface {
	// Create persists a new API key record.
	// Returns ErrClientIDExists if a key has already been issued for the
	// record's client identifier, even under concurrent insertion.
	Create(ctx context.Context, key *domain.APIKey) error

	// GetByKey retrieves a record by exact secret match.
	// Returns ErrAPIKeyNotFound if no record holds the given secret.
	GetByKey(ctx context.Context, key string) (*domain.APIKey, error)

	// GetByClientID retrieves the record issued to the given client.
	// Returns ErrAPIKeyNotFound if the client has no key.
	GetByClientID(ctx context.Context, clientID string) (*domain.APIKey, error)
}
