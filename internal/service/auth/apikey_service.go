package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/keyauth/userauth-api/internal/domain"
	"github.com/keyauth/userauth-api/internal/platform/logger"
	"github.com/keyauth/userauth-api/internal/store"
)

// keySecretBytes is the entropy of a generated key secret. 32 random
// bytes hex-encode to the 64-character lowercase key string clients
// present in the X-API-Key header.
const keySecretBytes = 32

// KeyIssuer creates API keys for client identifiers.
type KeyIssuer interface {
	// IssueKey generates, persists and returns a new API key for the
	// given client identifier.
	// Returns ErrClientIDRequired if clientID is empty and
	// store.ErrClientIDExists if the client already holds a key.
	IssueKey(ctx context.Context, clientID string) (*domain.APIKey, error)
}

// KeyValidator checks whether a presented key is known and unexpired.
type KeyValidator interface {
	// ValidateKey reports whether a record with the exact secret exists
	// and its expiry is strictly after the current time. A pure read:
	// no state is mutated and results are never cached.
	ValidateKey(ctx context.Context, key string) (bool, error)
}

// APIKeyService implements KeyIssuer and KeyValidator backed by an
// APIKeyStore.
type APIKeyService struct {
	keys     store.APIKeyStore
	validity time.Duration
	logger   *slog.Logger
}

// Ensure APIKeyService implements both service interfaces
var (
	_ KeyIssuer    = (*APIKeyService)(nil)
	_ KeyValidator = (*APIKeyService)(nil)
)

// NewAPIKeyService creates a new APIKeyService. validityDays is the
// issuance-time validity window for new keys.
// If logger is nil, a default logger will be used.
func NewAPIKeyService(keys store.APIKeyStore, validityDays int, logger *slog.Logger) (*APIKeyService, error) {
	if keys == nil {
		return nil, errors.New("API key store cannot be nil")
	}

	if validityDays <= 0 {
		return nil, fmt.Errorf("key validity must be positive, got %d days", validityDays)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &APIKeyService{
		keys:     keys,
		validity: time.Duration(validityDays) * 24 * time.Hour,
		logger:   logger.With(slog.String("component", "apikey_service")),
	}, nil
}

// IssueKey implements KeyIssuer.
//
// The pre-check on the client identifier gives callers a clean conflict
// without burning entropy; the store's uniqueness constraint still
// arbitrates concurrent issuance, so a racing loser also surfaces as
// store.ErrClientIDExists rather than a second valid key.
func (s *APIKeyService) IssueKey(ctx context.Context, clientID string) (*domain.APIKey, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if clientID == "" {
		return nil, ErrClientIDRequired
	}

	_, err := s.keys.GetByClientID(ctx, clientID)
	if err == nil {
		log.Warn("API key already issued for client", slog.String("client_id", clientID))
		return nil, fmt.Errorf("%w: %s", store.ErrClientIDExists, clientID)
	}
	if !errors.Is(err, store.ErrAPIKeyNotFound) {
		return nil, fmt.Errorf("failed to check existing key for client %s: %w", clientID, err)
	}

	secret, err := generateKeySecret()
	if err != nil {
		return nil, fmt.Errorf("failed to generate key secret: %w", err)
	}

	apiKey, err := domain.NewAPIKey(secret, clientID, time.Now().UTC().Add(s.validity))
	if err != nil {
		return nil, err
	}

	if err := s.keys.Create(ctx, apiKey); err != nil {
		return nil, err
	}

	log.Info("API key issued",
		slog.String("client_id", clientID),
		slog.Time("valid_until", apiKey.ValidUntil))
	return apiKey, nil
}

// ValidateKey implements KeyValidator.
func (s *APIKeyService) ValidateKey(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, nil
	}

	apiKey, err := s.keys.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrAPIKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up API key: %w", err)
	}

	return !apiKey.Expired(time.Now().UTC()), nil
}

// generateKeySecret produces a new key secret from a cryptographically
// secure random source, encoded as fixed-length lowercase hexadecimal.
func generateKeySecret() (string, error) {
	b := make([]byte, keySecretBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
