package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/keyauth/userauth-api/internal/domain"
	"github.com/keyauth/userauth-api/internal/platform/logger"
	"github.com/keyauth/userauth-api/internal/store"
)

// PostgresAPIKeyStore implements the store.APIKeyStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAPIKeyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAPIKeyStore creates a new PostgreSQL implementation of the
// APIKeyStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAPIKeyStore(db store.DBTX, logger *slog.Logger) *PostgresAPIKeyStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAPIKeyStore{
		db:     db,
		logger: logger.With(slog.String("component", "apikey_store")),
	}
}

// Ensure PostgresAPIKeyStore implements store.APIKeyStore interface
var _ store.APIKeyStore = (*PostgresAPIKeyStore)(nil)

// Create implements store.APIKeyStore.Create
// The unique index on client_id makes the insert an atomic
// check-and-insert: when two issuers race for the same client, exactly
// one insert succeeds and the loser gets store.ErrClientIDExists.
func (s *PostgresAPIKeyStore) Create(ctx context.Context, key *domain.APIKey) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := key.Validate(); err != nil {
		log.Warn("API key validation failed during create",
			slog.String("error", err.Error()),
			slog.String("key_id", key.ID.String()))
		return err
	}

	query := `
		INSERT INTO api_keys (id, key, client_id, valid_until)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query, key.ID, key.Key, key.ClientID, key.ValidUntil)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate API key insert",
				slog.String("client_id", key.ClientID))
			return MapUniqueViolation(err, store.ErrClientIDExists)
		}

		log.Error("failed to create API key",
			slog.String("error", err.Error()),
			slog.String("client_id", key.ClientID))
		return MapError(err)
	}

	log.Info("API key created",
		slog.String("key_id", key.ID.String()),
		slog.String("client_id", key.ClientID),
		slog.Time("valid_until", key.ValidUntil))
	return nil
}

// GetByKey implements store.APIKeyStore.GetByKey
// Returns store.ErrAPIKeyNotFound if no record holds the given secret.
func (s *PostgresAPIKeyStore) GetByKey(ctx context.Context, key string) (*domain.APIKey, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, key, client_id, valid_until
		FROM api_keys
		WHERE key = $1
	`

	var apiKey domain.APIKey
	err := s.db.QueryRowContext(ctx, query, key).Scan(
		&apiKey.ID,
		&apiKey.Key,
		&apiKey.ClientID,
		&apiKey.ValidUntil,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Not logging the presented secret: an unknown key may be a typo
			// of a real one.
			log.Debug("API key not found")
			return nil, store.ErrAPIKeyNotFound
		}

		log.Error("failed to get API key", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return &apiKey, nil
}

// GetByClientID implements store.APIKeyStore.GetByClientID
// Returns store.ErrAPIKeyNotFound if the client has no key.
func (s *PostgresAPIKeyStore) GetByClientID(ctx context.Context, clientID string) (*domain.APIKey, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, key, client_id, valid_until
		FROM api_keys
		WHERE client_id = $1
	`

	var apiKey domain.APIKey
	err := s.db.QueryRowContext(ctx, query, clientID).Scan(
		&apiKey.ID,
		&apiKey.Key,
		&apiKey.ClientID,
		&apiKey.ValidUntil,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("no API key for client", slog.String("client_id", clientID))
			return nil, store.ErrAPIKeyNotFound
		}

		log.Error("failed to get API key by client ID",
			slog.String("error", err.Error()),
			slog.String("client_id", clientID))
		return nil, MapError(err)
	}

	return &apiKey, nil
}
