package api_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/keyauth/userauth-api/internal/domain"
	"github.com/keyauth/userauth-api/internal/store"
)

// memUserStore is an in-memory store.UserStore shared by handler and
// end-to-end tests.
type memUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[uuid.UUID]*domain.User)}
}

func (m *memUserStore) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.UserName == user.UserName {
			return store.ErrUserNameExists
		}
	}

	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *memUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *memUserStore) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.UserName == userName {
			copied := *user
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (m *memUserStore) List(ctx context.Context) ([]*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	users := make([]*domain.User, 0, len(m.users))
	for _, user := range m.users {
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

func (m *memUserStore) Update(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.ID]; !ok {
		return store.ErrUserNotFound
	}

	for id, existing := range m.users {
		if id != user.ID && existing.UserName == user.UserName {
			return store.ErrUserNameExists
		}
	}

	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *memUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

// memAPIKeyStore is an in-memory store.APIKeyStore shared by handler
// and end-to-end tests.
type memAPIKeyStore struct {
	mu   sync.Mutex
	keys map[uuid.UUID]*domain.APIKey
}

func newMemAPIKeyStore() *memAPIKeyStore {
	return &memAPIKeyStore{keys: make(map[uuid.UUID]*domain.APIKey)}
}

func (m *memAPIKeyStore) Create(ctx context.Context, key *domain.APIKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.keys {
		if existing.ClientID == key.ClientID {
			return store.ErrClientIDExists
		}
		if existing.Key == key.Key {
			return store.ErrDuplicate
		}
	}

	stored := *key
	m.keys[key.ID] = &stored
	return nil
}

func (m *memAPIKeyStore) GetByKey(ctx context.Context, key string) (*domain.APIKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.keys {
		if existing.Key == key {
			copied := *existing
			return &copied, nil
		}
	}
	return nil, store.ErrAPIKeyNotFound
}

func (m *memAPIKeyStore) GetByClientID(ctx context.Context, clientID string) (*domain.APIKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.keys {
		if existing.ClientID == clientID {
			copied := *existing
			return &copied, nil
		}
	}
	return nil, store.ErrAPIKeyNotFound
}

// setValidUntil rewrites the stored expiry of the key with the given secret.
func (m *memAPIKeyStore) setValidUntil(key string, validUntil time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.keys {
		if existing.Key == key {
			existing.ValidUntil = validUntil
			return true
		}
	}
	return false
}
