package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/keyauth/userauth-api/internal/domain"
	"github.com/keyauth/userauth-api/internal/store"
)

// seedClientID is the client identifier of the bootstrap API key. The
// gate covers the key-issuance endpoint itself, so a fresh deployment
// needs one key to exist before any client can request another.
const seedClientID = "bootstrap-client"

// seedUsers are created on first start so the password-check endpoint
// is exercisable out of the box.
var seedUsers = []struct {
	userName, fullName, email, mobileNumber, language, culture, password string
}{
	{"admin", "Admin User", "admin@example.com", "1234567890", "en", "en-US", "password1"},
	{"janez_n", "Janez Novak", "n.janez@example.com", "9876543210", "en", "en-US", "password2"},
}

// seedData populates the store with bootstrap users and an API key when
// the respective tables are empty. Seeding goes through the same
// hashing and issuance paths as regular requests, so seeded records
// obey every invariant enforced there.
func (app *application) seedData(ctx context.Context) error {
	users, err := app.userStore.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}

	if len(users) == 0 {
		for _, seed := range seedUsers {
			user, err := domain.NewUser(
				seed.userName,
				seed.fullName,
				seed.email,
				seed.mobileNumber,
				seed.language,
				seed.culture,
				seed.password,
			)
			if err != nil {
				return fmt.Errorf("invalid seed user %s: %w", seed.userName, err)
			}

			hashed, err := app.passwordHasher.Hash(seed.password)
			if err != nil {
				return fmt.Errorf("failed to hash seed password for %s: %w", seed.userName, err)
			}
			user.HashedPassword = hashed
			user.Password = ""

			if err := app.userStore.Create(ctx, user); err != nil {
				return fmt.Errorf("failed to seed user %s: %w", seed.userName, err)
			}
		}

		app.logger.Info("Seeded bootstrap users", "count", len(seedUsers))
	}

	_, err = app.apiKeyStore.GetByClientID(ctx, seedClientID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrAPIKeyNotFound) {
		return fmt.Errorf("failed to check bootstrap API key: %w", err)
	}

	apiKey, err := app.apiKeyService.IssueKey(ctx, seedClientID)
	if err != nil {
		return fmt.Errorf("failed to seed bootstrap API key: %w", err)
	}

	// Logged once so operators can hand the bootstrap key to the first
	// client; it is never printed again.
	app.logger.Info("Seeded bootstrap API key",
		"client_id", seedClientID,
		"key", apiKey.Key,
		"valid_until", apiKey.ValidUntil)
	return nil
}
