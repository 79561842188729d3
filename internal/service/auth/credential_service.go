package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/keyauth/userauth-api/internal/platform/logger"
	"github.com/keyauth/userauth-api/internal/store"
)

// CredentialChecker verifies a username/password pair against stored state.
type CredentialChecker interface {
	// CheckPassword reports whether the plaintext password matches the
	// stored digest for the named user. A missing user and a wrong
	// password both yield false; the result value carries no
	// user-enumeration signal.
	CheckPassword(ctx context.Context, userName, password string) (bool, error)
}

// UserCredentialChecker implements CredentialChecker using a UserStore
// and a PasswordHasher.
type UserCredentialChecker struct {
	users  store.UserStore
	hasher PasswordHasher
	logger *slog.Logger
}

// Ensure UserCredentialChecker implements CredentialChecker
var _ CredentialChecker = (*UserCredentialChecker)(nil)

// NewUserCredentialChecker creates a new UserCredentialChecker.
// If logger is nil, a default logger will be used.
func NewUserCredentialChecker(users store.UserStore, hasher PasswordHasher, logger *slog.Logger) (*UserCredentialChecker, error) {
	if users == nil {
		return nil, errors.New("user store cannot be nil")
	}

	if hasher == nil {
		return nil, errors.New("password hasher cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &UserCredentialChecker{
		users:  users,
		hasher: hasher,
		logger: logger.With(slog.String("component", "credential_checker")),
	}, nil
}

// CheckPassword implements CredentialChecker.
func (c *UserCredentialChecker) CheckPassword(ctx context.Context, userName, password string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	user, err := c.users.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Same result as a wrong password
			return false, nil
		}
		return false, fmt.Errorf("failed to look up user %s: %w", userName, err)
	}

	if err := c.hasher.Compare(user.HashedPassword, password); err != nil {
		log.Debug("password mismatch", slog.String("user_name", userName))
		return false, nil
	}

	return true, nil
}
