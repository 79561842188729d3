package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keyauth/userauth-api/internal/domain"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "valid user",
			userName: "bob",
			email:    "bob@example.com",
			password: "secret-password",
			wantErr:  nil,
		},
		{
			name:     "empty user name",
			userName: "",
			email:    "bob@example.com",
			password: "secret-password",
			wantErr:  domain.ErrEmptyUserName,
		},
		{
			name:     "whitespace user name",
			userName: "   ",
			email:    "bob@example.com",
			password: "secret-password",
			wantErr:  domain.ErrEmptyUserName,
		},
		{
			name:     "empty email",
			userName: "bob",
			email:    "",
			password: "secret-password",
			wantErr:  domain.ErrEmptyEmail,
		},
		{
			name:     "email without at sign",
			userName: "bob",
			email:    "bob.example.com",
			password: "secret-password",
			wantErr:  domain.ErrInvalidEmail,
		},
		{
			name:     "email without domain dot",
			userName: "bob",
			email:    "bob@example",
			password: "secret-password",
			wantErr:  domain.ErrInvalidEmail,
		},
		{
			name:     "empty password",
			userName: "bob",
			email:    "bob@example.com",
			password: "",
			wantErr:  domain.ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			user, err := domain.NewUser(tt.userName, "Bob Tester", tt.email, "1234567890", "en", "en-US", tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.userName, user.UserName)
			assert.Equal(t, tt.email, user.Email)
			assert.Equal(t, tt.password, user.Password)
			assert.Empty(t, user.HashedPassword)
		})
	}
}

func TestUserValidateWithDigestOnly(t *testing.T) {
	t.Parallel()

	// A user loaded from the store has no plaintext password, only a digest.
	user, err := domain.NewUser("bob", "Bob Tester", "bob@example.com", "1234567890", "en", "en-US", "secret-password")
	require.NoError(t, err)

	user.Password = ""
	user.HashedPassword = "$2a$10$abcdefghijklmnopqrstuv"

	assert.NoError(t, user.Validate())
}
