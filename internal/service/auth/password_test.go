package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/keyauth/userauth-api/internal/service/auth"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	t.Parallel()

	// Minimum cost keeps the test fast; the contract is cost-independent.
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	plaintexts := []string{"password1", "correct horse battery staple", "päss wörd"}

	for _, plaintext := range plaintexts {
		digest, err := hasher.Hash(plaintext)
		require.NoError(t, err)

		// The digest is never the plaintext
		assert.NotEqual(t, plaintext, digest)

		// verify(p, hash(p)) always holds
		assert.NoError(t, hasher.Compare(digest, plaintext))
	}
}

func TestBcryptHasherRejectsWrongPassword(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("password1")
	require.NoError(t, err)

	assert.Error(t, hasher.Compare(digest, "password2"))
	assert.Error(t, hasher.Compare(digest, ""))

	otherDigest, err := hasher.Hash("password2")
	require.NoError(t, err)
	assert.Error(t, hasher.Compare(otherDigest, "password1"))
}

func TestNewBcryptHasherCostFallback(t *testing.T) {
	t.Parallel()

	// A cost below bcrypt's minimum must still produce verifiable digests.
	hasher := auth.NewBcryptHasher(0)

	digest, err := hasher.Hash("password1")
	require.NoError(t, err)
	assert.NoError(t, hasher.Compare(digest, "password1"))
}
