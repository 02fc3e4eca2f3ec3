package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestPasswordHasher(t *testing.T) *bcryptHasher {
	t.Helper()

	secretHasher, err := NewSecretHasher(newSecretHasherConfig("test_pepper_secret"))
	require.NoError(t, err)

	// MinCost keeps the bcrypt rounds cheap for tests.
	return NewBcryptHasherWithCost(secretHasher, bcrypt.MinCost).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestPasswordHasher(t)

	hash, err := hasher.Hash("my-secure-password-123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "my-secure-password-123", hash)

	ok, err := hasher.Check("my-secure-password-123", hash)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_CheckMismatch(t *testing.T) {
	hasher := newTestPasswordHasher(t)

	hash, err := hasher.Hash("my-secure-password-123")
	assert.NoError(t, err)

	// A wrong password is a negative verdict, not an error.
	ok, err := hasher.Check("wrong-password", hash)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_CheckInvalidHash(t *testing.T) {
	hasher := newTestPasswordHasher(t)

	ok, err := hasher.Check("any-password", "not-a-bcrypt-hash")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := newTestPasswordHasher(t)

	first, err := hasher.Hash("same-password")
	assert.NoError(t, err)
	second, err := hasher.Hash("same-password")
	assert.NoError(t, err)

	// bcrypt salts every hash, so two hashes of the same password differ
	// while both still verify.
	assert.NotEqual(t, first, second)

	ok, err := hasher.Check("same-password", first)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Check("same-password", second)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_PepperIsRequiredToVerify(t *testing.T) {
	hasher := newTestPasswordHasher(t)

	hash, err := hasher.Hash("my-secure-password-123")
	assert.NoError(t, err)

	otherSecret, err := NewSecretHasher(newSecretHasherConfig("a_different_pepper"))
	require.NoError(t, err)
	otherHasher := NewBcryptHasherWithCost(otherSecret, bcrypt.MinCost)

	// Without the original pepper secret the stored hash never matches.
	ok, err := otherHasher.Check("my-secure-password-123", hash)
	assert.NoError(t, err)
	assert.False(t, ok)
}
