package auth

import (
	"testing"

	"goalazo/config"

	"github.com/stretchr/testify/assert"
)

func newSecretHasherConfig(pepper string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Pepper = pepper

	return cfg
}

func TestSecretHasher_Pepper(t *testing.T) {
	hasher, err := NewSecretHasher(newSecretHasherConfig("test_pepper_secret"))
	assert.NoError(t, err)

	digest := hasher.Pepper("correct horse battery staple")
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, "correct horse battery staple", digest)

	// Same password, same pepper: the digest is deterministic.
	assert.Equal(t, digest, hasher.Pepper("correct horse battery staple"))

	// A different password yields a different digest.
	assert.NotEqual(t, digest, hasher.Pepper("another password"))
}

func TestSecretHasher_PepperDependsOnSecret(t *testing.T) {
	first, err := NewSecretHasher(newSecretHasherConfig("pepper_one"))
	assert.NoError(t, err)
	second, err := NewSecretHasher(newSecretHasherConfig("pepper_two"))
	assert.NoError(t, err)

	// The same password peppered with different secrets must not match,
	// otherwise a leaked database would be crackable without the secret.
	assert.NotEqual(t, first.Pepper("same password"), second.Pepper("same password"))
}

func TestSecretHasher_EmptySecret(t *testing.T) {
	hasher, err := NewSecretHasher(newSecretHasherConfig(""))
	assert.Error(t, err)
	assert.Nil(t, hasher)
	assert.Contains(t, err.Error(), "pepper secret must be provided")
}
