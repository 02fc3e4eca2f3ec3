// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// SecretHasher mixes a server-wide secret ("pepper") into a plaintext
// password before adaptive hashing. The output is deterministic for a fixed
// secret and fixed-length regardless of input length, so the adaptive hasher
// never sees the raw password.
type SecretHasher interface {
	// Pepper returns the encoded digest of password combined with the
	// process-wide secret. Pure function; no error path.
	Pepper(password string) string
}
