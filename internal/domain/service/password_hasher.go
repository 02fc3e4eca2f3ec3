package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying adaptive algorithm (e.g. bcrypt), keeping the
// domain pure. Implementations pepper the plaintext before hashing.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Each call uses
	// a fresh random salt, so identical passwords hash differently.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash. A mismatch is
	// (false, nil); a failure of the underlying primitive is (false, err).
	Check(password, hash string) (bool, error)
}
