// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying algorithm: the default demo hasher is a
// deterministic salted checksum good enough for a mock store, and a bcrypt
// implementation can be swapped in without changing the contract.
type PasswordHasher interface {
	// Hash generates an opaque, equality-comparable string from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}
