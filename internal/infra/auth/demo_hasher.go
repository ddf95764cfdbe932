// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"

	"bazaar/internal/domain/service"
)

// demoSalt is the fixed salt baked into the demo hash. A global compile-time
// salt gives no real protection; it only keeps plaintext out of the store.
const demoSalt = "bazaar_ultra_secure_2024"

// hashVersion tags the output so a future algorithm change can coexist with
// stored values.
const hashVersion = "v2_"

// demoHasher is the default PasswordHasher: a deterministic 32-bit
// multiply-accumulate checksum over password+salt. It is NOT cryptographic
// and must not be mistaken for password security; it exists so the demo
// store never holds plaintext. Determinism is part of the contract - login
// compares Hash(password) against the stored value byte for byte.
type demoHasher struct{}

// NewDemoHasher is the constructor for demoHasher.
func NewDemoHasher() service.PasswordHasher {
	return &demoHasher{}
}

// Hash folds password+salt through h = h*31 + code wrapped to signed 32 bits
// and renders the absolute value in base-16 behind a version tag.
func (h *demoHasher) Hash(password string) (string, error) {
	var sum int32
	for _, code := range password + demoSalt {
		sum = sum*31 + int32(code)
	}

	// Widen before negating so the minimum int32 doesn't overflow.
	abs := int64(sum)
	if abs < 0 {
		abs = -abs
	}

	return hashVersion + strconv.FormatInt(abs, 16), nil
}

// Check compares a plaintext password with a stored demo hash.
func (h *demoHasher) Check(password, hash string) bool {
	computed, err := h.Hash(password)
	if err != nil {
		return false
	}

	return computed == hash
}
