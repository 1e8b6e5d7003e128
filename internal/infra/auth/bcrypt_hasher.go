// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"secureauth/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the CredentialHasher interface using bcrypt.
// bcrypt generates a fresh random salt on every call and embeds it in the
// output, so two hashes of the same secret never compare equal as strings.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher with the default cost.
// It returns the implementation as a service.CredentialHasher interface.
func NewBcryptHasher() service.CredentialHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost factor.
// Costs outside bcrypt's supported range fall back to the default.
func NewBcryptHasherWithCost(cost int) service.CredentialHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// maxSecretBytes is bcrypt's input limit. x/crypto rejects longer secrets
// with an error, while C and Node bcrypt silently truncate; truncating here
// keeps every byte sequence hashable and keeps Hash and Verify symmetric.
const maxSecretBytes = 72

func truncateSecret(secret string) []byte {
	raw := []byte(secret)
	if len(raw) > maxSecretBytes {
		raw = raw[:maxSecretBytes]
	}

	return raw
}

// Hash generates a salted hash from a plaintext secret using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(truncateSecret(secret), h.cost)

	return string(bytes), err
}

// Verify compares a plaintext candidate with a bcrypt hash.
// bcrypt.CompareHashAndPassword is constant-time over the digest and returns
// an error for malformed stored hashes, which maps to a plain false here.
func (h *bcryptHasher) Verify(candidate, stored string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(stored), truncateSecret(candidate))

	return err == nil
}
