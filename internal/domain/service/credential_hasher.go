// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// CredentialHasher defines the interface for credential hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
//
// Because every Hash call generates its own random salt, equal secrets produce
// different stored values. Stored hashes are therefore not equal-comparable
// across records, which is why the login path enumerates and verifies instead
// of querying by hash.
type CredentialHasher interface {
	// Hash generates a salted hash from a plaintext secret. Any byte sequence
	// is hashable; an error indicates an unrecoverable internal fault, never
	// malformed input.
	Hash(secret string) (string, error)

	// Verify recomputes the hash of candidate using the salt embedded in
	// stored and compares in constant time. Returns false on any salt or
	// format mismatch rather than failing.
	Verify(candidate, stored string) bool
}
