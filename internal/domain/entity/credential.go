// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Credential is the persisted record of one registered identity. Both the
// username and the password are stored as independently salted bcrypt hashes,
// so neither column can be matched by an equality query; login has to
// enumerate the table and verify each record (see usecase/impl.authService).
type Credential struct {
	ID           int64     // Monotonically assigned identifier, immutable after insert.
	Username     string    // Plaintext display identity, unique across the store.
	UsernameHash string    // Salted bcrypt hash of Username, used for matching at login.
	PasswordHash string    // Salted bcrypt hash of the password, used for matching at login.
	CreatedAt    time.Time // Timestamp of insertion, immutable.

	// PlaintextPassword is retained only when the service runs in demo mode,
	// so the tutorial listing can show plaintext next to its hash. Empty in
	// production mode and never required for verification.
	PlaintextPassword string
}

// Profile is the subset of a credential record safe to show to the
// authenticated subject itself.
type Profile struct {
	Username     string    `json:"username"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// Redacted returns a copy of the credential with the demo-only plaintext
// removed. Used by the admin listing when demo mode is off.
func (c *Credential) Redacted() *Credential {
	clone := *c
	clone.PlaintextPassword = ""

	return &clone
}
