// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"secureauth/internal/domain/entity"
)

// Domain-specific errors for credential persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrDuplicateUsername is returned when an insert collides with the
	// store's unique constraint on the username column. The constraint, not a
	// prior read, is the uniqueness check, so two concurrent registrations
	// with the same username can never both succeed.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrCredentialNotFound is returned when a credential record is not found.
	ErrCredentialNotFound = errors.New("credential not found")
)

// CredentialRepository defines the standard operations for credential persistence.
// The application layer will depend on this interface, not the concrete implementation.
type CredentialRepository interface {
	// Insert persists a new credential record and fills in its generated ID
	// and CreatedAt. Returns ErrDuplicateUsername on a username collision.
	Insert(ctx context.Context, cred *entity.Credential) error

	// ListAll returns every credential record in insertion order (ascending
	// id). Cost is O(n) in registered users; the login matcher depends on
	// this because salted hashes cannot be matched by an indexed lookup.
	ListAll(ctx context.Context) ([]*entity.Credential, error)

	// FindByUsername retrieves a single record by its plaintext identity
	// column. Used for profile lookup after a session is established, never
	// for authentication itself.
	FindByUsername(ctx context.Context, username string) (*entity.Credential, error)
}
