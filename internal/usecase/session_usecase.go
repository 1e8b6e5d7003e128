// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"secureauth/internal/domain/entity"
)

// SessionUsecase defines the interface for session lifecycle operations.
type SessionUsecase interface {
	// Issue creates a fresh authenticated session bound to the given username
	// and returns it with its opaque identifier populated.
	Issue(ctx context.Context, username string) (*entity.Session, error)
	// Current resolves a session identifier to its live session state.
	Current(ctx context.Context, sessionID string) (*entity.Session, error)
	// Destroy tears down the session. Destroying an unknown or already
	// destroyed session is not an error.
	Destroy(ctx context.Context, sessionID string) error
	// RequireAuthenticated resolves the session and returns it only when it
	// is both present and in the authenticated state.
	RequireAuthenticated(ctx context.Context, sessionID string) (*entity.Session, error)
}
