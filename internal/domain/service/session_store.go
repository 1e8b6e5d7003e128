package service

import (
	"context"
	"errors"

	"secureauth/internal/domain/entity"
)

// ErrSessionNotFound is returned when no session exists for the given id.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore abstracts the transport-level session storage. The core only
// needs get/set/destroy semantics over an opaque per-client identifier; the
// wire-level cookie format belongs to the delivery layer.
type SessionStore interface {
	// Put stores the session under its ID, replacing any existing session
	// with the same ID.
	Put(ctx context.Context, sess *entity.Session) error

	// Get returns the session for the given id, or ErrSessionNotFound if the
	// id is unknown or the session has expired.
	Get(ctx context.Context, id string) (*entity.Session, error)

	// Delete removes the session for the given id. Deleting an absent session
	// is not an error.
	Delete(ctx context.Context, id string) error
}
