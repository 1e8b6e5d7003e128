package context

import (
	"context"

	"secureauth/internal/domain/entity"
)

// WithSession returns a new context carrying the resolved session.
func WithSession(ctx context.Context, session *entity.Session) context.Context {
	return context.WithValue(ctx, KeySession, session)
}

// GetSession extracts the resolved session from context.Context.
// If not found, returns nil.
func GetSession(ctx context.Context) *entity.Session {
	if session, ok := ctx.Value(KeySession).(*entity.Session); ok {
		return session
	}

	return nil
}
