package impl

import (
	"context"
	"log/slog"
	"time"

	"secureauth/config"
	deliverycontext "secureauth/internal/delivery/context"
	"secureauth/internal/domain/entity"
	domainerrors "secureauth/internal/domain/errors"
	"secureauth/internal/domain/service"
	"secureauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface over an opaque
// session store. Session identifiers are random UUIDs; nothing about the
// subject can be derived from the identifier itself.
type sessionService struct {
	store  service.SessionStore
	ttl    time.Duration
	logger *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Store  service.SessionStore
	Config *config.Config
	Logger *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	ttl := config.DefaultSessionTTL
	if params.Config != nil && params.Config.Session != nil && params.Config.Session.TTL > 0 {
		ttl = params.Config.Session.TTL
	}

	return &sessionService{
		store:  params.Store,
		ttl:    ttl,
		logger: params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Issue creates an authenticated session for the given subject. The session
// carries the two facts the rest of the system relies on: that the holder is
// logged in, and who they are.
func (srv *sessionService) Issue(ctx context.Context, username string) (*entity.Session, error) {
	now := time.Now()
	session := &entity.Session{
		ID:              uuid.New().String(),
		SubjectUsername: username,
		Authenticated:   true,
		IssuedAt:        now,
		ExpiresAt:       now.Add(srv.ttl),
	}

	if err := srv.store.Put(ctx, session); err != nil {
		srv.log(ctx).Error("Failed to store session", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store session")
	}

	srv.log(ctx).Debug("Issued session", slog.String("subject", username))

	return session, nil
}

// Current resolves a session identifier to its live state.
func (srv *sessionService) Current(ctx context.Context, sessionID string) (*entity.Session, error) {
	if sessionID == "" {
		return nil, domainerrors.ErrNotAuthenticated
	}

	session, err := srv.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return nil, domainerrors.ErrNotAuthenticated
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	return session, nil
}

// Destroy removes the session. Unknown identifiers are treated as already
// destroyed, so logout is safe to repeat.
func (srv *sessionService) Destroy(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := srv.store.Delete(ctx, sessionID); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return nil
		}
		srv.log(ctx).Error("Failed to destroy session", slog.Any("error", err))

		return errors.Wrap(err, "failed to destroy session")
	}

	srv.log(ctx).Debug("Destroyed session")

	return nil
}

// RequireAuthenticated resolves the session and accepts it only in the
// authenticated state. Everything else collapses to ErrNotAuthenticated so
// protected handlers have a single rejection path.
func (srv *sessionService) RequireAuthenticated(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := srv.Current(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !session.Authenticated {
		return nil, domainerrors.ErrNotAuthenticated
	}

	return session, nil
}
