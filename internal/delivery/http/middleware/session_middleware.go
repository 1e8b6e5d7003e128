package middleware

import (
	"net/http"

	"secureauth/config"
	deliverycontext "secureauth/internal/delivery/context"
	"secureauth/internal/domain/entity"
	"secureauth/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware authenticates requests by resolving the session cookie.
type SessionMiddleware struct {
	sessions   usecase.SessionUsecase
	cookieName string
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessions usecase.SessionUsecase, cfg *config.Config) *SessionMiddleware {
	cookieName := config.DefaultCookieName
	if cfg != nil && cfg.Session != nil && cfg.Session.CookieName != "" {
		cookieName = cfg.Session.CookieName
	}

	return &SessionMiddleware{sessions: sessions, cookieName: cookieName}
}

// CookieName returns the configured session cookie name.
func (m *SessionMiddleware) CookieName() string {
	return m.cookieName
}

// SessionID extracts the session identifier from the request cookie.
// Returns empty string when no cookie is present.
func (m *SessionMiddleware) SessionID(c echo.Context) string {
	cookie, err := c.Cookie(m.cookieName)
	if err != nil || cookie == nil {
		return ""
	}

	return cookie.Value
}

// Authenticate guards a route group. The request proceeds only when the
// cookie resolves to a live authenticated session; the session is then made
// available to handlers through both echo.Context and the request context.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := m.sessions.RequireAuthenticated(c.Request().Context(), m.SessionID(c))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Please log in first"})
		}

		c.Set(string(deliverycontext.KeySession), session)

		ctx := c.Request().Context()
		ctx = deliverycontext.WithSession(ctx, session)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// SessionFromEcho retrieves the session stored by Authenticate.
func SessionFromEcho(c echo.Context) (*entity.Session, bool) {
	session, ok := c.Get(string(deliverycontext.KeySession)).(*entity.Session)

	return session, ok
}
