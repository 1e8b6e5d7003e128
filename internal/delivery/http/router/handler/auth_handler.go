// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"secureauth/config"
	"secureauth/internal/delivery/http/middleware"
	"secureauth/internal/delivery/http/response"
	"secureauth/internal/domain/entity"
	"secureauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// credentialView is the wire representation of a stored credential record.
type credentialView struct {
	ID                int64     `json:"id"`
	Username          string    `json:"username"`
	UsernameHash      string    `json:"username_hash"`
	PasswordHash      string    `json:"password_hash"`
	PlaintextPassword string    `json:"plaintext_password,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func toCredentialView(cred *entity.Credential) credentialView {
	return credentialView{
		ID:                cred.ID,
		Username:          cred.Username,
		UsernameHash:      cred.UsernameHash,
		PasswordHash:      cred.PasswordHash,
		PlaintextPassword: cred.PlaintextPassword,
		CreatedAt:         cred.CreatedAt,
	}
}

// AuthHandler holds dependencies for credential-related handlers.
type AuthHandler struct {
	authUC     usecase.AuthUsecase
	sessionUC  usecase.SessionUsecase
	sessionMW  *middleware.SessionMiddleware
	sessionTTL time.Duration
	logger     *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUC usecase.AuthUsecase, sessionUC usecase.SessionUsecase, sessionMW *middleware.SessionMiddleware, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	ttl := config.DefaultSessionTTL
	if cfg != nil && cfg.Session != nil && cfg.Session.TTL > 0 {
		ttl = cfg.Session.TTL
	}

	return &AuthHandler{
		authUC:     authUC,
		sessionUC:  sessionUC,
		sessionMW:  sessionMW,
		sessionTTL: ttl,
		logger:     logger,
	}
}

// Register handles the credential registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	input := new(usecase.RegisterInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Username and password are required")
	}

	output, err := h.authUC.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	// The stored digests are part of the walkthrough, so they are returned
	// deliberately. The plaintext field only survives in demo mode.
	view := toCredentialView(output.Credential)
	if output.Credential.PlaintextPassword != "" {
		view.PlaintextPassword = output.Credential.PlaintextPassword
	}

	return response.Success(c, http.StatusCreated, view, "User registered successfully")
}

// Login handles the login request and issues the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Username and password are required")
	}

	output, err := h.authUC.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	// A successful re-login replaces the previous session. The identifier in
	// the incoming cookie must stop authenticating right away rather than
	// lingering until its TTL expires.
	if prior := h.sessionMW.SessionID(c); prior != "" && prior != output.Session.ID {
		if err := h.sessionUC.Destroy(c.Request().Context(), prior); err != nil {
			return errors.WithStack(err)
		}
	}

	h.setSessionCookie(c, output.Session.ID)

	return response.Success(c, http.StatusOK, map[string]string{
		"username": output.Username,
	}, "Login successful")
}

// Logout destroys the session and clears the cookie. Logging out without a
// session, or twice in a row, succeeds the same way.
func (h *AuthHandler) Logout(c echo.Context) error {
	sessionID := h.sessionMW.SessionID(c)

	if err := h.sessionUC.Destroy(c.Request().Context(), sessionID); err != nil {
		return errors.WithStack(err)
	}

	h.clearSessionCookie(c)

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

func (h *AuthHandler) setSessionCookie(c echo.Context, sessionID string) {
	c.SetCookie(&http.Cookie{
		Name:     h.sessionMW.CookieName(),
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.sessionMW.CookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
