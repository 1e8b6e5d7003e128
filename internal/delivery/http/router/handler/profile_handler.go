package handler

import (
	"log/slog"
	"net/http"

	"secureauth/internal/delivery/http/middleware"
	"secureauth/internal/delivery/http/response"
	"secureauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(profileUC usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUC: profileUC,
		logger:    logger,
	}
}

// GetProfile returns the profile of the session's subject.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	session, ok := middleware.SessionFromEcho(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Please log in first")
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), session.SubjectUsername)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"username":      profile.Username,
		"registered_at": profile.RegisteredAt,
	}, "Profile retrieved successfully")
}
