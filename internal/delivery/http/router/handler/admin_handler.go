package handler

import (
	"log/slog"
	"net/http"

	"secureauth/internal/delivery/http/response"
	"secureauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler exposes the walkthrough's record inspection endpoints.
type AdminHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(authUC usecase.AuthUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		authUC: authUC,
		logger: logger,
	}
}

// ListCredentials returns every stored record for the history view. Outside
// demo mode the usecase layer has already stripped the plaintext column.
func (h *AdminHandler) ListCredentials(c echo.Context) error {
	creds, err := h.authUC.ListCredentials(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]credentialView, 0, len(creds))
	for _, cred := range creds {
		views = append(views, toCredentialView(cred))
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"count":       len(views),
		"credentials": views,
	}, "Credentials retrieved successfully")
}
