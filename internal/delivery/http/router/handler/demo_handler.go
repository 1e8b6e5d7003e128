package handler

import (
	"log/slog"
	"net/http"

	"secureauth/internal/delivery/http/response"
	"secureauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DemoHandler serves the interactive hashing demonstration.
type DemoHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewDemoHandler is the constructor for DemoHandler, injected by Fx.
func NewDemoHandler(authUC usecase.AuthUsecase, logger *slog.Logger) *DemoHandler {
	return &DemoHandler{
		authUC: authUC,
		logger: logger,
	}
}

// HashPreview hashes the submitted secret twice and returns both digests,
// demonstrating that equal inputs never share a digest.
func (h *DemoHandler) HashPreview(c echo.Context) error {
	input := new(usecase.HashPreviewInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid hash demo input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "A secret to hash is required")
	}

	output, err := h.authUC.HashPreview(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"secret":       output.Secret,
		"first_hash":   output.HashOne,
		"second_hash":  output.HashTwo,
		"hashes_equal": output.HashOne == output.HashTwo,
	}, "Hash demonstration generated")
}
