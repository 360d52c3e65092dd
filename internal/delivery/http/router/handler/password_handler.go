package handler

import (
	"log/slog"
	"net/http"

	"gobarber/internal/delivery/http/response"
	"gobarber/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PasswordHandler holds dependencies for the password reset handlers.
type PasswordHandler struct {
	uc     usecase.PasswordUsecase
	logger *slog.Logger
}

// NewPasswordHandler is the constructor for PasswordHandler, injected by Fx.
func NewPasswordHandler(uc usecase.PasswordUsecase, logger *slog.Logger) *PasswordHandler {
	return &PasswordHandler{
		uc:     uc,
		logger: logger,
	}
}

// Forgot accepts a reset request. The response is identical whether or not
// the email belongs to an account.
func (h *PasswordHandler) Forgot(c echo.Context) error {
	var input *usecase.ForgotPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid forgot password input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.uc.ForgotPassword(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Reset consumes a reset token and sets the new password.
func (h *PasswordHandler) Reset(c echo.Context) error {
	var input *usecase.ResetPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset password input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.uc.ResetPassword(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
