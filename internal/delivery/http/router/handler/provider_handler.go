package handler

import (
	"log/slog"
	"net/http"

	"gobarber/internal/delivery/http/middleware"
	"gobarber/internal/delivery/http/response"
	domainerrors "gobarber/internal/domain/errors"
	"gobarber/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProviderHandler holds dependencies for the providers listing handler.
type ProviderHandler struct {
	uc     usecase.ProviderUsecase
	logger *slog.Logger
}

// NewProviderHandler is the constructor for ProviderHandler, injected by Fx.
func NewProviderHandler(uc usecase.ProviderUsecase, logger *slog.Logger) *ProviderHandler {
	return &ProviderHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns every provider except the requesting user.
func (h *ProviderHandler) List(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	providers, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, providers, "")
}
