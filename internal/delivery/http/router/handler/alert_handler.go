package handler

import (
	"net/http"

	"pawmart/internal/delivery/http/middleware"
	"pawmart/internal/delivery/http/response"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AlertHandler holds dependencies for inventory alert handlers.
type AlertHandler struct {
	uc usecase.InventoryUsecase
}

// NewAlertHandler is the constructor for AlertHandler, injected by Fx.
func NewAlertHandler(uc usecase.InventoryUsecase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// ListAlerts returns all open low-stock alerts.
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	alerts, err := h.uc.ListAlerts(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, alerts, "Alerts retrieved successfully")
}

// DeleteAlert acknowledges one alert.
func (h *AlertHandler) DeleteAlert(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid alert id")
	}

	if err := h.uc.DeleteAlert(c.Request().Context(), actor, alertID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
