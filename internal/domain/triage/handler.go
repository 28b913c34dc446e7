package triage

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cardiowell/cardiowell/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/triage/alerts", h.GetAlerts)
}

func (h *Handler) GetAlerts(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	alerts, err := h.svc.CheckForAlerts(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	if alerts == nil {
		alerts = []Alert{}
	}
	return c.JSON(http.StatusOK, alerts)
}
