package trends

import (
	"net/http"
	"strings"
	"time"

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
	api.GET("/health/trends", h.GetTrends)
	api.GET("/health/trends/lab", h.GetLabTrends)
	api.GET("/health/trends/symptoms", h.GetSymptomTrends)
	api.GET("/health/trends/comparative", h.GetComparative)
}

func (h *Handler) GetTrends(c echo.Context) error {
	opts, err := parseFilterOptions(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	userID := auth.UserIDFromContext(c.Request().Context())
	overview, err := h.svc.GetHealthTrends(c.Request().Context(), userID, opts)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, overview)
}

func (h *Handler) GetLabTrends(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	ts, err := h.svc.GetLabTrends(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	if ts == nil {
		ts = []Trend{}
	}
	return c.JSON(http.StatusOK, ts)
}

func (h *Handler) GetSymptomTrends(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	ts, err := h.svc.GetSymptomTrends(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	if ts == nil {
		ts = []Trend{}
	}
	return c.JSON(http.StatusOK, ts)
}

func (h *Handler) GetComparative(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	cmp, err := h.svc.GetComparative(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, cmp)
}

func parseFilterOptions(c echo.Context) (FilterOptions, error) {
	var opts FilterOptions

	if v := c.QueryParam("startDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return opts, err
		}
		opts.StartDate = &t
	}
	if v := c.QueryParam("endDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return opts, err
		}
		opts.EndDate = &t
	}
	if v := c.QueryParam("metrics"); v != "" {
		for _, m := range strings.Split(v, ",") {
			if m = strings.TrimSpace(m); m != "" {
				opts.Metrics = append(opts.Metrics, m)
			}
		}
	}
	opts.TimeRange = c.QueryParam("timeRange")
	if _, err := ResolveTimeRange(opts.TimeRange, time.Now()); err != nil {
		return opts, err
	}
	return opts, nil
}

func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}
