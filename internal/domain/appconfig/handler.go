package appconfig

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/platform/auth"
)

// Handler provides HTTP handlers for the configuration document.
type Handler struct {
	svc *Service
}

// NewHandler creates a new app-config handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers app-config routes. Any authenticated user may
// read; only admins may write.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/app-config", h.GetConfig)
	api.PUT("/app-config", h.UpdateConfig, auth.RequireRole(auth.RoleAdmin))
}

func (h *Handler) GetConfig(c echo.Context) error {
	cfg, err := h.svc.GetConfig(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, cfg)
}

func (h *Handler) UpdateConfig(c echo.Context) error {
	var cfg AppConfig
	if err := c.Bind(&cfg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.UpdateConfig(c.Request().Context(), &cfg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, cfg)
}
