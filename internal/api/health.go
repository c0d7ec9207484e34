package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// The health probes are static: the gateway holds no state of its own, and
// upstream availability is surfaced per request rather than via readiness.

// Health handles GET /health.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// Live handles GET /health/live.
func (h *Handler) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "alive"})
}

// Ready handles GET /health/ready.
func (h *Handler) Ready(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
