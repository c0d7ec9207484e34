package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"orchestrix/bff/internal/auth"
	"orchestrix/bff/pkg/models"
)

// ListAlerts returns the upstream alert page, optionally filtered by status.
// (GET /api/v1/alerts)
func (h *Handler) ListAlerts(c echo.Context) error {
	page, limit := ParsePagination(c)

	status := c.QueryParam("status")
	switch status {
	case "", string(models.AlertStatusOpen), string(models.AlertStatusAcknowledged), string(models.AlertStatusResolved):
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "status must be one of: open, acknowledged, resolved")
	}

	result, err := h.alerts.List(c.Request().Context(), auth.Token(c), page, limit, status)
	if err != nil {
		return h.upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetAlert returns a single alert, or 404 when upstream has none.
// (GET /api/v1/alerts/:id)
func (h *Handler) GetAlert(c echo.Context) error {
	alert, err := h.alerts.GetByID(c.Request().Context(), c.Param("id"), auth.Token(c))
	if err != nil {
		return h.upstreamError(c, err)
	}
	if alert == nil {
		return notFound(c, "Alert not found")
	}
	return data(c, http.StatusOK, alert)
}

// CreateAlert forwards a validated create request. Severity defaults to info.
// (POST /api/v1/alerts)
func (h *Handler) CreateAlert(c echo.Context) error {
	var input models.CreateAlertInput
	if err := c.Bind(&input); err != nil {
		return err
	}
	if input.Severity == "" {
		input.Severity = string(models.AlertSeverityInfo)
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	alert, err := h.alerts.Create(c.Request().Context(), input, auth.Token(c))
	if err != nil {
		return h.upstreamError(c, err)
	}
	return data(c, http.StatusCreated, alert)
}

// AcknowledgeAlert advances an alert to acknowledged. A missing alert is a
// hard 404 from upstream.
// (POST /api/v1/alerts/:id/acknowledge)
func (h *Handler) AcknowledgeAlert(c echo.Context) error {
	alert, err := h.alerts.Acknowledge(c.Request().Context(), c.Param("id"), auth.Token(c))
	if err != nil {
		return h.upstreamError(c, err)
	}
	return data(c, http.StatusOK, alert)
}

// ResolveAlert advances an alert to resolved.
// (POST /api/v1/alerts/:id/resolve)
func (h *Handler) ResolveAlert(c echo.Context) error {
	alert, err := h.alerts.Resolve(c.Request().Context(), c.Param("id"), auth.Token(c))
	if err != nil {
		return h.upstreamError(c, err)
	}
	return data(c, http.StatusOK, alert)
}
