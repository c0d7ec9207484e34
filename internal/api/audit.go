package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"orchestrix/bff/internal/auth"
)

// ListAuditLogs returns the upstream audit page, optionally filtered by
// event type.
// (GET /api/v1/audit-logs)
func (h *Handler) ListAuditLogs(c echo.Context) error {
	page, limit := ParsePagination(c)

	result, err := h.audit.List(c.Request().Context(), auth.Token(c), page, limit, c.QueryParam("event_type"))
	if err != nil {
		return h.upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// ListAuditLogsByResource returns audit records for one resource.
// (GET /api/v1/audit-logs/resource/:type/:id)
func (h *Handler) ListAuditLogsByResource(c echo.Context) error {
	page, limit := ParsePagination(c)

	result, err := h.audit.ListByResource(c.Request().Context(), c.Param("type"), c.Param("id"), auth.Token(c), page, limit)
	if err != nil {
		return h.upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// ListAuditLogsByUser returns audit records produced by one user.
// (GET /api/v1/audit-logs/user/:userId)
func (h *Handler) ListAuditLogsByUser(c echo.Context) error {
	page, limit := ParsePagination(c)

	result, err := h.audit.ListByUser(c.Request().Context(), c.Param("userId"), auth.Token(c), page, limit)
	if err != nil {
		return h.upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetAuditLog returns a single audit record, or 404 when upstream has none.
// (GET /api/v1/audit-logs/:id)
func (h *Handler) GetAuditLog(c echo.Context) error {
	record, err := h.audit.GetByID(c.Request().Context(), c.Param("id"), auth.Token(c))
	if err != nil {
		return h.upstreamError(c, err)
	}
	if record == nil {
		return notFound(c, "Audit log not found")
	}
	return data(c, http.StatusOK, record)
}
