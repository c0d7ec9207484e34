// Package api binds the HTTP routes to the authorization gates, request
// validation and the resource services, and maps service outcomes to status
// codes and envelope shapes.
package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"orchestrix/bff/internal/services"
	"orchestrix/bff/internal/upstream"
	"orchestrix/bff/pkg/models"
)

// Handler holds the dependencies for the API routes. Services are explicit
// dependency objects constructed at startup, never package-level singletons.
type Handler struct {
	workflows services.WorkflowService
	alerts    services.AlertService
	audit     services.AuditService
	logger    zerolog.Logger
}

// NewHandler creates a Handler with its resource services.
func NewHandler(workflows services.WorkflowService, alerts services.AlertService, audit services.AuditService, logger zerolog.Logger) *Handler {
	return &Handler{
		workflows: workflows,
		alerts:    alerts,
		audit:     audit,
		logger:    logger,
	}
}

// data writes a `{data: T}` envelope.
func data(c echo.Context, status int, v any) error {
	return c.JSON(status, map[string]any{"data": v})
}

func notFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "Not Found",
		Message: message,
	})
}

// upstreamError maps a failed service call to a response. Upstream statuses
// pass through unchanged; transport failures surface as 502.
func (h *Handler) upstreamError(c echo.Context, err error) error {
	var ue *upstream.Error
	if errors.As(err, &ue) {
		h.logger.Warn().
			Int("status", ue.Status).
			Str("path", c.Path()).
			Msg("upstream error")
		return c.JSON(ue.Status, models.ErrorResponse{
			Error:   http.StatusText(ue.Status),
			Message: upstreamMessage(ue),
		})
	}

	h.logger.Error().
		Err(err).
		Str("path", c.Path()).
		Msg("upstream unreachable")
	return c.JSON(http.StatusBadGateway, models.ErrorResponse{
		Error:   "Bad Gateway",
		Message: "upstream request failed",
	})
}

// upstreamMessage pulls a human-readable message out of the upstream error
// details, falling back to the generic status text.
func upstreamMessage(ue *upstream.Error) string {
	switch details := ue.Details.(type) {
	case string:
		return details
	case map[string]any:
		if msg, ok := details["message"].(string); ok {
			return msg
		}
		if msg, ok := details["error"].(string); ok {
			return msg
		}
	}
	return http.StatusText(ue.Status)
}

// ErrorHandler converts echo errors (validation failures, unknown routes)
// into the gateway's `{error, message}` envelope.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := http.StatusText(status)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if msg, ok := he.Message.(string); ok {
				message = msg
			} else {
				message = http.StatusText(status)
			}
		} else {
			logger.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		}

		resp := models.ErrorResponse{Error: http.StatusText(status), Message: message}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, resp)
	}
}
