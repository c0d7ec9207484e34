package api

import (
	"github.com/labstack/echo/v4"

	"orchestrix/bff/internal/auth"
)

// Register mounts every route. Auth requirements are declared per route:
// reads need a bearer token, mutations need operator or admin, delete is
// admin-only, and the audit surface is admin-only.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/health", h.Health)
	e.GET("/health/live", h.Live)
	e.GET("/health/ready", h.Ready)

	authenticated := auth.RequireAuthenticated()
	operator := auth.RequireAnyRole(auth.RoleOperator, auth.RoleAdmin)
	admin := auth.RequireAnyRole(auth.RoleAdmin)

	g := e.Group("/api/v1")

	// Workflows
	g.GET("/workflows", h.ListWorkflows, authenticated)
	g.POST("/workflows", h.CreateWorkflow, operator)
	g.GET("/workflows/:id", h.GetWorkflow, authenticated)
	g.PUT("/workflows/:id", h.UpdateWorkflow, operator)
	g.DELETE("/workflows/:id", h.DeleteWorkflow, admin)
	g.POST("/workflows/:id/execute", h.ExecuteWorkflow, operator)
	g.GET("/workflows/:id/executions", h.ListExecutions, authenticated)
	g.GET("/executions/:id", h.GetExecution, authenticated)

	// Alerts
	g.GET("/alerts", h.ListAlerts, authenticated)
	g.POST("/alerts", h.CreateAlert, operator)
	g.GET("/alerts/:id", h.GetAlert, authenticated)
	g.POST("/alerts/:id/acknowledge", h.AcknowledgeAlert, operator)
	g.POST("/alerts/:id/resolve", h.ResolveAlert, operator)

	// Audit logs
	g.GET("/audit-logs", h.ListAuditLogs, authenticated, admin)
	g.GET("/audit-logs/:id", h.GetAuditLog, authenticated, admin)
	g.GET("/audit-logs/resource/:type/:id", h.ListAuditLogsByResource, authenticated, admin)
	g.GET("/audit-logs/user/:userId", h.ListAuditLogsByUser, authenticated, admin)
}
