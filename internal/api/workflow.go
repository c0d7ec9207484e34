package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"orchestrix/bff/internal/auth"
	"orchestrix/bff/pkg/models"
)

// ListWorkflows returns the upstream workflow page verbatim.
// (GET /api/v1/workflows)
func (h *Handler) ListWorkflows(c echo.Context) error {
	page, limit := ParsePagination(c)

	result, err := h.workflows.List(c.Request().Context(), auth.Token(c), page, limit)
	if err != nil {
		return h.upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetWorkflow returns a single workflow, or 404 when upstream has none.
// (GET /api/v1/workflows/:id)
func (h *Handler) GetWorkflow(c echo.Context) error {
	workflow, err := h.workflows.GetByID(c.Request().Context(), c.Param("id"), auth.Token(c))
	if err != nil {
		return h.upstreamError(c, err)
	}
	if workflow == nil {
		return notFound(c, "Workflow not found")
	}
	return data(c, http.StatusOK, workflow)
}

// CreateWorkflow forwards a validated create request.
// (POST /api/v1/workflows)
func (h *Handler) CreateWorkflow(c echo.Context) error {
	var input models.CreateWorkflowInput
	if err := c.Bind(&input); err != nil {
		return err
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	workflow, err := h.workflows.Create(c.Request().Context(), input, auth.Token(c))
	if err != nil {
		return h.upstreamError(c, err)
	}
	return data(c, http.StatusCreated, workflow)
}

// UpdateWorkflow forwards a validated partial update.
// (PUT /api/v1/workflows/:id)
func (h *Handler) UpdateWorkflow(c echo.Context) error {
	var input models.UpdateWorkflowInput
	if err := c.Bind(&input); err != nil {
		return err
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	workflow, err := h.workflows.Update(c.Request().Context(), c.Param("id"), input, auth.Token(c))
	if err != nil {
		return h.upstreamError(c, err)
	}
	return data(c, http.StatusOK, workflow)
}

// DeleteWorkflow forwards a delete. A missing workflow is a hard 404 here,
// not an absent-value result.
// (DELETE /api/v1/workflows/:id)
func (h *Handler) DeleteWorkflow(c echo.Context) error {
	if err := h.workflows.Delete(c.Request().Context(), c.Param("id"), auth.Token(c)); err != nil {
		return h.upstreamError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ExecuteWorkflow asks upstream to start an execution and responds 202 with
// the execution upstream returned.
// (POST /api/v1/workflows/:id/execute)
func (h *Handler) ExecuteWorkflow(c echo.Context) error {
	var input models.ExecuteWorkflowInput
	if err := c.Bind(&input); err != nil {
		return err
	}

	execution, err := h.workflows.Execute(c.Request().Context(), c.Param("id"), input, auth.Token(c))
	if err != nil {
		return h.upstreamError(c, err)
	}
	return data(c, http.StatusAccepted, execution)
}

// ListExecutions returns the executions page for a workflow.
// (GET /api/v1/workflows/:id/executions)
func (h *Handler) ListExecutions(c echo.Context) error {
	page, limit := ParsePagination(c)

	result, err := h.workflows.ListExecutions(c.Request().Context(), c.Param("id"), auth.Token(c), page, limit)
	if err != nil {
		return h.upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetExecution returns a single execution, or 404 when upstream has none.
// (GET /api/v1/executions/:id)
func (h *Handler) GetExecution(c echo.Context) error {
	execution, err := h.workflows.GetExecution(c.Request().Context(), c.Param("id"), auth.Token(c))
	if err != nil {
		return h.upstreamError(c, err)
	}
	if execution == nil {
		return notFound(c, "Execution not found")
	}
	return data(c, http.StatusOK, execution)
}
