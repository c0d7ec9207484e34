// Package models defines the transit DTOs mirrored from the upstream
// orchestration API. Nothing here is persisted by the gateway; every entity
// is owned and mutated exclusively by upstream.
package models

import "time"

// WorkflowStatus enumerates the lifecycle states a workflow can be in.
type WorkflowStatus string

const (
	WorkflowStatusActive   WorkflowStatus = "active"
	WorkflowStatusInactive WorkflowStatus = "inactive"
	WorkflowStatusDraft    WorkflowStatus = "draft"
)

// ExecutionStatus enumerates the states of a workflow execution.
// completed, failed and cancelled are terminal.
type ExecutionStatus string

const (
	ExecutionStatusPending   ExecutionStatus = "pending"
	ExecutionStatusRunning   ExecutionStatus = "running"
	ExecutionStatusCompleted ExecutionStatus = "completed"
	ExecutionStatusFailed    ExecutionStatus = "failed"
	ExecutionStatusCancelled ExecutionStatus = "cancelled"
)

// Workflow mirrors the upstream workflow entity. The definition document is
// opaque to the gateway and passed through untouched.
type Workflow struct {
	ID          string         `json:"id"`
	TenantID    string         `json:"tenant_id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Definition  map[string]any `json:"definition"`
	Schedule    string         `json:"schedule,omitempty"`
	Status      WorkflowStatus `json:"status"`
	Version     int            `json:"version"`
	CreatedBy   string         `json:"created_by,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Execution mirrors one run of a workflow. Error is populated iff the
// execution failed.
type Execution struct {
	ID                 string          `json:"id"`
	TenantID           string          `json:"tenant_id"`
	WorkflowID         string          `json:"workflow_id"`
	TemporalWorkflowID string          `json:"temporal_workflow_id,omitempty"`
	TemporalRunID      string          `json:"temporal_run_id,omitempty"`
	Status             ExecutionStatus `json:"status"`
	Input              map[string]any  `json:"input,omitempty"`
	Output             map[string]any  `json:"output,omitempty"`
	Error              string          `json:"error,omitempty"`
	StartedAt          *time.Time      `json:"started_at,omitempty"`
	CompletedAt        *time.Time      `json:"completed_at,omitempty"`
	CreatedBy          string          `json:"created_by,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// CreateWorkflowInput is the accepted body for POST /workflows.
type CreateWorkflowInput struct {
	Name        string         `json:"name" validate:"required,min=3,max=100"`
	Description string         `json:"description,omitempty" validate:"omitempty,max=500"`
	Definition  map[string]any `json:"definition" validate:"required"`
	Schedule    string         `json:"schedule,omitempty"`
}

// UpdateWorkflowInput is the accepted body for PUT /workflows/:id. All fields
// are optional; upstream applies the partial update.
type UpdateWorkflowInput struct {
	Name        *string        `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
	Description *string        `json:"description,omitempty" validate:"omitempty,max=500"`
	Definition  map[string]any `json:"definition,omitempty"`
	Schedule    *string        `json:"schedule,omitempty"`
	Status      *string        `json:"status,omitempty" validate:"omitempty,oneof=active inactive draft"`
}

// ExecuteWorkflowInput is the accepted body for POST /workflows/:id/execute.
type ExecuteWorkflowInput struct {
	Input map[string]any `json:"input,omitempty"`
}
