// Package services contains the resource services: thin pass-throughs from a
// validated request to a single upstream call, with uniform 404 handling for
// get-by-id operations.
package services

import (
	"context"

	"orchestrix/bff/pkg/models"
)

// Caller is the subset of the upstream client used by the resource services.
type Caller interface {
	Get(ctx context.Context, path, token string, out any) error
	Post(ctx context.Context, path, token string, body, out any) error
	Put(ctx context.Context, path, token string, body, out any) error
	Delete(ctx context.Context, path, token string) error
}

// WorkflowService exposes workflow and execution operations. Get-by-id
// operations return (nil, nil) when upstream reports 404; every other
// upstream failure propagates with its status preserved.
type WorkflowService interface {
	List(ctx context.Context, token string, page, limit int) (*models.Paginated[models.Workflow], error)
	GetByID(ctx context.Context, id, token string) (*models.Workflow, error)
	Create(ctx context.Context, input models.CreateWorkflowInput, token string) (*models.Workflow, error)
	Update(ctx context.Context, id string, input models.UpdateWorkflowInput, token string) (*models.Workflow, error)
	Delete(ctx context.Context, id, token string) error
	Execute(ctx context.Context, id string, input models.ExecuteWorkflowInput, token string) (*models.Execution, error)
	ListExecutions(ctx context.Context, workflowID, token string, page, limit int) (*models.Paginated[models.Execution], error)
	GetExecution(ctx context.Context, id, token string) (*models.Execution, error)
}

// AlertService exposes alert operations.
type AlertService interface {
	List(ctx context.Context, token string, page, limit int, status string) (*models.Paginated[models.Alert], error)
	GetByID(ctx context.Context, id, token string) (*models.Alert, error)
	Create(ctx context.Context, input models.CreateAlertInput, token string) (*models.Alert, error)
	Acknowledge(ctx context.Context, id, token string) (*models.Alert, error)
	Resolve(ctx context.Context, id, token string) (*models.Alert, error)
}

// AuditService exposes read-only audit log operations.
type AuditService interface {
	List(ctx context.Context, token string, page, limit int, eventType string) (*models.Paginated[models.AuditLog], error)
	ListByResource(ctx context.Context, resourceType, resourceID, token string, page, limit int) (*models.Paginated[models.AuditLog], error)
	ListByUser(ctx context.Context, userID, token string, page, limit int) (*models.Paginated[models.AuditLog], error)
	GetByID(ctx context.Context, id, token string) (*models.AuditLog, error)
}
