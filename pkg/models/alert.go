package models

import "time"

// AlertSeverity enumerates alert severities.
type AlertSeverity string

const (
	AlertSeverityCritical AlertSeverity = "critical"
	AlertSeverityWarning  AlertSeverity = "warning"
	AlertSeverityInfo     AlertSeverity = "info"
)

// AlertStatus enumerates alert lifecycle states. Status only advances
// open -> acknowledged -> resolved; the transition is enforced upstream.
type AlertStatus string

const (
	AlertStatusOpen         AlertStatus = "open"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
	AlertStatusResolved     AlertStatus = "resolved"
)

// Alert mirrors the upstream alert entity. AcknowledgedAt/ResolvedAt are set
// exactly when the corresponding status is reached.
type Alert struct {
	ID             string        `json:"id"`
	TenantID       string        `json:"tenant_id"`
	WorkflowID     *string       `json:"workflow_id"`
	ExecutionID    *string       `json:"execution_id"`
	Severity       AlertSeverity `json:"severity"`
	Title          string        `json:"title"`
	Message        *string       `json:"message"`
	Status         AlertStatus   `json:"status"`
	AcknowledgedAt *time.Time    `json:"acknowledged_at"`
	AcknowledgedBy *string       `json:"acknowledged_by"`
	ResolvedAt     *time.Time    `json:"resolved_at"`
	ResolvedBy     *string       `json:"resolved_by"`
	CreatedAt      time.Time     `json:"created_at"`
}

// CreateAlertInput is the accepted body for POST /alerts. Severity defaults
// to info when omitted.
type CreateAlertInput struct {
	WorkflowID  string `json:"workflow_id,omitempty" validate:"omitempty,uuid4"`
	ExecutionID string `json:"execution_id,omitempty" validate:"omitempty,uuid4"`
	Severity    string `json:"severity,omitempty" validate:"omitempty,oneof=info warning critical"`
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Message     string `json:"message,omitempty" validate:"omitempty,max=2000"`
}
