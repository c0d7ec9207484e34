package models

import "time"

// AuditLog mirrors an upstream audit record. Audit logs are append-only and
// immutable once created; the gateway only reads them.
type AuditLog struct {
	ID           string         `json:"id"`
	TenantID     string         `json:"tenant_id"`
	UserID       *string        `json:"user_id"`
	EventType    string         `json:"event_type"`
	ResourceType string         `json:"resource_type"`
	ResourceID   *string        `json:"resource_id"`
	Action       string         `json:"action"`
	OldValue     map[string]any `json:"old_value"`
	NewValue     map[string]any `json:"new_value"`
	IPAddress    *string        `json:"ip_address"`
	UserAgent    *string        `json:"user_agent"`
	CreatedAt    time.Time      `json:"created_at"`
}
