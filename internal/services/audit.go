package services

import (
	"context"
	"fmt"
	"net/url"

	"orchestrix/bff/internal/upstream"
	"orchestrix/bff/pkg/models"
)

type auditService struct {
	api Caller
}

// NewAuditService creates the audit log resource service on top of the
// upstream client.
func NewAuditService(api Caller) AuditService {
	return &auditService{api: api}
}

func (s *auditService) List(ctx context.Context, token string, page, limit int, eventType string) (*models.Paginated[models.AuditLog], error) {
	q := pageQuery(page, limit)
	if eventType != "" {
		q.Set("event_type", eventType)
	}
	var out models.Paginated[models.AuditLog]
	if err := s.api.Get(ctx, "/api/v1/audit-logs?"+q.Encode(), token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *auditService) ListByResource(ctx context.Context, resourceType, resourceID, token string, page, limit int) (*models.Paginated[models.AuditLog], error) {
	var out models.Paginated[models.AuditLog]
	path := fmt.Sprintf("/api/v1/audit-logs/resource/%s/%s?%s",
		url.PathEscape(resourceType), url.PathEscape(resourceID), pageQuery(page, limit).Encode())
	if err := s.api.Get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *auditService) ListByUser(ctx context.Context, userID, token string, page, limit int) (*models.Paginated[models.AuditLog], error) {
	var out models.Paginated[models.AuditLog]
	path := fmt.Sprintf("/api/v1/audit-logs/user/%s?%s", url.PathEscape(userID), pageQuery(page, limit).Encode())
	if err := s.api.Get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *auditService) GetByID(ctx context.Context, id, token string) (*models.AuditLog, error) {
	var out models.Envelope[models.AuditLog]
	err := s.api.Get(ctx, "/api/v1/audit-logs/"+url.PathEscape(id), token, &out)
	if upstream.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out.Data, nil
}
