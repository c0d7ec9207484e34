package services

import (
	"context"
	"fmt"
	"net/url"

	"orchestrix/bff/internal/upstream"
	"orchestrix/bff/pkg/models"
)

type alertService struct {
	api Caller
}

// NewAlertService creates the alert resource service on top of the upstream
// client.
func NewAlertService(api Caller) AlertService {
	return &alertService{api: api}
}

func (s *alertService) List(ctx context.Context, token string, page, limit int, status string) (*models.Paginated[models.Alert], error) {
	q := pageQuery(page, limit)
	if status != "" {
		q.Set("status", status)
	}
	var out models.Paginated[models.Alert]
	if err := s.api.Get(ctx, "/api/v1/alerts?"+q.Encode(), token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *alertService) GetByID(ctx context.Context, id, token string) (*models.Alert, error) {
	var out models.Envelope[models.Alert]
	err := s.api.Get(ctx, "/api/v1/alerts/"+url.PathEscape(id), token, &out)
	if upstream.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (s *alertService) Create(ctx context.Context, input models.CreateAlertInput, token string) (*models.Alert, error) {
	var out models.Envelope[models.Alert]
	if err := s.api.Post(ctx, "/api/v1/alerts", token, input, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Acknowledge and Resolve do not absorb 404: advancing the status of a
// missing alert surfaces the upstream status unchanged.
func (s *alertService) Acknowledge(ctx context.Context, id, token string) (*models.Alert, error) {
	return s.transition(ctx, id, token, "acknowledge")
}

func (s *alertService) Resolve(ctx context.Context, id, token string) (*models.Alert, error) {
	return s.transition(ctx, id, token, "resolve")
}

func (s *alertService) transition(ctx context.Context, id, token, action string) (*models.Alert, error) {
	var out models.Envelope[models.Alert]
	path := fmt.Sprintf("/api/v1/alerts/%s/%s", url.PathEscape(id), action)
	if err := s.api.Post(ctx, path, token, struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
