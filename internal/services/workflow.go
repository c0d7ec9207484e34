package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"orchestrix/bff/internal/upstream"
	"orchestrix/bff/pkg/models"
)

type workflowService struct {
	api Caller
}

// NewWorkflowService creates the workflow resource service on top of the
// upstream client.
func NewWorkflowService(api Caller) WorkflowService {
	return &workflowService{api: api}
}

func (s *workflowService) List(ctx context.Context, token string, page, limit int) (*models.Paginated[models.Workflow], error) {
	var out models.Paginated[models.Workflow]
	if err := s.api.Get(ctx, "/api/v1/workflows?"+pageQuery(page, limit).Encode(), token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *workflowService) GetByID(ctx context.Context, id, token string) (*models.Workflow, error) {
	var out models.Envelope[models.Workflow]
	err := s.api.Get(ctx, "/api/v1/workflows/"+url.PathEscape(id), token, &out)
	if upstream.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (s *workflowService) Create(ctx context.Context, input models.CreateWorkflowInput, token string) (*models.Workflow, error) {
	var out models.Envelope[models.Workflow]
	if err := s.api.Post(ctx, "/api/v1/workflows", token, input, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (s *workflowService) Update(ctx context.Context, id string, input models.UpdateWorkflowInput, token string) (*models.Workflow, error) {
	var out models.Envelope[models.Workflow]
	if err := s.api.Put(ctx, "/api/v1/workflows/"+url.PathEscape(id), token, input, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Delete does not absorb 404: deleting a missing workflow is a hard error.
func (s *workflowService) Delete(ctx context.Context, id, token string) error {
	return s.api.Delete(ctx, "/api/v1/workflows/"+url.PathEscape(id), token)
}

// Execute does not absorb 404 either; executing a missing workflow surfaces
// the upstream status unchanged.
func (s *workflowService) Execute(ctx context.Context, id string, input models.ExecuteWorkflowInput, token string) (*models.Execution, error) {
	var out models.Envelope[models.Execution]
	path := fmt.Sprintf("/api/v1/workflows/%s/execute", url.PathEscape(id))
	if err := s.api.Post(ctx, path, token, input, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (s *workflowService) ListExecutions(ctx context.Context, workflowID, token string, page, limit int) (*models.Paginated[models.Execution], error) {
	var out models.Paginated[models.Execution]
	path := fmt.Sprintf("/api/v1/workflows/%s/executions?%s", url.PathEscape(workflowID), pageQuery(page, limit).Encode())
	if err := s.api.Get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *workflowService) GetExecution(ctx context.Context, id, token string) (*models.Execution, error) {
	var out models.Envelope[models.Execution]
	err := s.api.Get(ctx, "/api/v1/executions/"+url.PathEscape(id), token, &out)
	if upstream.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func pageQuery(page, limit int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return q
}
