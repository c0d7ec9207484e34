package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"orchestrix/bff/internal/auth"
	"orchestrix/bff/pkg/models"
)

// ---- mock services ----

type mockWorkflows struct {
	mock.Mock
}

func (m *mockWorkflows) List(ctx context.Context, token string, page, limit int) (*models.Paginated[models.Workflow], error) {
	args := m.Called(ctx, token, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Paginated[models.Workflow]), args.Error(1)
}

func (m *mockWorkflows) GetByID(ctx context.Context, id, token string) (*models.Workflow, error) {
	args := m.Called(ctx, id, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Workflow), args.Error(1)
}

func (m *mockWorkflows) Create(ctx context.Context, input models.CreateWorkflowInput, token string) (*models.Workflow, error) {
	args := m.Called(ctx, input, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Workflow), args.Error(1)
}

func (m *mockWorkflows) Update(ctx context.Context, id string, input models.UpdateWorkflowInput, token string) (*models.Workflow, error) {
	args := m.Called(ctx, id, input, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Workflow), args.Error(1)
}

func (m *mockWorkflows) Delete(ctx context.Context, id, token string) error {
	return m.Called(ctx, id, token).Error(0)
}

func (m *mockWorkflows) Execute(ctx context.Context, id string, input models.ExecuteWorkflowInput, token string) (*models.Execution, error) {
	args := m.Called(ctx, id, input, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Execution), args.Error(1)
}

func (m *mockWorkflows) ListExecutions(ctx context.Context, workflowID, token string, page, limit int) (*models.Paginated[models.Execution], error) {
	args := m.Called(ctx, workflowID, token, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Paginated[models.Execution]), args.Error(1)
}

func (m *mockWorkflows) GetExecution(ctx context.Context, id, token string) (*models.Execution, error) {
	args := m.Called(ctx, id, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Execution), args.Error(1)
}

type mockAlerts struct {
	mock.Mock
}

func (m *mockAlerts) List(ctx context.Context, token string, page, limit int, status string) (*models.Paginated[models.Alert], error) {
	args := m.Called(ctx, token, page, limit, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Paginated[models.Alert]), args.Error(1)
}

func (m *mockAlerts) GetByID(ctx context.Context, id, token string) (*models.Alert, error) {
	args := m.Called(ctx, id, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Alert), args.Error(1)
}

func (m *mockAlerts) Create(ctx context.Context, input models.CreateAlertInput, token string) (*models.Alert, error) {
	args := m.Called(ctx, input, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Alert), args.Error(1)
}

func (m *mockAlerts) Acknowledge(ctx context.Context, id, token string) (*models.Alert, error) {
	args := m.Called(ctx, id, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Alert), args.Error(1)
}

func (m *mockAlerts) Resolve(ctx context.Context, id, token string) (*models.Alert, error) {
	args := m.Called(ctx, id, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Alert), args.Error(1)
}

type mockAudit struct {
	mock.Mock
}

func (m *mockAudit) List(ctx context.Context, token string, page, limit int, eventType string) (*models.Paginated[models.AuditLog], error) {
	args := m.Called(ctx, token, page, limit, eventType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Paginated[models.AuditLog]), args.Error(1)
}

func (m *mockAudit) ListByResource(ctx context.Context, resourceType, resourceID, token string, page, limit int) (*models.Paginated[models.AuditLog], error) {
	args := m.Called(ctx, resourceType, resourceID, token, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Paginated[models.AuditLog]), args.Error(1)
}

func (m *mockAudit) ListByUser(ctx context.Context, userID, token string, page, limit int) (*models.Paginated[models.AuditLog], error) {
	args := m.Called(ctx, userID, token, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Paginated[models.AuditLog]), args.Error(1)
}

func (m *mockAudit) GetByID(ctx context.Context, id, token string) (*models.AuditLog, error) {
	args := m.Called(ctx, id, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuditLog), args.Error(1)
}

// ---- harness ----

type testEnv struct {
	e         *echo.Echo
	workflows *mockWorkflows
	alerts    *mockAlerts
	audit     *mockAudit
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		workflows: new(mockWorkflows),
		alerts:    new(mockAlerts),
		audit:     new(mockAudit),
	}

	e := echo.New()
	e.Validator = NewValidator()
	e.HTTPErrorHandler = ErrorHandler(zerolog.Nop())
	e.Use(auth.ExtractToken())

	handler := NewHandler(env.workflows, env.alerts, env.audit, zerolog.Nop())
	handler.Register(e)

	env.e = e
	return env
}

func (env *testEnv) request(t *testing.T, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

// forgeToken builds an unsigned JWT with the given roles.
func forgeToken(t *testing.T, roles ...string) string {
	t.Helper()

	header, err := json.Marshal(map[string]string{"alg": "none", "typ": "JWT"})
	require.NoError(t, err)
	payload, err := json.Marshal(map[string]any{
		"sub":          "user-1",
		"email":        "user@example.com",
		"realm_access": map[string]any{"roles": roles},
	})
	require.NoError(t, err)

	return base64.RawURLEncoding.EncodeToString(header) + "." +
		base64.RawURLEncoding.EncodeToString(payload) + "."
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
