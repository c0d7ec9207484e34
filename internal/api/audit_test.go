package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"orchestrix/bff/internal/auth"
	"orchestrix/bff/pkg/models"
)

func TestListAuditLogs_RequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	token := forgeToken(t, auth.RoleOperator)

	rec := env.request(t, http.MethodGet, "/api/v1/audit-logs", token, "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	env.audit.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListAuditLogs_NoTokenIs401(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/v1/audit-logs", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListAuditLogs_EventTypeForwarded(t *testing.T) {
	env := newTestEnv(t)
	token := forgeToken(t, auth.RoleAdmin)

	env.audit.On("List", mock.Anything, token, 1, 20, "workflow.deleted").
		Return(&models.Paginated[models.AuditLog]{Data: []models.AuditLog{}}, nil)

	rec := env.request(t, http.MethodGet, "/api/v1/audit-logs?event_type=workflow.deleted", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	env.audit.AssertExpectations(t)
}

func TestListAuditLogsByResource(t *testing.T) {
	env := newTestEnv(t)
	token := forgeToken(t, auth.RoleAdmin)

	env.audit.On("ListByResource", mock.Anything, "workflow", "wf-1", token, 1, 20).
		Return(&models.Paginated[models.AuditLog]{
			Data:  []models.AuditLog{{ID: "log-1", ResourceType: "workflow"}},
			Total: 1, Page: 1, Limit: 20,
		}, nil)

	rec := env.request(t, http.MethodGet, "/api/v1/audit-logs/resource/workflow/wf-1", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	env.audit.AssertExpectations(t)
}

func TestListAuditLogsByUser(t *testing.T) {
	env := newTestEnv(t)
	token := forgeToken(t, auth.RoleAdmin)

	env.audit.On("ListByUser", mock.Anything, "user-7", token, 1, 20).
		Return(&models.Paginated[models.AuditLog]{Data: []models.AuditLog{}}, nil)

	rec := env.request(t, http.MethodGet, "/api/v1/audit-logs/user/user-7", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	env.audit.AssertExpectations(t)
}

func TestGetAuditLog_AbsentIs404(t *testing.T) {
	env := newTestEnv(t)
	token := forgeToken(t, auth.RoleAdmin)

	env.audit.On("GetByID", mock.Anything, "missing", token).Return(nil, nil)

	rec := env.request(t, http.MethodGet, "/api/v1/audit-logs/missing", token, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Audit log not found", decodeError(t, rec).Message)
}
