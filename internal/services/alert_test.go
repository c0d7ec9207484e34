package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"orchestrix/bff/internal/upstream"
	"orchestrix/bff/pkg/models"
)

func TestAlertList_WithStatusFilter(t *testing.T) {
	api := new(mockCaller)
	api.On("Get", mock.Anything, "/api/v1/alerts?limit=20&page=1&status=open", "tok", mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(3).(*models.Paginated[models.Alert])
			out.Data = []models.Alert{{ID: "alert-1", Status: models.AlertStatusOpen}}
			out.Total = 1
			out.Page = 1
			out.Limit = 20
		}).
		Return(nil)

	svc := NewAlertService(api)
	result, err := svc.List(context.Background(), "tok", 1, 20, "open")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	api.AssertExpectations(t)
}

func TestAlertList_WithoutStatusFilter(t *testing.T) {
	api := new(mockCaller)
	api.On("Get", mock.Anything, "/api/v1/alerts?limit=20&page=1", "tok", mock.Anything).
		Return(nil)

	svc := NewAlertService(api)
	_, err := svc.List(context.Background(), "tok", 1, 20, "")
	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestAlertGetByID_NotFoundIsAbsent(t *testing.T) {
	api := new(mockCaller)
	api.On("Get", mock.Anything, "/api/v1/alerts/missing", "tok", mock.Anything).
		Return(&upstream.Error{Status: http.StatusNotFound})

	svc := NewAlertService(api)
	alert, err := svc.GetByID(context.Background(), "missing", "tok")
	require.NoError(t, err)
	assert.Nil(t, alert)
}

func TestAlertCreate(t *testing.T) {
	input := models.CreateAlertInput{Severity: "critical", Title: "Queue backlog"}

	api := new(mockCaller)
	api.On("Post", mock.Anything, "/api/v1/alerts", "tok", input, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(4).(*models.Envelope[models.Alert])
			out.Data = models.Alert{ID: "alert-2", Title: "Queue backlog", Severity: models.AlertSeverityCritical, Status: models.AlertStatusOpen}
		}).
		Return(nil)

	svc := NewAlertService(api)
	alert, err := svc.Create(context.Background(), input, "tok")
	require.NoError(t, err)
	assert.Equal(t, "alert-2", alert.ID)
	assert.Equal(t, models.AlertStatusOpen, alert.Status)
}

func TestAlertAcknowledge_Path(t *testing.T) {
	api := new(mockCaller)
	api.On("Post", mock.Anything, "/api/v1/alerts/alert-1/acknowledge", "tok", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(4).(*models.Envelope[models.Alert])
			out.Data = models.Alert{ID: "alert-1", Status: models.AlertStatusAcknowledged}
		}).
		Return(nil)

	svc := NewAlertService(api)
	alert, err := svc.Acknowledge(context.Background(), "alert-1", "tok")
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusAcknowledged, alert.Status)
}

// Acknowledging a missing alert is a hard error, not an absent value.
func TestAlertAcknowledge_NotFoundPropagates(t *testing.T) {
	api := new(mockCaller)
	api.On("Post", mock.Anything, "/api/v1/alerts/missing/acknowledge", "tok", mock.Anything, mock.Anything).
		Return(&upstream.Error{Status: http.StatusNotFound})

	svc := NewAlertService(api)
	_, err := svc.Acknowledge(context.Background(), "missing", "tok")
	assert.True(t, upstream.IsNotFound(err))
}

func TestAlertResolve_Path(t *testing.T) {
	api := new(mockCaller)
	api.On("Post", mock.Anything, "/api/v1/alerts/alert-1/resolve", "tok", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(4).(*models.Envelope[models.Alert])
			out.Data = models.Alert{ID: "alert-1", Status: models.AlertStatusResolved}
		}).
		Return(nil)

	svc := NewAlertService(api)
	alert, err := svc.Resolve(context.Background(), "alert-1", "tok")
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusResolved, alert.Status)
}
