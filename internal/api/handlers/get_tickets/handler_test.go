package get_tickets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MovieBooking/internal/service/tickets"
	"github.com/m04kA/SMC-MovieBooking/internal/service/tickets/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	got    *models.GetTicketsRequest
	result *models.TicketListResponse
	err    error
}

func (s *stubService) GetTickets(_ context.Context, req *models.GetTicketsRequest) (*models.TicketListResponse, error) {
	s.got = req
	return s.result, s.err
}

func serve(svc *stubService, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_QueryParameters(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   models.GetTicketsRequest
	}{
		{name: "current user", target: "/api/v1/tickets", want: models.GetTicketsRequest{}},
		{name: "other user", target: "/api/v1/tickets?user=alice", want: models.GetTicketsRequest{Username: "alice"}},
		{name: "all tickets", target: "/api/v1/tickets?all=true", want: models.GetTicketsRequest{All: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{result: models.FromDomainTicketList(nil)}

			rec := serve(svc, tt.target)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, &tt.want, svc.got)
		})
	}
}

func TestHandle_InvalidAll(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, "/api/v1/tickets?all=maybe")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.got)
}

func TestHandle_NotFoundIsEmptyList(t *testing.T) {
	rec := serve(&stubService{err: tickets.ErrTicketNotFound}, "/api/v1/tickets")

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.TicketListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Tickets)
	assert.Zero(t, body.Total)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{err: tickets.ErrUnauthorized, wantStatus: http.StatusUnauthorized},
		{err: tickets.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{err: tickets.ErrBackendUnavailable, wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := serve(&stubService{err: tt.err}, "/api/v1/tickets?user=bob")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
