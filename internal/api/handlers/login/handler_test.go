package login

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MovieBooking/internal/integrations/moviebooking"
	"github.com/m04kA/SMC-MovieBooking/internal/service/auth"
	"github.com/m04kA/SMC-MovieBooking/internal/service/auth/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	got *models.LoginRequest
	err error
}

func (s *stubService) Login(_ context.Context, req *models.LoginRequest) (*models.UserResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.UserResponse{LoginID: req.LoginID, Role: "ADMIN", IsAdmin: true}, nil
}

func serve(svc *stubService, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	NewHandler(svc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, `{"loginId":"admin","password":"secret"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "admin", body.LoginID)
	assert.True(t, body.IsAdmin)
}

func TestHandle_MissingPassword(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, `{"loginId":"admin"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.got)
}

func TestHandle_InvalidCredentialsUsesBackendMessage(t *testing.T) {
	cause := &moviebooking.APIError{Kind: moviebooking.ErrUnauthorized, StatusCode: http.StatusUnauthorized, Message: "Invalid password"}
	svc := &stubService{err: fmt.Errorf("%w: %w", auth.ErrInvalidCredentials, cause)}

	rec := serve(svc, `{"loginId":"admin","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid password")
}

func TestHandle_NoToken(t *testing.T) {
	rec := serve(&stubService{err: auth.ErrLoginFailed}, `{"loginId":"admin","password":"secret"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
