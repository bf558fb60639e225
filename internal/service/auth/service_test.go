package auth

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MovieBooking/internal/domain"
	"github.com/m04kA/SMC-MovieBooking/internal/integrations/moviebooking"
	"github.com/m04kA/SMC-MovieBooking/internal/mapper"
	"github.com/m04kA/SMC-MovieBooking/internal/service/auth/models"
	"github.com/m04kA/SMC-MovieBooking/internal/session"
	"github.com/m04kA/SMC-MovieBooking/pkg/logger"
)

type fakeClient struct {
	login    mapper.Record
	err      error
	msg      string
	calls    []string
	register *moviebooking.RegisterRequest
	forgot   *moviebooking.ForgotPasswordRequest
	reset    *moviebooking.ResetPasswordRequest
}

func (f *fakeClient) Login(_ context.Context, req *moviebooking.LoginRequest) (mapper.Record, error) {
	f.calls = append(f.calls, "login:"+req.LoginID)
	return f.login, f.err
}

func (f *fakeClient) Register(_ context.Context, req *moviebooking.RegisterRequest) (string, error) {
	f.calls = append(f.calls, "register")
	f.register = req
	return f.msg, f.err
}

func (f *fakeClient) ForgotPassword(_ context.Context, username string) (string, error) {
	f.calls = append(f.calls, "forgot:"+username)
	return f.msg, f.err
}

func (f *fakeClient) RequestPasswordReset(_ context.Context, req *moviebooking.ForgotPasswordRequest) (string, error) {
	f.calls = append(f.calls, "forgot-password")
	f.forgot = req
	return f.msg, f.err
}

func (f *fakeClient) ResetPassword(_ context.Context, req *moviebooking.ResetPasswordRequest) (string, error) {
	f.calls = append(f.calls, "reset-password")
	f.reset = req
	return f.msg, f.err
}

func testLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, "error")
}

func TestLogin_StoresSession(t *testing.T) {
	client := &fakeClient{login: mapper.Record{
		"token":      "opaque",
		"first_name": "Jane",
		"role":       "role_admin",
	}}
	store := session.NewStore()
	svc := NewService(client, store, testLogger())

	user, err := svc.Login(t.Context(), &models.LoginRequest{LoginID: " jdoe ", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, []string{"login:jdoe"}, client.calls)
	assert.Equal(t, "jdoe", user.LoginID)
	assert.Equal(t, "Jane", user.FirstName)
	assert.Equal(t, "ADMIN", user.Role)
	assert.True(t, user.IsAdmin)

	token, ok := store.Token()
	require.True(t, ok)
	assert.Equal(t, "opaque", token)

	current, err := svc.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, user, current)

	svc.Logout()
	assert.False(t, store.IsAuthenticated())
	_, err = svc.CurrentUser()
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name   string
		req    models.LoginRequest
		client *fakeClient
		want   error
	}{
		{name: "empty password", req: models.LoginRequest{LoginID: "jdoe"}, client: &fakeClient{}, want: ErrInvalidInput},
		{name: "empty login", req: models.LoginRequest{Password: "x"}, client: &fakeClient{}, want: ErrInvalidInput},
		{
			name:   "no token",
			req:    models.LoginRequest{LoginID: "jdoe", Password: "x"},
			client: &fakeClient{login: mapper.Record{"login_id": "jdoe"}},
			want:   ErrLoginFailed,
		},
		{
			name:   "bad credentials",
			req:    models.LoginRequest{LoginID: "jdoe", Password: "x"},
			client: &fakeClient{err: &moviebooking.APIError{Kind: moviebooking.ErrUnauthorized, StatusCode: 401, Message: "Bad credentials"}},
			want:   ErrInvalidCredentials,
		},
		{
			name:   "envelope success false",
			req:    models.LoginRequest{LoginID: "jdoe", Password: "x"},
			client: &fakeClient{err: &moviebooking.APIError{Kind: moviebooking.ErrRejected, StatusCode: 200}},
			want:   ErrInvalidCredentials,
		},
		{
			name:   "backend down",
			req:    models.LoginRequest{LoginID: "jdoe", Password: "x"},
			client: &fakeClient{err: moviebooking.ErrInternal},
			want:   ErrBackendUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := session.NewStore()
			_, err := NewService(tt.client, store, testLogger()).Login(t.Context(), &tt.req)
			assert.ErrorIs(t, err, tt.want)
			assert.False(t, store.IsAuthenticated())
		})
	}
}

func TestLogin_KeepsBackendMessage(t *testing.T) {
	client := &fakeClient{err: &moviebooking.APIError{Kind: moviebooking.ErrUnauthorized, StatusCode: 401, Message: "Bad credentials"}}
	_, err := NewService(client, session.NewStore(), testLogger()).Login(t.Context(), &models.LoginRequest{LoginID: "jdoe", Password: "x"})
	assert.Equal(t, "Bad credentials", moviebooking.MessageOf(err))
}

func TestRegister(t *testing.T) {
	client := &fakeClient{msg: "User registered successfully"}
	svc := NewService(client, session.NewStore(), testLogger())

	_, err := svc.Register(t.Context(), &models.RegisterRequest{LoginID: "jdoe", Password: "a", ConfirmPassword: "b"})
	assert.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Empty(t, client.calls)

	resp, err := svc.Register(t.Context(), &models.RegisterRequest{
		FirstName: " Jane ", LoginID: "jdoe", Password: "a", ConfirmPassword: "a", ContactNumber: "123",
	})
	require.NoError(t, err)
	assert.Equal(t, "User registered successfully", resp.Message)
	assert.Equal(t, &moviebooking.RegisterRequest{
		FirstName: "Jane", LoginID: "jdoe", Password: "a", ConfirmPassword: "a", ContactNumber: "123",
	}, client.register)
}

func TestRegister_Conflict(t *testing.T) {
	client := &fakeClient{err: &moviebooking.APIError{Kind: moviebooking.ErrConflict, StatusCode: 409, Message: "Login id already taken"}}
	_, err := NewService(client, session.NewStore(), testLogger()).Register(t.Context(),
		&models.RegisterRequest{LoginID: "jdoe", Password: "a", ConfirmPassword: "a"})

	assert.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, "Login id already taken", moviebooking.MessageOf(err))
}

func TestRequestPasswordReset_Routing(t *testing.T) {
	client := &fakeClient{msg: "sent"}
	svc := NewService(client, session.NewStore(), testLogger())

	resp, err := svc.RequestPasswordReset(t.Context(), &models.PasswordResetRequest{Username: "jdoe"})
	require.NoError(t, err)
	assert.Equal(t, "sent", resp.Message)

	_, err = svc.RequestPasswordReset(t.Context(), &models.PasswordResetRequest{Username: "jdoe", Email: "j@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "j@example.com", client.forgot.UsernameOrEmail)

	assert.Equal(t, []string{"forgot:jdoe", "forgot-password"}, client.calls)

	_, err = svc.RequestPasswordReset(t.Context(), &models.PasswordResetRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestResetPassword(t *testing.T) {
	client := &fakeClient{msg: "Password updated"}
	svc := NewService(client, session.NewStore(), testLogger())

	_, err := svc.ResetPassword(t.Context(), &models.ResetPasswordRequest{Token: "t", NewPassword: "a", ConfirmPassword: "b"})
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	_, err = svc.ResetPassword(t.Context(), &models.ResetPasswordRequest{NewPassword: "a", ConfirmPassword: "a"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	resp, err := svc.ResetPassword(t.Context(), &models.ResetPasswordRequest{Token: " t ", NewPassword: "a", ConfirmPassword: "a"})
	require.NoError(t, err)
	assert.Equal(t, "Password updated", resp.Message)
	assert.Equal(t, &moviebooking.ResetPasswordRequest{Token: "t", NewPassword: "a", ConfirmPassword: "a"}, client.reset)
}

func TestCurrentUser_DefaultRole(t *testing.T) {
	store := session.NewStore()
	store.Set("opaque", domain.User{LoginID: "jdoe", Role: domain.DefaultRole})

	user, err := NewService(&fakeClient{}, store, testLogger()).CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "USER", user.Role)
	assert.False(t, user.IsAdmin)
}
