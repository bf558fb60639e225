package password_reset

import (
	"context"

	"github.com/m04kA/SMC-MovieBooking/internal/service/auth/models"
)

type AuthService interface {
	RequestPasswordReset(ctx context.Context, req *models.PasswordResetRequest) (*models.MessageResponse, error)
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) (*models.MessageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
