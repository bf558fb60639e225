package auth

import (
	"context"

	"github.com/m04kA/SMC-MovieBooking/internal/domain"
	"github.com/m04kA/SMC-MovieBooking/internal/integrations/moviebooking"
	"github.com/m04kA/SMC-MovieBooking/internal/mapper"
)

// AuthClient интерфейс клиента бэкенда для аутентификации
type AuthClient interface {
	Login(ctx context.Context, req *moviebooking.LoginRequest) (mapper.Record, error)
	Register(ctx context.Context, req *moviebooking.RegisterRequest) (string, error)
	ForgotPassword(ctx context.Context, username string) (string, error)
	RequestPasswordReset(ctx context.Context, req *moviebooking.ForgotPasswordRequest) (string, error)
	ResetPassword(ctx context.Context, req *moviebooking.ResetPasswordRequest) (string, error)
}

// SessionStore интерфейс хранилища сессии
type SessionStore interface {
	Set(token string, user domain.User)
	Clear()
	User() (domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
