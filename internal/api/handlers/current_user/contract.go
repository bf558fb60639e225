package current_user

import "github.com/m04kA/SMC-MovieBooking/internal/service/auth/models"

type AuthService interface {
	CurrentUser() (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
