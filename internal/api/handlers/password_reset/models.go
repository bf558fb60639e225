package password_reset

import "github.com/m04kA/SMC-MovieBooking/internal/service/auth/models"

// PasswordResetRequest HTTP request model: логин или email
type PasswordResetRequest struct {
	Username string `json:"username,omitempty" validate:"required_without=Email"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *PasswordResetRequest) ToServiceRequest() *models.PasswordResetRequest {
	return &models.PasswordResetRequest{
		Username: r.Username,
		Email:    r.Email,
	}
}

// ConfirmResetRequest HTTP request model установки нового пароля
type ConfirmResetRequest struct {
	Token           string `json:"token" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *ConfirmResetRequest) ToServiceRequest() *models.ResetPasswordRequest {
	return &models.ResetPasswordRequest{
		Token:           r.Token,
		NewPassword:     r.NewPassword,
		ConfirmPassword: r.ConfirmPassword,
	}
}
