package login

import "github.com/m04kA/SMC-MovieBooking/internal/service/auth/models"

// LoginRequest HTTP request model
type LoginRequest struct {
	LoginID  string `json:"loginId" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *LoginRequest) ToServiceRequest() *models.LoginRequest {
	return &models.LoginRequest{
		LoginID:  r.LoginID,
		Password: r.Password,
	}
}
