package register

import "github.com/m04kA/SMC-MovieBooking/internal/service/auth/models"

// RegisterRequest HTTP request model
type RegisterRequest struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName"`
	Email           string `json:"email" validate:"required,email"`
	LoginID         string `json:"loginId" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	ContactNumber   string `json:"contactNumber"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RegisterRequest) ToServiceRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		LoginID:         r.LoginID,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
		ContactNumber:   r.ContactNumber,
	}
}
