package models

import (
	"github.com/m04kA/SMC-MovieBooking/internal/domain"
)

// Request модели

// LoginRequest вход по логину и паролю
type LoginRequest struct {
	LoginID  string `json:"loginId"`
	Password string `json:"password"`
}

// RegisterRequest регистрация пользователя
type RegisterRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	LoginID         string `json:"loginId"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	ContactNumber   string `json:"contactNumber"`
}

// PasswordResetRequest запрос ссылки для сброса пароля.
// Только Username - устаревший сценарий /{username}/forgot.
type PasswordResetRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// ResetPasswordRequest установка нового пароля по токену из письма
type ResetPasswordRequest struct {
	Token           string `json:"token"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Response модели

// UserResponse пользователь текущей сессии
type UserResponse struct {
	LoginID   string `json:"loginId"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
	IsAdmin   bool   `json:"isAdmin"`
}

// MessageResponse текстовый ответ бэкенда
type MessageResponse struct {
	Message string `json:"message"`
}

// Конвертеры

// FromDomainUser конвертирует domain.User в UserResponse
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		LoginID:   u.LoginID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      string(u.Role),
		IsAdmin:   u.IsAdmin(),
	}
}
