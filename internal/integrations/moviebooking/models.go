package moviebooking

import "encoding/json"

// Envelope общий конверт ответов бэкенда
type Envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp,omitempty"`
	Path      string          `json:"path,omitempty"`
}

// LoginRequest тело POST /login
type LoginRequest struct {
	LoginID  string `json:"login_id"`
	Password string `json:"password"`
}

// RegisterRequest тело POST /register
type RegisterRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	LoginID         string `json:"login_id"`
	Password        string `json:"password"`
	ContactNumber   string `json:"contact_number"`
	ConfirmPassword string `json:"confirm_password"`
}

// ForgotPasswordRequest тело POST /forgot-password
type ForgotPasswordRequest struct {
	UsernameOrEmail string `json:"username_or_email"`
}

// ResetPasswordRequest тело POST /reset-password
type ResetPasswordRequest struct {
	Token           string `json:"token"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}
