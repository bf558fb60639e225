package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-MovieBooking/internal/integrations/moviebooking"
	"github.com/m04kA/SMC-MovieBooking/internal/mapper"
	"github.com/m04kA/SMC-MovieBooking/internal/service/auth/models"
)

// Service сервис аутентификации и управления сессией
type Service struct {
	client  AuthClient
	session SessionStore
	logger  Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(client AuthClient, session SessionStore, logger Logger) *Service {
	return &Service{
		client:  client,
		session: session,
		logger:  logger,
	}
}

// Login выполняет вход и сохраняет сессию.
// Вход успешен только при success=true и непустом токене в ответе.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.UserResponse, error) {
	loginID := strings.TrimSpace(req.LoginID)
	s.logger.Info("Login: login_id=%s", loginID)

	if loginID == "" || req.Password == "" {
		s.logger.Warn("Login: empty login or password")
		return nil, fmt.Errorf("%w: login id and password are required", ErrInvalidInput)
	}

	record, err := s.client.Login(ctx, &moviebooking.LoginRequest{LoginID: loginID, Password: req.Password})
	if err != nil {
		if errors.Is(err, moviebooking.ErrUnauthorized) || errors.Is(err, moviebooking.ErrRejected) {
			s.logger.Warn("Login: credentials rejected for login_id=%s", loginID)
			return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		s.logger.Error("Login: backend error for login_id=%s: %v", loginID, err)
		return nil, clientError("Login", err)
	}

	token := strings.TrimSpace(mapper.UserFields.Token.String(record))
	if token == "" {
		s.logger.Warn("Login: no token in response for login_id=%s", loginID)
		return nil, ErrLoginFailed
	}

	user := mapper.MapUser(record, loginID)
	s.session.Set(token, user)

	s.logger.Info("Login: successfully logged in login_id=%s role=%s", user.LoginID, user.Role)
	return models.FromDomainUser(&user), nil
}

// Logout очищает сессию
func (s *Service) Logout() {
	s.session.Clear()
	s.logger.Info("Logout: session cleared")
}

// CurrentUser возвращает пользователя текущей сессии
func (s *Service) CurrentUser() (*models.UserResponse, error) {
	user, err := s.session.User()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return models.FromDomainUser(&user), nil
}

// Register регистрирует нового пользователя
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.MessageResponse, error) {
	loginID := strings.TrimSpace(req.LoginID)
	s.logger.Info("Register: login_id=%s", loginID)

	if loginID == "" || req.Password == "" {
		s.logger.Warn("Register: empty login or password")
		return nil, fmt.Errorf("%w: login id and password are required", ErrInvalidInput)
	}

	// Проверка подтверждения до отправки на бэкенд
	if req.Password != req.ConfirmPassword {
		s.logger.Warn("Register: password mismatch for login_id=%s", loginID)
		return nil, ErrPasswordMismatch
	}

	msg, err := s.client.Register(ctx, &moviebooking.RegisterRequest{
		FirstName:       strings.TrimSpace(req.FirstName),
		LastName:        strings.TrimSpace(req.LastName),
		Email:           strings.TrimSpace(req.Email),
		LoginID:         loginID,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		ContactNumber:   strings.TrimSpace(req.ContactNumber),
	})
	if err != nil {
		s.logger.Warn("Register: backend error for login_id=%s: %v", loginID, err)
		return nil, clientError("Register", err)
	}

	s.logger.Info("Register: successfully registered login_id=%s", loginID)
	return &models.MessageResponse{Message: msg}, nil
}

// RequestPasswordReset запрашивает ссылку для сброса пароля.
// Email (или логин вместе с email) уходит в POST /forgot-password,
// только логин - в устаревший GET /{username}/forgot.
func (s *Service) RequestPasswordReset(ctx context.Context, req *models.PasswordResetRequest) (*models.MessageResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	s.logger.Info("RequestPasswordReset: username=%q email=%q", username, email)

	var (
		msg string
		err error
	)
	switch {
	case email != "":
		msg, err = s.client.RequestPasswordReset(ctx, &moviebooking.ForgotPasswordRequest{UsernameOrEmail: email})
	case username != "":
		msg, err = s.client.ForgotPassword(ctx, username)
	default:
		s.logger.Warn("RequestPasswordReset: neither username nor email given")
		return nil, fmt.Errorf("%w: username or email is required", ErrInvalidInput)
	}

	if err != nil {
		s.logger.Warn("RequestPasswordReset: backend error: %v", err)
		return nil, clientError("RequestPasswordReset", err)
	}

	s.logger.Info("RequestPasswordReset: reset requested")
	return &models.MessageResponse{Message: msg}, nil
}

// ResetPassword устанавливает новый пароль по токену сброса
func (s *Service) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) (*models.MessageResponse, error) {
	s.logger.Info("ResetPassword: resetting password")

	if strings.TrimSpace(req.Token) == "" || req.NewPassword == "" {
		s.logger.Warn("ResetPassword: empty token or password")
		return nil, fmt.Errorf("%w: token and new password are required", ErrInvalidInput)
	}
	if req.NewPassword != req.ConfirmPassword {
		s.logger.Warn("ResetPassword: password mismatch")
		return nil, ErrPasswordMismatch
	}

	msg, err := s.client.ResetPassword(ctx, &moviebooking.ResetPasswordRequest{
		Token:           strings.TrimSpace(req.Token),
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		s.logger.Warn("ResetPassword: backend error: %v", err)
		return nil, clientError("ResetPassword", err)
	}

	s.logger.Info("ResetPassword: password updated")
	return &models.MessageResponse{Message: msg}, nil
}
