package auth

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MovieBooking/internal/integrations/moviebooking"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidCredentials возвращается, когда бэкенд отклонил логин или пароль
	ErrInvalidCredentials = errors.New("invalid login or password")

	// ErrLoginFailed возвращается, когда ответ на логин не содержит токена
	ErrLoginFailed = errors.New("login failed: no token in response")

	// ErrPasswordMismatch возвращается, когда пароль и подтверждение не совпадают
	ErrPasswordMismatch = errors.New("password and confirmation do not match")

	// ErrUnauthorized возвращается, когда нет действующей сессии
	ErrUnauthorized = errors.New("authentication required")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrRejected возвращается, когда бэкенд отклонил запрос
	ErrRejected = errors.New("request rejected by backend")

	// ErrBackendUnavailable возвращается, когда бэкенд недоступен или ответил некорректно
	ErrBackendUnavailable = errors.New("movie booking backend unavailable")
)

func clientError(op string, err error) error {
	switch {
	case errors.Is(err, moviebooking.ErrNotFound):
		return fmt.Errorf("%w: %s: %w", ErrUserNotFound, op, err)
	case errors.Is(err, moviebooking.ErrUnauthorized), errors.Is(err, moviebooking.ErrForbidden):
		return fmt.Errorf("%w: %s: %w", ErrUnauthorized, op, err)
	case errors.Is(err, moviebooking.ErrRejected), errors.Is(err, moviebooking.ErrConflict):
		return fmt.Errorf("%w: %s: %w", ErrRejected, op, err)
	default:
		return fmt.Errorf("%w: %s: %w", ErrBackendUnavailable, op, err)
	}
}
