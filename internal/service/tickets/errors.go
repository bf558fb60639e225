package tickets

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MovieBooking/internal/integrations/moviebooking"
)

var (
	// ErrTicketNotFound возвращается, когда билет или бронирование не найдены
	ErrTicketNotFound = errors.New("ticket not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnauthorized возвращается, когда нет действующей сессии
	ErrUnauthorized = errors.New("authentication required")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrRejected возвращается, когда бэкенд отклонил запрос
	ErrRejected = errors.New("request rejected by backend")

	// ErrBackendUnavailable возвращается, когда бэкенд недоступен или ответил некорректно
	ErrBackendUnavailable = errors.New("movie booking backend unavailable")
)

func clientError(op string, err error) error {
	switch {
	case errors.Is(err, moviebooking.ErrNotFound):
		return fmt.Errorf("%w: %s: %w", ErrTicketNotFound, op, err)
	case errors.Is(err, moviebooking.ErrUnauthorized):
		return fmt.Errorf("%w: %s: %w", ErrUnauthorized, op, err)
	case errors.Is(err, moviebooking.ErrForbidden):
		return fmt.Errorf("%w: %s: %w", ErrAccessDenied, op, err)
	case errors.Is(err, moviebooking.ErrRejected), errors.Is(err, moviebooking.ErrConflict):
		return fmt.Errorf("%w: %s: %w", ErrRejected, op, err)
	default:
		return fmt.Errorf("%w: %s: %w", ErrBackendUnavailable, op, err)
	}
}
