package book_ticket

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MovieBooking/internal/integrations/moviebooking"
)

var (
	// ErrInvalidBooking возвращается, когда выбор мест не прошел проверку.
	// Причина (payload.Err*) остается в цепочке.
	ErrInvalidBooking = errors.New("book_ticket: invalid booking")

	// ErrMovieNotFound возвращается, когда фильм не найден
	ErrMovieNotFound = errors.New("book_ticket: movie not found")

	// ErrSeatsUnavailable возвращается, когда места уже заняты или билетов не осталось
	ErrSeatsUnavailable = errors.New("book_ticket: seats are not available")

	// ErrUnauthorized возвращается, когда нет действующей сессии
	ErrUnauthorized = errors.New("book_ticket: authentication required")

	// ErrAccessDenied возвращается, когда у пользователя нет прав
	ErrAccessDenied = errors.New("book_ticket: access denied")

	// ErrRejected возвращается, когда бэкенд отклонил бронирование
	ErrRejected = errors.New("book_ticket: rejected by backend")

	// ErrBackendUnavailable возвращается, когда бэкенд недоступен или ответил некорректно
	ErrBackendUnavailable = errors.New("book_ticket: backend unavailable")
)

func clientError(err error) error {
	switch {
	case errors.Is(err, moviebooking.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrMovieNotFound, err)
	case errors.Is(err, moviebooking.ErrConflict):
		return fmt.Errorf("%w: %w", ErrSeatsUnavailable, err)
	case errors.Is(err, moviebooking.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	case errors.Is(err, moviebooking.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrAccessDenied, err)
	case errors.Is(err, moviebooking.ErrRejected):
		return fmt.Errorf("%w: %w", ErrRejected, err)
	default:
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
}
