package save_movie

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MovieBooking/internal/integrations/moviebooking"
)

var (
	// ErrInvalidPayload возвращается, когда payload не удалось построить.
	// Причина (payload.Err*) остается в цепочке.
	ErrInvalidPayload = errors.New("save_movie: invalid movie payload")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("save_movie: invalid input data")

	// ErrMovieNotFound возвращается, когда обновляемый фильм не найден
	ErrMovieNotFound = errors.New("save_movie: movie not found")

	// ErrUnauthorized возвращается, когда нет действующей сессии
	ErrUnauthorized = errors.New("save_movie: authentication required")

	// ErrAccessDenied возвращается, когда у пользователя нет прав администратора
	ErrAccessDenied = errors.New("save_movie: access denied")

	// ErrRejected возвращается, когда бэкенд отклонил фильм
	ErrRejected = errors.New("save_movie: rejected by backend")

	// ErrBackendUnavailable возвращается, когда бэкенд недоступен или ответил некорректно
	ErrBackendUnavailable = errors.New("save_movie: backend unavailable")

	// ErrRecreateFailed возвращается, когда фильм удален, но не создан заново
	ErrRecreateFailed = errors.New("save_movie: movie was deleted but could not be recreated")
)

func clientError(op string, err error) error {
	switch {
	case errors.Is(err, moviebooking.ErrNotFound):
		return fmt.Errorf("%w: %s: %w", ErrMovieNotFound, op, err)
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
