package save_movie

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-MovieBooking/internal/domain"
	"github.com/m04kA/SMC-MovieBooking/internal/payload"
)

// validateKey проверяет ключ обновляемого фильма
func validateKey(key domain.MovieKey) error {
	if strings.TrimSpace(key.MovieName) == "" {
		return fmt.Errorf("%w: movie name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(key.TheatreName) == "" {
		return fmt.Errorf("%w: theatre name is required", ErrInvalidInput)
	}

	return nil
}

// toInput конвертирует запрос в вход билдера
func toInput(req *Request) payload.MovieInput {
	return payload.MovieInput{
		Movie:    req.Movie,
		Detailed: req.ShowTimesDetailed,
		ShowDate: req.ShowDate,
	}
}
