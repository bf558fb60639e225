package delete_movie

import (
	"context"

	"github.com/m04kA/SMC-MovieBooking/internal/domain"
)

type MovieService interface {
	Delete(ctx context.Context, key domain.MovieKey) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
