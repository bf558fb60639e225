package list_movies

import (
	"context"

	"github.com/m04kA/SMC-MovieBooking/internal/service/movies/models"
)

type MovieService interface {
	GetAll(ctx context.Context) (*models.MovieListResponse, error)
	Search(ctx context.Context, movieName string) (*models.MovieListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
