package update_movie

import (
	"context"

	saveMovie "github.com/m04kA/SMC-MovieBooking/internal/usecase/save_movie"
)

type SaveMovieUseCase interface {
	Update(ctx context.Context, req *saveMovie.UpdateRequest) (*saveMovie.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
