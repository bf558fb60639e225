package add_movie

import (
	"github.com/m04kA/SMC-MovieBooking/internal/api/handlers"
	saveMovie "github.com/m04kA/SMC-MovieBooking/internal/usecase/save_movie"
)

// AddMovieRequest HTTP request model
type AddMovieRequest struct {
	handlers.MovieForm
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AddMovieRequest) ToUseCaseRequest() *saveMovie.Request {
	return &saveMovie.Request{
		Movie:             r.ToDomain(),
		ShowTimesDetailed: r.DetailedRecords(),
		ShowDate:          r.ShowDate,
	}
}
