package update_movie

import (
	"github.com/m04kA/SMC-MovieBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MovieBooking/internal/domain"
	saveMovie "github.com/m04kA/SMC-MovieBooking/internal/usecase/save_movie"
)

// UpdateMovieRequest HTTP request model.
// Пустые movieName и theatreName в теле берутся из пути.
type UpdateMovieRequest struct {
	handlers.MovieForm
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateMovieRequest) ToUseCaseRequest(key domain.MovieKey) *saveMovie.UpdateRequest {
	movie := r.ToDomain()
	if movie.MovieName == "" {
		movie.MovieName = key.MovieName
	}
	if movie.TheatreName == "" {
		movie.TheatreName = key.TheatreName
	}

	return &saveMovie.UpdateRequest{
		Key: key,
		Request: saveMovie.Request{
			Movie:             movie,
			ShowTimesDetailed: r.DetailedRecords(),
			ShowDate:          r.ShowDate,
		},
	}
}
