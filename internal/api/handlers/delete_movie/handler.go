package delete_movie

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MovieBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MovieBooking/internal/domain"
	"github.com/m04kA/SMC-MovieBooking/internal/service/movies"
)

const (
	msgInvalidKey         = "нужны название фильма и кинотеатр"
	msgMovieNotFound      = "фильм не найден"
	msgUnauthorized       = "требуется авторизация"
	msgForbidden          = "удалять фильмы может только администратор"
	msgRejected           = "бэкенд отклонил удаление"
	msgBackendUnavailable = "сервис бронирования недоступен"
)

type Handler struct {
	service MovieService
	logger  Logger
}

func NewHandler(service MovieService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/movies/{movieName}/{theatreName}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	key := domain.MovieKey{MovieName: vars["movieName"], TheatreName: vars["theatreName"]}

	err := h.service.Delete(r.Context(), key)
	if err != nil {
		switch {
		case errors.Is(err, movies.ErrInvalidInput):
			h.logger.Warn("DELETE /movies/%s/%s - Invalid key", key.MovieName, key.TheatreName)
			handlers.RespondBadRequest(w, msgInvalidKey)

		case errors.Is(err, movies.ErrMovieNotFound):
			h.logger.Warn("DELETE /movies/%s/%s - Movie not found", key.MovieName, key.TheatreName)
			handlers.RespondNotFound(w, msgMovieNotFound)

		case errors.Is(err, movies.ErrUnauthorized):
			h.logger.Warn("DELETE /movies/%s/%s - Unauthorized", key.MovieName, key.TheatreName)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, movies.ErrAccessDenied):
			h.logger.Warn("DELETE /movies/%s/%s - Access denied", key.MovieName, key.TheatreName)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, movies.ErrRejected):
			h.logger.Warn("DELETE /movies/%s/%s - Rejected by backend: %v", key.MovieName, key.TheatreName, err)
			handlers.RespondBadRequest(w, handlers.BackendMessage(err, msgRejected))

		case errors.Is(err, movies.ErrBackendUnavailable):
			h.logger.Error("DELETE /movies/%s/%s - Backend unavailable: %v", key.MovieName, key.TheatreName, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("DELETE /movies/%s/%s - Failed to delete movie: %v", key.MovieName, key.TheatreName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /movies/%s/%s - Movie deleted successfully", key.MovieName, key.TheatreName)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
