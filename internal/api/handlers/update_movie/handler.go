package update_movie

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MovieBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MovieBooking/internal/domain"
	"github.com/m04kA/SMC-MovieBooking/internal/service/movies/models"
	saveMovie "github.com/m04kA/SMC-MovieBooking/internal/usecase/save_movie"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidKey         = "нужны название фильма и кинотеатр"
	msgMovieNotFound      = "фильм не найден"
	msgUnauthorized       = "требуется авторизация"
	msgForbidden          = "изменять фильмы может только администратор"
	msgRejected           = "бэкенд отклонил фильм"
	msgRecreateFailed     = "фильм удален, но не создан заново: повторите сохранение"
	msgBackendUnavailable = "сервис бронирования недоступен"
)

type Handler struct {
	useCase SaveMovieUseCase
	logger  Logger
}

func NewHandler(useCase SaveMovieUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/movies/{movieName}/{theatreName}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	key := domain.MovieKey{MovieName: vars["movieName"], TheatreName: vars["theatreName"]}

	var req UpdateMovieRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /movies/%s/%s - Invalid request body: %v", key.MovieName, key.TheatreName, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /movies/%s/%s - Validation failed: %v", key.MovieName, key.TheatreName, err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	result, err := h.useCase.Update(r.Context(), req.ToUseCaseRequest(key))
	if err != nil {
		switch {
		case errors.Is(err, saveMovie.ErrInvalidInput):
			h.logger.Warn("PUT /movies/%s/%s - Invalid key", key.MovieName, key.TheatreName)
			handlers.RespondBadRequest(w, msgInvalidKey)

		case errors.Is(err, saveMovie.ErrInvalidPayload):
			h.logger.Warn("PUT /movies/%s/%s - Invalid movie payload: %v", key.MovieName, key.TheatreName, err)
			handlers.RespondBadRequest(w, handlers.PayloadMessage(err))

		case errors.Is(err, saveMovie.ErrRecreateFailed):
			h.logger.Error("PUT /movies/%s/%s - Movie deleted but not recreated: %v", key.MovieName, key.TheatreName, err)
			handlers.RespondBadGateway(w, msgRecreateFailed)

		case errors.Is(err, saveMovie.ErrMovieNotFound):
			h.logger.Warn("PUT /movies/%s/%s - Movie not found", key.MovieName, key.TheatreName)
			handlers.RespondNotFound(w, msgMovieNotFound)

		case errors.Is(err, saveMovie.ErrUnauthorized):
			h.logger.Warn("PUT /movies/%s/%s - Unauthorized", key.MovieName, key.TheatreName)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, saveMovie.ErrAccessDenied):
			h.logger.Warn("PUT /movies/%s/%s - Access denied", key.MovieName, key.TheatreName)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, saveMovie.ErrRejected):
			h.logger.Warn("PUT /movies/%s/%s - Rejected by backend: %v", key.MovieName, key.TheatreName, err)
			handlers.RespondBadRequest(w, handlers.BackendMessage(err, msgRejected))

		case errors.Is(err, saveMovie.ErrBackendUnavailable):
			h.logger.Error("PUT /movies/%s/%s - Backend unavailable: %v", key.MovieName, key.TheatreName, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("PUT /movies/%s/%s - Failed to update movie: %v", key.MovieName, key.TheatreName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /movies/%s/%s - Movie updated successfully", key.MovieName, key.TheatreName)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainMovie(&result.Movie))
}
