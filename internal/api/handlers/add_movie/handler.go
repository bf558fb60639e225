package add_movie

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MovieBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MovieBooking/internal/service/movies/models"
	saveMovie "github.com/m04kA/SMC-MovieBooking/internal/usecase/save_movie"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется авторизация"
	msgForbidden          = "добавлять фильмы может только администратор"
	msgRejected           = "бэкенд отклонил фильм"
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

// Handle POST /api/v1/movies
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddMovieRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /movies - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /movies - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	result, err := h.useCase.Add(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, saveMovie.ErrInvalidPayload):
			h.logger.Warn("POST /movies - Invalid movie payload: name=%q, error=%v", req.MovieName, err)
			handlers.RespondBadRequest(w, handlers.PayloadMessage(err))

		case errors.Is(err, saveMovie.ErrUnauthorized):
			h.logger.Warn("POST /movies - Unauthorized: name=%q", req.MovieName)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, saveMovie.ErrAccessDenied):
			h.logger.Warn("POST /movies - Access denied: name=%q", req.MovieName)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, saveMovie.ErrRejected):
			h.logger.Warn("POST /movies - Rejected by backend: name=%q, error=%v", req.MovieName, err)
			handlers.RespondBadRequest(w, handlers.BackendMessage(err, msgRejected))

		case errors.Is(err, saveMovie.ErrBackendUnavailable):
			h.logger.Error("POST /movies - Backend unavailable: name=%q, error=%v", req.MovieName, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("POST /movies - Failed to add movie: name=%q, error=%v", req.MovieName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /movies - Movie added successfully: name=%q, theatre=%q",
		result.Movie.MovieName, result.Movie.TheatreName)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainMovie(&result.Movie))
}
