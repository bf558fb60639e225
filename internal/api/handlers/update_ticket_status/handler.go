package update_ticket_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MovieBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MovieBooking/internal/domain"
	"github.com/m04kA/SMC-MovieBooking/internal/service/movies"
)

const (
	msgInvalidInput       = "нужны название фильма и статус"
	msgMovieNotFound      = "фильм не найден"
	msgUnauthorized       = "требуется авторизация"
	msgForbidden          = "менять статус может только администратор"
	msgRejected           = "бэкенд отклонил смену статуса"
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

// Handle PUT /api/v1/movies/{movieName}/{theatreName}/status/{status}
// и PUT /api/v1/movies/{movieName}/status/{status}?theatreName=
// Без кинотеатра используется кинотеатр по умолчанию.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	theatre := vars["theatreName"]
	if theatre == "" {
		theatre = r.URL.Query().Get("theatreName")
	}
	key := domain.MovieKey{MovieName: vars["movieName"], TheatreName: theatre}
	status := vars["status"]

	result, err := h.service.UpdateTicketStatus(r.Context(), key, status)
	if err != nil {
		switch {
		case errors.Is(err, movies.ErrInvalidInput):
			h.logger.Warn("PUT /movies/%s/status/%s - Invalid input: %v", key.MovieName, status, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, movies.ErrMovieNotFound):
			h.logger.Warn("PUT /movies/%s/status/%s - Movie not found: theatre=%q", key.MovieName, status, key.TheatreName)
			handlers.RespondNotFound(w, msgMovieNotFound)

		case errors.Is(err, movies.ErrUnauthorized):
			h.logger.Warn("PUT /movies/%s/status/%s - Unauthorized", key.MovieName, status)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, movies.ErrAccessDenied):
			h.logger.Warn("PUT /movies/%s/status/%s - Access denied", key.MovieName, status)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, movies.ErrRejected):
			h.logger.Warn("PUT /movies/%s/status/%s - Rejected by backend: %v", key.MovieName, status, err)
			handlers.RespondBadRequest(w, handlers.BackendMessage(err, msgRejected))

		case errors.Is(err, movies.ErrBackendUnavailable):
			h.logger.Error("PUT /movies/%s/status/%s - Backend unavailable: %v", key.MovieName, status, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("PUT /movies/%s/status/%s - Failed to update status: %v", key.MovieName, status, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /movies/%s/status/%s - Status updated: theatre=%q", result.MovieName, result.Status, result.TheatreName)
	handlers.RespondJSON(w, http.StatusOK, result)
}
