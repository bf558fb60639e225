package list_movies

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-MovieBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MovieBooking/internal/service/movies"
	"github.com/m04kA/SMC-MovieBooking/internal/service/movies/models"
)

const (
	msgUnauthorized       = "требуется авторизация"
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

// Handle GET /api/v1/movies?q={movieName}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	var (
		result *models.MovieListResponse
		err    error
	)
	if query == "" {
		result, err = h.service.GetAll(r.Context())
	} else {
		result, err = h.service.Search(r.Context(), query)
	}

	if err != nil {
		switch {
		case errors.Is(err, movies.ErrMovieNotFound):
			// Бэкенд отвечает 404 на пустой поиск
			h.logger.Warn("GET /movies - Not found: q=%q", query)
			handlers.RespondJSON(w, http.StatusOK, models.FromDomainMovieList(nil, false))

		case errors.Is(err, movies.ErrUnauthorized):
			h.logger.Warn("GET /movies - Unauthorized: q=%q", query)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, movies.ErrBackendUnavailable):
			h.logger.Error("GET /movies - Backend unavailable: q=%q, error=%v", query, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("GET /movies - Failed to list movies: q=%q, error=%v", query, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.Stale {
		h.logger.Warn("GET /movies - Served %d movies from mirror: q=%q", result.Total, query)
	} else {
		h.logger.Info("GET /movies - Listed %d movies: q=%q", result.Total, query)
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}
