package get_tickets

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-MovieBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MovieBooking/internal/service/tickets"
	"github.com/m04kA/SMC-MovieBooking/internal/service/tickets/models"
)

const (
	msgInvalidAll         = "параметр all должен быть true или false"
	msgUnauthorized       = "войдите, чтобы посмотреть билеты"
	msgForbidden          = "чужие билеты доступны только администратору"
	msgBackendUnavailable = "сервис бронирования недоступен"
)

type Handler struct {
	service TicketService
	logger  Logger
}

func NewHandler(service TicketService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tickets?user={loginId}&all=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.GetTicketsRequest{Username: query.Get("user")}

	if raw := query.Get("all"); raw != "" {
		all, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /tickets - Invalid all parameter: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidAll)
			return
		}
		req.All = all
	}

	result, err := h.service.GetTickets(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, tickets.ErrTicketNotFound):
			// Бэкенд отвечает 404, когда билетов нет
			h.logger.Info("GET /tickets - No tickets: user=%q, all=%t", req.Username, req.All)
			handlers.RespondJSON(w, http.StatusOK, models.FromDomainTicketList(nil))

		case errors.Is(err, tickets.ErrUnauthorized):
			h.logger.Warn("GET /tickets - Unauthorized")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, tickets.ErrAccessDenied):
			h.logger.Warn("GET /tickets - Access denied: user=%q, all=%t", req.Username, req.All)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, tickets.ErrBackendUnavailable):
			h.logger.Error("GET /tickets - Backend unavailable: %v", err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("GET /tickets - Failed to get tickets: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tickets - Found %d tickets: user=%q, all=%t", result.Total, req.Username, req.All)
	handlers.RespondJSON(w, http.StatusOK, result)
}
