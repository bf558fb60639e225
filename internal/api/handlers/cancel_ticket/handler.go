package cancel_ticket

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MovieBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MovieBooking/internal/service/tickets"
)

const (
	msgInvalidReference   = "нужен номер бронирования"
	msgTicketNotFound     = "бронирование не найдено"
	msgUnauthorized       = "войдите, чтобы отменить бронирование"
	msgForbidden          = "нельзя отменить чужое бронирование"
	msgRejected           = "бронирование нельзя отменить"
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

// Handle DELETE /api/v1/tickets/{reference}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	err := h.service.Cancel(r.Context(), reference)
	if err != nil {
		switch {
		case errors.Is(err, tickets.ErrInvalidInput):
			h.logger.Warn("DELETE /tickets/%s - Invalid reference", reference)
			handlers.RespondBadRequest(w, msgInvalidReference)

		case errors.Is(err, tickets.ErrTicketNotFound):
			h.logger.Warn("DELETE /tickets/%s - Booking not found", reference)
			handlers.RespondNotFound(w, msgTicketNotFound)

		case errors.Is(err, tickets.ErrUnauthorized):
			h.logger.Warn("DELETE /tickets/%s - Unauthorized", reference)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, tickets.ErrAccessDenied):
			h.logger.Warn("DELETE /tickets/%s - Access denied", reference)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, tickets.ErrRejected):
			h.logger.Warn("DELETE /tickets/%s - Rejected by backend: %v", reference, err)
			handlers.RespondBadRequest(w, handlers.BackendMessage(err, msgRejected))

		case errors.Is(err, tickets.ErrBackendUnavailable):
			h.logger.Error("DELETE /tickets/%s - Backend unavailable: %v", reference, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("DELETE /tickets/%s - Failed to cancel booking: %v", reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /tickets/%s - Booking cancelled successfully", reference)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
