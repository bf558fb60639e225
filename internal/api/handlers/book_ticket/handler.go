package book_ticket

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MovieBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MovieBooking/internal/service/tickets/models"
	bookTicket "github.com/m04kA/SMC-MovieBooking/internal/usecase/book_ticket"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMovieNotFound      = "фильм не найден"
	msgSeatsUnavailable   = "выбранные места недоступны"
	msgUnauthorized       = "войдите, чтобы забронировать билеты"
	msgForbidden          = "недостаточно прав для бронирования"
	msgRejected           = "бэкенд отклонил бронирование"
	msgBackendUnavailable = "сервис бронирования недоступен"
)

type Handler struct {
	useCase BookTicketUseCase
	logger  Logger
}

func NewHandler(useCase BookTicketUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/movies/{movieName}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	movieName := mux.Vars(r)["movieName"]

	var req BookTicketRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /movies/%s/bookings - Invalid request body: %v", movieName, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /movies/%s/bookings - Validation failed: %v", movieName, err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(movieName))
	if err != nil {
		switch {
		case errors.Is(err, bookTicket.ErrInvalidBooking):
			h.logger.Warn("POST /movies/%s/bookings - Invalid booking: %v", movieName, err)
			handlers.RespondBadRequest(w, handlers.PayloadMessage(err))

		case errors.Is(err, bookTicket.ErrMovieNotFound):
			h.logger.Warn("POST /movies/%s/bookings - Movie not found: theatre=%q", movieName, req.TheatreName)
			handlers.RespondNotFound(w, msgMovieNotFound)

		case errors.Is(err, bookTicket.ErrSeatsUnavailable):
			h.logger.Warn("POST /movies/%s/bookings - Seats unavailable: seats=%q", movieName, req.SeatNumbers)
			handlers.RespondConflict(w, handlers.BackendMessage(err, msgSeatsUnavailable))

		case errors.Is(err, bookTicket.ErrUnauthorized):
			h.logger.Warn("POST /movies/%s/bookings - Unauthorized", movieName)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, bookTicket.ErrAccessDenied):
			h.logger.Warn("POST /movies/%s/bookings - Access denied", movieName)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookTicket.ErrRejected):
			h.logger.Warn("POST /movies/%s/bookings - Rejected by backend: %v", movieName, err)
			handlers.RespondBadRequest(w, handlers.BackendMessage(err, msgRejected))

		case errors.Is(err, bookTicket.ErrBackendUnavailable):
			h.logger.Error("POST /movies/%s/bookings - Backend unavailable: %v", movieName, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("POST /movies/%s/bookings - Failed to book tickets: %v", movieName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /movies/%s/bookings - Booked %d tickets: theatre=%q, reference=%q",
		movieName, result.Ticket.NumberOfTickets, result.Ticket.TheatreName, result.Ticket.BookingReference)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainTicket(&result.Ticket))
}
