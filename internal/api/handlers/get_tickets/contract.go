package get_tickets

import (
	"context"

	"github.com/m04kA/SMC-MovieBooking/internal/service/tickets/models"
)

type TicketService interface {
	GetTickets(ctx context.Context, req *models.GetTicketsRequest) (*models.TicketListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
