package book_ticket

import (
	"context"

	bookTicket "github.com/m04kA/SMC-MovieBooking/internal/usecase/book_ticket"
)

type BookTicketUseCase interface {
	Execute(ctx context.Context, req *bookTicket.Request) (*bookTicket.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
