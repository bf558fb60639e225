package cancel_ticket

import "context"

type TicketService interface {
	Cancel(ctx context.Context, reference string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
