package book_ticket

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-MovieBooking/internal/mapper"
	"github.com/m04kA/SMC-MovieBooking/internal/payload"
)

// UseCase use case для бронирования билетов
type UseCase struct {
	client  BookingClient
	catalog CacheInvalidator
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client BookingClient, catalog CacheInvalidator, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		client:  client,
		catalog: catalog,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute выполняет бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookTicket: movie=%q theatre=%q tickets=%d seats=%q",
		req.MovieName, req.TheatreName, req.NumberOfTickets, req.SeatNumbers)

	// 1. Проверяем выбор мест и строим payload
	body, err := payload.BuildBooking(toSelection(req))
	if err != nil {
		kind := payload.FailureKind(err)
		uc.metrics.PayloadBuildFailed(kind)
		uc.logger.Warn("BookTicket: invalid booking (%s): %v", kind, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidBooking, err)
	}

	// 2. Отправляем бронирование
	record, err := uc.client.BookTicket(ctx, body.MovieName, body)
	if err != nil {
		uc.logger.Warn("BookTicket: backend error for movie=%q: %v", body.MovieName, err)
		return nil, clientError(err)
	}

	// 3. Остаток билетов изменился
	uc.catalog.Invalidate()

	ticket := completeTicket(mapper.MapTicket(record), body)

	uc.logger.Info("BookTicket: successfully booked %d tickets for movie=%q, reference=%s",
		ticket.NumberOfTickets, ticket.MovieName, ticket.CancellationKey())
	return &Response{Ticket: ticket}, nil
}
