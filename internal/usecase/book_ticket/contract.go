package book_ticket

import (
	"context"

	"github.com/m04kA/SMC-MovieBooking/internal/mapper"
	"github.com/m04kA/SMC-MovieBooking/internal/payload"
)

// BookingClient интерфейс клиента бэкенда для бронирования
type BookingClient interface {
	BookTicket(ctx context.Context, movieName string, req *payload.BookingRequest) (mapper.Record, error)
}

// CacheInvalidator сбрасывает кэш каталога после изменения остатка билетов
type CacheInvalidator interface {
	Invalidate()
}

// Metrics интерфейс метрик построения payload
type Metrics interface {
	PayloadBuildFailed(kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
