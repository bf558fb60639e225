package tickets

import (
	"context"

	"github.com/m04kA/SMC-MovieBooking/internal/domain"
	"github.com/m04kA/SMC-MovieBooking/internal/mapper"
)

// TicketClient интерфейс клиента бэкенда для операций с билетами
type TicketClient interface {
	CurrentUserTickets(ctx context.Context) ([]mapper.Record, error)
	UserTickets(ctx context.Context, username string) ([]mapper.Record, error)
	AllTickets(ctx context.Context) ([]mapper.Record, error)
	CancelTicket(ctx context.Context, reference string) error
}

// SessionReader интерфейс чтения текущей сессии
type SessionReader interface {
	User() (domain.User, error)
}

// CacheInvalidator сбрасывает кэш каталога после изменения остатка билетов
type CacheInvalidator interface {
	Invalidate()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
