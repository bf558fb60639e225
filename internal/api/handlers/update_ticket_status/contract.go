package update_ticket_status

import (
	"context"

	"github.com/m04kA/SMC-MovieBooking/internal/domain"
	"github.com/m04kA/SMC-MovieBooking/internal/service/movies/models"
)

type MovieService interface {
	UpdateTicketStatus(ctx context.Context, key domain.MovieKey, status string) (*models.MovieResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
