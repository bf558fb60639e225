package movies

import (
	"context"

	"github.com/m04kA/SMC-MovieBooking/internal/domain"
	"github.com/m04kA/SMC-MovieBooking/internal/mapper"
)

// MovieClient интерфейс клиента бэкенда для операций с фильмами
type MovieClient interface {
	ListMovies(ctx context.Context) ([]mapper.Record, error)
	SearchMovies(ctx context.Context, movieName string) ([]mapper.Record, error)
	DeleteMovie(ctx context.Context, movieName, theatreName string) error
	UpdateTicketStatus(ctx context.Context, movieName, theatreName, status string) (mapper.Record, error)
}

// CatalogMirror интерфейс зеркала каталога в БД
type CatalogMirror interface {
	Upsert(ctx context.Context, movies []domain.Movie) error
	List(ctx context.Context) ([]domain.Movie, error)
	Search(ctx context.Context, movieName string) ([]domain.Movie, error)
	Delete(ctx context.Context, key domain.MovieKey) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
