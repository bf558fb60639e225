package save_movie

import (
	"context"

	"github.com/m04kA/SMC-MovieBooking/internal/domain"
	"github.com/m04kA/SMC-MovieBooking/internal/mapper"
	"github.com/m04kA/SMC-MovieBooking/internal/payload"
)

// PayloadBuilder интерфейс билдера payload фильма
type PayloadBuilder interface {
	MovieCreate(in payload.MovieInput) (*payload.MovieRequest, error)
	MovieUpdate(key domain.MovieKey, in payload.MovieInput) (*payload.MovieRequest, error)
}

// MovieClient интерфейс клиента бэкенда для записи фильмов
type MovieClient interface {
	AddMovie(ctx context.Context, req *payload.MovieRequest) (mapper.Record, error)
	DeleteMovie(ctx context.Context, movieName, theatreName string) error
}

// CacheInvalidator сбрасывает кэш каталога после записи
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
