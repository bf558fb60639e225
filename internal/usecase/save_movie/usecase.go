package save_movie

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-MovieBooking/internal/domain"
	"github.com/m04kA/SMC-MovieBooking/internal/mapper"
	"github.com/m04kA/SMC-MovieBooking/internal/payload"
)

// UseCase use case для создания и обновления фильма
type UseCase struct {
	builder PayloadBuilder
	client  MovieClient
	catalog CacheInvalidator
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	builder PayloadBuilder,
	client MovieClient,
	catalog CacheInvalidator,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		builder: builder,
		client:  client,
		catalog: catalog,
		metrics: metrics,
		logger:  logger,
	}
}

// Add создает новый фильм
func (uc *UseCase) Add(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddMovie: name=%q theatre=%q", req.Movie.MovieName, req.Movie.TheatreName)

	// 1. Строим payload
	body, err := uc.builder.MovieCreate(toInput(req))
	if err != nil {
		return nil, uc.buildFailed("AddMovie", err)
	}

	// 2. Отправляем на бэкенд
	record, err := uc.client.AddMovie(ctx, body)
	if err != nil {
		uc.logger.Warn("AddMovie: backend error for name=%q: %v", body.MovieName, err)
		return nil, clientError("AddMovie", err)
	}

	// 3. Сбрасываем кэш каталога
	uc.catalog.Invalidate()

	movie := savedMovie(record, body)
	uc.logger.Info("AddMovie: successfully added movie name=%q theatre=%q", movie.MovieName, movie.TheatreName)
	return &Response{Movie: movie}, nil
}

// Update обновляет фильм: бэкенд не умеет обновлять, поэтому фильм
// удаляется и создается заново. Payload строится до удаления.
func (uc *UseCase) Update(ctx context.Context, req *UpdateRequest) (*Response, error) {
	uc.logger.Info("UpdateMovie: name=%q theatre=%q", req.Key.MovieName, req.Key.TheatreName)

	// 1. Валидация ключа
	if err := validateKey(req.Key); err != nil {
		uc.logger.Warn("UpdateMovie: validation failed: %v", err)
		return nil, err
	}

	// 2. Строим payload, идентичность берется из ключа
	body, err := uc.builder.MovieUpdate(req.Key, toInput(&req.Request))
	if err != nil {
		return nil, uc.buildFailed("UpdateMovie", err)
	}

	// 3. Удаляем старую запись
	if err := uc.client.DeleteMovie(ctx, req.Key.MovieName, req.Key.TheatreName); err != nil {
		uc.logger.Warn("UpdateMovie: delete failed for name=%q: %v", req.Key.MovieName, err)
		return nil, clientError("UpdateMovie", err)
	}

	// Удаление уже изменило каталог
	uc.catalog.Invalidate()

	// 4. Создаем заново
	record, err := uc.client.AddMovie(ctx, body)
	if err != nil {
		uc.logger.Error("UpdateMovie: movie name=%q theatre=%q deleted but not recreated: %v",
			req.Key.MovieName, req.Key.TheatreName, err)
		return nil, fmt.Errorf("%w: %w", ErrRecreateFailed, clientError("UpdateMovie", err))
	}

	uc.catalog.Invalidate()

	movie := savedMovie(record, body)
	uc.logger.Info("UpdateMovie: successfully updated movie name=%q theatre=%q", movie.MovieName, movie.TheatreName)
	return &Response{Movie: movie}, nil
}

func (uc *UseCase) buildFailed(op string, err error) error {
	kind := payload.FailureKind(err)
	uc.metrics.PayloadBuildFailed(kind)
	uc.logger.Warn("%s: payload build failed (%s): %v", op, kind, err)
	return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
}

// savedMovie читает ответ бэкенда; если он пуст, фильм восстанавливается из отправленного payload
func savedMovie(record mapper.Record, body *payload.MovieRequest) domain.Movie {
	movie := mapper.MapMovie(record)
	if movie.MovieName != "" {
		return movie
	}

	showTimes := make([]string, 0, len(body.ShowTimes.Records))
	for _, st := range body.ShowTimes.Records {
		showTimes = append(showTimes, st.Display())
	}

	return domain.Movie{
		MovieName:        body.MovieName,
		TheatreName:      body.TheatreName,
		TotalTickets:     body.TotalTickets,
		AvailableTickets: body.AvailableTickets,
		ShowTimes:        showTimes,
		Status:           body.Status,
		Description:      body.Description,
		Genre:            body.Genre,
		Language:         body.Language,
		Duration:         body.Duration,
		Rating:           body.Rating,
		TicketPrice:      body.TicketPrice,
		PosterURL:        body.PosterURL,
		ReleaseDate:      body.ReleaseDate,
	}
}
