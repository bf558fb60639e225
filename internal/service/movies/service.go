package movies

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/m04kA/SMC-MovieBooking/internal/domain"
	"github.com/m04kA/SMC-MovieBooking/internal/integrations/moviebooking"
	"github.com/m04kA/SMC-MovieBooking/internal/mapper"
	"github.com/m04kA/SMC-MovieBooking/internal/service/movies/models"
)

const (
	cacheKeyAll    = "all"
	cacheKeySearch = "search:"
)

// Service сервис для работы с каталогом фильмов
type Service struct {
	client         MovieClient
	mirror         CatalogMirror
	cache          *expirable.LRU[string, []domain.Movie]
	defaultTheatre string
	logger         Logger
}

// Option настраивает сервис
type Option func(*Service)

// WithCache включает кэш чтения каталога (LRU + TTL)
func WithCache(maxEntries int, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = expirable.NewLRU[string, []domain.Movie](maxEntries, nil, ttl)
	}
}

// WithMirror включает зеркало каталога для чтения при недоступности бэкенда
func WithMirror(mirror CatalogMirror) Option {
	return func(s *Service) {
		s.mirror = mirror
	}
}

// WithDefaultTheatre задает кинотеатр для обновления статуса, когда он не указан
func WithDefaultTheatre(name string) Option {
	return func(s *Service) {
		s.defaultTheatre = name
	}
}

// NewService создает новый экземпляр сервиса фильмов
func NewService(client MovieClient, logger Logger, opts ...Option) *Service {
	s := &Service{
		client: client,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetAll получает список всех фильмов.
// При ошибке транспорта отдает зеркало, если оно включено и не пусто.
func (s *Service) GetAll(ctx context.Context) (*models.MovieListResponse, error) {
	s.logger.Info("GetAll: fetching movies")

	if movies, ok := s.cached(cacheKeyAll); ok {
		s.logger.Info("GetAll: cache hit, %d movies", len(movies))
		return models.FromDomainMovieList(movies, false), nil
	}

	records, err := s.client.ListMovies(ctx)
	if err != nil {
		if stale, ok := s.fromMirror("GetAll", err, func(m CatalogMirror) ([]domain.Movie, error) {
			return m.List(ctx)
		}); ok {
			return models.FromDomainMovieList(stale, true), nil
		}
		s.logger.Error("GetAll: backend error: %v", err)
		return nil, clientError("GetAll", err)
	}

	movies := mapper.MapMovies(records)
	s.store(cacheKeyAll, movies)
	s.sync(ctx, movies)

	s.logger.Info("GetAll: successfully fetched %d movies", len(movies))
	return models.FromDomainMovieList(movies, false), nil
}

// Search ищет фильмы по названию
func (s *Service) Search(ctx context.Context, movieName string) (*models.MovieListResponse, error) {
	movieName = strings.TrimSpace(movieName)
	s.logger.Info("Search: searching movies name=%q", movieName)

	if movieName == "" {
		s.logger.Warn("Search: empty movie name")
		return nil, fmt.Errorf("%w: movie name is required", ErrInvalidInput)
	}

	key := cacheKeySearch + strings.ToLower(movieName)
	if movies, ok := s.cached(key); ok {
		s.logger.Info("Search: cache hit name=%q, %d movies", movieName, len(movies))
		return models.FromDomainMovieList(movies, false), nil
	}

	records, err := s.client.SearchMovies(ctx, movieName)
	if err != nil {
		if stale, ok := s.fromMirror("Search", err, func(m CatalogMirror) ([]domain.Movie, error) {
			return m.Search(ctx, movieName)
		}); ok {
			return models.FromDomainMovieList(stale, true), nil
		}
		s.logger.Warn("Search: backend error for name=%q: %v", movieName, err)
		return nil, clientError("Search", err)
	}

	movies := mapper.MapMovies(records)
	s.store(key, movies)

	s.logger.Info("Search: found %d movies for name=%q", len(movies), movieName)
	return models.FromDomainMovieList(movies, false), nil
}

// Delete удаляет фильм
func (s *Service) Delete(ctx context.Context, key domain.MovieKey) error {
	s.logger.Info("Delete: deleting movie name=%q theatre=%q", key.MovieName, key.TheatreName)

	if err := validateKey(key); err != nil {
		s.logger.Warn("Delete: %v", err)
		return err
	}

	if err := s.client.DeleteMovie(ctx, key.MovieName, key.TheatreName); err != nil {
		s.logger.Warn("Delete: backend error for name=%q theatre=%q: %v", key.MovieName, key.TheatreName, err)
		return clientError("Delete", err)
	}

	s.Invalidate()
	if s.mirror != nil {
		if err := s.mirror.Delete(ctx, key); err != nil {
			s.logger.Warn("Delete: failed to remove movie from mirror: %v", err)
		}
	}

	s.logger.Info("Delete: successfully deleted movie name=%q theatre=%q", key.MovieName, key.TheatreName)
	return nil
}

// UpdateTicketStatus обновляет статус продажи билетов (только администратор).
// Пустой кинотеатр заменяется кинотеатром по умолчанию.
func (s *Service) UpdateTicketStatus(ctx context.Context, key domain.MovieKey, status string) (*models.MovieResponse, error) {
	if strings.TrimSpace(key.TheatreName) == "" {
		key.TheatreName = s.defaultTheatre
	}
	status = strings.ToUpper(strings.TrimSpace(status))

	s.logger.Info("UpdateTicketStatus: movie name=%q theatre=%q status=%s", key.MovieName, key.TheatreName, status)

	if err := validateKey(key); err != nil {
		s.logger.Warn("UpdateTicketStatus: %v", err)
		return nil, err
	}
	if status == "" {
		s.logger.Warn("UpdateTicketStatus: empty status")
		return nil, fmt.Errorf("%w: status is required", ErrInvalidInput)
	}

	record, err := s.client.UpdateTicketStatus(ctx, key.MovieName, key.TheatreName, status)
	if err != nil {
		s.logger.Warn("UpdateTicketStatus: backend error for name=%q: %v", key.MovieName, err)
		return nil, clientError("UpdateTicketStatus", err)
	}

	s.Invalidate()

	movie := mapper.MapMovie(record)
	if movie.MovieName == "" {
		movie.MovieName = key.MovieName
		movie.TheatreName = key.TheatreName
	}
	if movie.Status == "" {
		movie.Status = status
	}

	s.logger.Info("UpdateTicketStatus: successfully updated movie name=%q status=%s", key.MovieName, movie.Status)
	return models.FromDomainMovie(&movie), nil
}

// Invalidate сбрасывает кэш каталога. Вызывается после любой записи.
func (s *Service) Invalidate() {
	if s.cache != nil {
		s.cache.Purge()
	}
}

func (s *Service) cached(key string) ([]domain.Movie, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.Get(key)
}

func (s *Service) store(key string, movies []domain.Movie) {
	if s.cache != nil {
		s.cache.Add(key, movies)
	}
}

// sync сохраняет свежий каталог в зеркало. Ошибка зеркала не прерывает чтение.
func (s *Service) sync(ctx context.Context, movies []domain.Movie) {
	if s.mirror == nil {
		return
	}
	if err := s.mirror.Upsert(ctx, movies); err != nil {
		s.logger.Warn("GetAll: failed to sync mirror: %v", err)
	}
}

// fromMirror читает зеркало, если ошибка бэкенда транспортная.
// Пустое зеркало считается промахом.
func (s *Service) fromMirror(op string, cause error, read func(CatalogMirror) ([]domain.Movie, error)) ([]domain.Movie, bool) {
	if s.mirror == nil || !moviebooking.IsTransport(cause) {
		return nil, false
	}

	movies, err := read(s.mirror)
	if err != nil {
		s.logger.Error("%s: mirror read failed: %v", op, err)
		return nil, false
	}
	if len(movies) == 0 {
		return nil, false
	}

	s.logger.Warn("%s: backend unavailable (%v), serving %d movies from mirror", op, cause, len(movies))
	return movies, true
}

func validateKey(key domain.MovieKey) error {
	if strings.TrimSpace(key.MovieName) == "" {
		return fmt.Errorf("%w: movie name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(key.TheatreName) == "" {
		return fmt.Errorf("%w: theatre name is required", ErrInvalidInput)
	}
	return nil
}
