package payload

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-MovieBooking/internal/domain"
	"github.com/m04kA/SMC-MovieBooking/internal/mapper"
	"github.com/m04kA/SMC-MovieBooking/pkg/temporal"
)

// Builder строит исходящие payload фильмов с настроенным форматом show_times
type Builder struct {
	shape  Shape
	parser temporal.Parser
}

// NewBuilder создает новый экземпляр билдера
func NewBuilder(shape Shape, parser temporal.Parser) *Builder {
	if shape == "" {
		shape = ShapeStructured
	}
	return &Builder{
		shape:  shape,
		parser: parser,
	}
}

// Shape возвращает формат show_times
func (b *Builder) Shape() Shape {
	return b.shape
}

// MovieInput данные формы фильма
type MovieInput struct {
	Movie    domain.Movie
	Detailed []mapper.Record
	ShowDate string
}

// MovieRequest тело POST /admin/add
type MovieRequest struct {
	MovieName        string    `json:"movie_name"`
	TheatreName      string    `json:"theatre_name"`
	TotalTickets     *int      `json:"total_tickets,omitempty"`
	AvailableTickets *int      `json:"available_tickets,omitempty"`
	ShowTimes        ShowTimes `json:"show_times"`
	Status           string    `json:"status,omitempty"`
	Description      string    `json:"description,omitempty"`
	Genre            string    `json:"genre,omitempty"`
	Language         string    `json:"language,omitempty"`
	Duration         *int      `json:"duration,omitempty"`
	Rating           *float64  `json:"rating,omitempty"`
	TicketPrice      *float64  `json:"ticket_price,omitempty"`
	PosterURL        string    `json:"poster_url,omitempty"`
	ReleaseDate      string    `json:"release_date,omitempty"`
	CreatedDate      string    `json:"created_date,omitempty"`
	ModifiedDate     string    `json:"modified_date,omitempty"`
}

// Key возвращает натуральный ключ фильма из payload
func (r *MovieRequest) Key() domain.MovieKey {
	return domain.MovieKey{MovieName: r.MovieName, TheatreName: r.TheatreName}
}

// MovieCreate строит payload создания фильма
func (b *Builder) MovieCreate(in MovieInput) (*MovieRequest, error) {
	return b.movie(in.Movie, in)
}

// MovieUpdate строит payload пересоздания фильма при обновлении.
// Идентичность берется из key, а не из формы; если пришло только одно
// из полей вместимости, второе зеркалируется.
func (b *Builder) MovieUpdate(key domain.MovieKey, in MovieInput) (*MovieRequest, error) {
	movie := in.Movie
	movie.MovieName = key.MovieName
	movie.TheatreName = key.TheatreName

	switch {
	case movie.TotalTickets == nil && movie.AvailableTickets != nil:
		movie.TotalTickets = copyInt(movie.AvailableTickets)
	case movie.AvailableTickets == nil && movie.TotalTickets != nil:
		movie.AvailableTickets = copyInt(movie.TotalTickets)
	}

	return b.movie(movie, in)
}

func (b *Builder) movie(movie domain.Movie, in MovieInput) (*MovieRequest, error) {
	if err := validateMovie(&movie); err != nil {
		return nil, err
	}

	records, err := b.ShowTimes(ShowTimesInput{
		ShowTimes: movie.ShowTimes,
		Detailed:  in.Detailed,
		ShowDate:  in.ShowDate,
	})
	if err != nil {
		return nil, err
	}

	return &MovieRequest{
		MovieName:        strings.TrimSpace(movie.MovieName),
		TheatreName:      strings.TrimSpace(movie.TheatreName),
		TotalTickets:     movie.TotalTickets,
		AvailableTickets: movie.AvailableTickets,
		ShowTimes:        ShowTimes{Records: records, Shape: b.shape},
		Status:           movie.Status,
		Description:      movie.Description,
		Genre:            movie.Genre,
		Language:         movie.Language,
		Duration:         movie.Duration,
		Rating:           movie.Rating,
		TicketPrice:      movie.TicketPrice,
		PosterURL:        movie.PosterURL,
		ReleaseDate:      movie.ReleaseDate,
		CreatedDate:      movie.CreatedDate,
		ModifiedDate:     movie.ModifiedDate,
	}, nil
}

// validateMovie проверяет идентичность и вместимость фильма
func validateMovie(m *domain.Movie) error {
	if strings.TrimSpace(m.MovieName) == "" {
		return fmt.Errorf("%w: movie name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(m.TheatreName) == "" {
		return fmt.Errorf("%w: theatre name is required", ErrInvalidInput)
	}

	if m.TotalTickets != nil && *m.TotalTickets < 0 {
		return fmt.Errorf("%w: total tickets cannot be negative", ErrInvalidInput)
	}

	if m.AvailableTickets != nil && *m.AvailableTickets < 0 {
		return fmt.Errorf("%w: available tickets cannot be negative", ErrInvalidInput)
	}

	// Доступных мест не может быть больше, чем всего
	if m.TotalTickets != nil && m.AvailableTickets != nil && *m.AvailableTickets > *m.TotalTickets {
		return fmt.Errorf("%w: available tickets %d exceed total tickets %d",
			ErrInvalidInput, *m.AvailableTickets, *m.TotalTickets)
	}

	return nil
}

func copyInt(v *int) *int {
	n := *v
	return &n
}
