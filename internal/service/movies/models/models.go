package models

import (
	"github.com/m04kA/SMC-MovieBooking/internal/domain"
)

// Response модели

// MovieResponse фильм в каноническом виде
type MovieResponse struct {
	ID               string   `json:"id,omitempty"`
	MovieName        string   `json:"movieName"`
	TheatreName      string   `json:"theatreName"`
	TotalTickets     *int     `json:"totalTickets,omitempty"`
	AvailableTickets *int     `json:"availableTickets,omitempty"`
	ShowTimes        []string `json:"showTimes"` // "2025-10-15 10:00:00"
	Status           string   `json:"status,omitempty"`
	SoldOut          bool     `json:"soldOut"`
	Description      string   `json:"description,omitempty"`
	Genre            string   `json:"genre,omitempty"`
	Language         string   `json:"language,omitempty"`
	Duration         *int     `json:"duration,omitempty"`
	Rating           *float64 `json:"rating,omitempty"`
	TicketPrice      *float64 `json:"ticketPrice,omitempty"`
	PosterURL        string   `json:"posterUrl,omitempty"`
	ReleaseDate      string   `json:"releaseDate,omitempty"`
	CreatedDate      string   `json:"createdDate,omitempty"`
	ModifiedDate     string   `json:"modifiedDate,omitempty"`
}

// MovieListResponse список фильмов.
// Stale выставляется, когда список прочитан из зеркала, а не из бэкенда.
type MovieListResponse struct {
	Movies []MovieResponse `json:"movies"`
	Total  int             `json:"total"`
	Stale  bool            `json:"stale,omitempty"`
}

// Конвертеры

// FromDomainMovie конвертирует domain.Movie в MovieResponse
func FromDomainMovie(m *domain.Movie) *MovieResponse {
	showTimes := m.ShowTimes
	if showTimes == nil {
		showTimes = []string{}
	}

	return &MovieResponse{
		ID:               m.ID,
		MovieName:        m.MovieName,
		TheatreName:      m.TheatreName,
		TotalTickets:     m.TotalTickets,
		AvailableTickets: m.AvailableTickets,
		ShowTimes:        showTimes,
		Status:           m.Status,
		SoldOut:          m.IsSoldOut(),
		Description:      m.Description,
		Genre:            m.Genre,
		Language:         m.Language,
		Duration:         m.Duration,
		Rating:           m.Rating,
		TicketPrice:      m.TicketPrice,
		PosterURL:        m.PosterURL,
		ReleaseDate:      m.ReleaseDate,
		CreatedDate:      m.CreatedDate,
		ModifiedDate:     m.ModifiedDate,
	}
}

// FromDomainMovieList конвертирует список фильмов
func FromDomainMovieList(movies []domain.Movie, stale bool) *MovieListResponse {
	items := make([]MovieResponse, 0, len(movies))
	for i := range movies {
		items = append(items, *FromDomainMovie(&movies[i]))
	}

	return &MovieListResponse{
		Movies: items,
		Total:  len(items),
		Stale:  stale,
	}
}
