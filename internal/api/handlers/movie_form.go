package handlers

import (
	"github.com/m04kA/SMC-MovieBooking/internal/domain"
	"github.com/m04kA/SMC-MovieBooking/internal/mapper"
)

// MovieForm форма фильма, общая для создания и обновления
type MovieForm struct {
	MovieName         string           `json:"movieName"`
	TheatreName       string           `json:"theatreName"`
	TotalTickets      *int             `json:"totalTickets,omitempty" validate:"omitempty,min=0"`
	AvailableTickets  *int             `json:"availableTickets,omitempty" validate:"omitempty,min=0"`
	ShowTimes         []string         `json:"showTimes,omitempty"`
	ShowTimesDetailed []map[string]any `json:"showTimesDetailed,omitempty"` // {time, date, screenNumber}
	ShowDate          string           `json:"showDate,omitempty"`
	Status            string           `json:"status,omitempty"`
	Description       string           `json:"description,omitempty"`
	Genre             string           `json:"genre,omitempty"`
	Language          string           `json:"language,omitempty"`
	Duration          *int             `json:"duration,omitempty" validate:"omitempty,min=0"`
	Rating            *float64         `json:"rating,omitempty" validate:"omitempty,min=0,max=10"`
	TicketPrice       *float64         `json:"ticketPrice,omitempty" validate:"omitempty,min=0"`
	PosterURL         string           `json:"posterUrl,omitempty" validate:"omitempty,url"`
	ReleaseDate       string           `json:"releaseDate,omitempty"`
}

// ToDomain конвертирует форму в domain.Movie
func (f *MovieForm) ToDomain() domain.Movie {
	return domain.Movie{
		MovieName:        f.MovieName,
		TheatreName:      f.TheatreName,
		TotalTickets:     f.TotalTickets,
		AvailableTickets: f.AvailableTickets,
		ShowTimes:        f.ShowTimes,
		Status:           f.Status,
		Description:      f.Description,
		Genre:            f.Genre,
		Language:         f.Language,
		Duration:         f.Duration,
		Rating:           f.Rating,
		TicketPrice:      f.TicketPrice,
		PosterURL:        f.PosterURL,
		ReleaseDate:      f.ReleaseDate,
	}
}

// DetailedRecords возвращает подробные сеансы как сырые записи для билдера
func (f *MovieForm) DetailedRecords() []mapper.Record {
	if len(f.ShowTimesDetailed) == 0 {
		return nil
	}
	records := make([]mapper.Record, 0, len(f.ShowTimesDetailed))
	for _, entry := range f.ShowTimesDetailed {
		records = append(records, mapper.Record(entry))
	}
	return records
}
