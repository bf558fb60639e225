package payload

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-MovieBooking/internal/domain"
)

// BookingSelection данные формы бронирования
type BookingSelection struct {
	MovieName       string
	TheatreName     string
	NumberOfTickets int    // 0 - вычислить по количеству мест
	SeatNumbers     string // через запятую: "A1, A2"
}

// BookingRequest тело POST /{movieName}/add
type BookingRequest struct {
	MovieName       string   `json:"movie_name"`
	TheatreName     string   `json:"theatre_name"`
	NumberOfTickets int      `json:"number_of_tickets"`
	SeatNumbers     []string `json:"seat_numbers"`
}

// ParseSeatNumbers разбивает строку мест по запятой, обрезает пробелы и
// отбрасывает пустые значения
func ParseSeatNumbers(raw string) []string {
	parts := strings.Split(raw, ",")
	seats := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			seats = append(seats, s)
		}
	}
	return seats
}

// BuildBooking валидирует выбор мест и строит payload бронирования
func BuildBooking(sel BookingSelection) (*BookingRequest, error) {
	movieName := strings.TrimSpace(sel.MovieName)
	if movieName == "" {
		return nil, fmt.Errorf("%w: movie name is required", ErrInvalidInput)
	}

	theatreName := strings.TrimSpace(sel.TheatreName)
	if theatreName == "" {
		return nil, fmt.Errorf("%w: theatre name is required", ErrInvalidInput)
	}

	if sel.NumberOfTickets < 0 {
		return nil, fmt.Errorf("%w: number of tickets cannot be negative", ErrInvalidInput)
	}

	seats := ParseSeatNumbers(sel.SeatNumbers)
	if len(seats) == 0 {
		return nil, ErrNoSeats
	}

	// Количество билетов по умолчанию берется из списка мест
	count := sel.NumberOfTickets
	if count == 0 {
		count = len(seats)
	}

	if count != len(seats) {
		return nil, fmt.Errorf("%w: %d seats for %d tickets", ErrSeatCountMismatch, len(seats), count)
	}

	if count > domain.MaxTicketsPerBooking {
		return nil, fmt.Errorf("%w: requested %d", ErrTooManyTickets, count)
	}

	return &BookingRequest{
		MovieName:       movieName,
		TheatreName:     theatreName,
		NumberOfTickets: count,
		SeatNumbers:     seats,
	}, nil
}
