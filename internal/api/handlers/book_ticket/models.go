package book_ticket

import (
	bookTicket "github.com/m04kA/SMC-MovieBooking/internal/usecase/book_ticket"
)

// BookTicketRequest HTTP request model
type BookTicketRequest struct {
	TheatreName     string `json:"theatreName" validate:"required"`
	NumberOfTickets int    `json:"numberOfTickets,omitempty" validate:"min=0"`
	SeatNumbers     string `json:"seatNumbers" validate:"required"` // "A1, A2"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookTicketRequest) ToUseCaseRequest(movieName string) *bookTicket.Request {
	return &bookTicket.Request{
		MovieName:       movieName,
		TheatreName:     r.TheatreName,
		NumberOfTickets: r.NumberOfTickets,
		SeatNumbers:     r.SeatNumbers,
	}
}
