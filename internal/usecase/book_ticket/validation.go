package book_ticket

import (
	"github.com/m04kA/SMC-MovieBooking/internal/domain"
	"github.com/m04kA/SMC-MovieBooking/internal/payload"
)

// toSelection конвертирует запрос в выбор мест для билдера
func toSelection(req *Request) payload.BookingSelection {
	return payload.BookingSelection{
		MovieName:       req.MovieName,
		TheatreName:     req.TheatreName,
		NumberOfTickets: req.NumberOfTickets,
		SeatNumbers:     req.SeatNumbers,
	}
}

// completeTicket дополняет билет из ответа данными отправленного бронирования
func completeTicket(t domain.Ticket, body *payload.BookingRequest) domain.Ticket {
	if t.MovieName == "" {
		t.MovieName = body.MovieName
	}
	if t.TheatreName == "" {
		t.TheatreName = body.TheatreName
	}
	if len(t.SeatNumbers) == 0 {
		t.SeatNumbers = append([]string{}, body.SeatNumbers...)
	}
	if t.NumberOfTickets == 0 {
		t.NumberOfTickets = body.NumberOfTickets
	}
	return t
}
