package book_ticket

import "github.com/m04kA/SMC-MovieBooking/internal/domain"

// Request модель запроса на бронирование
type Request struct {
	MovieName       string // Фильм из пути
	TheatreName     string // Кинотеатр
	NumberOfTickets int    // 0 - по количеству мест
	SeatNumbers     string // Места через запятую: "A1, A2"
}

// Response модель ответа с созданным билетом
type Response struct {
	Ticket domain.Ticket
}
