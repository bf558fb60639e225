package models

import (
	"github.com/m04kA/SMC-MovieBooking/internal/domain"
)

// Request модели

// GetTicketsRequest запрос на получение билетов.
// Пустой Username - билеты текущего пользователя.
type GetTicketsRequest struct {
	Username string `json:"username,omitempty"`
	All      bool   `json:"all,omitempty"` // все билеты, только для администратора
}

// Response модели

// TicketResponse билет в каноническом виде
type TicketResponse struct {
	ID               string   `json:"id,omitempty"`
	MovieName        string   `json:"movieName"`
	TheatreName      string   `json:"theatreName"`
	NumberOfTickets  int      `json:"numberOfTickets"`
	SeatNumbers      []string `json:"seatNumbers"`
	UserID           string   `json:"userId,omitempty"`
	UserLoginID      string   `json:"userLoginId,omitempty"`
	Status           string   `json:"status"`
	TotalAmount      *float64 `json:"totalAmount,omitempty"`
	BookingReference string   `json:"bookingReference,omitempty"`
	CancellationKey  string   `json:"cancellationKey,omitempty"`
	Cancellable      bool     `json:"cancellable"`
	BookingDate      string   `json:"bookingDate,omitempty"`
	CreatedDate      string   `json:"createdDate,omitempty"`
	ModifiedDate     string   `json:"modifiedDate,omitempty"`
}

// TicketListResponse список билетов
type TicketListResponse struct {
	Tickets []TicketResponse `json:"tickets"`
	Total   int              `json:"total"`
}

// Конвертеры

// FromDomainTicket конвертирует domain.Ticket в TicketResponse
func FromDomainTicket(t *domain.Ticket) *TicketResponse {
	seats := t.SeatNumbers
	if seats == nil {
		seats = []string{}
	}

	return &TicketResponse{
		ID:               t.ID,
		MovieName:        t.MovieName,
		TheatreName:      t.TheatreName,
		NumberOfTickets:  t.NumberOfTickets,
		SeatNumbers:      seats,
		UserID:           t.UserID,
		UserLoginID:      t.UserLoginID,
		Status:           string(t.Status),
		TotalAmount:      t.TotalAmount,
		BookingReference: t.BookingReference,
		CancellationKey:  t.CancellationKey(),
		Cancellable:      t.CanBeCancelled(),
		BookingDate:      t.BookingDate,
		CreatedDate:      t.CreatedDate,
		ModifiedDate:     t.ModifiedDate,
	}
}

// FromDomainTicketList конвертирует список билетов
func FromDomainTicketList(tickets []domain.Ticket) *TicketListResponse {
	items := make([]TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, *FromDomainTicket(&tickets[i]))
	}

	return &TicketListResponse{
		Tickets: items,
		Total:   len(items),
	}
}
