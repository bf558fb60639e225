package domain

// TicketStatus is an open-ended booking label; only two values are recognized
type TicketStatus string

const (
	StatusConfirmed TicketStatus = "CONFIRMED"
	StatusCancelled TicketStatus = "CANCELLED"
)

// Ticket represents a booking of one or more seats for a movie
type Ticket struct {
	ID          string
	MovieName   string
	TheatreName string

	NumberOfTickets int
	SeatNumbers     []string // order preserved, uniqueness left to the backend

	UserID      string
	UserLoginID string

	Status      TicketStatus
	TotalAmount *float64

	BookingReference string // stable external identifier

	// Timestamps, fractional seconds truncated to milliseconds
	BookingDate  string
	CreatedDate  string
	ModifiedDate string
}

// CancellationKey returns the identifier used to cancel the ticket:
// the booking reference when present, the id otherwise
func (t *Ticket) CancellationKey() string {
	if t.BookingReference != "" {
		return t.BookingReference
	}
	return t.ID
}

// IsConfirmed returns true if the ticket is confirmed
func (t *Ticket) IsConfirmed() bool {
	return t.Status == StatusConfirmed
}

// IsCancelled returns true if the ticket has been cancelled
func (t *Ticket) IsCancelled() bool {
	return t.Status == StatusCancelled
}

// CanBeCancelled returns true if the ticket can still be cancelled
func (t *Ticket) CanBeCancelled() bool {
	return !t.IsCancelled() && t.CancellationKey() != ""
}
