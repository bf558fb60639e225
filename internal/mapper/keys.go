package mapper

// Keys is the ordered list of wire keys accepted for one logical field.
// The current key comes first, historical keys follow.
type Keys []string

// Lookup returns the value of the first key present with a non-null value
func (k Keys) Lookup(r Record) (any, bool) {
	for _, key := range k {
		if v, ok := r[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// MovieFields describes the accepted keys per Movie field
var MovieFields = struct {
	ID               Keys
	MovieName        Keys
	TheatreName      Keys
	TotalTickets     Keys
	AvailableTickets Keys
	ShowTimes        Keys
	Status           Keys
	Description      Keys
	Genre            Keys
	Language         Keys
	Duration         Keys
	Rating           Keys
	TicketPrice      Keys
	PosterURL        Keys
	ReleaseDate      Keys
	CreatedDate      Keys
	ModifiedDate     Keys
}{
	ID:               Keys{"id"},
	MovieName:        Keys{"movieName", "movie_name"},
	TheatreName:      Keys{"theatreName", "theatre_name"},
	TotalTickets:     Keys{"totalTickets", "total_tickets"},
	AvailableTickets: Keys{"availableTickets", "available_tickets"},
	ShowTimes:        Keys{"showTimes", "show_times"},
	Status:           Keys{"status"},
	Description:      Keys{"description"},
	Genre:            Keys{"genre"},
	Language:         Keys{"language"},
	Duration:         Keys{"duration"},
	Rating:           Keys{"rating"},
	TicketPrice:      Keys{"ticketPrice", "ticket_price"},
	PosterURL:        Keys{"posterUrl", "poster_url"},
	ReleaseDate:      Keys{"releaseDate", "release_date"},
	CreatedDate:      Keys{"createdDate", "created_date", "createdAt", "created_at"},
	ModifiedDate:     Keys{"modifiedDate", "modified_date", "updatedAt", "updated_at"},
}

// ShowTimeFields describes the accepted keys of a structured show-time object
var ShowTimeFields = struct {
	Time         Keys
	Date         Keys
	ScreenNumber Keys
}{
	Time:         Keys{"time", "show_time", "showTime"},
	Date:         Keys{"date", "show_date", "showDate"},
	ScreenNumber: Keys{"screenNumber", "screen_number"},
}

// TicketFields describes the accepted keys per Ticket field
var TicketFields = struct {
	ID               Keys
	MovieName        Keys
	TheatreName      Keys
	NumberOfTickets  Keys
	SeatNumbers      Keys
	UserID           Keys
	UserLoginID      Keys
	Status           Keys
	TotalAmount      Keys
	BookingReference Keys
	BookingDate      Keys
	CreatedDate      Keys
	ModifiedDate     Keys
}{
	ID:               Keys{"id"},
	MovieName:        Keys{"movieName", "movie_name"},
	TheatreName:      Keys{"theatreName", "theatre_name"},
	NumberOfTickets:  Keys{"numberOfTickets", "number_of_tickets"},
	SeatNumbers:      Keys{"seatNumbers", "seat_numbers"},
	UserID:           Keys{"userId", "user_id"},
	UserLoginID:      Keys{"userLoginId", "user_login_id"},
	Status:           Keys{"status"},
	TotalAmount:      Keys{"totalAmount", "total_amount", "total_price"},
	BookingReference: Keys{"bookingReference", "booking_reference"},
	BookingDate:      Keys{"bookingDate", "booking_date", "bookedAt", "booked_at", "createdDate", "created_date"},
	CreatedDate:      Keys{"createdDate", "created_date"},
	ModifiedDate:     Keys{"modifiedDate", "modified_date", "updatedAt", "updated_at"},
}

// UserFields describes the accepted keys of a login response
var UserFields = struct {
	Token        Keys
	RefreshToken Keys
	TokenType    Keys
	LoginID      Keys
	FirstName    Keys
	LastName     Keys
	Email        Keys
	Role         Keys
}{
	Token:        Keys{"token", "accessToken", "access_token"},
	RefreshToken: Keys{"refreshToken", "refresh_token"},
	TokenType:    Keys{"type", "tokenType", "token_type"},
	LoginID:      Keys{"loginId", "login_id"},
	FirstName:    Keys{"firstName", "first_name"},
	LastName:     Keys{"lastName", "last_name"},
	Email:        Keys{"email"},
	Role:         Keys{"role"},
}
