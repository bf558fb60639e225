package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MovieBooking/internal/domain"
)

func TestMapMovie_KeyFallbackEquivalence(t *testing.T) {
	snake := MapMovie(Record{"movie_name": "X", "theatre_name": "Y"})
	camel := MapMovie(Record{"movieName": "X", "theatreName": "Y"})

	assert.Equal(t, camel, snake)
	assert.Equal(t, "X", camel.MovieName)
	assert.Equal(t, "Y", camel.TheatreName)
	assert.Empty(t, camel.ShowTimes)
	assert.NotNil(t, camel.ShowTimes)
}

func TestMapMovie_CurrentKeyWins(t *testing.T) {
	m := MapMovie(Record{"movieName": "current", "movie_name": "legacy"})
	assert.Equal(t, "current", m.MovieName)

	m = MapMovie(Record{"movieName": nil, "movie_name": "legacy"})
	assert.Equal(t, "legacy", m.MovieName, "null current key falls through")
}

func TestMapMovie_FullRecord(t *testing.T) {
	raw := ParseRecord([]byte(`{
		"id": 42,
		"movie_name": "Dune",
		"theatre_name": "PVR",
		"total_tickets": 100,
		"available_tickets": "80",
		"show_times": [
			{"show_time": "10:00:00", "show_date": "2025-01-01", "screen_number": 2},
			{"time": "18:30:00"},
			"21:00:00",
			{"date": "2025-01-01"}
		],
		"status": "BOOK_ASAP",
		"duration": 155,
		"rating": 8.5,
		"ticket_price": 250.75,
		"poster_url": "https://img/dune.png",
		"release_date": "2024-03-01T00:00:00",
		"created_at": "2024-01-01T10:00:00"
	}`))

	m := MapMovie(raw)

	assert.Equal(t, "42", m.ID)
	assert.Equal(t, "Dune", m.MovieName)
	assert.Equal(t, "PVR", m.TheatreName)
	require.NotNil(t, m.TotalTickets)
	assert.Equal(t, 100, *m.TotalTickets)
	require.NotNil(t, m.AvailableTickets)
	assert.Equal(t, 80, *m.AvailableTickets)
	assert.Equal(t, []string{"2025-01-01 10:00:00", "18:30:00", "21:00:00"}, m.ShowTimes)
	assert.Equal(t, domain.MovieStatusBookASAP, m.Status)
	require.NotNil(t, m.Duration)
	assert.Equal(t, 155, *m.Duration)
	require.NotNil(t, m.Rating)
	assert.InDelta(t, 8.5, *m.Rating, 1e-9)
	require.NotNil(t, m.TicketPrice)
	assert.InDelta(t, 250.75, *m.TicketPrice, 1e-9)
	assert.Equal(t, "https://img/dune.png", m.PosterURL)
	assert.Equal(t, "2024-03-01T00:00:00", m.ReleaseDate)
	assert.Equal(t, "2024-01-01T10:00:00", m.CreatedDate)
}

func TestMapMovie_MalformedDegrades(t *testing.T) {
	m := MapMovie(Record{
		"movieName":    []any{"not", "a", "string"},
		"totalTickets": "lots",
		"showTimes":    "10:00",
		"rating":       map[string]any{"value": 9},
		"duration":     12.5,
	})

	assert.Empty(t, m.MovieName)
	assert.Nil(t, m.TotalTickets)
	assert.Equal(t, []string{}, m.ShowTimes)
	assert.Nil(t, m.Rating)
	assert.Nil(t, m.Duration)
}

func TestMapTicket(t *testing.T) {
	raw := ParseRecord([]byte(`{
		"id": 7,
		"movie_name": "Dune",
		"theatre_name": "PVR",
		"number_of_tickets": 2,
		"seat_numbers": ["A1", " A2 ", ""],
		"user_id": 3,
		"user_login_id": "jdoe",
		"status": "CANCELLED",
		"total_price": 500,
		"booking_reference": "BK-1",
		"booked_at": "2025-12-20T17:14:33.080783",
		"created_date": "2025-12-20T17:14:33.2331",
		"updated_at": "2025-12-21T08:00:00.12"
	}`))

	tk := MapTicket(raw)

	assert.Equal(t, "7", tk.ID)
	assert.Equal(t, "Dune", tk.MovieName)
	assert.Equal(t, "PVR", tk.TheatreName)
	assert.Equal(t, 2, tk.NumberOfTickets)
	assert.Equal(t, []string{"A1", "A2"}, tk.SeatNumbers)
	assert.Equal(t, "3", tk.UserID)
	assert.Equal(t, "jdoe", tk.UserLoginID)
	assert.Equal(t, domain.StatusCancelled, tk.Status)
	require.NotNil(t, tk.TotalAmount)
	assert.InDelta(t, 500.0, *tk.TotalAmount, 1e-9)
	assert.Equal(t, "BK-1", tk.BookingReference)
	assert.Equal(t, "2025-12-20T17:14:33.080", tk.BookingDate)
	assert.Equal(t, "2025-12-20T17:14:33.233", tk.CreatedDate)
	assert.Equal(t, "2025-12-21T08:00:00.12", tk.ModifiedDate)
}

func TestMapTicket_BookingDateFallbackOrder(t *testing.T) {
	tests := []struct {
		name string
		raw  Record
		want string
	}{
		{name: "current key", raw: Record{"bookingDate": "a", "bookedAt": "b"}, want: "a"},
		{name: "snake", raw: Record{"booking_date": "a", "bookedAt": "b"}, want: "a"},
		{name: "booked at", raw: Record{"bookedAt": "b", "createdDate": "c"}, want: "b"},
		{name: "booked at snake", raw: Record{"booked_at": "b", "created_date": "c"}, want: "b"},
		{name: "created date", raw: Record{"createdDate": "c"}, want: "c"},
		{name: "created date snake", raw: Record{"created_date": "c"}, want: "c"},
		{name: "absent", raw: Record{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapTicket(tt.raw).BookingDate)
		})
	}
}

func TestMapTicket_Defaults(t *testing.T) {
	tk := MapTicket(Record{"seatNumbers": "B1, B2,B3"})

	assert.Equal(t, domain.StatusConfirmed, tk.Status)
	assert.Equal(t, []string{"B1", "B2", "B3"}, tk.SeatNumbers)
	assert.Equal(t, 3, tk.NumberOfTickets, "count derived from seats when absent")

	empty := MapTicket(Record{})
	assert.Equal(t, []string{}, empty.SeatNumbers)
	assert.Equal(t, 0, empty.NumberOfTickets)
	assert.Nil(t, empty.TotalAmount)
}

func TestMapUser(t *testing.T) {
	u := MapUser(Record{
		"login_id":   "admin1",
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@example.com",
		"role":       "role_admin",
	}, "submitted")

	assert.Equal(t, domain.User{
		LoginID:   "admin1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Role:      domain.RoleAdmin,
	}, u)
	assert.True(t, u.IsAdmin())

	fallback := MapUser(Record{"token": "t"}, "submitted")
	assert.Equal(t, "submitted", fallback.LoginID)
	assert.Equal(t, domain.RoleUser, fallback.Role)
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, domain.RoleAdmin, NormalizeRole("ROLE_ADMIN"))
	assert.Equal(t, domain.RoleUser, NormalizeRole("Role_user"))
	assert.Equal(t, domain.RoleAdmin, NormalizeRole("admin"))
	assert.Equal(t, domain.RoleUser, NormalizeRole(""))
	assert.Equal(t, domain.Role("MANAGER"), NormalizeRole("manager"))
}

func TestParseRecords(t *testing.T) {
	records := ParseRecords([]byte(`[{"movieName":"A"}, 5, null, {"movie_name":"B"}]`))
	require.Len(t, records, 2)

	movies := MapMovies(records)
	assert.Equal(t, "A", movies[0].MovieName)
	assert.Equal(t, "B", movies[1].MovieName)

	assert.Empty(t, ParseRecords([]byte(`{"not":"a list"}`)))
	assert.Empty(t, ParseRecords(nil))
	assert.Empty(t, ParseRecords([]byte(`null`)))
	assert.Empty(t, ParseRecord([]byte(`[1,2]`)))
}

func TestParseRecord_PreservesLargeIDs(t *testing.T) {
	r := ParseRecord([]byte(`{"id": 9007199254740993}`))
	assert.Equal(t, json.Number("9007199254740993"), r["id"])
	assert.Equal(t, "9007199254740993", MapMovie(r).ID)
}
