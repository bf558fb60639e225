package domain

// Movie represents a movie screening at a theatre.
// MovieName and TheatreName together form the natural key.
type Movie struct {
	ID          string
	MovieName   string
	TheatreName string

	TotalTickets     *int // capacity, set once at creation
	AvailableTickets *int // remaining capacity, 0 <= available <= total

	ShowTimes []string // "<date> <time>" or a bare time

	// Pass-through descriptive data
	Status       string
	Description  string
	Genre        string
	Language     string
	Duration     *int
	Rating       *float64
	TicketPrice  *float64
	PosterURL    string
	ReleaseDate  string
	CreatedDate  string
	ModifiedDate string
}

// MovieKey is the natural composite key of a movie
type MovieKey struct {
	MovieName   string
	TheatreName string
}

// Key returns the movie's natural key
func (m *Movie) Key() MovieKey {
	return MovieKey{MovieName: m.MovieName, TheatreName: m.TheatreName}
}

// IsSoldOut returns true if the backend reported zero remaining tickets
func (m *Movie) IsSoldOut() bool {
	return m.AvailableTickets != nil && *m.AvailableTickets <= 0
}

// Movie status labels used by the admin status update
const (
	MovieStatusBookASAP = "BOOK_ASAP"
	MovieStatusSoldOut  = "SOLD_OUT"
)
