// Package mapper turns loosely-shaped backend records into canonical
// entities. Every function here is total: malformed input degrades to
// empty fields and never to an error.
package mapper

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/m04kA/SMC-MovieBooking/internal/domain"
	"github.com/m04kA/SMC-MovieBooking/pkg/temporal"
)

// Record is a raw backend object of uncertain key casing and shape
type Record map[string]any

var rolePrefixRe = regexp.MustCompile(`(?i)^ROLE_`)

// ParseRecord decodes a JSON object. Anything else yields an empty record.
func ParseRecord(data []byte) Record {
	var v any
	if !decode(data, &v) {
		return Record{}
	}
	if m, ok := v.(map[string]any); ok {
		return Record(m)
	}
	return Record{}
}

// ParseRecords decodes a JSON array of objects; non-object items are dropped
func ParseRecords(data []byte) []Record {
	var v any
	if !decode(data, &v) {
		return []Record{}
	}
	return asRecords(v)
}

// AsRecord converts a decoded JSON value to a Record when it is an object
func AsRecord(v any) (Record, bool) {
	switch t := v.(type) {
	case Record:
		return t, true
	case map[string]any:
		return Record(t), true
	default:
		return nil, false
	}
}

// MapMovie converts a raw record into a Movie
func MapMovie(r Record) domain.Movie {
	f := MovieFields
	return domain.Movie{
		ID:               f.ID.String(r),
		MovieName:        f.MovieName.String(r),
		TheatreName:      f.TheatreName.String(r),
		TotalTickets:     f.TotalTickets.Int(r),
		AvailableTickets: f.AvailableTickets.Int(r),
		ShowTimes:        showTimes(r),
		Status:           f.Status.String(r),
		Description:      f.Description.String(r),
		Genre:            f.Genre.String(r),
		Language:         f.Language.String(r),
		Duration:         f.Duration.Int(r),
		Rating:           f.Rating.Float(r),
		TicketPrice:      f.TicketPrice.Float(r),
		PosterURL:        f.PosterURL.String(r),
		ReleaseDate:      f.ReleaseDate.String(r),
		CreatedDate:      f.CreatedDate.String(r),
		ModifiedDate:     f.ModifiedDate.String(r),
	}
}

// MapMovies maps every record, preserving order
func MapMovies(records []Record) []domain.Movie {
	movies := make([]domain.Movie, 0, len(records))
	for _, r := range records {
		movies = append(movies, MapMovie(r))
	}
	return movies
}

// MapTicket converts a raw record into a Ticket. Timestamps are truncated
// to millisecond precision; a missing status reads as CONFIRMED.
func MapTicket(r Record) domain.Ticket {
	f := TicketFields

	seats := f.SeatNumbers.Strings(r)
	count := len(seats)
	if n := f.NumberOfTickets.Int(r); n != nil {
		count = *n
	}

	status := domain.TicketStatus(strings.TrimSpace(f.Status.String(r)))
	if status == "" {
		status = domain.StatusConfirmed
	}

	return domain.Ticket{
		ID:               f.ID.String(r),
		MovieName:        f.MovieName.String(r),
		TheatreName:      f.TheatreName.String(r),
		NumberOfTickets:  count,
		SeatNumbers:      seats,
		UserID:           f.UserID.String(r),
		UserLoginID:      f.UserLoginID.String(r),
		Status:           status,
		TotalAmount:      f.TotalAmount.Float(r),
		BookingReference: f.BookingReference.String(r),
		BookingDate:      temporal.NormalizeTimestamp(f.BookingDate.String(r)),
		CreatedDate:      temporal.NormalizeTimestamp(f.CreatedDate.String(r)),
		ModifiedDate:     temporal.NormalizeTimestamp(f.ModifiedDate.String(r)),
	}
}

// MapTickets maps every record, preserving order
func MapTickets(records []Record) []domain.Ticket {
	tickets := make([]domain.Ticket, 0, len(records))
	for _, r := range records {
		tickets = append(tickets, MapTicket(r))
	}
	return tickets
}

// MapUser converts a login response into the session user. loginID is used
// when the response does not echo one back.
func MapUser(r Record, loginID string) domain.User {
	f := UserFields

	id := f.LoginID.String(r)
	if id == "" {
		id = loginID
	}

	return domain.User{
		LoginID:   id,
		FirstName: f.FirstName.String(r),
		LastName:  f.LastName.String(r),
		Email:     f.Email.String(r),
		Role:      NormalizeRole(f.Role.String(r)),
	}
}

// NormalizeRole strips a case-insensitive ROLE_ prefix and upper-cases the rest
func NormalizeRole(raw string) domain.Role {
	role := strings.ToUpper(rolePrefixRe.ReplaceAllString(strings.TrimSpace(raw), ""))
	if role == "" {
		return domain.DefaultRole
	}
	return domain.Role(role)
}

// showTimes renders structured show-time objects as "<date> <time>" and
// passes plain strings through
func showTimes(r Record) []string {
	v, ok := MovieFields.ShowTimes.Lookup(r)
	if !ok {
		return []string{}
	}

	items, ok := v.([]any)
	if !ok {
		if ss, isStrings := v.([]string); isStrings {
			return append([]string{}, ss...)
		}
		return []string{}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if obj, isObj := AsRecord(item); isObj {
			entry := domain.ShowTimeEntry{
				Time: strings.TrimSpace(ShowTimeFields.Time.String(obj)),
				Date: strings.TrimSpace(ShowTimeFields.Date.String(obj)),
			}
			if entry.Time == "" {
				continue
			}
			out = append(out, entry.Display())
			continue
		}
		if s := strings.TrimSpace(asString(item)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func asRecords(v any) []Record {
	items, ok := v.([]any)
	if !ok {
		return []Record{}
	}
	out := make([]Record, 0, len(items))
	for _, item := range items {
		if r, isObj := AsRecord(item); isObj {
			out = append(out, r)
		}
	}
	return out
}

// decode keeps numbers as json.Number so large ids survive intact
func decode(data []byte, v any) bool {
	if len(bytes.TrimSpace(data)) == 0 {
		return false
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v) == nil
}
