// Package payload builds outbound write payloads. Unlike the read-path
// mapper, every builder here validates and fails the whole build on the
// first problem; no partial payload is ever returned.
package payload

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-MovieBooking/internal/domain"
	"github.com/m04kA/SMC-MovieBooking/internal/mapper"
	"github.com/m04kA/SMC-MovieBooking/pkg/temporal"
)

// Shape selects the outbound encoding of show_times
type Shape string

const (
	// ShapeStructured encodes [{time, date, screen_number?}]
	ShapeStructured Shape = "structured"
	// ShapeFlat encodes ["YYYY-MM-DD HH:MM:SS"]
	ShapeFlat Shape = "flat"
)

// ParseShape validates a configured shape name; empty means structured
func ParseShape(s string) (Shape, error) {
	switch Shape(strings.ToLower(strings.TrimSpace(s))) {
	case "", ShapeStructured:
		return ShapeStructured, nil
	case ShapeFlat:
		return ShapeFlat, nil
	default:
		return "", fmt.Errorf("%w: unknown show times format %q", ErrInvalidInput, s)
	}
}

// ShowTimeRecord is one normalized outbound show time
type ShowTimeRecord struct {
	Time         string `json:"time"`
	Date         string `json:"date"`
	ScreenNumber string `json:"screen_number,omitempty"`
}

// Display renders the record the way the mapper renders stored show times
func (r ShowTimeRecord) Display() string {
	return domain.ShowTimeEntry{Time: r.Time, Date: r.Date}.Display()
}

// ShowTimes is the show_times field of a movie payload
type ShowTimes struct {
	Records []ShowTimeRecord
	Shape   Shape
}

// MarshalJSON encodes the records in the configured shape
func (s ShowTimes) MarshalJSON() ([]byte, error) {
	if s.Shape == ShapeFlat {
		flat := make([]string, 0, len(s.Records))
		for _, r := range s.Records {
			flat = append(flat, r.Date+" "+r.Time)
		}
		return json.Marshal(flat)
	}

	records := s.Records
	if records == nil {
		records = []ShowTimeRecord{}
	}
	return json.Marshal(records)
}

// ShowTimesInput holds everything a show-time build may draw from.
// Detailed entries, when present, take precedence over ShowTimes.
type ShowTimesInput struct {
	ShowTimes []string        // display strings, "<date> <time>" or bare time
	Detailed  []mapper.Record // loosely-keyed {time, date, screenNumber} objects
	ShowDate  string          // fallback date for entries without one
}

// BuildShowTimes normalizes show times using the local calendar
func BuildShowTimes(in ShowTimesInput) ([]ShowTimeRecord, error) {
	return NewBuilder(ShapeStructured, temporal.Parser{}).ShowTimes(in)
}

// ShowTimes builds the validated, ordered list of outbound show times
func (b *Builder) ShowTimes(in ShowTimesInput) ([]ShowTimeRecord, error) {
	fallback := &fallbackDate{raw: strings.TrimSpace(in.ShowDate), parser: b.parser}

	var (
		records []ShowTimeRecord
		err     error
	)
	if len(in.Detailed) > 0 {
		records, err = b.fromDetailed(in.Detailed, fallback)
	} else {
		records, err = b.fromDisplay(in.ShowTimes, fallback)
	}
	if err != nil {
		return nil, err
	}

	for i := range records {
		records[i].Time = strings.TrimSpace(records[i].Time)
		records[i].Date = strings.TrimSpace(records[i].Date)
		records[i].ScreenNumber = strings.TrimSpace(records[i].ScreenNumber)
	}

	if err := validateShowTimes(records); err != nil {
		return nil, err
	}
	return records, nil
}

func (b *Builder) fromDetailed(detailed []mapper.Record, fallback *fallbackDate) ([]ShowTimeRecord, error) {
	f := mapper.ShowTimeFields
	records := make([]ShowTimeRecord, 0, len(detailed))

	for i, entry := range detailed {
		clock, err := b.parseTime(f.Time.String(entry), i)
		if err != nil {
			return nil, err
		}

		var date string
		if raw := strings.TrimSpace(f.Date.String(entry)); raw != "" {
			date, err = b.parseDate(raw, i)
		} else {
			date, err = fallback.value(i)
		}
		if err != nil {
			return nil, err
		}

		records = append(records, ShowTimeRecord{
			Time:         clock,
			Date:         date,
			ScreenNumber: f.ScreenNumber.String(entry),
		})
	}
	return records, nil
}

// fromDisplay pairs every display string with the top-level show date.
// A date embedded in a "<date> <time>" string is used only when no
// top-level date was given.
func (b *Builder) fromDisplay(showTimes []string, fallback *fallbackDate) ([]ShowTimeRecord, error) {
	records := make([]ShowTimeRecord, 0, len(showTimes))

	for i, display := range showTimes {
		embedded, clockText, hasDate := temporal.SplitDateTime(display)

		clock, err := b.parseTime(clockText, i)
		if err != nil {
			return nil, err
		}

		var date string
		if hasDate && fallback.raw == "" {
			date = embedded
		} else {
			date, err = fallback.value(i)
			if err != nil {
				return nil, err
			}
		}

		records = append(records, ShowTimeRecord{Time: clock, Date: date})
	}
	return records, nil
}

// parseTime leaves empty input empty so validation reports it as missing
func (b *Builder) parseTime(raw string, idx int) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	clock, err := b.parser.ParseTime(raw)
	if err != nil {
		return "", fmt.Errorf("%w: entry %d: %v", ErrUnparseableTime, idx, err)
	}
	return clock, nil
}

func (b *Builder) parseDate(raw string, idx int) (string, error) {
	date, err := b.parser.ParseDate(raw)
	if err != nil {
		return "", fmt.Errorf("%w: entry %d: %v", ErrUnparseableDate, idx, err)
	}
	return date, nil
}

// fallbackDate parses the top-level show date on first use, so an
// unparseable value fails only the builds that actually depend on it
type fallbackDate struct {
	raw    string
	parser temporal.Parser

	parsed bool
	date   string
	err    error
}

func (f *fallbackDate) value(idx int) (string, error) {
	if f.raw == "" {
		return "", nil
	}
	if !f.parsed {
		f.parsed = true
		f.date, f.err = f.parser.ParseDate(f.raw)
	}
	if f.err != nil {
		return "", fmt.Errorf("%w: showDate for entry %d: %v", ErrUnparseableDate, idx, f.err)
	}
	return f.date, nil
}

func validateShowTimes(records []ShowTimeRecord) error {
	if len(records) == 0 {
		return ErrNoShowTimes
	}
	for i, r := range records {
		if r.Date == "" {
			return fmt.Errorf("%w: entry %d", ErrMissingDate, i)
		}
	}
	for i, r := range records {
		if r.Time == "" {
			return fmt.Errorf("%w: entry %d", ErrMissingTime, i)
		}
	}
	return nil
}
