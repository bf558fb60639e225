// Package temporal converts free-form show time and date text into the
// canonical wire forms HH:MM:SS (24-hour clock) and YYYY-MM-DD.
package temporal

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Canonical layouts
const (
	TimeFormat = "15:04:05"   // HH:MM:SS
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

var (
	// ErrUnparseableTime is returned when no time rule matches the input
	ErrUnparseableTime = errors.New("temporal: unparseable time")

	// ErrUnparseableDate is returned when the input is not a recognizable date
	ErrUnparseableDate = errors.New("temporal: unparseable date")
)

var (
	clock24Re  = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)(?::([0-5]\d))?$`)
	clock12Re  = regexp.MustCompile(`^(\d{1,2})(?::(\d{1,2}))?(?::(\d{1,2}))?\s*([AaPp][Mm])$`)
	isoDateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	fractionRe = regexp.MustCompile(`\.(\d{3})\d+`)
)

// fixedDate anchors time-of-day text for the generic fallback parse;
// fixedLayout is the matching layout prefix.
const (
	fixedDate   = "1970-01-01T"
	fixedLayout = "2006-01-02T"
)

// timeOfDayLayouts are tried after the 24h and 12h rules. Layouts carrying a
// zone are converted to the parser's location before the clock is read.
var timeOfDayLayouts = []struct {
	layout string
	zoned  bool
}{
	{"15:04:05.999999999Z07:00", true},
	{"15:04:05Z07:00", true},
	{"15:04Z07:00", true},
	{"15:04:05.999999999", false},
	{"15:04:05", false},
	{"15:04", false},
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-1-2",
	"2006/01/02",
	"2006/1/2",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"Mon Jan 2 2006",
	"Mon, 02 Jan 2006",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC850,
	time.ANSIC,
	time.UnixDate,
}

// Parser holds the calendar location used when a generic parse has to
// re-render a zoned value. The zero value uses time.Local.
type Parser struct {
	Location *time.Location
}

var std Parser

// ParseTime converts input to HH:MM:SS using the local calendar
func ParseTime(input string) (string, error) {
	return std.ParseTime(input)
}

// ParseDate converts input to YYYY-MM-DD using the local calendar
func ParseDate(input string) (string, error) {
	return std.ParseDate(input)
}

func (p Parser) location() *time.Location {
	if p.Location == nil {
		return time.Local
	}
	return p.Location
}

// ParseTime tries, in order: a 24-hour H:MM[:SS] clock, a 12-hour clock with
// an AM/PM suffix, and a generic time-of-day parse. First match wins.
func (p Parser) ParseTime(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", fmt.Errorf("%w: empty input", ErrUnparseableTime)
	}

	if m := clock24Re.FindStringSubmatch(s); m != nil {
		return formatClock(atoi(m[1]), atoi(m[2]), atoi(m[3])), nil
	}

	if m := clock12Re.FindStringSubmatch(s); m != nil {
		if clock, ok := from12Hour(m[1], m[2], m[3], m[4]); ok {
			return clock, nil
		}
	}

	for _, l := range timeOfDayLayouts {
		t, err := time.Parse(fixedLayout+l.layout, fixedDate+s)
		if err != nil {
			continue
		}
		if l.zoned {
			t = t.In(p.location())
		}
		return t.Format(TimeFormat), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnparseableTime, input)
}

// ParseDate passes YYYY-MM-DD through unchanged and re-renders any other
// recognizable date using the parser's calendar fields.
func (p Parser) ParseDate(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", fmt.Errorf("%w: empty input", ErrUnparseableDate)
	}

	if isoDateRe.MatchString(s) {
		return s, nil
	}

	loc := p.location()
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			continue
		}
		return t.In(loc).Format(DateFormat), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnparseableDate, input)
}

// NormalizeTimestamp truncates a fractional-seconds part longer than three
// digits to exactly three: 2025-12-20T17:14:33.080783 -> 2025-12-20T17:14:33.080.
// Shorter or absent fractions are returned unchanged.
func NormalizeTimestamp(value string) string {
	loc := fractionRe.FindStringSubmatchIndex(value)
	if loc == nil {
		return value
	}
	return value[:loc[0]] + "." + value[loc[2]:loc[3]] + value[loc[1]:]
}

// SplitDateTime splits a "<YYYY-MM-DD> <time>" display string. ok is false
// when the first field is not a canonical date.
func SplitDateTime(display string) (date, clock string, ok bool) {
	s := strings.TrimSpace(display)
	head, rest, found := strings.Cut(s, " ")
	if !found || !isoDateRe.MatchString(head) {
		return "", s, false
	}
	return head, strings.TrimSpace(rest), true
}

// from12Hour converts the captured groups of a 12-hour clock
func from12Hour(hourStr, minuteStr, secondStr, meridiem string) (string, bool) {
	hour := atoi(hourStr)
	minute := atoi(minuteStr)
	second := atoi(secondStr)

	if hour < 1 || hour > 12 || minute > 59 || second > 59 {
		return "", false
	}

	isPM := strings.EqualFold(meridiem, "pm")
	switch {
	case hour == 12 && !isPM:
		hour = 0
	case hour != 12 && isPM:
		hour += 12
	}

	return formatClock(hour, minute, second), true
}

func formatClock(hour, minute, second int) string {
	return fmt.Sprintf("%02d:%02d:%02d", hour, minute, second)
}

// atoi returns 0 for an empty or malformed group
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
