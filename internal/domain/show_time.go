package domain

// ShowTimeEntry is one bookable slot on its way to the outbound payload.
// Time and Date are free-form until normalized.
type ShowTimeEntry struct {
	Time         string
	Date         string
	ScreenNumber string
}

// IsComplete returns true if both time and date are present
func (e ShowTimeEntry) IsComplete() bool {
	return e.Time != "" && e.Date != ""
}

// Display renders the entry the way list views show it: "<date> <time>",
// or the bare time when no date is known
func (e ShowTimeEntry) Display() string {
	if e.Date == "" {
		return e.Time
	}
	if e.Time == "" {
		return e.Date
	}
	return e.Date + " " + e.Time
}
