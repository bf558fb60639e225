package temporal

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime_24HourIsZeroPadded(t *testing.T) {
	for hour := 0; hour <= 23; hour++ {
		for _, minute := range []int{0, 7, 30, 59} {
			in := fmt.Sprintf("%d:%02d", hour, minute)
			got, err := ParseTime(in)
			require.NoError(t, err, in)
			assert.Equal(t, fmt.Sprintf("%02d:%02d:00", hour, minute), got, in)

			for _, second := range []int{0, 9, 59} {
				in := fmt.Sprintf("%d:%02d:%02d", hour, minute, second)
				got, err := ParseTime(in)
				require.NoError(t, err, in)
				assert.Equal(t, fmt.Sprintf("%02d:%02d:%02d", hour, minute, second), got, in)
			}
		}
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "midnight am", input: "12:00 AM", want: "00:00:00"},
		{name: "noon pm", input: "12:00 PM", want: "12:00:00"},
		{name: "bare hour pm", input: "9 PM", want: "21:00:00"},
		{name: "lowercase no space", input: "9:30pm", want: "21:30:00"},
		{name: "am with seconds and padding", input: "  7:05:09 am ", want: "07:05:09"},
		{name: "single digit minute 12h", input: "10:5 AM", want: "10:05:00"},
		{name: "leading zero 24h", input: "08:15", want: "08:15:00"},
		{name: "fraction falls back", input: "10:00:00.5", want: "10:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTime(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParser_ParseTime_ZonedFallback(t *testing.T) {
	p := Parser{Location: time.UTC}

	got, err := p.ParseTime("10:00:00.000Z")
	require.NoError(t, err)
	assert.Equal(t, "10:00:00", got)

	got, err = p.ParseTime("10:30+02:00")
	require.NoError(t, err)
	assert.Equal(t, "08:30:00", got)
}

func TestParseTime_Unparseable(t *testing.T) {
	for _, input := range []string{"", "   ", "noon", "25:00", "13 PM", "0 AM", "ten o'clock"} {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			_, err := ParseTime(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnparseableTime)
		})
	}
}

func TestParseDate(t *testing.T) {
	p := Parser{Location: time.UTC}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "canonical identity", input: "2025-03-04", want: "2025-03-04"},
		{name: "slashes", input: "2025/03/04", want: "2025-03-04"},
		{name: "us order", input: "03/04/2025", want: "2025-03-04"},
		{name: "us order short", input: "3/4/2025", want: "2025-03-04"},
		{name: "long month", input: "March 4, 2025", want: "2025-03-04"},
		{name: "short month", input: "Mar 4 2025", want: "2025-03-04"},
		{name: "day first", input: "4 March 2025", want: "2025-03-04"},
		{name: "local datetime", input: "2025-03-04T21:15:00", want: "2025-03-04"},
		{name: "unpadded iso", input: "2025-3-4", want: "2025-03-04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ParseDate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParser_ParseDate_UsesLocalCalendar(t *testing.T) {
	p := Parser{Location: time.FixedZone("UTC+5", 5*60*60)}

	got, err := p.ParseDate("2025-03-04T23:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-05", got)
}

func TestParseDate_Unparseable(t *testing.T) {
	for _, input := range []string{"", "tomorrow", "2025-03", "04.03.2025"} {
		_, err := ParseDate(input)
		assert.ErrorIs(t, err, ErrUnparseableDate, input)
	}
}

func TestNormalizeTimestamp(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2025-12-20T17:14:33.080783", "2025-12-20T17:14:33.080"},
		{"2025-12-20T17:14:33.080783Z", "2025-12-20T17:14:33.080Z"},
		{"2025-12-20T17:14:33.08", "2025-12-20T17:14:33.08"},
		{"2025-12-20T17:14:33.080", "2025-12-20T17:14:33.080"},
		{"2025-12-20T17:14:33", "2025-12-20T17:14:33"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeTimestamp(tt.input), tt.input)
	}
}

func TestSplitDateTime(t *testing.T) {
	date, clock, ok := SplitDateTime("2025-01-01 10:00:00")
	assert.True(t, ok)
	assert.Equal(t, "2025-01-01", date)
	assert.Equal(t, "10:00:00", clock)

	date, clock, ok = SplitDateTime(" 2025-01-01   9:30 PM ")
	assert.True(t, ok)
	assert.Equal(t, "2025-01-01", date)
	assert.Equal(t, "9:30 PM", clock)

	date, clock, ok = SplitDateTime("10:00 AM")
	assert.False(t, ok)
	assert.Empty(t, date)
	assert.Equal(t, "10:00 AM", clock)
}
