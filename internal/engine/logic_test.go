package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBirthday(t *testing.T, s string) Birthday {
	t.Helper()
	b, err := ParseBirthday(s)
	require.NoError(t, err)
	return b
}

// TestNextWeek verifies the reporting window always starts on the Monday after today.
func TestNextWeek(t *testing.T) {
	tests := []struct {
		name      string
		today     time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "Monday skips to the following Monday",
			today:     time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC),
			wantStart: time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 6, 23, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "Wednesday",
			today:     time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 6, 23, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "Sunday is followed directly by the window",
			today:     time.Date(2024, 6, 16, 23, 59, 0, 0, time.UTC),
			wantStart: time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 6, 23, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "Window across New Year",
			today:     time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := nextWeek(tt.today)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
			assert.Equal(t, time.Monday, start.Weekday())
			assert.Equal(t, time.Sunday, end.Weekday())
		})
	}
}

func TestISOWeekday(t *testing.T) {
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		assert.Equal(t, i, isoWeekday(monday.AddDate(0, 0, i)))
	}
}

// TestProjectInto covers ordinary dates, year boundaries and leap days.
func TestProjectInto(t *testing.T) {
	tests := []struct {
		name     string
		birthday string
		start    time.Time
		wantOK   bool
		wantDate time.Time
	}{
		{
			name:     "Inside the window",
			birthday: "17.06.1990",
			start:    time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC),
			wantOK:   true,
			wantDate: time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Last day of the window",
			birthday: "23.06.1990",
			start:    time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC),
			wantOK:   true,
			wantDate: time.Date(2024, 6, 23, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Day after the window",
			birthday: "24.06.1990",
			start:    time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "January birthday in a window crossing New Year",
			birthday: "02.01.1985",
			start:    time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC),
			wantOK:   true,
			wantDate: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "December birthday in a window crossing New Year",
			birthday: "30.12.1985",
			start:    time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC),
			wantOK:   true,
			wantDate: time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Leapling in a non-leap year lands on March 1st",
			birthday: "29.02.2000",
			start:    time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC),
			wantOK:   true,
			wantDate: time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Leapling in a leap year keeps February 29th",
			birthday: "29.02.2000",
			start:    time.Date(2028, 2, 28, 0, 0, 0, 0, time.UTC),
			wantOK:   true,
			wantDate: time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := tt.start
			end := start.AddDate(0, 0, 6)
			got, ok := projectInto(mustBirthday(t, tt.birthday), start, end)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantDate, got)
			}
		})
	}
}

func TestEventUID_Deterministic(t *testing.T) {
	b := mustBirthday(t, "01.01.2000")
	assert.Equal(t, eventUID("Ann", b), eventUID("Ann", b))
	assert.NotEqual(t, eventUID("Ann", b), eventUID("Bob", b))
	assert.Len(t, eventUID("Ann", b), 32)
}
