package engine_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/engine"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

func bookWith(t *testing.T, entries ...[3]string) *engine.AddressBook {
	t.Helper()
	book := engine.NewAddressBook()
	for _, e := range entries {
		var bday *string
		if e[2] != "" {
			bday = ptr(e[2])
		}
		require.NoError(t, book.Add(e[0], e[1], bday))
	}
	return book
}

func TestCalendar_ThreeYearsOfEvents(t *testing.T) {
	book := bookWith(t,
		[3]string{"John Doe", "1234567890", "01.01.2000"},
		[3]string{"No Date", "1111111111", ""},
	)
	gen := &engine.CalendarGenerator{
		Clock: MockClock{CurrentTime: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)},
	}

	data, err := gen.Generate(book.All())
	require.NoError(t, err)

	cal, err := ical.NewDecoder(bytes.NewReader(data)).Decode()
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 3, "One event per year: previous, current and next")

	var summaries []string
	for _, e := range events {
		s, err := e.Props.Text(config.PropSummary)
		require.NoError(t, err)
		summaries = append(summaries, s)
	}
	assert.Equal(t, []string{
		"Birthday: John Doe (24)",
		"Birthday: John Doe (25)",
		"Birthday: John Doe (26)",
	}, summaries)

	start, err := events[1].DateTimeStart(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), start)
}

func TestCalendar_LogsContactsAndEvents(t *testing.T) {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	book := bookWith(t,
		[3]string{"John Doe", "1234567890", "01.01.2000"},
		[3]string{"Jane Roe", "2222222222", "05.05.1990"},
		[3]string{"No Date", "1111111111", ""},
	)
	gen := &engine.CalendarGenerator{
		Clock: MockClock{CurrentTime: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)},
	}
	_, err := gen.Generate(book.All())
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, config.MsgGenSuccess, entry["msg"])
	assert.EqualValues(t, 3, entry[config.LogKeyTotal])
	assert.EqualValues(t, 2, entry[config.LogKeyContacts])
	assert.EqualValues(t, 6, entry[config.LogKeyEvents], "Three events per contact with a birthday")
}

func TestCalendar_SkipsYearsBeforeBirth(t *testing.T) {
	book := bookWith(t, [3]string{"Baby", "1234567890", "15.03.2025"})
	gen := &engine.CalendarGenerator{
		Clock: MockClock{CurrentTime: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	data, err := gen.Generate(book.All())
	require.NoError(t, err)

	ics := string(data)
	assert.Equal(t, 2, strings.Count(ics, "BEGIN:VEVENT"))
	assert.Contains(t, ics, "SUMMARY:Birthday: Baby\r\n", "Age zero uses the plain summary")
}

func TestCalendar_LocalizedSummary(t *testing.T) {
	book := bookWith(t, [3]string{"Ann", "1234567890", "10.10.1990"})
	gen := &engine.CalendarGenerator{
		Clock: MockClock{CurrentTime: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		FormatSummary: func(name string, age int) string {
			return fmt.Sprintf("Anniversaire de %s (%d)", name, age)
		},
	}

	data, err := gen.Generate(book.All())
	require.NoError(t, err)
	assert.Contains(t, string(data), "Anniversaire de Ann (35)")
}

func TestCalendar_EmptyBookReturnsStub(t *testing.T) {
	gen := &engine.CalendarGenerator{Clock: MockClock{CurrentTime: time.Now()}}

	data, err := gen.Generate(nil)
	require.NoError(t, err)
	assert.Equal(t, config.StubVCalendar, string(data))
}
