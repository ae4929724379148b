package engine

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// CalendarGenerator renders contact birthdays as an iCalendar document.
type CalendarGenerator struct {
	Clock Clock // Interface for time mocking.

	// FormatSummary allows the console to inject localized strings into the logic layer.
	FormatSummary func(name string, age int) string
}

// Generate builds a VCALENDAR with one all-day event per birthday for the
// previous, current and next year. Records without a birthday are skipped.
func (g *CalendarGenerator) Generate(records []Record) ([]byte, error) {
	cal := ical.NewCalendar()

	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// Local time drives the calendar logic; UTC is only used for stamping.
	now := g.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	withBday := 0
	for _, r := range records {
		if r.Birthday == nil {
			continue
		}
		withBday++

		for _, e := range g.createEvents(r.Name, *r.Birthday, now) {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
		}
	}

	if len(cal.Children) == 0 {
		g.logSuccess(len(records), withBday, 0)
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	g.logSuccess(len(records), withBday, len(cal.Children))
	return buf.Bytes(), nil
}

func (g *CalendarGenerator) logSuccess(total, contacts, events int) {
	slog.Info(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompCalendar,
		config.LogKeyTotal, total,
		config.LogKeyContacts, contacts,
		config.LogKeyEvents, events)
}

// createEvents generates events for CurrentYear-1, CurrentYear and CurrentYear+1,
// never before the birth year.
func (g *CalendarGenerator) createEvents(name string, b Birthday, now time.Time) []*ical.Event {
	currentYear := now.Year()
	born := b.Date().Year()
	uidBase := eventUID(name, b)

	var events []*ical.Event
	for _, y := range []int{currentYear - 1, currentYear, currentYear + 1} {
		if y < born {
			continue
		}
		age := y - born

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))
		event.Props.SetText(config.PropSummary, g.summary(name, age))

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(b.In(y, now.Location()))
		event.Props.Set(dtStartProp)

		events = append(events, event)
	}
	return events
}

func (g *CalendarGenerator) summary(name string, age int) string {
	if g.FormatSummary != nil {
		return g.FormatSummary(name, age)
	}
	if age == 0 {
		return fmt.Sprintf(config.FallbackSummary, name)
	}
	return fmt.Sprintf(config.FallbackSummaryAge, name, age)
}

// eventUID is deterministic so repeated exports produce stable identifiers.
func eventUID(name string, b Birthday) string {
	input := fmt.Sprintf(config.FormatHashInput, name, b.Date().Format(time.RFC3339), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}
