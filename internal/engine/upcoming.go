package engine

import (
	"log/slog"
	"time"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// UpcomingBirthday is one line of the weekly birthday report.
type UpcomingBirthday struct {
	// Name of the contact.
	Name string

	// Date is the birthday projected into the reporting window.
	Date time.Time
}

// String renders the projected date as DD.MM.YYYY.
func (u UpcomingBirthday) String() string {
	return u.Date.Format(config.DateFormatBirthday)
}

// UpcomingBirthdays lists contacts whose birthday falls in next week,
// Monday through Sunday, in collection order.
// When today is a Monday the window starts on the following Monday.
func (b *AddressBook) UpcomingBirthdays(today time.Time) []UpcomingBirthday {
	start, end := nextWeek(today)

	var out []UpcomingBirthday
	for _, r := range b.records {
		if r.Birthday == nil {
			continue
		}
		if d, ok := projectInto(*r.Birthday, start, end); ok {
			out = append(out, UpcomingBirthday{Name: r.Name, Date: d})
		}
	}

	slog.Debug(config.MsgUpcoming,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyStart, start.Format(config.DateFormatBirthday),
		config.LogKeyEnd, end.Format(config.DateFormatBirthday),
		config.LogKeyCount, len(out))
	return out
}

// nextWeek returns the Monday after today and the Sunday that follows it.
// Both are midnight in today's location.
func nextWeek(today time.Time) (time.Time, time.Time) {
	loc := today.Location()
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)

	offset := config.DaysPerWeek - isoWeekday(day)
	start := day.AddDate(0, 0, offset)
	end := start.AddDate(0, 0, config.DaysPerWeek-1)
	return start, end
}

// isoWeekday maps time.Weekday (Sunday=0) to Monday=0..Sunday=6.
func isoWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// projectInto anchors the birthday onto the window's year. A window spanning
// New Year is also tried against the following year.
func projectInto(b Birthday, start, end time.Time) (time.Time, bool) {
	years := []int{start.Year()}
	if end.Year() != start.Year() {
		years = append(years, end.Year())
	}
	for _, y := range years {
		d := b.In(y, start.Location())
		if !d.Before(start) && !d.After(end) {
			return d, true
		}
	}
	return time.Time{}, false
}
