package engine

import (
	"regexp"
	"time"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// birthdayShape rejects inputs time.Parse would otherwise tolerate (signed years).
var birthdayShape = regexp.MustCompile(`^[0-9]{2}\.[0-9]{2}\.[0-9]{4}$`)

// Birthday is a validated calendar date. The zero value is not a valid birthday;
// use ParseBirthday.
type Birthday struct {
	date time.Time
}

// ParseBirthday validates text in DD.MM.YYYY form.
// Impossible dates such as 31.02.2024 are rejected like any other malformed input.
func ParseBirthday(text string) (Birthday, error) {
	if !birthdayShape.MatchString(text) {
		return Birthday{}, invalid(FieldBirthday, text, ErrBirthdayFormat)
	}
	d, err := time.Parse(config.DateFormatBirthday, text)
	if err != nil {
		return Birthday{}, invalid(FieldBirthday, text, ErrBirthdayFormat)
	}
	return Birthday{date: d}, nil
}

// Date returns the birthday at midnight UTC.
func (b Birthday) Date() time.Time {
	return b.date
}

// String renders the birthday as DD.MM.YYYY.
func (b Birthday) String() string {
	return b.date.Format(config.DateFormatBirthday)
}

// In projects the month and day onto year, in loc.
// Feb 29 falls on Mar 1 in non-leap years (time.Date normalization).
func (b Birthday) In(year int, loc *time.Location) time.Time {
	return time.Date(year, b.date.Month(), b.date.Day(), 0, 0, 0, 0, loc)
}
