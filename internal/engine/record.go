package engine

import (
	"regexp"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/config"
)

var phoneShape = regexp.MustCompile(config.PhonePattern)

// Record is one stored contact.
type Record struct {
	// Name is the lookup key. It never changes after creation.
	Name string

	// Phone always holds exactly ten decimal digits.
	Phone string

	// Birthday is nil when unknown.
	Birthday *Birthday
}

// NewRecord validates the fields and builds a record.
// A nil birthday leaves the record without one.
func NewRecord(name, phone string, birthday *string) (*Record, error) {
	if strings.TrimSpace(name) == "" {
		return nil, invalid(FieldName, name, ErrNameEmpty)
	}
	p, err := validatePhone(phone)
	if err != nil {
		return nil, err
	}

	r := &Record{Name: name, Phone: p}
	if birthday != nil {
		b, err := ParseBirthday(*birthday)
		if err != nil {
			return nil, err
		}
		r.Birthday = &b
	}
	return r, nil
}

func validatePhone(phone string) (string, error) {
	if !phoneShape.MatchString(phone) {
		return "", invalid(FieldPhone, phone, ErrPhoneFormat)
	}
	return phone, nil
}
