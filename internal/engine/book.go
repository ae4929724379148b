package engine

import (
	"log/slog"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// AddressBook keeps contacts in insertion order.
// Names are not unique; every lookup acts on the first exact match.
// It is not safe for concurrent use.
type AddressBook struct {
	records []*Record
}

// NewAddressBook returns an empty book.
func NewAddressBook() *AddressBook {
	return &AddressBook{}
}

// Add validates the fields and appends a new record. No duplicate check is made.
func (b *AddressBook) Add(name, phone string, birthday *string) error {
	r, err := NewRecord(name, phone, birthday)
	if err != nil {
		return err
	}
	b.records = append(b.records, r)

	slog.Debug(config.MsgContactAdded,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyName, name,
		config.LogKeyTotal, len(b.records))
	return nil
}

// ChangePhone overwrites the phone of the first record named name.
// The phone is validated before the lookup, so an invalid value is rejected
// even when the name is unknown. It reports false when no record matches.
func (b *AddressBook) ChangePhone(name, phone string) (bool, error) {
	p, err := validatePhone(phone)
	if err != nil {
		return false, err
	}
	r := b.find(name)
	if r == nil {
		return false, nil
	}
	r.Phone = p

	slog.Debug(config.MsgPhoneChanged,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyName, name)
	return true, nil
}

// Phone returns the phone of the first record named name.
func (b *AddressBook) Phone(name string) (string, bool) {
	r := b.find(name)
	if r == nil {
		return "", false
	}
	return r.Phone, true
}

// SetBirthday replaces the birthday of the first record named name.
// The text is validated first; it reports false when no record matches.
func (b *AddressBook) SetBirthday(name, text string) (bool, error) {
	bd, err := ParseBirthday(text)
	if err != nil {
		return false, err
	}
	r := b.find(name)
	if r == nil {
		return false, nil
	}
	r.Birthday = &bd

	slog.Debug(config.MsgBirthdaySet,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyName, name)
	return true, nil
}

// Birthday returns the birthday of the first record named name.
// Unknown names and records without a birthday both report false.
func (b *AddressBook) Birthday(name string) (Birthday, bool) {
	r := b.find(name)
	if r == nil {
		return Birthday{}, false
	}
	if r.Birthday == nil {
		slog.Debug(config.MsgBirthdayUnset,
			config.LogKeyComponent, config.CompEngine,
			config.LogKeyName, name)
		return Birthday{}, false
	}
	return *r.Birthday, true
}

// All returns copies of every record in insertion order.
func (b *AddressBook) All() []Record {
	out := make([]Record, 0, len(b.records))
	for _, r := range b.records {
		out = append(out, *r)
	}
	return out
}

// Len returns the number of stored records.
func (b *AddressBook) Len() int {
	return len(b.records)
}

func (b *AddressBook) find(name string) *Record {
	for _, r := range b.records {
		if r.Name == name {
			return r
		}
	}
	slog.Debug(config.MsgLookupMiss,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyName, name)
	return nil
}
