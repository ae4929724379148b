package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors for input validation. Callers classify with errors.Is.
var (
	ErrBirthdayFormat = errors.New("Invalid birthday format. Use: DD.MM.YYYY")
	ErrPhoneFormat    = errors.New("Invalid phone number. It should consist of 10 digits.")
	ErrNameEmpty      = errors.New("Invalid name. It should not be empty.")
)

// Field names reported by ValidationError.
const (
	FieldName     = "name"
	FieldPhone    = "phone"
	FieldBirthday = "birthday"
)

// ValidationError reports which field was rejected and why.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Detail returns a log-friendly description including the rejected value.
func (e *ValidationError) Detail() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func invalid(field, value string, err error) error {
	return &ValidationError{Field: field, Value: value, Err: err}
}
