package cli

import (
	"errors"
	"fmt"

	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/engine"
)

// ErrUsage marks a command called with the wrong number of arguments.
var ErrUsage = errors.New("invalid arguments")

// UsageError carries the usage line of the command that was misused.
type UsageError struct {
	Command string
	Usage   string
	Got     int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: %s (got %d, usage: %s)", e.Command, ErrUsage, e.Got, e.Usage)
}

func (e *UsageError) Unwrap() error {
	return ErrUsage
}

// describe turns a command failure into user-facing text.
func (d *Dispatcher) describe(err error) string {
	var ue *UsageError
	switch {
	case errors.As(err, &ue):
		return d.T.Msgf(config.TKeyUsage, map[string]any{"Usage": ue.Usage})
	case errors.Is(err, engine.ErrBirthdayFormat):
		return d.T.Msg(config.TKeyErrBirthday)
	case errors.Is(err, engine.ErrPhoneFormat):
		return d.T.Msg(config.TKeyErrPhone)
	case errors.Is(err, engine.ErrNameEmpty):
		return d.T.Msg(config.TKeyErrName)
	default:
		return d.T.Msgf(config.TKeyErrInternal, map[string]any{"Error": err.Error()})
	}
}
