package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/engine"
)

// handler runs one command with already arity-checked arguments.
type handler func(args []string) (string, error)

type command struct {
	name    string
	usage   string
	minArgs int
	maxArgs int
	run     handler
}

// Dispatcher reads command lines, runs them against the address book and
// prints localized results. It owns no global state: the book is injected.
type Dispatcher struct {
	Book     *engine.AddressBook
	Clock    engine.Clock
	T        *Translator
	Calendar *engine.CalendarGenerator
	Out      io.Writer

	// Prompt prints the input prompt before every line (interactive sessions only).
	Prompt bool
	Theme  Theme

	commands []command
	byName   map[string]*command
}

// NewDispatcher wires the command table around book.
func NewDispatcher(book *engine.AddressBook, clock engine.Clock, t *Translator, out io.Writer) *Dispatcher {
	d := &Dispatcher{
		Book:  book,
		Clock: clock,
		T:     t,
		Out:   out,
		Calendar: &engine.CalendarGenerator{
			Clock:         clock,
			FormatSummary: t.EventSummary,
		},
	}

	d.commands = []command{
		{config.CmdHello, "hello", 0, 0, d.hello},
		{config.CmdAdd, "add <name> <phone> [DD.MM.YYYY]", 2, 3, d.add},
		{config.CmdChange, "change <name> <phone>", 2, 2, d.change},
		{config.CmdPhone, "phone <name>", 1, 1, d.phone},
		{config.CmdAll, "all", 0, 0, d.all},
		{config.CmdAddBirthday, "add-birthday <name> <DD.MM.YYYY>", 2, 2, d.addBirthday},
		{config.CmdShowBirthday, "show-birthday <name>", 1, 1, d.showBirthday},
		{config.CmdBirthdays, "birthdays", 0, 0, d.birthdays},
		{config.CmdCalendar, "calendar", 0, 0, d.calendar},
		{config.CmdExport, "export", 0, 0, d.export},
		{config.CmdHelp, "help", 0, 0, d.help},
	}
	d.byName = make(map[string]*command, len(d.commands))
	for i := range d.commands {
		d.byName[d.commands[i].name] = &d.commands[i]
	}
	return d
}

// ParseInput splits a line on whitespace. The command is lower-cased;
// arguments keep their case.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Run greets the user and processes lines from in until an exit command,
// end of input or cancellation of ctx.
func (d *Dispatcher) Run(ctx context.Context, in io.Reader) error {
	// Releases the reader when the session ends before the input does.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := d.println(d.T.Msg(config.TKeyWelcome)); err != nil {
		return err
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	for {
		if d.Prompt {
			if _, err := fmt.Fprint(d.Out, d.T.Msg(config.TKeyPrompt)); err != nil {
				return fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
			}
		}

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompCLI)
			return nil
		case line, ok = <-lines:
		}

		if !ok {
			select {
			case err := <-scanErr:
				if err != nil {
					return fmt.Errorf("%s: %w", config.ErrReadInput, err)
				}
			default:
			}
			return nil
		}

		reply, quit := d.Execute(line)
		if reply != "" {
			if err := d.println(reply); err != nil {
				return err
			}
		}
		if quit {
			return nil
		}
	}
}

// Execute runs a single command line and returns the text to print and
// whether the session should end. Blank lines yield no output.
func (d *Dispatcher) Execute(line string) (string, bool) {
	name, args := ParseInput(line)
	if name == "" {
		return "", false
	}

	slog.Debug(config.MsgCommand,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyCommand, name,
		config.LogKeyArgs, len(args))

	if name == config.CmdClose || name == config.CmdExit {
		if len(args) == 0 {
			return d.T.Msg(config.TKeyGoodbye), true
		}
		return d.fail(name, &UsageError{Command: name, Usage: name, Got: len(args)}), false
	}

	cmd, found := d.byName[name]
	if !found {
		return d.Theme.Failure(d.T.Msg(config.TKeyInvalidCommand)), false
	}

	var (
		reply string
		err   error
	)
	if len(args) < cmd.minArgs || len(args) > cmd.maxArgs {
		err = &UsageError{Command: cmd.name, Usage: cmd.usage, Got: len(args)}
	} else {
		reply, err = cmd.run(args)
	}
	if err != nil {
		return d.fail(name, err), false
	}
	return reply, false
}

func (d *Dispatcher) fail(name string, err error) string {
	slog.Info(config.MsgCommandFailed,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyCommand, name,
		config.LogKeyError, err)
	return d.Theme.Failure(d.describe(err))
}

func (d *Dispatcher) println(s string) error {
	if _, err := fmt.Fprintln(d.Out, s); err != nil {
		return fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Command handlers
// -----------------------------------------------------------------------------

func (d *Dispatcher) hello([]string) (string, error) {
	return d.T.Msg(config.TKeyGreeting), nil
}

func (d *Dispatcher) add(args []string) (string, error) {
	var birthday *string
	if len(args) == 3 {
		birthday = &args[2]
	}
	if err := d.Book.Add(args[0], args[1], birthday); err != nil {
		return "", err
	}
	return d.T.Msg(config.TKeyContactAdded), nil
}

func (d *Dispatcher) change(args []string) (string, error) {
	ok, err := d.Book.ChangePhone(args[0], args[1])
	if err != nil {
		return "", err
	}
	if !ok {
		return d.T.Msg(config.TKeyContactNotFound), nil
	}
	return d.T.Msg(config.TKeyContactUpdated), nil
}

func (d *Dispatcher) phone(args []string) (string, error) {
	phone, ok := d.Book.Phone(args[0])
	if !ok {
		return d.T.Msg(config.TKeyContactNotFound), nil
	}
	return phone, nil
}

func (d *Dispatcher) all([]string) (string, error) {
	records := d.Book.All()
	if len(records) == 0 {
		return d.T.Msg(config.TKeyNoContacts), nil
	}
	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, d.T.Msgf(config.TKeyContactLine, map[string]any{"Name": r.Name, "Phone": r.Phone}))
	}
	return strings.Join(lines, "\n"), nil
}

func (d *Dispatcher) addBirthday(args []string) (string, error) {
	ok, err := d.Book.SetBirthday(args[0], args[1])
	if err != nil {
		return "", err
	}
	if !ok {
		return d.T.Msg(config.TKeyContactNotFound), nil
	}
	return d.T.Msg(config.TKeyBirthdayAdded), nil
}

// showBirthday does not tell an unknown name apart from a contact without a birthday.
func (d *Dispatcher) showBirthday(args []string) (string, error) {
	b, ok := d.Book.Birthday(args[0])
	if !ok {
		return d.T.Msg(config.TKeyBirthdayNotFound), nil
	}
	return b.String(), nil
}

func (d *Dispatcher) birthdays([]string) (string, error) {
	upcoming := d.Book.UpcomingBirthdays(d.Clock.Now())
	if len(upcoming) == 0 {
		return d.T.Msg(config.TKeyNoUpcoming), nil
	}
	lines := []string{d.Theme.Header(d.T.Msg(config.TKeyUpcomingHeader))}
	for _, u := range upcoming {
		lines = append(lines, d.T.Msgf(config.TKeyBirthdayLine, map[string]any{"Name": u.Name, "Date": u.String()}))
	}
	return strings.Join(lines, "\n"), nil
}

func (d *Dispatcher) calendar([]string) (string, error) {
	data, err := d.Calendar.Generate(d.Book.All())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func (d *Dispatcher) export([]string) (string, error) {
	var buf bytes.Buffer
	if err := engine.EncodeVCards(&buf, d.Book.All()); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\r\n"), nil
}

func (d *Dispatcher) help([]string) (string, error) {
	lines := []string{d.Theme.Header(d.T.Msg(config.TKeyHelpHeader))}
	for _, c := range d.commands {
		lines = append(lines, "  "+c.usage)
	}
	lines = append(lines, "  "+config.CmdClose+" | "+config.CmdExit)
	return strings.Join(lines, "\n"), nil
}
