package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
	"github.com/tartampluch/go-addressbook/internal/cli"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/engine"
)

// Flags is the process command line.
type Flags struct {
	Version kong.VersionFlag `help:"${desc_version}" short:"V"`
	Debug   bool             `help:"${desc_debug}"`
	Lang    string           `help:"${desc_lang}" enum:"${langs}" default:"${default_lang}"`
	Today   string           `help:"${desc_today}" placeholder:"YYYY-MM-DD"`
}

// main is the application entry point.
// It delegates execution to runMain so that deferred calls (like closing the
// log file) run before the process terminates.
func main() {
	os.Exit(runMain(os.Args[1:]))
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
func runMain(args []string) int {
	flags, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return config.ExitCodeError
	}

	clock, err := resolveClock(flags.Today)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return config.ExitCodeError
	}

	logCloser := setupLogging(flags.Debug)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	// Ctrl+C or SIGTERM ends the command loop.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo(flags, clock)

	if err := run(ctx, flags.Lang, clock); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run wires the address book into the console and blocks until the session ends.
func run(ctx context.Context, lang string, clock engine.Clock) error {
	book := engine.NewAddressBook()
	d := cli.NewDispatcher(book, clock, cli.NewTranslator(lang), os.Stdout)

	// Prompts and colors only make sense for a human at a terminal.
	d.Prompt = isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	if isatty.IsTerminal(os.Stdout.Fd()) {
		d.Theme = cli.NewTerminalTheme()
	}

	return d.Run(ctx, os.Stdin)
}

// parseFlags parses args. --help and --version print and exit from inside kong.
func parseFlags(args []string) (*Flags, error) {
	var flags Flags
	parser, err := kong.New(&flags,
		kong.Name("go-addressbook"),
		kong.Description(config.AppName),
		kong.Vars{
			"version":      strings.TrimSpace(fmt.Sprintf(config.MsgVersionOutput, config.AppName, config.Version, runtime.GOOS, runtime.GOARCH)),
			"desc_version": config.FlagDescVersion,
			"desc_debug":   config.FlagDescDebug,
			"desc_lang":    config.FlagDescLang,
			"desc_today":   config.FlagDescToday,
			"langs":        strings.Join(config.SupportedLanguages, ","),
			"default_lang": config.DefaultLanguage,
		},
	)
	if err != nil {
		return nil, err
	}
	if _, err := parser.Parse(args); err != nil {
		return nil, err
	}
	return &flags, nil
}

// resolveClock pins "today" when the --today flag is set.
func resolveClock(today string) (engine.Clock, error) {
	if today == "" {
		return engine.RealClock{}, nil
	}
	t, err := time.ParseInLocation(config.FlagTodayLayout, today, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrTodayFlag, err)
	}
	return engine.FixedClock{Time: t}, nil
}

// logStartupInfo logs the session settings and environment details.
// The today value is the resolved clock, so a pinned --today shows up as-is.
func logStartupInfo(flags *Flags, clock engine.Clock) {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		config.LogKeyLang, flags.Lang,
		config.LogKeyDebug, flags.Debug,
		config.LogKeyToday, clock.Now().Format(config.FlagTodayLayout),
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger.
// Stdout belongs to the console, so logs go to a file and, in debug mode, to stderr.
func setupLogging(debugMode bool) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	if debugMode {
		writers = append(writers, os.Stderr)
	}

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)

	// Ensure the directory exists with restricted permissions (700).
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
