package config

import (
	"io/fs"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Address Book"
	AppID       = "com.github.tartampluch.go-addressbook"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagDescVersion  = "Show application version and exit."
	FlagDescDebug    = "Enable debug logging (mirrored to stderr)."
	FlagDescLang     = "Language of the console messages."
	FlagDescToday    = "Pin the current date (YYYY-MM-DD) used by birthday queries."
	MsgVersionOutput = "%s version %s (%s/%s)\n"
	FlagTodayLayout  = "2006-01-02"
)

// -----------------------------------------------------------------------------
// Languages
// -----------------------------------------------------------------------------

const DefaultLanguage = "en"

// SupportedLanguages defines the list of available console languages (ISO 639-1).
var SupportedLanguages = []string{"en", "uk"}

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

const (
	CmdHello        = "hello"
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdAll          = "all"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdCalendar     = "calendar"
	CmdExport       = "export"
	CmdHelp         = "help"
	CmdClose        = "close"
	CmdExit         = "exit"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWelcome          = "msg_welcome"
	TKeyPrompt           = "msg_prompt"
	TKeyGreeting         = "msg_greeting"
	TKeyGoodbye          = "msg_goodbye"
	TKeyInvalidCommand   = "msg_invalid_command"
	TKeyContactAdded     = "msg_contact_added"
	TKeyContactUpdated   = "msg_contact_updated"
	TKeyContactNotFound  = "msg_contact_not_found"
	TKeyNoContacts       = "msg_no_contacts"
	TKeyBirthdayAdded    = "msg_birthday_added"
	TKeyBirthdayNotFound = "msg_birthday_not_found"
	TKeyUpcomingHeader   = "msg_upcoming_header"
	TKeyNoUpcoming       = "msg_no_upcoming"
	TKeyHelpHeader       = "msg_help_header"
	TKeyUsage            = "msg_usage"         // Requires Usage
	TKeyContactLine      = "fmt_contact"       // Requires Name, Phone
	TKeyBirthdayLine     = "fmt_birthday"      // Requires Name, Date
	TKeyEvtSummary       = "event_summary"     // Requires Name
	TKeyEvtSummaryAge    = "event_summary_age" // Requires Name, Age
	TKeyErrBirthday      = "err_birthday_format"
	TKeyErrPhone         = "err_phone_format"
	TKeyErrName          = "err_name_empty"
	TKeyErrInternal      = "err_internal" // Requires Error
)

// -----------------------------------------------------------------------------
// Domain Rules & Formats
// -----------------------------------------------------------------------------

const (
	// DateFormatBirthday is the only accepted birthday layout (DD.MM.YYYY).
	DateFormatBirthday = "02.01.2006"

	// PhonePattern matches exactly ten ASCII decimal digits.
	PhonePattern = `^[0-9]{10}$`

	// DaysPerWeek sizes the upcoming-birthday window.
	DaysPerWeek = 7

	// vCard BDAY layout (basic ISO 8601 date).
	DateFormatVCard = "20060102"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Address Book//Engine//EN"
	ICalCalName = "Birthdays"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "goaddressbook"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	VCardVersion = "4.0"
	TelTypeVoice = "voice"

	// UID Generation
	UIDSalt         = "go-addressbook-v1-"
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Fallbacks
// -----------------------------------------------------------------------------

const (
	FallbackSummary    = "Birthday: %s"
	FallbackSummaryAge = "Birthday: %s (%d)"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrICalEncode    = "failed to encode iCalendar data"
	ErrVCardEncode   = "failed to encode vCard data"
	ErrLogFile       = "failed to open log file"
	ErrCacheDir      = "could not determine user cache dir"
	ErrCreateDir     = "could not create app cache dir"
	ErrAppFailed     = "application failed unexpectedly"
	ErrLocalesAccess = "failed to access embedded locales"
	ErrLocaleLoad    = "failed to load locale file"
	ErrReadInput     = "failed to read command input"
	ErrWriteOutput   = "failed to write command output"
	ErrTodayFlag     = "invalid --today value"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, leaving command loop"
	MsgCommand       = "Command received"
	MsgCommandFailed = "Command rejected"
	MsgContactAdded  = "Contact added"
	MsgPhoneChanged  = "Phone changed"
	MsgBirthdaySet   = "Birthday set"
	MsgLookupMiss    = "Contact lookup missed"
	MsgBirthdayUnset = "Contact has no birthday"
	MsgUpcoming      = "Upcoming birthdays computed"
	MsgGenSuccess    = "Calendar generation successful"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyCommand   = "command"
	LogKeyArgs      = "args"
	LogKeyName      = "name"
	LogKeyCount     = "count"
	LogKeyTotal     = "total"
	LogKeyEvents    = "events"
	LogKeyContacts  = "contacts"
	LogKeyStart     = "window_start"
	LogKeyEnd       = "window_end"
	LogKeyToday     = "today"
	LogKeyDebug     = "debug"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompEngine   = "engine"
	CompCalendar = "calendar"
	CompCLI      = "cli"
	CompMain     = "main"
	CompI18n     = "i18n"
)
