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
	AppName     = "Go Contacts"
	AppID       = "com.github.tartampluch.go-contacts"
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
	// Used for the snapshot and log files, which hold personal data.
	FilePermUserRW fs.FileMode = 0600

	// FilePermExport represents -rw-r--r--. Export files (CSV, vCard, ICS)
	// are meant to be handed to other programs.
	FilePermExport fs.FileMode = 0644

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagData         = "data"
	FlagConfig       = "config"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stderr"
	FlagDescData     = "Directory for the snapshot and export files (default: working directory)"
	FlagDescConfig   = "Path to an optional YAML settings file"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	// Default filenames. These are fixed constants by design: the
	// application takes no environment variables.
	DefaultSnapshotFile = "addressbook.json"
	DefaultCSVFile      = "contacts.csv"
	DefaultVCardFile    = "contacts.vcf"
	DefaultCalendarFile = "birthdays.ics"
	DefaultSettingsFile = "settings.yaml"

	// DefaultWindowDays is the forward-looking range (in days, inclusive)
	// of the upcoming-birthday query.
	DefaultWindowDays = 7

	// Valid digit counts for a phone number after separator stripping.
	PhoneLenShort = 10
	PhoneLenLong  = 12

	// SnapshotVersion identifies the on-disk snapshot schema.
	SnapshotVersion = 1

	// DefaultReminderTrigger is the ISO8601 alarm offset for generated
	// calendar events (one day before).
	DefaultReminderTrigger = "-P1D"

	UIDSalt       = "go-contacts-v1-" // Salt for deterministic UID generation
	UIDHashLength = 16
)

// -----------------------------------------------------------------------------
// Data Formats & Separators
// -----------------------------------------------------------------------------

const (
	// DateFormatDisplay is the literal birthday layout (DD.MM.YYYY).
	// Birthdays are stored and shown verbatim in this layout.
	DateFormatDisplay = "02.01.2006"

	// Date layouts for vCard BDAY conversion.
	DateFormatVCardBasic = "20060102"
	DateFormatVCardDash  = "2006-01-02"

	// PhoneJoin separates phone numbers in display strings and CSV cells.
	PhoneJoin = "; "

	// PhoneListJoin separates phone numbers in the `phone` command output.
	PhoneListJoin = ", "

	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"
)

// CSVHeader is the header row of the CSV export.
var CSVHeader = []string{"Name", "Phones", "Email", "Birthday"}

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
	CmdDelete       = "delete"
	CmdExport       = "export"
	CmdExportVCF    = "export-vcf"
	CmdImportVCF    = "import-vcf"
	CmdCalendar     = "calendar"
	CmdHelp         = "help"
	CmdExit         = "exit"
	CmdClose        = "close"
)

// Usage strings surfaced on argument-count mismatches.
const (
	UsageAdd          = "add <name> <phone> [email]"
	UsageChange       = "change <name> <old_phone> <new_phone>"
	UsagePhone        = "phone <name>"
	UsageAddBirthday  = "add-birthday <name> <DD.MM.YYYY>"
	UsageShowBirthday = "show-birthday <name>"
	UsageDelete       = "delete <name>"
)

// HelpText lists the full command surface.
const HelpText = `
Available commands:
  hello                       - greet bot
  add <name> <phone> [email]  - add / update contact
  change <name> <old> <new>   - change phone
  phone <name>                - show phones
  all                         - list all contacts
  add-birthday <name> <D.M.Y> - add birthday
  show-birthday <name>        - show birthday
  birthdays                   - next week's birthdays
  delete <name>               - delete contact
  export                      - export contacts to CSV
  export-vcf                  - export contacts as vCards
  import-vcf                  - import contacts from vCards
  calendar                    - write birthday calendar (.ics)
  help                        - show this help
  exit | close                - save & quit
`

// -----------------------------------------------------------------------------
// Display Formats & Placeholders
// -----------------------------------------------------------------------------

const (
	PromptDefault       = "> "
	FormatNoPhones      = "<no phones>"
	FormatEmailPart     = ", email: %s"
	FormatBirthdayPart  = ", birthday: %s"
	FormatRecord        = "%s: %s%s%s"
	FormatPhoneList     = "%s: %s"
	FormatUpcomingLine  = "%s: %s"
	FormatShowBirthday  = "%s's birthday is %s"
	FormatContactLine   = " - %s"
	ContactsListHeading = "Contacts:"
)

// -----------------------------------------------------------------------------
// User-Facing Messages
// -----------------------------------------------------------------------------

const (
	MsgGreeting       = "How can I help you?"
	MsgContactAdded   = "Contact added."
	MsgContactUpdated = "Contact updated."
	MsgPhoneUpdated   = "Phone updated."
	MsgBirthdayAdded  = "Birthday added."
	MsgContactDeleted = "Contact deleted."
	MsgNoUpcoming     = "No upcoming birthdays in the next week."
	MsgNoContacts     = "No contacts found."
	MsgUnknownCommand = "Unknown command. Type 'help' for options."
	MsgSavedBye       = "Data saved. Bye!"
	MsgExportedTo     = "Contacts exported to %s"
	MsgImportedFrom   = "Imported %d contact(s) from %s"
	MsgCalendarTo     = "Birthday calendar written to %s"
)

// -----------------------------------------------------------------------------
// Error Messages (Taxonomy)
// -----------------------------------------------------------------------------

const (
	ErrMsgInvalidPhone     = "phone number must contain exactly 10 or 12 digits (separators '+', '-' and spaces are ignored)"
	ErrMsgInvalidDate      = "invalid date format, use DD.MM.YYYY"
	ErrMsgOldPhoneNotFound = "old phone number not found"
	ErrMsgContactNotFound  = "contact not found"
	ErrMsgUsage            = "usage"
	ErrMsgNoPhoneFor       = "no phone found for %s"
	ErrMsgNoBirthdayFor    = "no birthday found for %s"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrSnapshotEncode = "failed to encode snapshot"
	ErrSnapshotWrite  = "failed to write snapshot"
	ErrCSVWrite       = "failed to write CSV export"
	ErrVCardEncode    = "failed to encode vCard"
	ErrVCardOpen      = "failed to open vCard file"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrSettingsRead   = "failed to read settings file"
	ErrSettingsParse  = "failed to parse settings file"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app cache dir"
	ErrAppFailed      = "application failed unexpectedly"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting     = "Starting application"
	MsgAppStop         = "Application stopped gracefully"
	MsgSnapshotLoaded  = "Snapshot loaded"
	MsgSnapshotMissing = "Snapshot file not found, starting empty"
	MsgSnapshotCorrupt = "Snapshot unreadable, starting empty"
	MsgSnapshotSaved   = "Snapshot saved"
	MsgSkippedPhone    = "Skipping invalid phone in snapshot"
	MsgSkippedBirthday = "Skipping invalid birthday in snapshot"
	MsgCSVExported     = "CSV export written"
	MsgVCardExported   = "vCard export written"
	MsgVCardImported   = "vCard import finished"
	MsgSkippedCard     = "Skipping malformed vCard"
	MsgSkippedDate     = "Skipping invalid date format"
	MsgCalendarBuilt   = "Calendar generation successful"
	MsgSettingsLoaded  = "Settings loaded"
	MsgCommandFailed   = "Command failed"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Contacts//Engine//EN"
	ICalCalName   = "Birthdays"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "gocontacts"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	// Event summaries
	FormatEventSummary      = "Birthday: %s (%d)"
	FormatEventSummaryBirth = "Birthday: %s (birth)"

	// StubVCalendar is the minimal valid iCalendar object used when the
	// book holds no birthdays. This prevents clients from flagging the
	// file as invalid.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyPath      = "path"
	LogKeyName      = "name"
	LogKeyValue     = "value"
	LogKeyCount     = "count"
	LogKeyCommand   = "command"
	LogKeyRecords   = "records"
	LogKeyImported  = "imported"
	LogKeySizeBytes = "size_bytes"

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
	CompMain    = "main"
	CompBook    = "book"
	CompStorage = "storage"
	CompCLI     = "cli"
	CompConfig  = "config"
)
