package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/storage"
)

// Controller drives the command loop: it parses input lines, dispatches to
// the address-book core and reports results through the view. Validation
// failures and argument-count mismatches surface as messages, never as
// crashes.
type Controller struct {
	book     *book.AddressBook
	view     UserView
	clock    book.Clock
	settings *config.Settings

	commands map[string]func(args []string) error
	running  bool
}

// NewController wires the command table.
func NewController(b *book.AddressBook, v UserView, clock book.Clock, settings *config.Settings) *Controller {
	c := &Controller{
		book:     b,
		view:     v,
		clock:    clock,
		settings: settings,
	}
	c.commands = map[string]func(args []string) error{
		config.CmdHello:        c.cmdHello,
		config.CmdAdd:          c.cmdAdd,
		config.CmdChange:       c.cmdChange,
		config.CmdPhone:        c.cmdPhone,
		config.CmdAll:          c.cmdAll,
		config.CmdAddBirthday:  c.cmdAddBirthday,
		config.CmdShowBirthday: c.cmdShowBirthday,
		config.CmdBirthdays:    c.cmdBirthdays,
		config.CmdDelete:       c.cmdDelete,
		config.CmdExport:       c.cmdExport,
		config.CmdExportVCF:    c.cmdExportVCF,
		config.CmdImportVCF:    c.cmdImportVCF,
		config.CmdCalendar:     c.cmdCalendar,
		config.CmdHelp:         c.cmdHelp,
		config.CmdExit:         c.cmdExit,
		config.CmdClose:        c.cmdExit,
	}
	return c
}

// Run executes the command loop until exit/close, end of input or context
// cancellation. The book is saved on every way out.
func (c *Controller) Run(ctx context.Context) error {
	c.view.DisplayHelp()
	c.running = true

	for c.running {
		if ctx.Err() != nil {
			return c.cmdExit(nil)
		}

		line, err := c.view.Prompt(config.PromptDefault)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return c.cmdExit(nil)
			}
			return err
		}

		cmd, args := parseInput(line)
		if cmd == "" {
			continue
		}

		handler, ok := c.commands[cmd]
		if !ok {
			c.view.ShowMessage(config.MsgUnknownCommand)
			continue
		}

		if err := handler(args); err != nil {
			c.view.ShowError(err)
			slog.Debug(config.MsgCommandFailed,
				config.LogKeyComponent, config.CompCLI,
				config.LogKeyCommand, cmd,
				config.LogKeyError, err,
			)
		}
	}
	return nil
}

// parseInput splits a raw line into a lowercase command and its arguments.
func parseInput(raw string) (string, []string) {
	parts := strings.Fields(raw)
	if len(parts) == 0 {
		return "", nil
	}
	return strings.ToLower(parts[0]), parts[1:]
}

func usageError(usage string) error {
	return fmt.Errorf("%w: %s", book.ErrUsage, usage)
}

func (c *Controller) cmdHello([]string) error {
	c.view.ShowMessage(config.MsgGreeting)
	return nil
}

// cmdAdd creates a record, or merges into an existing one: the phone is
// appended and a non-empty email replaces the stored one. AddRecord itself
// stays a pure overwrite; the merge is deliberately the caller's policy.
func (c *Controller) cmdAdd(args []string) error {
	if len(args) < 2 {
		return usageError(config.UsageAdd)
	}
	name, phone := args[0], args[1]
	email := ""
	if len(args) > 2 {
		email = args[2]
	}

	rec, found := c.book.Find(name)
	if !found {
		rec = book.NewRecord(name)
		if err := rec.AddPhone(phone); err != nil {
			return err
		}
		rec.Email = email
		c.book.AddRecord(rec)
		c.view.ShowMessage(config.MsgContactAdded)
		return nil
	}

	if err := rec.AddPhone(phone); err != nil {
		return err
	}
	if email != "" {
		rec.Email = email
	}
	c.view.ShowMessage(config.MsgContactUpdated)
	return nil
}

func (c *Controller) cmdChange(args []string) error {
	if len(args) != 3 {
		return usageError(config.UsageChange)
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	rec, found := c.book.Find(name)
	if !found {
		return fmt.Errorf("%w: %s", book.ErrContactNotFound, name)
	}
	if err := rec.EditPhone(oldPhone, newPhone); err != nil {
		return err
	}
	c.view.ShowMessage(config.MsgPhoneUpdated)
	return nil
}

func (c *Controller) cmdPhone(args []string) error {
	if len(args) != 1 {
		return usageError(config.UsagePhone)
	}
	name := args[0]

	rec, found := c.book.Find(name)
	if !found || len(rec.Phones) == 0 {
		return fmt.Errorf(config.ErrMsgNoPhoneFor, name)
	}
	c.view.ShowMessage(fmt.Sprintf(config.FormatPhoneList,
		name, strings.Join(rec.PhoneValues(), config.PhoneListJoin)))
	return nil
}

func (c *Controller) cmdAll([]string) error {
	c.view.DisplayContacts(c.book.Records())
	return nil
}

func (c *Controller) cmdAddBirthday(args []string) error {
	if len(args) != 2 {
		return usageError(config.UsageAddBirthday)
	}
	name, bday := args[0], args[1]

	rec, found := c.book.Find(name)
	if !found {
		return fmt.Errorf("%w: %s", book.ErrContactNotFound, name)
	}
	if err := rec.AddBirthday(bday); err != nil {
		return err
	}
	c.view.ShowMessage(config.MsgBirthdayAdded)
	return nil
}

func (c *Controller) cmdShowBirthday(args []string) error {
	if len(args) != 1 {
		return usageError(config.UsageShowBirthday)
	}
	name := args[0]

	rec, found := c.book.Find(name)
	if !found || rec.Birthday == nil {
		return fmt.Errorf(config.ErrMsgNoBirthdayFor, name)
	}
	c.view.ShowMessage(fmt.Sprintf(config.FormatShowBirthday, name, rec.Birthday.Value()))
	return nil
}

func (c *Controller) cmdBirthdays([]string) error {
	upcoming := c.book.UpcomingWithin(c.clock.Now(), c.settings.WindowDays)
	if len(upcoming) == 0 {
		c.view.ShowMessage(config.MsgNoUpcoming)
		return nil
	}

	lines := make([]string, len(upcoming))
	for i, e := range upcoming {
		lines[i] = fmt.Sprintf(config.FormatUpcomingLine, e.Name, e.DateString())
	}
	c.view.ShowMessage(strings.Join(lines, "\n"))
	return nil
}

func (c *Controller) cmdDelete(args []string) error {
	if len(args) != 1 {
		return usageError(config.UsageDelete)
	}
	name := args[0]

	if _, found := c.book.Find(name); !found {
		return fmt.Errorf("%w: %s", book.ErrContactNotFound, name)
	}
	c.book.Delete(name)
	c.view.ShowMessage(config.MsgContactDeleted)
	return nil
}

func (c *Controller) cmdExport([]string) error {
	if err := storage.ExportCSV(c.book, c.settings.CSVPath); err != nil {
		return err
	}
	c.view.ShowMessage(fmt.Sprintf(config.MsgExportedTo, c.settings.CSVPath))
	return nil
}

func (c *Controller) cmdExportVCF([]string) error {
	if err := storage.ExportVCard(c.book, c.settings.VCardPath); err != nil {
		return err
	}
	c.view.ShowMessage(fmt.Sprintf(config.MsgExportedTo, c.settings.VCardPath))
	return nil
}

func (c *Controller) cmdImportVCF([]string) error {
	imported, err := storage.ImportVCard(c.book, c.settings.VCardPath)
	if err != nil {
		return err
	}
	c.view.ShowMessage(fmt.Sprintf(config.MsgImportedFrom, imported, c.settings.VCardPath))
	return nil
}

func (c *Controller) cmdCalendar([]string) error {
	if err := storage.WriteCalendar(c.book, c.clock, c.settings.ReminderTrigger, c.settings.CalendarPath); err != nil {
		return err
	}
	c.view.ShowMessage(fmt.Sprintf(config.MsgCalendarTo, c.settings.CalendarPath))
	return nil
}

func (c *Controller) cmdHelp([]string) error {
	c.view.DisplayHelp()
	return nil
}

func (c *Controller) cmdExit([]string) error {
	if err := storage.Save(c.book, c.settings.SnapshotPath); err != nil {
		return err
	}
	c.view.ShowMessage(config.MsgSavedBye)
	c.running = false
	return nil
}
