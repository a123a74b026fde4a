package cli_test

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/cli"
	"github.com/tartampluch/go-contacts/internal/config"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// scriptedView feeds a fixed command script to the controller and records
// everything the controller shows.
type scriptedView struct {
	inputs    []string
	messages  []string
	errors    []string
	helpShown int
	displayed [][]*book.Record
}

func (v *scriptedView) Prompt(string) (string, error) {
	if len(v.inputs) == 0 {
		return "", io.EOF
	}
	line := v.inputs[0]
	v.inputs = v.inputs[1:]
	return line, nil
}

func (v *scriptedView) ShowMessage(message string) {
	v.messages = append(v.messages, message)
}

func (v *scriptedView) ShowError(err error) {
	v.errors = append(v.errors, err.Error())
}

func (v *scriptedView) DisplayContacts(records []*book.Record) {
	v.displayed = append(v.displayed, records)
}

func (v *scriptedView) DisplayHelp() {
	v.helpShown++
}

func run(t *testing.T, b *book.AddressBook, clock book.Clock, inputs ...string) (*scriptedView, *config.Settings) {
	t.Helper()
	settings := config.DefaultSettings()
	settings.ApplyDataDir(t.TempDir())

	view := &scriptedView{inputs: inputs}
	ctl := cli.NewController(b, view, clock, settings)
	require.NoError(t, ctl.Run(context.Background()))
	return view, settings
}

func TestController_AddAndMerge(t *testing.T) {
	b := book.New()
	view, _ := run(t, b, book.RealClock{},
		"add Ivan 050-123-45-67",
		"add Ivan 0937654321 ivan@example.com",
		"exit",
	)

	rec, ok := b.Find("Ivan")
	require.True(t, ok)
	assert.Equal(t, []string{"0501234567", "0937654321"}, rec.PhoneValues(),
		"The second add merges the phone into the existing record")
	assert.Equal(t, "ivan@example.com", rec.Email)

	assert.Contains(t, view.messages, config.MsgContactAdded)
	assert.Contains(t, view.messages, config.MsgContactUpdated)
	assert.Contains(t, view.messages, config.MsgSavedBye)
	assert.Equal(t, 1, view.helpShown, "Help is shown once at startup")
}

func TestController_ChangePhone(t *testing.T) {
	b := book.New()
	view, _ := run(t, b, book.RealClock{},
		"change Ghost 1234567890 0987654321",
		"add Ivan 1234567890",
		"change Ivan 0000000000 0987654321",
		"change Ivan 1234567890 0987654321",
		"exit",
	)

	require.Len(t, view.errors, 2)
	assert.Contains(t, view.errors[0], config.ErrMsgContactNotFound)
	assert.Contains(t, view.errors[1], config.ErrMsgOldPhoneNotFound)
	assert.Contains(t, view.messages, config.MsgPhoneUpdated)

	rec, _ := b.Find("Ivan")
	assert.Equal(t, []string{"0987654321"}, rec.PhoneValues())
}

func TestController_UsageAndValidationErrors(t *testing.T) {
	view, _ := run(t, book.New(), book.RealClock{},
		"add OnlyName",
		"add Ivan 123",
		"add-birthday Ivan",
		"exit",
	)

	require.Len(t, view.errors, 3)
	assert.Contains(t, view.errors[0], config.UsageAdd)
	assert.Contains(t, view.errors[1], config.ErrMsgInvalidPhone)
	assert.Contains(t, view.errors[2], config.UsageAddBirthday)
}

func TestController_BirthdayCommands(t *testing.T) {
	// Monday, June 10th 2024; June 15th is a Saturday.
	clock := MockClock{CurrentTime: time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)}

	view, _ := run(t, book.New(), clock,
		"add Maria 0501234567",
		"add-birthday Maria 15.06.1990",
		"show-birthday Maria",
		"birthdays",
		"exit",
	)

	assert.Empty(t, view.errors)
	assert.Contains(t, view.messages, "Maria's birthday is 15.06.1990")
	assert.Contains(t, view.messages, "Maria: 17.06.2024",
		"The Saturday occurrence is announced on the following Monday")
}

func TestController_BirthdaysEmpty(t *testing.T) {
	view, _ := run(t, book.New(), book.RealClock{}, "birthdays", "exit")
	assert.Contains(t, view.messages, config.MsgNoUpcoming)
}

func TestController_DeleteAndAll(t *testing.T) {
	b := book.New()
	view, _ := run(t, b, book.RealClock{},
		"add Ivan 0501234567",
		"add Maria 0937654321",
		"all",
		"delete Ivan",
		"delete Ivan",
		"exit",
	)

	require.Len(t, view.displayed, 1)
	assert.Len(t, view.displayed[0], 2)

	assert.Equal(t, 1, b.Len())
	require.Len(t, view.errors, 1, "Deleting a missing contact is reported")
	assert.Contains(t, view.errors[0], config.ErrMsgContactNotFound)
}

func TestController_UnknownAndEmptyInput(t *testing.T) {
	view, _ := run(t, book.New(), book.RealClock{},
		"",
		"   ",
		"frobnicate",
		"exit",
	)

	unknown := 0
	for _, m := range view.messages {
		if m == config.MsgUnknownCommand {
			unknown++
		}
	}
	assert.Equal(t, 1, unknown, "Blank lines are ignored, only real unknown commands are reported")
}

func TestController_ExportWritesCSV(t *testing.T) {
	view, settings := run(t, book.New(), book.RealClock{},
		"add Ivan 0501234567",
		"export",
		"exit",
	)

	assert.Empty(t, view.errors)
	data, err := os.ReadFile(settings.CSVPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Name,Phones,Email,Birthday"))
	assert.Contains(t, string(data), "Ivan,0501234567")
}

func TestController_EOFSavesAndExits(t *testing.T) {
	// No explicit exit: the script runs dry and Prompt reports io.EOF.
	view, settings := run(t, book.New(), book.RealClock{},
		"add Ivan 0501234567",
	)

	assert.Contains(t, view.messages, config.MsgSavedBye)
	_, err := os.Stat(settings.SnapshotPath)
	assert.NoError(t, err, "The snapshot is written on the way out")
}

func TestController_VCardRoundTripCommands(t *testing.T) {
	b := book.New()
	view, settings := run(t, b, book.RealClock{},
		"add Ivan 0501234567 ivan@example.com",
		"add-birthday Ivan 14.06.1990",
		"export-vcf",
		"exit",
	)
	require.Empty(t, view.errors)

	// Import into a fresh controller pointed at the same vCard file.
	fresh := book.New()
	freshSettings := config.DefaultSettings()
	freshSettings.ApplyDataDir(t.TempDir())
	freshSettings.VCardPath = settings.VCardPath

	importView := &scriptedView{inputs: []string{"import-vcf", "exit"}}
	ctl := cli.NewController(fresh, importView, book.RealClock{}, freshSettings)
	require.NoError(t, ctl.Run(context.Background()))

	require.Empty(t, importView.errors)
	rec, ok := fresh.Find("Ivan")
	require.True(t, ok)
	assert.Equal(t, []string{"0501234567"}, rec.PhoneValues())
	assert.Equal(t, "ivan@example.com", rec.Email)
	require.NotNil(t, rec.Birthday)
	assert.Equal(t, "14.06.1990", rec.Birthday.Value())
}

func TestController_CalendarCommand(t *testing.T) {
	clock := MockClock{CurrentTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}

	view, settings := run(t, book.New(), clock,
		"add Maria 0501234567",
		"add-birthday Maria 31.12.1990",
		"calendar",
		"exit",
	)
	require.Empty(t, view.errors)

	data, err := os.ReadFile(settings.CalendarPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "SUMMARY:Birthday: Maria (35)")
	assert.Contains(t, string(data), "TRIGGER:-P1D", "The default reminder trigger is applied")
}
