// Package cli contains the console front end: a narrow view interface and
// the command controller that maps user input onto the address-book core.
package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// UserView is the capability interface the controller talks to. The core
// never depends on a concrete console implementation, which keeps the
// command logic testable without a terminal.
type UserView interface {
	// Prompt shows message and returns one line of user input.
	// io.EOF signals that the input stream is exhausted.
	Prompt(message string) (string, error)

	// ShowMessage displays an informational message.
	ShowMessage(message string)

	// ShowError displays a recoverable error.
	ShowError(err error)

	// DisplayContacts lists the given records.
	DisplayContacts(records []*book.Record)

	// DisplayHelp shows the command reference.
	DisplayHelp()
}

// Styles for the console output.
var (
	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

// ConsoleView implements UserView on a line-oriented terminal.
type ConsoleView struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsoleView creates a view reading from in and writing to out.
func NewConsoleView(in io.Reader, out io.Writer) *ConsoleView {
	return &ConsoleView{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Prompt prints the prompt without a newline and reads one input line.
func (v *ConsoleView) Prompt(message string) (string, error) {
	fmt.Fprint(v.out, promptStyle.Render(message))
	if !v.in.Scan() {
		if err := v.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return v.in.Text(), nil
}

// ShowMessage prints message on its own line.
func (v *ConsoleView) ShowMessage(message string) {
	fmt.Fprintln(v.out, message)
}

// ShowError prints a highlighted error message.
func (v *ConsoleView) ShowError(err error) {
	fmt.Fprintln(v.out, errorStyle.Render(err.Error()))
}

// DisplayContacts lists the records one per line, or a placeholder when the
// book is empty.
func (v *ConsoleView) DisplayContacts(records []*book.Record) {
	if len(records) == 0 {
		fmt.Fprintln(v.out, config.MsgNoContacts)
		return
	}
	fmt.Fprintln(v.out, headingStyle.Render(config.ContactsListHeading))
	for _, rec := range records {
		fmt.Fprintf(v.out, config.FormatContactLine+"\n", rec)
	}
}

// DisplayHelp shows the command reference.
func (v *ConsoleView) DisplayHelp() {
	fmt.Fprintln(v.out, dimStyle.Render(config.HelpText))
}
