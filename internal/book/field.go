package book

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/tartampluch/go-contacts/internal/config"
)

// phoneDigits matches the canonical form of a phone number: all digits,
// exactly 10 or 12 of them.
var phoneDigits = regexp.MustCompile(`^(\d{10}|\d{12})$`)

// phoneStripper removes the separator characters tolerated on input.
var phoneStripper = strings.NewReplacer("+", "", "-", "", " ", "")

// Phone is a validated phone number. The stored value is the canonical
// digit string; formatting characters from the input are not preserved.
// A Phone is immutable: edits replace it wholesale.
type Phone struct {
	value string
}

// ParsePhone validates raw and returns its canonical form.
// It strips '+', '-' and spaces; the remainder must be exactly
// 10 or 12 digits. Returns ErrInvalidPhone otherwise.
func ParsePhone(raw string) (Phone, error) {
	cleaned := phoneStripper.Replace(raw)
	if err := validation.Validate(cleaned,
		validation.Required,
		validation.Match(phoneDigits),
	); err != nil {
		return Phone{}, fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
	}
	return Phone{value: cleaned}, nil
}

// Value returns the canonical digit string.
func (p Phone) Value() string {
	return p.value
}

func (p Phone) String() string {
	return p.value
}

// Birthday is a validated calendar date kept verbatim in its original
// DD.MM.YYYY form, so that display and CSV output reproduce the exact
// string the user typed.
type Birthday struct {
	value string
}

// ParseBirthday validates raw against the literal DD.MM.YYYY layout.
// Non-existent calendar dates (e.g. 31.02.2024) are rejected.
// Returns ErrInvalidDate otherwise.
func ParseBirthday(raw string) (Birthday, error) {
	if err := validation.Validate(raw,
		validation.Required,
		validation.Date(config.DateFormatDisplay),
	); err != nil {
		return Birthday{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return Birthday{value: raw}, nil
}

// Value returns the original DD.MM.YYYY string.
func (b Birthday) Value() string {
	return b.value
}

func (b Birthday) String() string {
	return b.value
}

// Date returns the birthday as a calendar date in UTC.
// The value was validated at construction, so parsing cannot fail here;
// a zero Birthday yields a zero time.
func (b Birthday) Date() time.Time {
	t, _ := time.Parse(config.DateFormatDisplay, b.value)
	return t
}
