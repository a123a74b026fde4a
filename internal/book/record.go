package book

import (
	"fmt"
	"strings"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Record represents one contact: a non-empty identifying name, an ordered
// list of phones, a free-form email and an optional birthday.
// The name doubles as the key in the owning AddressBook.
type Record struct {
	Name     string
	Phones   []Phone
	Email    string
	Birthday *Birthday
}

// NewRecord creates an empty record for name.
func NewRecord(name string) *Record {
	return &Record{Name: name}
}

// AddPhone validates raw and appends it to the phone list.
// Duplicates are permitted; insertion order is preserved.
func (r *Record) AddPhone(raw string) error {
	p, err := ParsePhone(raw)
	if err != nil {
		return err
	}
	r.Phones = append(r.Phones, p)
	return nil
}

// RemovePhone removes every phone whose canonical value equals value.
// Removing a phone that is not present is a no-op, not an error.
func (r *Record) RemovePhone(value string) {
	kept := r.Phones[:0]
	for _, p := range r.Phones {
		if p.Value() != value {
			kept = append(kept, p)
		}
	}
	r.Phones = kept
}

// EditPhone replaces the first phone equal to oldValue with a validated
// newValue. The old number is located before newValue is validated, so a
// miss is always reported as ErrOldPhoneNotFound.
func (r *Record) EditPhone(oldValue, newValue string) error {
	for i, p := range r.Phones {
		if p.Value() == oldValue {
			np, err := ParsePhone(newValue)
			if err != nil {
				return err
			}
			r.Phones[i] = np
			return nil
		}
	}
	return ErrOldPhoneNotFound
}

// FindPhone returns the first phone with the given canonical value.
func (r *Record) FindPhone(value string) (Phone, bool) {
	for _, p := range r.Phones {
		if p.Value() == value {
			return p, true
		}
	}
	return Phone{}, false
}

// AddBirthday validates raw and sets or overwrites the birthday.
func (r *Record) AddBirthday(raw string) error {
	b, err := ParseBirthday(raw)
	if err != nil {
		return err
	}
	r.Birthday = &b
	return nil
}

// PhoneValues returns the canonical phone strings in insertion order.
func (r *Record) PhoneValues() []string {
	values := make([]string, len(r.Phones))
	for i, p := range r.Phones {
		values[i] = p.Value()
	}
	return values
}

// String renders the record for listing:
// "<name>: <phone1>; <phone2>[, email: <email>][, birthday: <birthday>]".
func (r *Record) String() string {
	phones := config.FormatNoPhones
	if len(r.Phones) > 0 {
		phones = strings.Join(r.PhoneValues(), config.PhoneJoin)
	}

	emailPart := ""
	if r.Email != "" {
		emailPart = fmt.Sprintf(config.FormatEmailPart, r.Email)
	}

	bdayPart := ""
	if r.Birthday != nil {
		bdayPart = fmt.Sprintf(config.FormatBirthdayPart, r.Birthday.Value())
	}

	return fmt.Sprintf(config.FormatRecord, r.Name, phones, emailPart, bdayPart)
}
