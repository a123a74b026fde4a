package book_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/book"
)

func TestRecord_AddPhone(t *testing.T) {
	rec := book.NewRecord("Ivan")

	require.NoError(t, rec.AddPhone("050-123-45-67"))
	require.NoError(t, rec.AddPhone("+380501234567"))
	// Duplicates are permitted.
	require.NoError(t, rec.AddPhone("0501234567"))

	assert.Equal(t, []string{"0501234567", "380501234567", "0501234567"}, rec.PhoneValues())

	err := rec.AddPhone("123")
	assert.ErrorIs(t, err, book.ErrInvalidPhone)
	assert.Len(t, rec.Phones, 3, "A rejected phone must not be appended")
}

func TestRecord_RemovePhone(t *testing.T) {
	rec := book.NewRecord("Ivan")
	require.NoError(t, rec.AddPhone("0501234567"))
	require.NoError(t, rec.AddPhone("0937654321"))
	require.NoError(t, rec.AddPhone("0501234567"))

	// Every matching phone goes, order of the rest is preserved.
	rec.RemovePhone("0501234567")
	assert.Equal(t, []string{"0937654321"}, rec.PhoneValues())

	// Removing an absent value is a no-op.
	rec.RemovePhone("0000000000")
	assert.Equal(t, []string{"0937654321"}, rec.PhoneValues())
}

func TestRecord_EditPhone(t *testing.T) {
	rec := book.NewRecord("Ivan")
	require.NoError(t, rec.AddPhone("1234567890"))

	require.NoError(t, rec.EditPhone("1234567890", "0987654321"))

	_, found := rec.FindPhone("1234567890")
	assert.False(t, found, "The old value must be gone after a successful edit")
	_, found = rec.FindPhone("0987654321")
	assert.True(t, found)

	// A missing old number is reported even when the new number is junk:
	// the lookup happens before validation.
	err := rec.EditPhone("0000000000", "...")
	assert.ErrorIs(t, err, book.ErrOldPhoneNotFound)

	// An invalid replacement leaves the list untouched.
	err = rec.EditPhone("0987654321", "123")
	assert.ErrorIs(t, err, book.ErrInvalidPhone)
	assert.Equal(t, []string{"0987654321"}, rec.PhoneValues())
}

func TestRecord_EditPhone_FirstMatchOnly(t *testing.T) {
	rec := book.NewRecord("Ivan")
	require.NoError(t, rec.AddPhone("1234567890"))
	require.NoError(t, rec.AddPhone("1234567890"))

	require.NoError(t, rec.EditPhone("1234567890", "0987654321"))
	assert.Equal(t, []string{"0987654321", "1234567890"}, rec.PhoneValues())
}

func TestRecord_AddBirthday(t *testing.T) {
	rec := book.NewRecord("Ivan")
	assert.Nil(t, rec.Birthday)

	require.NoError(t, rec.AddBirthday("14.06.1990"))
	require.NotNil(t, rec.Birthday)
	assert.Equal(t, "14.06.1990", rec.Birthday.Value())

	// A second call overwrites the single birthday field.
	require.NoError(t, rec.AddBirthday("15.06.1991"))
	assert.Equal(t, "15.06.1991", rec.Birthday.Value())

	err := rec.AddBirthday("31.02.2024")
	assert.ErrorIs(t, err, book.ErrInvalidDate)
	assert.Equal(t, "15.06.1991", rec.Birthday.Value(), "A rejected date must not clobber the stored one")
}

// TestRecord_String verifies the display contract, including the
// "<no phones>" placeholder and the optional email/birthday parts.
func TestRecord_String(t *testing.T) {
	tests := []struct {
		name  string
		setup func() *book.Record
		want  string
	}{
		{
			name: "No phones",
			setup: func() *book.Record {
				return book.NewRecord("Ivan")
			},
			want: "Ivan: <no phones>",
		},
		{
			name: "Phones only",
			setup: func() *book.Record {
				rec := book.NewRecord("Ivan")
				_ = rec.AddPhone("0501234567")
				_ = rec.AddPhone("0937654321")
				return rec
			},
			want: "Ivan: 0501234567; 0937654321",
		},
		{
			name: "Full record",
			setup: func() *book.Record {
				rec := book.NewRecord("Maria")
				_ = rec.AddPhone("0501234567")
				rec.Email = "maria@example.com"
				_ = rec.AddBirthday("01.12.1985")
				return rec
			},
			want: "Maria: 0501234567, email: maria@example.com, birthday: 01.12.1985",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.setup().String())
		})
	}
}
