package storage

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// vcardBirthdayLayouts are the BDAY layouts accepted on import.
var vcardBirthdayLayouts = []string{
	config.DateFormatVCardBasic,
	config.DateFormatVCardDash,
}

// ExportVCard writes every record as a vCard 4.0 to path.
// The BDAY property uses the basic ISO layout (YYYYMMDD) as the standard
// requires; the verbatim DD.MM.YYYY form lives only in the snapshot.
func ExportVCard(b *book.AddressBook, path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, config.FilePermExport)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrVCardOpen, err)
	}
	defer func() { _ = f.Close() }()

	enc := vcard.NewEncoder(f)
	for _, rec := range b.Records() {
		card := make(vcard.Card)
		card.SetValue(vcard.FieldFormattedName, rec.Name)
		for _, p := range rec.PhoneValues() {
			card.AddValue(vcard.FieldTelephone, p)
		}
		if rec.Email != "" {
			card.SetValue(vcard.FieldEmail, rec.Email)
		}
		if rec.Birthday != nil {
			card.SetValue(vcard.FieldBirthday, rec.Birthday.Date().Format(config.DateFormatVCardBasic))
		}
		vcard.ToV4(card)

		if err := enc.Encode(card); err != nil {
			return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
	}

	slog.Info(config.MsgVCardExported,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, path,
		config.LogKeyRecords, b.Len(),
	)
	return nil
}

// ImportVCard merges the cards found at path into the book and returns the
// number of cards applied. Existing records are merged (phones appended,
// email and birthday updated when present); unknown names become new
// records. Cards without a formatted name and unparseable fields are
// skipped, mirroring the lenient snapshot load.
func ImportVCard(b *book.AddressBook, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", config.ErrVCardOpen, err)
	}
	defer func() { _ = f.Close() }()

	log := slog.With(
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, path,
	)

	dec := vcard.NewDecoder(f)
	imported := 0
	for {
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Skip the malformed card and keep going to maximize
			// data recovery.
			log.Warn(config.MsgSkippedCard, config.LogKeyError, err)
			continue
		}

		name := card.PreferredValue(vcard.FieldFormattedName)
		if name == "" {
			log.Warn(config.MsgSkippedCard, config.LogKeyError, "missing FN")
			continue
		}

		rec, exists := b.Find(name)
		if !exists {
			rec = book.NewRecord(name)
		}

		for _, tel := range card.Values(vcard.FieldTelephone) {
			if err := rec.AddPhone(tel); err != nil {
				log.Debug(config.MsgSkippedPhone,
					config.LogKeyName, name,
					config.LogKeyValue, tel,
				)
			}
		}
		if email := card.PreferredValue(vcard.FieldEmail); email != "" {
			rec.Email = email
		}
		if bday := card.PreferredValue(vcard.FieldBirthday); bday != "" {
			if display, ok := convertVCardBirthday(bday); ok {
				_ = rec.AddBirthday(display)
			} else {
				log.Debug(config.MsgSkippedDate,
					config.LogKeyName, name,
					config.LogKeyValue, bday,
				)
			}
		}

		if !exists {
			b.AddRecord(rec)
		}
		imported++
	}

	log.Info(config.MsgVCardImported, config.LogKeyImported, imported)
	return imported, nil
}

// convertVCardBirthday maps an ISO BDAY value onto the display layout.
func convertVCardBirthday(value string) (string, bool) {
	for _, layout := range vcardBirthdayLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(config.DateFormatDisplay), true
		}
	}
	return "", false
}
