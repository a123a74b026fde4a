package storage

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// ExportCSV writes every record as a CSV row to path. The file is UTF-8
// with the header "Name,Phones,Email,Birthday"; phones are joined with
// "; "; the birthday cell is empty when unset. Rows follow collection
// iteration order. An empty book produces only the header.
func ExportCSV(b *book.AddressBook, path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, config.FilePermExport)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrCSVWrite, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(config.CSVHeader); err != nil {
		return fmt.Errorf("%s: %w", config.ErrCSVWrite, err)
	}

	for _, rec := range b.Records() {
		bday := ""
		if rec.Birthday != nil {
			bday = rec.Birthday.Value()
		}
		row := []string{
			rec.Name,
			strings.Join(rec.PhoneValues(), config.PhoneJoin),
			rec.Email,
			bday,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("%s: %w", config.ErrCSVWrite, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrCSVWrite, err)
	}

	slog.Info(config.MsgCSVExported,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, path,
		config.LogKeyRecords, b.Len(),
	)
	return nil
}
