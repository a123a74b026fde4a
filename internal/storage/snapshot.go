// Package storage persists the address book and renders it to interchange
// formats: a JSON snapshot, CSV, vCard and iCalendar.
package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// snapshot is the on-disk schema of the address book. The format is explicit
// and versioned so it stays stable across implementations:
//
//	{
//	  "version": 1,
//	  "records": [
//	    {"name": "...", "phones": ["..."], "email": "...", "birthday": "DD.MM.YYYY"}
//	  ]
//	}
//
// Records appear in collection iteration order; phones keep insertion order;
// the birthday string is the verbatim canonical value.
type snapshot struct {
	Version int              `json:"version"`
	Records []snapshotRecord `json:"records"`
}

type snapshotRecord struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Email    string   `json:"email,omitempty"`
	Birthday string   `json:"birthday,omitempty"`
}

// Save writes the whole book to path as a JSON snapshot. The write fully
// completes before returning; there is no partial-write recovery.
func Save(b *book.AddressBook, path string) error {
	snap := snapshot{Version: config.SnapshotVersion}
	for _, rec := range b.Records() {
		sr := snapshotRecord{
			Name:   rec.Name,
			Phones: rec.PhoneValues(),
			Email:  rec.Email,
		}
		if rec.Birthday != nil {
			sr.Birthday = rec.Birthday.Value()
		}
		snap.Records = append(snap.Records, sr)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotEncode, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, config.DirPermUserRWX); err != nil {
			return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
		}
	}
	if err := os.WriteFile(path, data, config.FilePermUserRW); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
	}

	slog.Info(config.MsgSnapshotSaved,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, path,
		config.LogKeyRecords, b.Len(),
		config.LogKeySizeBytes, len(data),
	)
	return nil
}

// Load restores the book from path. A missing or unreadable snapshot is not
// an error: the session starts with an empty book. Individual fields that
// fail re-validation (a hand-edited file) are skipped with a warning rather
// than poisoning the whole load.
func Load(path string) *book.AddressBook {
	log := slog.With(
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, path,
	)

	b := book.New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info(config.MsgSnapshotMissing)
		} else {
			log.Warn(config.MsgSnapshotCorrupt, config.LogKeyError, err)
		}
		return b
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Warn(config.MsgSnapshotCorrupt, config.LogKeyError, err)
		return book.New()
	}

	for _, sr := range snap.Records {
		if sr.Name == "" {
			continue
		}
		rec := book.NewRecord(sr.Name)
		for _, p := range sr.Phones {
			if err := rec.AddPhone(p); err != nil {
				log.Warn(config.MsgSkippedPhone,
					config.LogKeyName, sr.Name,
					config.LogKeyValue, p,
				)
			}
		}
		rec.Email = sr.Email
		if sr.Birthday != "" {
			if err := rec.AddBirthday(sr.Birthday); err != nil {
				log.Warn(config.MsgSkippedBirthday,
					config.LogKeyName, sr.Name,
					config.LogKeyValue, sr.Birthday,
				)
			}
		}
		b.AddRecord(rec)
	}

	log.Info(config.MsgSnapshotLoaded, config.LogKeyRecords, b.Len())
	return b
}
