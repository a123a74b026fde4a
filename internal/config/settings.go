package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds the file locations and query options the user may override.
// Every field has a working default; the YAML file is optional.
type Settings struct {
	// SnapshotPath is the JSON address-book snapshot.
	SnapshotPath string `yaml:"snapshot_path"`

	// CSVPath receives the `export` command output.
	CSVPath string `yaml:"csv_path"`

	// VCardPath is used by `export-vcf` and `import-vcf`.
	VCardPath string `yaml:"vcard_path"`

	// CalendarPath receives the `calendar` command output.
	CalendarPath string `yaml:"calendar_path"`

	// WindowDays is the inclusive upcoming-birthday range.
	WindowDays int `yaml:"window_days"`

	// ReminderTrigger is the ISO8601 alarm offset written into calendar
	// events (e.g. "-P1D"). Empty disables alarms.
	ReminderTrigger string `yaml:"reminder_trigger"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		SnapshotPath:    DefaultSnapshotFile,
		CSVPath:         DefaultCSVFile,
		VCardPath:       DefaultVCardFile,
		CalendarPath:    DefaultCalendarFile,
		WindowDays:      DefaultWindowDays,
		ReminderTrigger: DefaultReminderTrigger,
	}
}

// LoadSettings reads the YAML settings file at path. A missing file is not an
// error: defaults are returned. A present but unreadable file is an error,
// since silently ignoring an explicit configuration would be surprising.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrSettingsRead, err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrSettingsParse, err)
	}

	if settings.WindowDays <= 0 {
		settings.WindowDays = DefaultWindowDays
	}

	slog.Debug(MsgSettingsLoaded,
		LogKeyComponent, CompConfig,
		LogKeyFile, path,
	)
	return settings, nil
}

// Save writes the settings to a YAML file.
func (s *Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), DirPermUserRWX); err != nil {
		return err
	}
	return os.WriteFile(path, data, FilePermExport)
}

// ApplyDataDir prefixes every relative path with dir. Absolute paths set
// explicitly in the settings file are left alone.
func (s *Settings) ApplyDataDir(dir string) {
	for _, p := range []*string{&s.SnapshotPath, &s.CSVPath, &s.VCardPath, &s.CalendarPath} {
		if !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}
