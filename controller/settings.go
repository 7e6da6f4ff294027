// ABOUTME: Editor settings with defaults, loaded from an optional YAML file.
// ABOUTME: Covers status timing, print delay, export naming, ribbon options, and table size.
package controller

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/2389-research/quill/document"
)

// Settings tune the controller's fixed behaviors.
type Settings struct {
	IdleStatus     string        `yaml:"idle_status"`
	StatusDelay    time.Duration `yaml:"status_delay"`
	PrintDelay     time.Duration `yaml:"print_delay"`
	ExportFilename string        `yaml:"export_filename"`
	Fonts          []string      `yaml:"fonts"`
	Sizes          []string      `yaml:"sizes"`
	TableRows      int           `yaml:"table_rows"`
	TableCols      int           `yaml:"table_cols"`

	// LoadFallback restores the older load behavior: fall back to the
	// autosave slot and always apply the placeholder when nothing is found.
	LoadFallback bool `yaml:"load_fallback"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		IdleStatus:     "Ready",
		StatusDelay:    2 * time.Second,
		PrintDelay:     300 * time.Millisecond,
		ExportFilename: document.ExportFilename,
		Fonts:          []string{"Calibri", "Arial", "Georgia", "Times New Roman", "Courier New", "Verdana"},
		Sizes:          []string{"1", "2", "3", "4", "5", "6", "7"},
		TableRows:      document.DefaultTableRows,
		TableCols:      document.DefaultTableCols,
	}
}

// LoadSettings reads settings from a YAML file layered over the defaults.
// A missing file yields the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s.normalized(), nil
}

// normalized replaces unusable values with defaults.
func (s Settings) normalized() Settings {
	d := DefaultSettings()
	if s.IdleStatus == "" {
		s.IdleStatus = d.IdleStatus
	}
	if s.StatusDelay <= 0 {
		s.StatusDelay = d.StatusDelay
	}
	if s.PrintDelay < 0 {
		s.PrintDelay = d.PrintDelay
	}
	if s.ExportFilename == "" {
		s.ExportFilename = d.ExportFilename
	}
	if len(s.Fonts) == 0 {
		s.Fonts = d.Fonts
	}
	if len(s.Sizes) == 0 {
		s.Sizes = d.Sizes
	}
	if s.TableRows < 1 {
		s.TableRows = d.TableRows
	}
	if s.TableCols < 1 {
		s.TableCols = d.TableCols
	}
	return s
}
