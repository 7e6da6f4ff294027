// ABOUTME: Bubble Tea message types and the commands that produce them from the slot backend.
// ABOUTME: Storage work runs inside tea.Cmd functions so Update stays free of I/O.
package tui

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/2389-research/quill/document"
	"github.com/2389-research/quill/store"
)

// SlotsLoadedMsg carries every stored slot across all profiles.
type SlotsLoadedMsg struct {
	Entries []store.Entry
	Err     error
}

// AutosaveClearedMsg reports the outcome of clearing a profile's autosave slot.
type AutosaveClearedMsg struct {
	Profile string
	Err     error
}

// DocExportedMsg reports where a profile's doc slot was exported.
type DocExportedMsg struct {
	Profile string
	Path    string
	Err     error
}

// LoadSlotsCmd reads every profile's slots from the backend.
func LoadSlotsCmd(backend store.Backend) tea.Cmd {
	return func() tea.Msg {
		profiles, err := backend.Profiles()
		if err != nil {
			return SlotsLoadedMsg{Err: fmt.Errorf("list profiles: %w", err)}
		}
		var entries []store.Entry
		for _, p := range profiles {
			es, err := backend.Entries(p)
			if err != nil {
				return SlotsLoadedMsg{Err: fmt.Errorf("list slots for %s: %w", p, err)}
			}
			entries = append(entries, es...)
		}
		return SlotsLoadedMsg{Entries: entries}
	}
}

// ClearAutosaveCmd removes the autosave slot of profile.
func ClearAutosaveCmd(backend store.Backend, profile string) tea.Cmd {
	return func() tea.Msg {
		err := backend.Remove(profile, store.KeyAutosave)
		if err != nil {
			err = fmt.Errorf("clear autosave: %w", err)
		}
		return AutosaveClearedMsg{Profile: profile, Err: err}
	}
}

// ExportDocCmd writes profile's doc slot as a word-processor document into dir.
func ExportDocCmd(backend store.Backend, profile, dir, filename string) tea.Cmd {
	return func() tea.Msg {
		markup, ok, err := backend.Get(profile, store.KeyDoc)
		if err != nil {
			return DocExportedMsg{Profile: profile, Err: fmt.Errorf("read doc: %w", err)}
		}
		if !ok || document.IsBlank(markup) {
			return DocExportedMsg{Profile: profile, Err: fmt.Errorf("profile %s has no saved document", profile)}
		}
		path := filepath.Join(dir, profile+"-"+filename)
		if err := os.WriteFile(path, document.ExportShell(markup), 0o644); err != nil {
			return DocExportedMsg{Profile: profile, Err: fmt.Errorf("write export: %w", err)}
		}
		return DocExportedMsg{Profile: profile, Path: path}
	}
}
