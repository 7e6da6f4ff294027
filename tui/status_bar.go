// ABOUTME: Implements a single-line status bar for the bottom of the slot browser.
// ABOUTME: Displays the data source, profile and slot counts, time since refresh, and the last action result.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// StatusBarModel displays browser status in a single line.
type StatusBarModel struct {
	source    string
	profiles  int
	slots     int
	refreshed time.Time
	message   string
	failed    bool
	width     int
}

// NewStatusBarModel creates a new StatusBarModel describing the given data source.
func NewStatusBarModel(source string) StatusBarModel {
	return StatusBarModel{source: source}
}

// SetCounts records the listing totals and marks the refresh time.
func (m *StatusBarModel) SetCounts(profiles, slots int) {
	m.profiles = profiles
	m.slots = slots
	m.refreshed = time.Now()
}

// SetMessage shows the result of the last action.
func (m *StatusBarModel) SetMessage(msg string, failed bool) {
	m.message = msg
	m.failed = failed
}

// Message returns the last action result.
func (m StatusBarModel) Message() string {
	return m.message
}

// SetWidth sets the bar width for rendering.
func (m *StatusBarModel) SetWidth(w int) {
	m.width = w
}

// Age returns the time since the last refresh, or zero before the first one.
func (m StatusBarModel) Age() time.Duration {
	if m.refreshed.IsZero() {
		return 0
	}
	return time.Since(m.refreshed)
}

// formatElapsed formats a duration as a human-readable string.
// Durations under a minute show as seconds (e.g. "12s").
// Durations of a minute or more show as minutes and seconds (e.g. "2m30s").
func formatElapsed(d time.Duration) string {
	d = d.Truncate(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) - minutes*60
	return fmt.Sprintf("%dm%ds", minutes, seconds)
}

// View renders the status bar as a single styled line.
func (m StatusBarModel) View() string {
	content := fmt.Sprintf("Store: %s | %d profiles | %d slots | Refreshed %s ago | up/down x e r q",
		m.source, m.profiles, m.slots, formatElapsed(m.Age()))

	if m.message != "" {
		if m.failed {
			content += " | " + ErrorStyle.Render(m.message)
		} else {
			content += " | " + SuccessStyle.Render(m.message)
		}
	}

	style := StatusBarStyle.Width(m.width)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Left, style.Render(content))
}
