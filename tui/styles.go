// ABOUTME: Defines lipgloss style constants for the slot browser panels, slot keys, and status line.
// ABOUTME: Provides StyleForKey to map slot keys to their display styles.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/2389-research/quill/store"
)

var (
	// Panel borders
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))

	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	// Slot key colors
	DocStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	AutosaveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	ThemeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	OtherKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	// Row selection
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)
	DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	// Preview labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(10)
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

// StyleForKey returns the style used to render a slot key.
func StyleForKey(key string) lipgloss.Style {
	switch key {
	case store.KeyDoc:
		return DocStyle
	case store.KeyAutosave:
		return AutosaveStyle
	case store.KeyDark:
		return ThemeStyle
	default:
		return OtherKeyStyle
	}
}
