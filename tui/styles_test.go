// ABOUTME: Tests for lipgloss style definitions and the StyleForKey helper.
package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/2389-research/quill/store"
)

func TestStyleForKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		wantSame lipgloss.Style
	}{
		{"doc", store.KeyDoc, DocStyle},
		{"autosave", store.KeyAutosave, AutosaveStyle},
		{"dark", store.KeyDark, ThemeStyle},
		{"unknown", "scratch", OtherKeyStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StyleForKey(tt.key).Render("test")
			want := tt.wantSame.Render("test")
			if got != want {
				t.Errorf("StyleForKey(%q).Render = %q, want %q", tt.key, got, want)
			}
		})
	}
}

func TestAllStyleVariablesInitialized(t *testing.T) {
	// Inspect getters rather than ANSI output, which lipgloss suppresses without a TTY.
	hasForeground := func(s lipgloss.Style) bool { return s.GetForeground() != nil }

	checks := []struct {
		name  string
		style lipgloss.Style
		check func(lipgloss.Style) bool
	}{
		{"TitleStyle", TitleStyle, func(s lipgloss.Style) bool { return s.GetBold() }},
		{"DocStyle", DocStyle, hasForeground},
		{"AutosaveStyle", AutosaveStyle, hasForeground},
		{"ThemeStyle", ThemeStyle, hasForeground},
		{"SelectedStyle", SelectedStyle, func(s lipgloss.Style) bool { return s.GetBackground() != nil }},
		{"StatusBarStyle", StatusBarStyle, func(s lipgloss.Style) bool { return s.GetBackground() != nil }},
		{"ErrorStyle", ErrorStyle, hasForeground},
		{"LabelStyle", LabelStyle, func(s lipgloss.Style) bool { return s.GetWidth() == 10 }},
		{"BorderStyle", BorderStyle, func(s lipgloss.Style) bool { return s.GetBorderTop() }},
	}
	for _, c := range checks {
		if !c.check(c.style) {
			t.Errorf("%s is not configured", c.name)
		}
	}
}
