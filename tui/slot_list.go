// ABOUTME: Bubble Tea sub-model listing stored slots grouped by profile with a movable cursor.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/2389-research/quill/store"
)

// SlotListModel displays every stored slot, one row per slot, sorted by profile then key.
type SlotListModel struct {
	entries []store.Entry
	cursor  int
	width   int
	height  int
}

// NewSlotListModel creates an empty slot list.
func NewSlotListModel() SlotListModel {
	return SlotListModel{}
}

// SetEntries replaces the rows, keeping the cursor on the same profile and key when it still exists.
func (m *SlotListModel) SetEntries(entries []store.Entry) {
	prev, hadPrev := m.Selected()

	sorted := append([]store.Entry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Profile != sorted[j].Profile {
			return sorted[i].Profile < sorted[j].Profile
		}
		return sorted[i].Key < sorted[j].Key
	})
	m.entries = sorted

	m.cursor = 0
	if hadPrev {
		for i, e := range m.entries {
			if e.Profile == prev.Profile && e.Key == prev.Key {
				m.cursor = i
				break
			}
		}
	}
}

// Move shifts the cursor by delta, clamped to the list.
func (m *SlotListModel) Move(delta int) {
	if len(m.entries) == 0 {
		m.cursor = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
}

// Selected returns the entry under the cursor.
func (m SlotListModel) Selected() (store.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return store.Entry{}, false
	}
	return m.entries[m.cursor], true
}

// Len returns the number of rows.
func (m SlotListModel) Len() int {
	return len(m.entries)
}

// Profiles returns the number of distinct profiles in the list.
func (m SlotListModel) Profiles() int {
	seen := make(map[string]bool)
	for _, e := range m.entries {
		seen[e.Profile] = true
	}
	return len(seen)
}

// SetSize sets the available dimensions.
func (m *SlotListModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// View renders the list inside a bordered panel.
func (m SlotListModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("SLOTS"))
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString(DimStyle.Render("No stored slots"))
	}

	// Rows visible inside the border and title.
	visible := m.height - 3
	if visible < 1 {
		visible = len(m.entries)
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}

	lastProfile := ""
	for i := start; i < len(m.entries) && i < start+visible; i++ {
		e := m.entries[i]
		profile := shortProfile(e.Profile)
		if e.Profile == lastProfile {
			profile = strings.Repeat(" ", len(profile))
		}
		lastProfile = e.Profile

		row := fmt.Sprintf("%s  %s", profile, StyleForKey(e.Key).Render(e.Key))
		if i == m.cursor {
			row = SelectedStyle.Render(fmt.Sprintf("%s  %s", shortProfile(e.Profile), e.Key))
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	style := BorderStyle
	if m.width > 2 {
		style = style.Width(m.width - 2)
	}
	if m.height > 2 {
		style = style.Height(m.height - 2)
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

// shortProfile trims long profile ids to their first segment.
func shortProfile(profile string) string {
	if len(profile) > 8 {
		return profile[:8]
	}
	return profile
}
