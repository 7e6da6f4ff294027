// ABOUTME: Tests for the slot preview panel's plain text rendering and word counts.
package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/2389-research/quill/store"
)

func TestPreviewMarkupSlot(t *testing.T) {
	m := NewPreviewPanelModel()
	m.SetSize(80, 20)
	m.SetEntry(store.Entry{
		Profile:   "alice",
		Key:       store.KeyDoc,
		Value:     "<h1>Notes</h1><p>one <b>two</b></p>",
		Rev:       "01HX",
		UpdatedAt: time.Now(),
	})

	if m.Words() != 3 {
		t.Errorf("words = %d, want 3", m.Words())
	}
	view := m.View()
	if strings.Contains(view, "<b>") {
		t.Error("preview should show plain text, not markup")
	}
	if !strings.Contains(view, "Notes") || !strings.Contains(view, "alice") {
		t.Errorf("view = %q", view)
	}
}

func TestPreviewThemeSlot(t *testing.T) {
	m := NewPreviewPanelModel()
	m.SetEntry(store.Entry{Profile: "bob", Key: store.KeyDark, Value: "true"})
	if m.Words() != 0 {
		t.Errorf("theme slot words = %d, want 0", m.Words())
	}
}

func TestPreviewClear(t *testing.T) {
	m := NewPreviewPanelModel()
	m.SetEntry(store.Entry{Profile: "a", Key: store.KeyDoc, Value: "<p>x</p>"})
	m.Clear()
	if !strings.Contains(m.View(), "Select a slot") {
		t.Error("cleared preview should prompt for a selection")
	}
}
