// ABOUTME: Tests for SlotListModel ordering, cursor movement, and selection stability across reloads.
package tui

import (
	"testing"

	"github.com/2389-research/quill/store"
)

func TestSlotListOrdering(t *testing.T) {
	var m SlotListModel
	m.SetEntries([]store.Entry{
		{Profile: "b", Key: "doc"},
		{Profile: "a", Key: "doc"},
		{Profile: "a", Key: "autosave"},
	})

	want := []string{"a/autosave", "a/doc", "b/doc"}
	for i, w := range want {
		e := m.entries[i]
		if got := e.Profile + "/" + e.Key; got != w {
			t.Errorf("row %d = %s, want %s", i, got, w)
		}
	}
}

func TestSlotListMoveClamps(t *testing.T) {
	var m SlotListModel
	m.Move(1)
	if _, ok := m.Selected(); ok {
		t.Error("empty list should have no selection")
	}

	m.SetEntries([]store.Entry{{Profile: "a", Key: "doc"}, {Profile: "a", Key: "dark"}})
	m.Move(-5)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
	m.Move(5)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}
}

func TestSlotListKeepsSelectionOnReload(t *testing.T) {
	var m SlotListModel
	m.SetEntries([]store.Entry{
		{Profile: "a", Key: "autosave"},
		{Profile: "a", Key: "doc"},
	})
	m.Move(1)

	m.SetEntries([]store.Entry{
		{Profile: "a", Key: "doc"},
		{Profile: "0", Key: "dark"},
		{Profile: "a", Key: "autosave"},
	})
	e, _ := m.Selected()
	if e.Profile != "a" || e.Key != "doc" {
		t.Errorf("selected = %+v, want a/doc", e)
	}
}

func TestShortProfile(t *testing.T) {
	if got := shortProfile("0b6e3a2c-1d6f-4b7a"); got != "0b6e3a2c" {
		t.Errorf("shortProfile = %q", got)
	}
	if got := shortProfile("cli"); got != "cli" {
		t.Errorf("shortProfile = %q", got)
	}
}
