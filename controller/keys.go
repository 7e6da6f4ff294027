// ABOUTME: Keyboard handling: Enter-to-paragraph inside the editor and global ctrl shortcuts.
// ABOUTME: Handlers are independent table entries; every handler sees every key event.
package controller

import (
	"strings"

	"github.com/2389-research/quill/document"
)

// KeyEvent is a key press reported by the host.
type KeyEvent struct {
	Key      string
	Ctrl     bool
	InEditor bool
}

// keyHandler handles a key event and reports whether the default action must be suppressed.
type keyHandler func(c *Controller, ev KeyEvent) bool

// formatShortcuts maps ctrl+key to a formatting command.
var formatShortcuts = map[string]string{
	"b": "bold",
	"i": "italic",
	"u": "underline",
}

// defaultKeyHandlers is consulted in order for every key event.
var defaultKeyHandlers = []keyHandler{
	handleEnter,
	handleFormatShortcut,
	handleFindShortcut,
}

// handleEnter replaces the host's line break with a new paragraph.
func handleEnter(c *Controller, ev KeyEvent) bool {
	if !ev.InEditor || ev.Key != "Enter" {
		return false
	}
	c.host.InsertMarkup(document.Placeholder)
	return true
}

func handleFormatShortcut(c *Controller, ev KeyEvent) bool {
	if !ev.Ctrl {
		return false
	}
	cmd, ok := formatShortcuts[strings.ToLower(ev.Key)]
	if !ok {
		return false
	}
	c.host.Execute(cmd, "")
	c.RefreshToolbar()
	return true
}

func handleFindShortcut(c *Controller, ev KeyEvent) bool {
	if !ev.Ctrl || strings.ToLower(ev.Key) != "f" {
		return false
	}
	c.ToggleFind()
	return true
}
