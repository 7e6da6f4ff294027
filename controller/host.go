// ABOUTME: Narrow interfaces to the host editing environment the controller drives.
// ABOUTME: The host owns rendering, selection, command execution, printing, and downloads.
package controller

import (
	"errors"
	"time"
)

// ErrUnsupportedCommand is returned by hosts that cannot report state for a command.
var ErrUnsupportedCommand = errors.New("unsupported command")

// Commander executes formatting commands at the caret and reports their state.
type Commander interface {
	Execute(name, arg string)
	QueryState(name string) (bool, error)
}

// Inserter inserts markup at the current caret or selection.
type Inserter interface {
	InsertMarkup(markup string)
}

// Surface is the content-editable region.
type Surface interface {
	SetContent(markup string)
	Focus()
}

// Printer opens the host print flow.
type Printer interface {
	Print()
}

// Downloader offers bytes to the user as a file.
type Downloader interface {
	Download(filename, mime string, data []byte)
}

// Chrome is the UI around the editor: ribbon state, status line, word count, theme, find panel.
type Chrome interface {
	SetActive(controlID string, active bool)
	ShowStatus(text string)
	ShowWords(n int)
	SetDark(on bool)
	SetFindVisible(on bool)
}

// Host is everything the controller needs from its environment.
type Host interface {
	Commander
	Inserter
	Surface
	Printer
	Downloader
	Chrome
}

// Scheduler runs fn once after d. Callbacks are never cancelled.
type Scheduler interface {
	After(d time.Duration, fn func())
}
