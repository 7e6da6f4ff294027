// ABOUTME: Test doubles for the controller: a recording host, a manual scheduler, and failing slots.
package controller

import (
	"errors"
	"time"

	"github.com/2389-research/quill/store"
)

type execCall struct {
	name string
	arg  string
}

type download struct {
	filename string
	mime     string
	data     []byte
}

// fakeHost records every host call the controller makes.
type fakeHost struct {
	content     string
	executed    []execCall
	inserted    []string
	states      map[string]bool
	active      map[string]bool
	statuses    []string
	words       int
	dark        bool
	findVisible bool
	focused     int
	printed     int
	downloads   []download
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		states: make(map[string]bool),
		active: make(map[string]bool),
	}
}

func (h *fakeHost) Execute(name, arg string) {
	h.executed = append(h.executed, execCall{name: name, arg: arg})
}

func (h *fakeHost) QueryState(name string) (bool, error) {
	v, ok := h.states[name]
	if !ok {
		return false, ErrUnsupportedCommand
	}
	return v, nil
}

func (h *fakeHost) InsertMarkup(markup string) { h.inserted = append(h.inserted, markup) }
func (h *fakeHost) SetContent(markup string)   { h.content = markup }
func (h *fakeHost) Focus()                     { h.focused++ }
func (h *fakeHost) Print()                     { h.printed++ }

func (h *fakeHost) Download(filename, mime string, data []byte) {
	h.downloads = append(h.downloads, download{filename: filename, mime: mime, data: data})
}

func (h *fakeHost) SetActive(controlID string, active bool) { h.active[controlID] = active }
func (h *fakeHost) ShowStatus(text string)                  { h.statuses = append(h.statuses, text) }
func (h *fakeHost) ShowWords(n int)                         { h.words = n }
func (h *fakeHost) SetDark(on bool)                         { h.dark = on }
func (h *fakeHost) SetFindVisible(on bool)                  { h.findVisible = on }

func (h *fakeHost) lastStatus() string {
	if len(h.statuses) == 0 {
		return ""
	}
	return h.statuses[len(h.statuses)-1]
}

type pendingCall struct {
	delay time.Duration
	fn    func()
}

// manualScheduler queues callbacks until the test fires them.
type manualScheduler struct {
	pending []pendingCall
}

func (s *manualScheduler) After(d time.Duration, fn func()) {
	s.pending = append(s.pending, pendingCall{delay: d, fn: fn})
}

// fire runs the i-th queued callback.
func (s *manualScheduler) fire(i int) {
	s.pending[i].fn()
}

// fireAll runs every queued callback in scheduling order and clears the queue.
func (s *manualScheduler) fireAll() {
	pending := s.pending
	s.pending = nil
	for _, p := range pending {
		p.fn()
	}
}

var errStoreDown = errors.New("disk on fire")

// failingSlots fails every operation.
type failingSlots struct{}

func (failingSlots) Get(string) (string, bool, error) { return "", false, errStoreDown }
func (failingSlots) Set(string, string) error         { return errStoreDown }
func (failingSlots) Remove(string) error              { return errStoreDown }

var _ store.Slots = failingSlots{}
