// ABOUTME: Session pairing one browser profile with its controller and recording host.
// ABOUTME: Serializes events so each one runs to completion as a single callback turn.
package editor

import (
	"fmt"
	"sync"
	"time"

	"github.com/2389-research/quill/controller"
)

// Event is a browser event posted to the session.
type Event struct {
	Type string `json:"type"`

	// Page identifies one loaded editor page and Seq orders the events it sends.
	// A zero Seq skips ordering.
	Page string `json:"page,omitempty"`
	Seq  int64  `json:"seq,omitempty"`

	// Content is the surface markup at the time of the event, when the browser sent it.
	Content *string `json:"content,omitempty"`

	// States is the browser's command state snapshot for the ribbon's commands.
	States map[string]bool `json:"states,omitempty"`

	Key      string `json:"key,omitempty"`
	Ctrl     bool   `json:"ctrl,omitempty"`
	InEditor bool   `json:"inEditor,omitempty"`

	Control string `json:"control,omitempty"`
	Value   string `json:"value,omitempty"`

	Query       string `json:"query,omitempty"`
	Replacement string `json:"replacement,omitempty"`
}

// StateView is the part of the controller state the browser mirrors.
// Status is the message the turn showed before any deferred revert.
type StateView struct {
	Words       int             `json:"words"`
	Status      string          `json:"status"`
	Dark        bool            `json:"dark"`
	FindVisible bool            `json:"findVisible"`
	Toolbar     map[string]bool `json:"toolbar"`
}

// Response is returned for every handled event. Stale marks an event that
// arrived after a newer one from the same page and was not applied.
type Response struct {
	Effects []Effect  `json:"effects"`
	Prevent bool      `json:"prevent"`
	Stale   bool      `json:"stale,omitempty"`
	State   StateView `json:"state"`
}

// Session holds the controller for one browser profile.
type Session struct {
	mu         sync.Mutex
	Profile    string
	ctrl       *controller.Controller
	rec        *Recorder
	page       string
	lastSeq    int64
	CreatedAt  time.Time
	LastAccess time.Time
}

// Controller exposes the session's controller for rendering the ribbon.
func (sess *Session) Controller() *controller.Controller {
	return sess.ctrl
}

// Dispatch runs one event against the controller and returns the recorded effects.
// Unknown event types are rejected before the event touches controller state.
func (sess *Session) Dispatch(ev Event) (Response, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	act, err := sess.actionFor(ev)
	if err != nil {
		return Response{}, err
	}

	sess.rec.Begin(ev.States)
	if sess.outOfOrder(ev) {
		return Response{Effects: sess.rec.Drain(), Stale: true, State: sess.view()}, nil
	}

	if ev.Content != nil && ev.Type != "init" && ev.Type != "input" {
		sess.ctrl.Sync(*ev.Content)
	}
	prevent := act()

	return Response{
		Effects: sess.rec.Drain(),
		Prevent: prevent,
		State:   sess.view(),
	}, nil
}

// outOfOrder reports whether ev is older than an event already applied from
// the same page. A new page id restarts the sequence.
func (sess *Session) outOfOrder(ev Event) bool {
	if ev.Seq == 0 {
		return false
	}
	if ev.Page != sess.page {
		sess.page = ev.Page
		sess.lastSeq = ev.Seq
		return false
	}
	if ev.Seq <= sess.lastSeq {
		return true
	}
	sess.lastSeq = ev.Seq
	return false
}

// actionFor maps an event type onto a controller action. The action reports
// whether the host's default must be suppressed.
func (sess *Session) actionFor(ev Event) (func() bool, error) {
	c := sess.ctrl
	content := ""
	if ev.Content != nil {
		content = *ev.Content
	}
	run := func(fn func()) func() bool {
		return func() bool {
			fn()
			return false
		}
	}

	switch ev.Type {
	case "init":
		return run(func() { c.Init(content) }), nil
	case "input":
		return run(func() { c.Input(content) }), nil
	case "keydown":
		return func() bool {
			return c.Key(controller.KeyEvent{Key: ev.Key, Ctrl: ev.Ctrl, InEditor: ev.InEditor})
		}, nil
	case "click":
		return run(func() { c.Click(ev.Control, ev.Value) }), nil
	case "selection":
		return run(c.RefreshToolbar), nil
	case "save":
		return run(c.Save), nil
	case "load":
		return run(c.Load), nil
	case "clear":
		return run(c.Clear), nil
	case "print":
		return run(c.Print), nil
	case "export":
		return run(c.Export), nil
	case "pagebreak":
		return run(c.PageBreak), nil
	case "table":
		return run(c.InsertTable), nil
	case "dark":
		return run(c.ToggleDark), nil
	case "togglefind":
		return run(c.ToggleFind), nil
	case "find":
		return run(func() { c.Find(ev.Query) }), nil
	case "replace":
		return run(func() { c.ReplaceAll(ev.Replacement) }), nil
	}
	return nil, fmt.Errorf("unknown event type %q", ev.Type)
}

// Import replaces the document with imported markup.
func (sess *Session) Import(markup string) Response {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.rec.Begin(nil)
	sess.ctrl.Replace(markup)
	sess.ctrl.SetStatus("Document imported")
	return Response{Effects: sess.rec.Drain(), State: sess.view()}
}

func (sess *Session) view() StateView {
	st := sess.ctrl.State()
	status := st.Status
	if shown, ok := sess.rec.Status(); ok {
		status = shown
	}
	return StateView{
		Words:       st.Words,
		Status:      status,
		Dark:        st.Dark,
		FindVisible: st.FindVisible,
		Toolbar:     st.Toolbar,
	}
}
