// ABOUTME: Recording host that turns controller calls into an ordered list of browser effects.
// ABOUTME: Deferred callbacks become delayed effects so the browser owns every timer.
package editor

import (
	"time"

	"github.com/2389-research/quill/controller"
)

// Effect operations understood by the browser script.
const (
	OpExec     = "exec"
	OpInsert   = "insert"
	OpContent  = "content"
	OpFocus    = "focus"
	OpPrint    = "print"
	OpDownload = "download"
	OpActive   = "active"
	OpStatus   = "status"
	OpWords    = "words"
	OpDark     = "dark"
	OpFind     = "find"
	OpDefer    = "defer"
)

// Effect is one host call for the browser to replay.
type Effect struct {
	Op       string   `json:"op"`
	Name     string   `json:"name,omitempty"`
	Value    string   `json:"value,omitempty"`
	Markup   string   `json:"markup,omitempty"`
	On       bool     `json:"on,omitempty"`
	N        int      `json:"n,omitempty"`
	Filename string   `json:"filename,omitempty"`
	MIME     string   `json:"mime,omitempty"`
	Data     []byte   `json:"data,omitempty"`
	DelayMS  int64    `json:"delayMs,omitempty"`
	Then     []Effect `json:"then,omitempty"`
}

// Recorder implements controller.Host and controller.Scheduler by recording effects.
// Command state queries are answered from the snapshot the browser sent with the event.
type Recorder struct {
	effects []Effect
	states  map[string]bool

	// status is the last message shown outside a deferred callback this turn.
	status    string
	hasStatus bool
	deferring int
}

var (
	_ controller.Host      = (*Recorder)(nil)
	_ controller.Scheduler = (*Recorder)(nil)
)

// Begin starts a new event turn with the browser's command state snapshot.
func (r *Recorder) Begin(states map[string]bool) {
	r.effects = nil
	r.states = states
	r.status = ""
	r.hasStatus = false
}

// Status reports the last status shown by the turn outside deferred effects.
func (r *Recorder) Status() (string, bool) {
	return r.status, r.hasStatus
}

// Drain returns the effects recorded during the turn and resets the recorder.
func (r *Recorder) Drain() []Effect {
	out := r.effects
	r.effects = nil
	if out == nil {
		out = []Effect{}
	}
	return out
}

func (r *Recorder) add(e Effect) {
	r.effects = append(r.effects, e)
}

func (r *Recorder) Execute(name, arg string) {
	r.add(Effect{Op: OpExec, Name: name, Value: arg})
}

// QueryState reports the snapshot value; commands missing from the snapshot are unsupported.
func (r *Recorder) QueryState(name string) (bool, error) {
	v, ok := r.states[name]
	if !ok {
		return false, controller.ErrUnsupportedCommand
	}
	return v, nil
}

func (r *Recorder) InsertMarkup(markup string) {
	r.add(Effect{Op: OpInsert, Markup: markup})
}

func (r *Recorder) SetContent(markup string) {
	r.add(Effect{Op: OpContent, Markup: markup})
}

func (r *Recorder) Focus() {
	r.add(Effect{Op: OpFocus})
}

func (r *Recorder) Print() {
	r.add(Effect{Op: OpPrint})
}

func (r *Recorder) Download(filename, mime string, data []byte) {
	r.add(Effect{Op: OpDownload, Filename: filename, MIME: mime, Data: data})
}

func (r *Recorder) SetActive(controlID string, active bool) {
	r.add(Effect{Op: OpActive, Name: controlID, On: active})
}

func (r *Recorder) ShowStatus(text string) {
	r.add(Effect{Op: OpStatus, Value: text})
	if r.deferring == 0 {
		r.status = text
		r.hasStatus = true
	}
}

func (r *Recorder) ShowWords(n int) {
	r.add(Effect{Op: OpWords, N: n})
}

func (r *Recorder) SetDark(on bool) {
	r.add(Effect{Op: OpDark, On: on})
}

func (r *Recorder) SetFindVisible(on bool) {
	r.add(Effect{Op: OpFind, On: on})
}

// After runs fn now against a nested recording and wraps what it recorded in a
// delayed effect. The browser runs the nested effects when the delay elapses.
func (r *Recorder) After(d time.Duration, fn func()) {
	outer := r.effects
	r.effects = nil
	r.deferring++
	fn()
	r.deferring--
	nested := r.effects
	r.effects = append(outer, Effect{Op: OpDefer, DelayMS: d.Milliseconds(), Then: nested})
}
