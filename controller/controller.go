// ABOUTME: Controller owning the editor's explicit application state and every user action.
// ABOUTME: Forwards intent to the host, mirrors command state, and persists through key-value slots.
package controller

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/2389-research/quill/document"
	"github.com/2389-research/quill/store"
)

// Status messages shown by the controller.
const (
	StatusSaved        = "Document saved"
	StatusNothingSaved = "Nothing to save"
	StatusLoaded       = "Document loaded"
	StatusNoDocument   = "No saved document"
	StatusPrinting     = "Preparing document for print…"
	StatusStorageError = "Storage unavailable"
)

// State is the editor's complete in-memory state.
type State struct {
	Content     string
	Words       int
	Status      string
	Dark        bool
	FindVisible bool
	FindQuery   string
	Replacement string

	// Toolbar holds the last known active state per reflecting control.
	// Controls whose state query failed are absent.
	Toolbar map[string]bool

	// Values holds the last value applied through select and color controls.
	Values map[string]string
}

// Controller handles every editor event inside a single callback turn.
// It is not safe for concurrent use; callers serialize events.
type Controller struct {
	host     Host
	slots    store.Slots
	sched    Scheduler
	settings Settings
	ribbon   []Control
	keys     []keyHandler
	state    State
}

// New creates a controller with the default ribbon and key handlers.
func New(host Host, slots store.Slots, sched Scheduler, settings Settings) *Controller {
	settings = settings.normalized()
	return &Controller{
		host:     host,
		slots:    slots,
		sched:    sched,
		settings: settings,
		ribbon:   DefaultRibbon(settings),
		keys:     defaultKeyHandlers,
		state: State{
			Content: document.Placeholder,
			Status:  settings.IdleStatus,
			Toolbar: make(map[string]bool),
			Values:  make(map[string]string),
		},
	}
}

// Ribbon returns the controller's control table.
func (c *Controller) Ribbon() []Control {
	return c.ribbon
}

// Settings returns the effective settings.
func (c *Controller) Settings() Settings {
	return c.settings
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	s := c.state
	s.Toolbar = make(map[string]bool, len(c.state.Toolbar))
	for k, v := range c.state.Toolbar {
		s.Toolbar[k] = v
	}
	s.Values = make(map[string]string, len(c.state.Values))
	for k, v := range c.state.Values {
		s.Values[k] = v
	}
	return s
}

// Init restores the autosave slot and the theme flag, then enforces the
// non-empty invariant. Called once when the surface first loads.
func (c *Controller) Init(content string) {
	c.state.Content = content

	saved, ok, err := c.slots.Get(store.KeyAutosave)
	if err != nil {
		c.storeFailed("restore", store.KeyAutosave, err)
	} else if ok && !document.IsBlank(saved) {
		c.setContent(saved)
	}
	c.EnsureContent()

	dark, ok, err := c.slots.Get(store.KeyDark)
	if err != nil {
		c.storeFailed("restore", store.KeyDark, err)
	} else if ok {
		c.state.Dark, _ = strconv.ParseBool(dark)
	}
	c.host.SetDark(c.state.Dark)

	c.updateWords()
	c.host.ShowStatus(c.state.Status)
	c.RefreshToolbar()
}

// Sync records surface content changed by the host without an input event,
// such as after a host command.
func (c *Controller) Sync(content string) {
	c.state.Content = content
}

// EnsureContent replaces blank content with the placeholder paragraph.
func (c *Controller) EnsureContent() {
	if document.IsBlank(c.state.Content) {
		c.setContent(document.Placeholder)
	}
}

// Input handles a content change from the surface: enforce the invariant,
// recount words, autosave meaningful content, and refresh the toolbar.
func (c *Controller) Input(content string) {
	c.state.Content = content
	c.EnsureContent()

	text := strings.TrimSpace(document.PlainText(c.state.Content))
	c.updateWords()

	if text != "" {
		if err := c.slots.Set(store.KeyAutosave, c.state.Content); err != nil {
			c.storeFailed("autosave", store.KeyAutosave, err)
		}
	}

	c.RefreshToolbar()
}

// Key dispatches a key event to every key handler and reports whether the
// host's default action must be suppressed.
func (c *Controller) Key(ev KeyEvent) bool {
	prevent := false
	for _, h := range c.keys {
		if h(c, ev) {
			prevent = true
		}
	}
	return prevent
}

// Click runs the command bound to a ribbon control. Value controls pass value
// as the command argument.
func (c *Controller) Click(controlID, value string) {
	ctl, ok := lookup(c.ribbon, controlID)
	if !ok {
		log.Printf("controller click ignored control=%s reason=unknown", controlID)
		return
	}

	switch ctl.Kind {
	case KindSelect, KindColor:
		c.host.Execute(ctl.Command, value)
		c.state.Values[ctl.ID] = value
	default:
		c.host.Execute(ctl.Command, "")
	}

	c.host.Focus()
	c.RefreshToolbar()
}

// RefreshToolbar mirrors the host's command state onto every reflecting
// control. Failed queries leave the control's state as it was.
func (c *Controller) RefreshToolbar() {
	for _, ctl := range c.ribbon {
		if !ctl.Reflect {
			continue
		}
		active, err := c.host.QueryState(ctl.Command)
		if err != nil {
			continue
		}
		c.state.Toolbar[ctl.ID] = active
		c.host.SetActive(ctl.ID, active)
	}
}

// Save writes the content to the explicit-save slot unless it is trivial.
func (c *Controller) Save() {
	c.EnsureContent()

	if document.IsTrivial(c.state.Content) {
		c.SetStatus(StatusNothingSaved)
		return
	}

	if err := c.slots.Set(store.KeyDoc, c.state.Content); err != nil {
		c.storeFailed("save", store.KeyDoc, err)
		return
	}
	c.SetStatus(StatusSaved)
}

// Load replaces the content with the explicit-save slot. When no document was
// saved the content is left untouched.
func (c *Controller) Load() {
	if c.settings.LoadFallback {
		c.loadWithFallback()
		return
	}

	saved, ok, err := c.slots.Get(store.KeyDoc)
	if err != nil {
		c.storeFailed("load", store.KeyDoc, err)
		return
	}
	if !ok || document.IsBlank(saved) {
		c.SetStatus(StatusNoDocument)
		return
	}

	c.setContent(saved)
	c.EnsureContent()
	c.updateWords()
	c.host.Focus()
	c.RefreshToolbar()
	c.SetStatus(StatusLoaded)
}

// loadWithFallback prefers the explicit-save slot, then the autosave slot,
// and applies the placeholder when neither holds content.
func (c *Controller) loadWithFallback() {
	saved := ""
	for _, key := range []string{store.KeyDoc, store.KeyAutosave} {
		v, ok, err := c.slots.Get(key)
		if err != nil {
			c.storeFailed("load", key, err)
			continue
		}
		if ok && v != "" {
			saved = v
			break
		}
	}

	if document.IsBlank(saved) {
		c.setContent(document.Placeholder)
	} else {
		c.setContent(saved)
	}
	c.EnsureContent()
	c.updateWords()
	c.host.Focus()
}

// Clear resets the document and drops the autosave slot. The explicit-save
// slot is kept.
func (c *Controller) Clear() {
	c.setContent(document.Placeholder)
	if err := c.slots.Remove(store.KeyAutosave); err != nil {
		c.storeFailed("clear", store.KeyAutosave, err)
	}
	c.EnsureContent()
	c.updateWords()
	c.host.Focus()
	c.RefreshToolbar()
}

// Replace swaps in a whole new document, as an import does, and autosaves it.
func (c *Controller) Replace(markup string) {
	c.setContent(markup)
	c.Input(c.state.Content)
}

// PageBreak inserts a divider and a fresh paragraph at the caret.
func (c *Controller) PageBreak() {
	c.host.InsertMarkup(document.PageBreakMarkup)
	c.host.Focus()
}

// InsertTable inserts an editable table at the caret.
func (c *Controller) InsertTable() {
	c.host.InsertMarkup(document.TableMarkup(c.settings.TableRows, c.settings.TableCols))
	c.host.Focus()
}

// Print enforces the invariant, shows a status, and opens the host print flow
// after the print delay so the status renders first.
func (c *Controller) Print() {
	c.EnsureContent()
	if strings.TrimSpace(document.PlainText(c.state.Content)) == "" {
		c.EnsureContent()
	}
	c.SetStatus(StatusPrinting)
	c.sched.After(c.settings.PrintDelay, c.host.Print)
}

// Export offers the content as a word-processor document download.
func (c *Controller) Export() {
	name := c.settings.ExportFilename
	c.host.Download(name, document.ExportMIME, document.ExportShell(c.state.Content))
	c.SetStatus(fmt.Sprintf("Exported %s", name))
}

// Find highlights every occurrence of query in the content.
func (c *Controller) Find(query string) {
	c.state.FindQuery = query
	if query == "" {
		return
	}

	out, n := document.Highlight(c.state.Content, query)
	if n == 0 {
		c.SetStatus("No matches")
		return
	}
	c.setContent(out)
	c.SetStatus(pluralize(n, "match", "matches"))
}

// ReplaceAll replaces every highlight left by the last Find with replacement.
func (c *Controller) ReplaceAll(replacement string) {
	c.state.Replacement = replacement

	out, n := document.ReplaceHighlighted(c.state.Content, c.state.FindQuery, replacement)
	if n == 0 {
		c.SetStatus("Nothing replaced")
		return
	}
	c.setContent(out)
	c.EnsureContent()
	c.updateWords()
	c.SetStatus(fmt.Sprintf("Replaced %s", pluralize(n, "occurrence", "occurrences")))
}

// ToggleFind shows or hides the find/replace panel.
func (c *Controller) ToggleFind() {
	c.state.FindVisible = !c.state.FindVisible
	c.host.SetFindVisible(c.state.FindVisible)
}

// setContent replaces both the state and the surface content.
func (c *Controller) setContent(markup string) {
	c.state.Content = markup
	c.host.SetContent(markup)
}

func (c *Controller) updateWords() {
	c.state.Words = document.WordCount(document.PlainText(c.state.Content))
	c.host.ShowWords(c.state.Words)
}

// storeFailed logs a slot failure and degrades it to a status message.
func (c *Controller) storeFailed(op, key string, err error) {
	log.Printf("controller store error op=%s key=%s err=%v", op, key, err)
	c.SetStatus(StatusStorageError)
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
