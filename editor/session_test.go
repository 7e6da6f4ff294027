// ABOUTME: Tests for session event dispatch and the profile-keyed session store.
// ABOUTME: Covers event mapping onto controller actions, unknown events, eviction, and TTL cleanup.
package editor

import (
	"strings"
	"testing"
	"time"

	"github.com/2389-research/quill/controller"
	"github.com/2389-research/quill/document"
	"github.com/2389-research/quill/store"
)

func newTestSessions(t *testing.T) (*SessionStore, *store.MemoryStore) {
	t.Helper()
	backend := store.NewMemoryStore()
	return NewSessionStore(backend, controller.DefaultSettings(), 10, time.Hour), backend
}

func strPtr(s string) *string { return &s }

func findEffect(effects []Effect, op string) (Effect, bool) {
	for _, e := range effects {
		if e.Op == op {
			return e, true
		}
	}
	return Effect{}, false
}

func TestDispatchInitSetsPlaceholder(t *testing.T) {
	sessions, _ := newTestSessions(t)
	sess := sessions.Open("p1")

	resp, err := sess.Dispatch(Event{Type: "init", Content: strPtr("")})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	e, ok := findEffect(resp.Effects, OpContent)
	if !ok || e.Markup != document.Placeholder {
		t.Errorf("effects = %+v, want placeholder content", resp.Effects)
	}
	if resp.State.Status != "Ready" {
		t.Errorf("status = %q, want Ready", resp.State.Status)
	}
}

func TestDispatchInputAutosavesAndCounts(t *testing.T) {
	sessions, backend := newTestSessions(t)
	sess := sessions.Open("p1")

	resp, err := sess.Dispatch(Event{Type: "input", Content: strPtr("<p>three little words</p>")})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if resp.State.Words != 3 {
		t.Errorf("words = %d, want 3", resp.State.Words)
	}
	if v, ok, _ := backend.Get("p1", store.KeyAutosave); !ok || v != "<p>three little words</p>" {
		t.Errorf("autosave = (%q, %v)", v, ok)
	}
}

func TestDispatchEnterPreventsDefault(t *testing.T) {
	sessions, _ := newTestSessions(t)
	sess := sessions.Open("p1")

	resp, err := sess.Dispatch(Event{Type: "keydown", Key: "Enter", InEditor: true})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !resp.Prevent {
		t.Error("Enter should prevent default")
	}
	if e, ok := findEffect(resp.Effects, OpInsert); !ok || e.Markup != document.Placeholder {
		t.Errorf("effects = %+v, want paragraph insert", resp.Effects)
	}
}

func TestDispatchClickUsesSnapshot(t *testing.T) {
	sessions, _ := newTestSessions(t)
	sess := sessions.Open("p1")

	resp, err := sess.Dispatch(Event{
		Type:    "click",
		Control: "bold",
		States:  map[string]bool{"bold": true, "italic": false},
	})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if e, ok := findEffect(resp.Effects, OpExec); !ok || e.Name != "bold" {
		t.Errorf("effects = %+v, want exec bold", resp.Effects)
	}
	if !resp.State.Toolbar["bold"] {
		t.Error("bold should be active")
	}
	if _, ok := resp.State.Toolbar["underline"]; ok {
		t.Error("underline was not in the snapshot and should stay unset")
	}
}

func TestDispatchFindReplaceUsesSyncedContent(t *testing.T) {
	sessions, _ := newTestSessions(t)
	sess := sessions.Open("p1")

	resp, err := sess.Dispatch(Event{Type: "find", Query: "foo", Content: strPtr("foo bar foo")})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	e, _ := findEffect(resp.Effects, OpContent)
	if e.Markup != "<mark>foo</mark> bar <mark>foo</mark>" {
		t.Errorf("find content = %q", e.Markup)
	}

	resp, err = sess.Dispatch(Event{Type: "replace", Replacement: "baz", Content: strPtr(e.Markup)})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	e, _ = findEffect(resp.Effects, OpContent)
	if e.Markup != "baz bar baz" {
		t.Errorf("replace content = %q", e.Markup)
	}
}

func TestDispatchPrintDefersPrint(t *testing.T) {
	sessions, _ := newTestSessions(t)
	sess := sessions.Open("p1")

	resp, err := sess.Dispatch(Event{Type: "print", Content: strPtr("<p>x</p>")})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if _, ok := findEffect(resp.Effects, OpPrint); ok {
		t.Fatal("print must not run immediately")
	}
	found := false
	for _, e := range resp.Effects {
		if e.Op == OpDefer && e.DelayMS == 300 {
			if _, ok := findEffect(e.Then, OpPrint); ok {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("effects = %+v, want deferred print", resp.Effects)
	}
}

func TestDispatchExportCarriesDocument(t *testing.T) {
	sessions, _ := newTestSessions(t)
	sess := sessions.Open("p1")

	resp, err := sess.Dispatch(Event{Type: "export", Content: strPtr("<p>hi</p>")})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	e, ok := findEffect(resp.Effects, OpDownload)
	if !ok {
		t.Fatalf("effects = %+v, want download", resp.Effects)
	}
	if e.Filename != "document.doc" || e.MIME != "application/msword" {
		t.Errorf("download = %s %s", e.Filename, e.MIME)
	}
	if !strings.Contains(string(e.Data), "<p>hi</p>") {
		t.Errorf("data = %q", e.Data)
	}
}

func TestDispatchUnknownEvent(t *testing.T) {
	sessions, _ := newTestSessions(t)
	sess := sessions.Open("p1")

	if _, err := sess.Dispatch(Event{Type: "teleport"}); err == nil {
		t.Fatal("expected error for unknown event")
	}
}

func TestSessionStoreOpenReusesProfile(t *testing.T) {
	sessions, _ := newTestSessions(t)
	a := sessions.Open("p1")
	b := sessions.Open("p1")
	if a != b {
		t.Error("same profile should reuse its session")
	}
	if sessions.Len() != 1 {
		t.Errorf("Len = %d, want 1", sessions.Len())
	}
}

func TestSessionStoreEvictsOldest(t *testing.T) {
	sessions := NewSessionStore(store.NewMemoryStore(), controller.DefaultSettings(), 2, time.Hour)
	old := sessions.Open("old")
	old.LastAccess = time.Now().Add(-time.Hour)
	sessions.Open("newer")
	sessions.Open("newest")

	if _, ok := sessions.Get("old"); ok {
		t.Error("oldest session should be evicted")
	}
	if sessions.Len() != 2 {
		t.Errorf("Len = %d, want 2", sessions.Len())
	}
}

func TestSessionStoreCleanup(t *testing.T) {
	sessions := NewSessionStore(store.NewMemoryStore(), controller.DefaultSettings(), 10, time.Minute)
	stale := sessions.Open("stale")
	stale.LastAccess = time.Now().Add(-2 * time.Minute)
	sessions.Open("fresh")

	sessions.Cleanup()

	if _, ok := sessions.Get("stale"); ok {
		t.Error("stale session should be removed")
	}
	if _, ok := sessions.Get("fresh"); !ok {
		t.Error("fresh session should remain")
	}
}

func TestSessionsShareBackendAcrossRestart(t *testing.T) {
	backend := store.NewMemoryStore()
	first := NewSessionStore(backend, controller.DefaultSettings(), 10, time.Hour).Open("p1")
	if _, err := first.Dispatch(Event{Type: "save", Content: strPtr("<p>persisted</p>")}); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := NewSessionStore(backend, controller.DefaultSettings(), 10, time.Hour).Open("p1")
	resp, err := second.Dispatch(Event{Type: "load"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if e, ok := findEffect(resp.Effects, OpContent); !ok || e.Markup != "<p>persisted</p>" {
		t.Errorf("effects = %+v, want loaded content", resp.Effects)
	}
}

func TestDispatchDropsOutOfOrderInput(t *testing.T) {
	sessions, backend := newTestSessions(t)
	sess := sessions.Open("p1")

	if _, err := sess.Dispatch(Event{Type: "input", Page: "tab", Seq: 2, Content: strPtr("<p>x</p>")}); err != nil {
		t.Fatalf("newer input: %v", err)
	}
	resp, err := sess.Dispatch(Event{Type: "input", Page: "tab", Seq: 1, Content: strPtr("")})
	if err != nil {
		t.Fatalf("older input: %v", err)
	}
	if !resp.Stale {
		t.Error("older input should be reported stale")
	}
	if _, ok := findEffect(resp.Effects, OpContent); ok {
		t.Errorf("stale input must not rewrite the surface, got %+v", resp.Effects)
	}
	if v, _, _ := backend.Get("p1", store.KeyAutosave); v != "<p>x</p>" {
		t.Errorf("autosave = %q, want the newest content", v)
	}
	if got := sess.Controller().State().Content; got != "<p>x</p>" {
		t.Errorf("content = %q, want <p>x</p>", got)
	}
}

func TestDispatchNewPageRestartsSequence(t *testing.T) {
	sessions, backend := newTestSessions(t)
	sess := sessions.Open("p1")

	if _, err := sess.Dispatch(Event{Type: "input", Page: "old", Seq: 40, Content: strPtr("<p>before reload</p>")}); err != nil {
		t.Fatalf("old page: %v", err)
	}
	resp, err := sess.Dispatch(Event{Type: "input", Page: "new", Seq: 1, Content: strPtr("<p>after reload</p>")})
	if err != nil {
		t.Fatalf("new page: %v", err)
	}
	if resp.Stale {
		t.Error("first event of a new page should apply")
	}
	if v, _, _ := backend.Get("p1", store.KeyAutosave); v != "<p>after reload</p>" {
		t.Errorf("autosave = %q", v)
	}
}

func TestDispatchUnknownEventLeavesContent(t *testing.T) {
	sessions, backend := newTestSessions(t)
	sess := sessions.Open("p1")

	if _, err := sess.Dispatch(Event{Type: "input", Content: strPtr("<p>kept</p>")}); err != nil {
		t.Fatalf("input: %v", err)
	}
	if _, err := sess.Dispatch(Event{Type: "teleport", Content: strPtr("<p>junk</p>")}); err == nil {
		t.Fatal("expected error for unknown event")
	}
	if _, err := sess.Dispatch(Event{Type: "save"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if v, _, _ := backend.Get("p1", store.KeyDoc); v != "<p>kept</p>" {
		t.Errorf("doc = %q, want <p>kept</p>", v)
	}
}

func TestDispatchReportsShownStatus(t *testing.T) {
	sessions, _ := newTestSessions(t)
	sess := sessions.Open("p1")

	resp, err := sess.Dispatch(Event{Type: "save", Content: strPtr("<p>draft</p>")})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if resp.State.Status != controller.StatusSaved {
		t.Errorf("status = %q, want %q", resp.State.Status, controller.StatusSaved)
	}

	resp, err = sess.Dispatch(Event{Type: "selection"})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if resp.State.Status != "Ready" {
		t.Errorf("status after a quiet turn = %q, want Ready", resp.State.Status)
	}
}
