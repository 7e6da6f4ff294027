// ABOUTME: Document tools over one profile's slots, shared by the MCP server and its tests.
// ABOUTME: Saving follows the editor's explicit-save rules; find/replace runs on the saved document.
package mcptools

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/2389-research/quill/controller"
	"github.com/2389-research/quill/document"
	"github.com/2389-research/quill/store"
)

// Tools exposes document operations for a single profile.
type Tools struct {
	backend store.Backend
	profile string
}

// New binds the tools to a profile on backend.
func New(backend store.Backend, profile string) *Tools {
	return &Tools{backend: backend, profile: profile}
}

// ReadInput selects which slot to read.
type ReadInput struct {
	Slot string `json:"slot,omitempty" jsonschema:"slot to read: doc (default) or autosave"`
}

// DocumentOutput describes a stored document.
type DocumentOutput struct {
	Found  bool   `json:"found"`
	Markup string `json:"markup"`
	Text   string `json:"text"`
	Words  int    `json:"words"`
	Status string `json:"status,omitempty"`
}

// SaveInput carries the document to save as markup or markdown.
type SaveInput struct {
	Markup   string `json:"markup,omitempty" jsonschema:"document markup to save"`
	Markdown string `json:"markdown,omitempty" jsonschema:"markdown source, used when markup is empty"`
}

// SaveOutput reports whether the document was saved.
type SaveOutput struct {
	Saved  bool   `json:"saved"`
	Status string `json:"status"`
}

// FindReplaceInput names the text to find and its replacement.
type FindReplaceInput struct {
	Query       string `json:"query" jsonschema:"text to find"`
	Replacement string `json:"replacement" jsonschema:"text to put in place of every match"`
}

// FindReplaceOutput reports the replacements made.
type FindReplaceOutput struct {
	Replaced int    `json:"replaced"`
	Status   string `json:"status"`
}

// WordCountInput counts words in markup, or in a stored slot when markup is empty.
type WordCountInput struct {
	Markup string `json:"markup,omitempty" jsonschema:"markup to count; the saved document is used when empty"`
	Slot   string `json:"slot,omitempty" jsonschema:"slot to count when markup is empty: doc (default) or autosave"`
}

// WordCountOutput is the word count.
type WordCountOutput struct {
	Words int `json:"words"`
}

func slotKey(slot string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(slot)) {
	case "", store.KeyDoc:
		return store.KeyDoc, nil
	case store.KeyAutosave:
		return store.KeyAutosave, nil
	default:
		return "", fmt.Errorf("unknown slot %q", slot)
	}
}

// ReadDocument returns the slot's markup with its plain text and word count.
func (t *Tools) ReadDocument(ctx context.Context, in ReadInput) (DocumentOutput, error) {
	key, err := slotKey(in.Slot)
	if err != nil {
		return DocumentOutput{}, err
	}
	markup, ok, err := t.backend.Get(t.profile, key)
	if err != nil {
		return DocumentOutput{}, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok || document.IsBlank(markup) {
		return DocumentOutput{Status: controller.StatusNoDocument}, nil
	}
	text := document.PlainText(markup)
	return DocumentOutput{
		Found:  true,
		Markup: markup,
		Text:   text,
		Words:  document.WordCount(text),
	}, nil
}

// SaveDocument writes the document to the explicit-save slot unless it is trivial.
func (t *Tools) SaveDocument(ctx context.Context, in SaveInput) (SaveOutput, error) {
	markup := in.Markup
	if markup == "" && strings.TrimSpace(in.Markdown) != "" {
		converted, err := document.FromMarkdown(in.Markdown)
		if err != nil {
			return SaveOutput{}, err
		}
		markup = converted
	}

	markup = document.EnsureContent(markup)
	if document.IsTrivial(markup) {
		return SaveOutput{Status: controller.StatusNothingSaved}, nil
	}
	if err := t.backend.Set(t.profile, store.KeyDoc, markup); err != nil {
		return SaveOutput{}, fmt.Errorf("save %s: %w", store.KeyDoc, err)
	}
	log.Printf("mcp document saved profile=%s bytes=%d", t.profile, len(markup))
	return SaveOutput{Saved: true, Status: controller.StatusSaved}, nil
}

// FindReplace replaces every text occurrence of the query in the saved document.
func (t *Tools) FindReplace(ctx context.Context, in FindReplaceInput) (FindReplaceOutput, error) {
	if in.Query == "" {
		return FindReplaceOutput{}, fmt.Errorf("query is required")
	}
	markup, ok, err := t.backend.Get(t.profile, store.KeyDoc)
	if err != nil {
		return FindReplaceOutput{}, fmt.Errorf("read %s: %w", store.KeyDoc, err)
	}
	if !ok || document.IsBlank(markup) {
		return FindReplaceOutput{Status: controller.StatusNoDocument}, nil
	}

	marked, found := document.Highlight(markup, in.Query)
	if found == 0 {
		return FindReplaceOutput{Status: "No matches"}, nil
	}
	out, n := document.ReplaceHighlighted(marked, in.Query, in.Replacement)
	out = document.EnsureContent(out)
	if err := t.backend.Set(t.profile, store.KeyDoc, out); err != nil {
		return FindReplaceOutput{}, fmt.Errorf("save %s: %w", store.KeyDoc, err)
	}

	status := fmt.Sprintf("Replaced %d occurrences", n)
	if n == 1 {
		status = "Replaced 1 occurrence"
	}
	log.Printf("mcp find_replace profile=%s replaced=%d", t.profile, n)
	return FindReplaceOutput{Replaced: n, Status: status}, nil
}

// WordCount counts words in the given markup or stored slot.
func (t *Tools) WordCount(ctx context.Context, in WordCountInput) (WordCountOutput, error) {
	if in.Markup != "" {
		return WordCountOutput{Words: document.WordCount(document.PlainText(in.Markup))}, nil
	}
	doc, err := t.ReadDocument(ctx, ReadInput{Slot: in.Slot})
	if err != nil {
		return WordCountOutput{}, err
	}
	return WordCountOutput{Words: doc.Words}, nil
}
