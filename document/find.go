// ABOUTME: Find-and-highlight and highlight-and-replace over editor markup.
// ABOUTME: Matching walks text nodes only, so tags, attributes and tag-spanning text never match.
package document

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Highlight markers wrapped around every find match.
const (
	MarkOpen  = "<mark>"
	MarkClose = "</mark>"
)

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// escapeText escapes only what text content requires, leaving quotes readable.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// Highlight wraps every literal occurrence of query inside a text node with the
// highlight marker and returns the rewritten markup with the number of matches.
// Text nodes without a match are copied byte-for-byte. An empty query is a no-op.
func Highlight(markup, query string) (string, int) {
	if query == "" {
		return markup, 0
	}

	z := html.NewTokenizer(strings.NewReader(markup))
	var b strings.Builder
	hidden := 0
	matches := 0

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return b.String(), matches
		}
		// Text and TagName rewrite the tokenizer buffer in place.
		raw := append([]byte(nil), z.Raw()...)

		switch tt {
		case html.TextToken:
			text := string(z.Text())
			n := strings.Count(text, query)
			if hidden > 0 || n == 0 {
				b.Write(raw)
				continue
			}
			matches += n
			if out, ok := markRaw(string(raw), text, query); ok {
				b.WriteString(out)
				continue
			}
			parts := strings.Split(text, query)
			for i, part := range parts {
				if i > 0 {
					b.WriteString(MarkOpen)
					b.WriteString(escapeText(query))
					b.WriteString(MarkClose)
				}
				b.WriteString(escapeText(part))
			}
		case html.StartTagToken:
			name, _ := z.TagName()
			if hiddenAtoms[atom.Lookup(name)] {
				hidden++
			}
			b.Write(raw)
		case html.EndTagToken:
			name, _ := z.TagName()
			if hiddenAtoms[atom.Lookup(name)] && hidden > 0 {
				hidden--
			}
			b.Write(raw)
		default:
			b.Write(raw)
		}
	}
}

// markRaw wraps every match of query in the decoded text with the highlight
// marker while copying the raw bytes, entity spellings included, unchanged.
// It fails when the raw text cannot be lined up with the decoded text or a
// match boundary falls inside a character reference.
func markRaw(raw, text, query string) (string, bool) {
	// rawAt maps decoded offsets at reference boundaries to raw offsets.
	rawAt := map[int]int{0: 0}
	var decoded strings.Builder
	for i := 0; i < len(raw); {
		step := 0
		if raw[i] == '&' {
			if end := strings.IndexByte(raw[i:], ';'); end > 1 && end <= maxRefLen && isRefName(raw[i+1:i+end]) {
				ref := raw[i : i+end+1]
				if dec := html.UnescapeString(ref); dec != ref {
					decoded.WriteString(dec)
					step = len(ref)
				}
			}
		}
		if step == 0 {
			_, step = utf8.DecodeRuneInString(raw[i:])
			decoded.WriteString(raw[i : i+step])
		}
		i += step
		rawAt[decoded.Len()] = i
	}
	if decoded.String() != text {
		return "", false
	}

	var b strings.Builder
	last := 0
	for pos := 0; ; {
		idx := strings.Index(text[pos:], query)
		if idx < 0 {
			break
		}
		start, end := pos+idx, pos+idx+len(query)
		rs, ok1 := rawAt[start]
		re, ok2 := rawAt[end]
		if !ok1 || !ok2 {
			return "", false
		}
		b.WriteString(raw[last:rs])
		b.WriteString(MarkOpen)
		b.WriteString(raw[rs:re])
		b.WriteString(MarkClose)
		last = re
		pos = end
	}
	b.WriteString(raw[last:])
	return b.String(), true
}

// maxRefLen bounds the length of a named character reference.
const maxRefLen = 40

func isRefName(s string) bool {
	for _, r := range s {
		if r != '#' && (r < '0' || r > '9') && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// ReplaceHighlighted replaces every highlight marker whose entire text equals
// query with replacement, escaped as text. Markers wrapping any other text are
// left untouched, so replace only acts on what a find for the same query produced.
func ReplaceHighlighted(markup, query, replacement string) (string, int) {
	if query == "" {
		return markup, 0
	}

	z := html.NewTokenizer(strings.NewReader(markup))
	var b strings.Builder
	replaced := 0

	// Buffered state for the marker currently being read.
	depth := 0
	var pending strings.Builder
	var text strings.Builder

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// An unterminated marker is flushed as-is.
			b.WriteString(pending.String())
			return b.String(), replaced
		}
		// Text and TagName rewrite the tokenizer buffer in place.
		raw := append([]byte(nil), z.Raw()...)

		isMark := false
		if tt == html.StartTagToken || tt == html.EndTagToken {
			name, _ := z.TagName()
			isMark = atom.Lookup(name) == atom.Mark
		}

		switch {
		case tt == html.StartTagToken && isMark:
			depth++
			pending.Write(raw)
		case tt == html.EndTagToken && isMark && depth > 0:
			depth--
			pending.Write(raw)
			if depth > 0 {
				continue
			}
			if text.String() == query {
				b.WriteString(escapeText(replacement))
				replaced++
			} else {
				b.WriteString(pending.String())
			}
			pending.Reset()
			text.Reset()
		case depth > 0:
			if tt == html.TextToken {
				text.Write(z.Text())
			}
			pending.Write(raw)
		default:
			b.Write(raw)
		}
	}
}
