// ABOUTME: Plain-text extraction from editor markup and whitespace-token word counting.
// ABOUTME: Block elements and line breaks become newlines so adjacent paragraphs never fuse words.
package document

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockAtoms are elements whose boundaries separate words in rendered text.
var blockAtoms = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Br: true, atom.Li: true, atom.Ul: true, atom.Ol: true,
	atom.Table: true, atom.Tr: true, atom.Td: true, atom.Th: true, atom.Tbody: true,
	atom.Thead: true, atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true,
	atom.H5: true, atom.H6: true, atom.Blockquote: true, atom.Pre: true, atom.Hr: true,
	atom.Section: true, atom.Article: true, atom.Header: true, atom.Footer: true,
}

// hiddenAtoms hold raw text that is never rendered as document text.
var hiddenAtoms = map[atom.Atom]bool{
	atom.Script: true, atom.Style: true, atom.Template: true, atom.Title: true,
	atom.Textarea: true, atom.Noscript: true, atom.Xmp: true, atom.Iframe: true,
	atom.Noembed: true, atom.Plaintext: true,
}

// PlainText renders markup to the text a reader would see, one line per block.
func PlainText(markup string) string {
	z := html.NewTokenizer(strings.NewReader(markup))
	var b strings.Builder
	hidden := 0

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return strings.TrimRight(b.String(), "\n")
		case html.TextToken:
			if hidden == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if hiddenAtoms[a] && tt == html.StartTagToken {
				hidden++
				continue
			}
			if blockAtoms[a] {
				newline(&b)
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if hiddenAtoms[a] {
				if hidden > 0 {
					hidden--
				}
				continue
			}
			if blockAtoms[a] {
				newline(&b)
			}
		}
	}
}

// newline appends a line break unless the builder is empty or already ends with one.
func newline(b *strings.Builder) {
	s := b.String()
	if s == "" || strings.HasSuffix(s, "\n") {
		return
	}
	b.WriteByte('\n')
}

// WordCount counts whitespace-separated tokens in text. Blank text counts zero.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
