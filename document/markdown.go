// ABOUTME: Markdown import for editor documents using goldmark.
package document

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

// FromMarkdown converts markdown source to editor markup.
// The result always satisfies the non-empty invariant.
func FromMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	md := goldmark.New()
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return EnsureContent(buf.String()), nil
}
