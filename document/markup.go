// ABOUTME: Canonical markup constants and the non-empty content invariant for editor documents.
// ABOUTME: The document is opaque serialized markup; helpers here only inspect or wrap it.
package document

import "strings"

// Placeholder is the minimal paragraph used whenever the editor would otherwise be empty.
const Placeholder = "<p><br></p>"

// PageBreakMarkup is a block-level divider followed by a fresh paragraph.
const PageBreakMarkup = `<div class="page-break"></div>` + Placeholder

// IsBlank reports whether markup is empty or whitespace-only.
func IsBlank(markup string) bool {
	return strings.TrimSpace(markup) == ""
}

// EnsureContent returns the placeholder for blank markup and markup unchanged otherwise.
func EnsureContent(markup string) string {
	if IsBlank(markup) {
		return Placeholder
	}
	return markup
}

// IsTrivial reports whether markup is blank or exactly the placeholder.
// Trivial documents are not worth an explicit save.
func IsTrivial(markup string) bool {
	trimmed := strings.TrimSpace(markup)
	return trimmed == "" || trimmed == Placeholder
}
