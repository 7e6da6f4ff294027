// ABOUTME: Packages editor markup as a downloadable legacy word-processor document.
package document

// Export defaults.
const (
	ExportMIME     = "application/msword"
	ExportFilename = "document.doc"
)

// ExportShell wraps markup in a minimal HTML document that word processors open as .doc.
func ExportShell(markup string) []byte {
	return []byte(`<html><head><meta charset="utf-8"></head><body>` + markup + `</body></html>`)
}
