// ABOUTME: Markup builders for caret insertions: the editable table block.
package document

import "strings"

// Default table dimensions.
const (
	DefaultTableRows = 2
	DefaultTableCols = 2
)

// TableMarkup builds a bordered, border-collapsed table with every cell editable
// and padded. Non-positive dimensions fall back to the defaults.
func TableMarkup(rows, cols int) string {
	if rows < 1 {
		rows = DefaultTableRows
	}
	if cols < 1 {
		cols = DefaultTableCols
	}

	var b strings.Builder
	b.WriteString(`<table border="1" style="border-collapse: collapse;"><tbody>`)
	for r := 0; r < rows; r++ {
		b.WriteString("<tr>")
		for c := 0; c < cols; c++ {
			b.WriteString(`<td contenteditable="true" style="padding: 6px;"><br></td>`)
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}
