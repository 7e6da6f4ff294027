// ABOUTME: Scrollable preview of the selected slot using the bubbles viewport component.
// ABOUTME: Shows slot metadata, the document's plain text, and its word count.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/2389-research/quill/document"
	"github.com/2389-research/quill/store"
)

// PreviewPanelModel renders one slot's contents.
type PreviewPanelModel struct {
	entry    store.Entry
	hasEntry bool
	words    int
	viewport viewport.Model
	width    int
	height   int
}

// NewPreviewPanelModel creates an empty preview panel.
func NewPreviewPanelModel() PreviewPanelModel {
	return PreviewPanelModel{viewport: viewport.New(80, 10)}
}

// SetEntry shows e in the panel. Markup slots are rendered as plain text.
func (m *PreviewPanelModel) SetEntry(e store.Entry) {
	m.entry = e
	m.hasEntry = true

	body := e.Value
	m.words = 0
	if e.Key != store.KeyDark {
		body = document.PlainText(e.Value)
		m.words = document.WordCount(body)
	}
	m.viewport.SetContent(body)
	m.viewport.GotoTop()
}

// Clear empties the panel.
func (m *PreviewPanelModel) Clear() {
	m.entry = store.Entry{}
	m.hasEntry = false
	m.words = 0
	m.viewport.SetContent("")
}

// Words returns the word count of the previewed slot.
func (m PreviewPanelModel) Words() int {
	return m.words
}

// SetSize sets the available dimensions and updates the viewport.
func (m *PreviewPanelModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	// Border (2), title (1), and three metadata lines.
	vpWidth := w - 2
	vpHeight := h - 6
	if vpWidth < 1 {
		vpWidth = 1
	}
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.viewport.Width = vpWidth
	m.viewport.Height = vpHeight
}

// Update forwards scrolling keys to the viewport.
func (m PreviewPanelModel) Update(msg tea.Msg) (PreviewPanelModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the preview panel.
func (m PreviewPanelModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("PREVIEW"))
	b.WriteString("\n")

	if !m.hasEntry {
		b.WriteString(DimStyle.Render("Select a slot"))
	} else {
		b.WriteString(LabelStyle.Render("Profile") + ValueStyle.Render(m.entry.Profile) + "\n")
		b.WriteString(LabelStyle.Render("Updated") + ValueStyle.Render(fmt.Sprintf("%s (rev %s)",
			m.entry.UpdatedAt.Local().Format("2006-01-02 15:04:05"), m.entry.Rev)) + "\n")
		b.WriteString(LabelStyle.Render("Words") + ValueStyle.Render(fmt.Sprintf("%d", m.words)) + "\n")
		b.WriteString(m.viewport.View())
	}

	style := BorderStyle
	if m.width > 2 {
		style = style.Width(m.width - 2)
	}
	if m.height > 2 {
		style = style.Height(m.height - 2)
	}
	return style.Render(b.String())
}
