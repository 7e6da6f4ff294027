// ABOUTME: Top-level Bubble Tea AppModel for browsing stored editor slots.
// ABOUTME: Implements tea.Model (Init, Update, View) and routes messages to the list, preview, and status bar.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/2389-research/quill/store"
)

// Options configures the slot browser.
type Options struct {
	// Source names the backend in the status bar, e.g. the database path.
	Source string
	// ExportDir receives documents exported with the "e" key.
	ExportDir string
	// ExportFilename is appended to the profile id to name exported files.
	ExportFilename string
}

// AppModel composes the slot list, preview, and status bar.
type AppModel struct {
	list      SlotListModel
	preview   PreviewPanelModel
	statusBar StatusBarModel

	backend store.Backend
	opts    Options

	loaded bool
	width  int
	height int
}

// NewAppModel creates an AppModel over backend.
func NewAppModel(backend store.Backend, opts Options) AppModel {
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}
	if opts.ExportFilename == "" {
		opts.ExportFilename = "document.doc"
	}
	return AppModel{
		list:      NewSlotListModel(),
		preview:   NewPreviewPanelModel(),
		statusBar: NewStatusBarModel(opts.Source),
		backend:   backend,
		opts:      opts,
	}
}

// Init implements tea.Model by loading the slots.
func (m AppModel) Init() tea.Cmd {
	return LoadSlotsCmd(m.backend)
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case SlotsLoadedMsg:
		return m.handleSlotsLoaded(msg)

	case AutosaveClearedMsg:
		if msg.Err != nil {
			m.statusBar.SetMessage(msg.Err.Error(), true)
			return m, nil
		}
		m.statusBar.SetMessage(fmt.Sprintf("Cleared autosave for %s", shortProfile(msg.Profile)), false)
		return m, LoadSlotsCmd(m.backend)

	case DocExportedMsg:
		if msg.Err != nil {
			m.statusBar.SetMessage(msg.Err.Error(), true)
			return m, nil
		}
		m.statusBar.SetMessage(fmt.Sprintf("Exported %s", msg.Path), false)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m AppModel) handleSlotsLoaded(msg SlotsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.statusBar.SetMessage(msg.Err.Error(), true)
		return m, nil
	}
	m.loaded = true
	m.list.SetEntries(msg.Entries)
	m.statusBar.SetCounts(m.list.Profiles(), m.list.Len())
	m.syncPreview()
	return m, nil
}

// handleKeyMsg processes app-level key bindings; unhandled keys scroll the preview.
func (m AppModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		m.list.Move(-1)
		m.syncPreview()
		return m, nil
	case "down", "j":
		m.list.Move(1)
		m.syncPreview()
		return m, nil
	case "r":
		return m, LoadSlotsCmd(m.backend)
	case "x":
		e, ok := m.list.Selected()
		if !ok {
			return m, nil
		}
		return m, ClearAutosaveCmd(m.backend, e.Profile)
	case "e":
		e, ok := m.list.Selected()
		if !ok {
			return m, nil
		}
		return m, ExportDocCmd(m.backend, e.Profile, m.opts.ExportDir, m.opts.ExportFilename)
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func (m *AppModel) syncPreview() {
	if e, ok := m.list.Selected(); ok {
		m.preview.SetEntry(e)
		return
	}
	m.preview.Clear()
}

// View implements tea.Model. Renders the list and preview side by side above the status bar.
func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 10 {
		return fmt.Sprintf("Terminal too small (%dx%d). Minimum: 40x10.", m.width, m.height)
	}
	if !m.loaded && m.statusBar.Message() == "" {
		return "Loading slots..."
	}

	bodyHeight := m.height - 1
	listWidth := m.width * 35 / 100
	if listWidth < 20 {
		listWidth = 20
	}
	previewWidth := m.width - listWidth

	m.list.SetSize(listWidth, bodyHeight)
	m.preview.SetSize(previewWidth, bodyHeight)
	m.statusBar.SetWidth(m.width)

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), m.preview.View())
	return body + "\n" + m.statusBar.View()
}

// Run starts the slot browser on the terminal.
func Run(backend store.Backend, opts Options) error {
	p := tea.NewProgram(NewAppModel(backend, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("slot browser: %w", err)
	}
	return nil
}
