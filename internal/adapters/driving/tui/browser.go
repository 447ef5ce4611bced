// Package tui implements the terminal corpus browser: a list of
// documents over the canonical table, with a full-text reader.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/civica-labs/corpora-cli/internal/core/domain"
)

// mode selects the active pane.
type mode int

const (
	modeList mode = iota
	modeReader
)

// Model is the browser's bubbletea model.
type Model struct {
	styles *styles
	table  domain.Table

	mode         mode
	selected     int
	scrollOffset int
	width        int
	height       int
	ready        bool

	reader viewport.Model
}

// NewModel creates a browser over the canonical table.
func NewModel(table domain.Table) Model {
	return Model{
		styles: defaultStyles(),
		table:  table,
	}
}

// Init initialises the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.reader.Width = msg.Width
		m.reader.Height = msg.Height - 4 // title + help
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeReader {
			return m.updateReader(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

// updateList handles key presses in list mode.
func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
			m.adjustScroll()
		}
	case "down", "j":
		if m.selected < len(m.table)-1 {
			m.selected++
			m.adjustScroll()
		}
	case "enter":
		if len(m.table) > 0 {
			m.mode = modeReader
			m.reader.SetContent(m.table[m.selected].Body)
			m.reader.GotoTop()
		}
	}
	return m, nil
}

// updateReader handles key presses in reader mode.
func (m Model) updateReader(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	m.reader, cmd = m.reader.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.mode == modeReader {
		return m.viewReader()
	}
	return m.viewList()
}

// viewList renders the document list.
func (m Model) viewList() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(fmt.Sprintf("Corpus (%d documents)", len(m.table))))
	b.WriteString("\n\n")

	if len(m.table) == 0 {
		b.WriteString(m.styles.Muted.Render("No documents."))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Help.Render("[q] quit"))
		return b.String()
	}

	visible := m.visibleItemCount()
	for i := m.scrollOffset; i < len(m.table) && i < m.scrollOffset+visible; i++ {
		b.WriteString(m.renderDocument(i))
		b.WriteString("\n")
	}

	if len(m.table) > visible {
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
			m.scrollOffset+1,
			min(m.scrollOffset+visible, len(m.table)),
			len(m.table))))
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render("[↑/↓] navigate  [enter] read  [q] quit"))
	return b.String()
}

// viewReader renders the full-text reader.
func (m Model) viewReader() string {
	r := &m.table[m.selected]

	var b strings.Builder
	title := fmt.Sprintf("%s, %s — %s", r.SpeakerSurname, r.SpeakerGivenName,
		r.OccurredOn.Format(domain.DateLayout))
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%s · %s · %s", r.Affiliation, r.Category, r.DeliveryMode)))
	b.WriteString("\n")
	b.WriteString(m.reader.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("[↑/↓] scroll  [esc] back  [q] quit"))
	return b.String()
}

// renderDocument renders one list line.
func (m Model) renderDocument(index int) string {
	r := &m.table[index]

	indicator := "  "
	if index == m.selected {
		indicator = "> "
	}

	line := fmt.Sprintf("%s%s  %s, %s  %s/%s",
		indicator,
		r.OccurredOn.Format(domain.DateLayout),
		r.SpeakerSurname, r.SpeakerGivenName,
		r.Category, r.DeliveryMode)

	if index == m.selected {
		return m.styles.Selected.Render(line)
	}
	return m.styles.Normal.Render(line)
}

// adjustScroll keeps the selected item visible.
func (m *Model) adjustScroll() {
	visible := m.visibleItemCount()
	if m.selected < m.scrollOffset {
		m.scrollOffset = m.selected
	} else if m.selected >= m.scrollOffset+visible {
		m.scrollOffset = m.selected - visible + 1
	}
}

// visibleItemCount returns how many list lines fit on screen.
func (m Model) visibleItemCount() int {
	// Reserve lines for title, separator, scroll indicator and help.
	available := m.height - 7
	if available < 1 {
		available = 1
	}
	return available
}

// SelectedIndex returns the currently selected document index.
func (m Model) SelectedIndex() int {
	return m.selected
}

// Mode reports whether the reader pane is active.
func (m Model) Mode() int {
	return int(m.mode)
}

// Run launches the browser over a canonical table.
func Run(table domain.Table) error {
	p := tea.NewProgram(NewModel(table), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
