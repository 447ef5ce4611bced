package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civica-labs/corpora-cli/internal/core/domain"
)

func browserTestTable() domain.Table {
	return domain.Table{
		{
			SpeakerSurname:   "Washington",
			SpeakerGivenName: "George",
			Affiliation:      "Unaffiliated",
			OccurredOn:       time.Date(1790, 1, 8, 0, 0, 0, 0, time.UTC),
			Category:         "address",
			DeliveryMode:     "spoken",
			Body:             "Fellow-Citizens...",
		},
		{
			SpeakerSurname:   "Adams",
			SpeakerGivenName: "John",
			Affiliation:      "Federalist",
			OccurredOn:       time.Date(1797, 11, 23, 0, 0, 0, 0, time.UTC),
			Category:         "address",
			DeliveryMode:     "spoken",
			Body:             "Gentlemen...",
		},
	}
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	resized, ok := updated.(Model)
	require.True(t, ok)
	return resized
}

func TestNewModel(t *testing.T) {
	m := NewModel(browserTestTable())
	assert.Equal(t, 0, m.SelectedIndex())
	assert.Nil(t, m.Init())
}

func TestView_ListShowsDocuments(t *testing.T) {
	m := sized(t, NewModel(browserTestTable()))

	view := m.View()
	assert.Contains(t, view, "Corpus (2 documents)")
	assert.Contains(t, view, "Washington, George")
	assert.Contains(t, view, "1797-11-23")
}

func TestView_EmptyTable(t *testing.T) {
	m := sized(t, NewModel(nil))
	assert.Contains(t, m.View(), "No documents.")
}

func TestUpdate_Navigation(t *testing.T) {
	m := sized(t, NewModel(browserTestTable()))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	assert.Equal(t, 1, m.SelectedIndex())

	// Bottom of the list; down is a no-op.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	assert.Equal(t, 1, m.SelectedIndex())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	assert.Equal(t, 0, m.SelectedIndex())
}

func TestUpdate_EnterOpensReader(t *testing.T) {
	m := sized(t, NewModel(browserTestTable()))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	assert.Equal(t, int(modeReader), m.Mode())
	view := m.View()
	assert.Contains(t, view, "Washington, George — 1790-01-08")
	assert.Contains(t, view, "Unaffiliated · address · spoken")
}

func TestUpdate_EscReturnsToList(t *testing.T) {
	m := sized(t, NewModel(browserTestTable()))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	assert.Equal(t, int(modeList), m.Mode())
}

func TestUpdate_QuitFromList(t *testing.T) {
	m := sized(t, NewModel(browserTestTable()))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
