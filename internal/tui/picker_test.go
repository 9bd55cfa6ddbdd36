package tui

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termhere/termhere/internal/domain"
)

func testEntries() []domain.HistoryEntry {
	return []domain.HistoryEntry{
		{Path: "/work/proj", LastOpened: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC), Count: 3},
		{Path: "/home/test/notes", LastOpened: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), Count: 1},
	}
}

func sized(p *Picker) *Picker {
	m, _ := p.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m.(*Picker)
}

func TestNewPicker_PreservesEntryOrder(t *testing.T) {
	p := NewPicker(testEntries())

	items := p.list.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "/work/proj", items[0].FilterValue())
	assert.Equal(t, "/home/test/notes", items[1].FilterValue())
}

func TestPicker_OpenRecordsSelection(t *testing.T) {
	p := sized(NewPicker(testEntries()))

	m, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p, ok := m.(*Picker)
	require.True(t, ok, "Update should return *Picker")

	assert.Equal(t, "/work/proj", p.Choice())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPicker_QuitLeavesNoChoice(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEscape},
		{Type: tea.KeyCtrlC},
	} {
		p := sized(NewPicker(testEntries()))

		m, cmd := p.Update(k)
		p = m.(*Picker)

		assert.Empty(t, p.Choice())
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestPicker_OpenOnEmptyListQuitsWithoutChoice(t *testing.T) {
	p := sized(NewPicker(nil))

	m, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = m.(*Picker)

	assert.Empty(t, p.Choice())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPicker_FilteringCapturesQuitKeys(t *testing.T) {
	p := sized(NewPicker(testEntries()))

	m, _ := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	p = m.(*Picker)
	require.Equal(t, list.Filtering, p.list.FilterState())

	// "q" now types into the filter input instead of quitting.
	m, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	p = m.(*Picker)

	assert.Equal(t, list.Filtering, p.list.FilterState())
	assert.Empty(t, p.Choice())
}

func TestPicker_CtrlCQuitsWhileFiltering(t *testing.T) {
	p := sized(NewPicker(testEntries()))

	m, _ := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	p = m.(*Picker)
	require.Equal(t, list.Filtering, p.list.FilterState())

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
