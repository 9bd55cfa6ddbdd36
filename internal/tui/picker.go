// Package tui implements the interactive history picker.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/termhere/termhere/internal/domain"
)

// Picker is the bubbletea model for choosing a recently opened folder.
// It only records the choice; the caller opens the terminal after the
// program has restored the screen.
type Picker struct {
	keys   KeyMap
	styles Styles
	list   list.Model
	choice string
}

// NewPicker creates a picker over history entries, most recent first.
func NewPicker(entries []domain.HistoryEntry) *Picker {
	styles := DefaultStyles()
	keys := DefaultKeyMap()

	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, historyItem{entry: e})
	}

	l := list.New(items, newHistoryDelegate(styles), 0, 0)
	l.Title = "Recent folders"
	l.Styles.Title = styles.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Open, keys.Quit}
	}

	return &Picker{
		keys:   keys,
		styles: styles,
		list:   l,
	}
}

// Choice returns the selected folder path, or "" when the picker was
// quit without opening anything.
func (p *Picker) Choice() string {
	return p.choice
}

// Init implements tea.Model.
func (p *Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := p.styles.App.GetFrameSize()
		p.list.SetSize(msg.Width-h, msg.Height-v)

	case tea.KeyMsg:
		// ctrl+c always quits, even while filtering.
		if msg.Type == tea.KeyCtrlC {
			return p, tea.Quit
		}
		// While the filter input is focused every other key belongs to it.
		if p.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, p.keys.Open):
			if item, ok := p.list.SelectedItem().(historyItem); ok {
				p.choice = item.entry.Path
			}
			return p, tea.Quit
		case key.Matches(msg, p.keys.Quit):
			return p, tea.Quit
		}
	}

	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

// View implements tea.Model.
func (p *Picker) View() string {
	return p.styles.App.Render(p.list.View())
}
