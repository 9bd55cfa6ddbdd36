package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/termhere/termhere/internal/domain"
)

type historyItem struct {
	entry domain.HistoryEntry
}

func (h historyItem) FilterValue() string {
	return h.entry.Path
}

// opensLabel formats an open count for the meta line.
func opensLabel(count int) string {
	if count == 1 {
		return "1 open"
	}
	return fmt.Sprintf("%d opens", count)
}

type historyDelegate struct {
	styles Styles
}

func newHistoryDelegate(styles Styles) historyDelegate {
	return historyDelegate{styles: styles}
}

func (d historyDelegate) Height() int {
	return 2
}

func (d historyDelegate) Spacing() int {
	return 1
}

func (d historyDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d historyDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	hi, ok := item.(historyItem)
	if !ok {
		return
	}
	entry := hi.entry
	selected := index == m.Index()

	indicatorChar := " "
	if selected {
		indicatorChar = ">"
	}

	listWidth := m.Width()
	maxPathLen := listWidth - 6
	if maxPathLen < 10 {
		maxPathLen = 10
	}

	path := entry.Path
	if runewidth.StringWidth(path) > maxPathLen {
		path = runewidth.Truncate(path, maxPathLen-3, "...")
	}

	meta := opensLabel(entry.Count)
	if !entry.LastOpened.IsZero() {
		meta += "  " + entry.LastOpened.Format("2006-01-02 15:04")
	}

	var line, descLine string
	if selected {
		indicator := d.styles.SelectionIndicator.Bold(true).Render(indicatorChar)
		line = "  " + indicator + " " + d.styles.PathSelected.Render(path)
		descLine = "    " + d.styles.MetaSelected.Render(meta)
	} else {
		indicator := d.styles.SelectionIndicator.Render(indicatorChar)
		line = "  " + indicator + " " + d.styles.Path.Render(path)
		descLine = "    " + d.styles.Meta.Render(meta)
	}

	_, _ = fmt.Fprintln(w, line)
	_, _ = fmt.Fprint(w, descLine)
}
