package tui

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/technologicalMayhem/human-date-parser/entry"
)

// inputColumn is the display width reserved for the expression text
const inputColumn = 32

// entryItem wraps an Entry to implement list.Item
type entryItem struct {
	entry *entry.Entry
}

func (i entryItem) Title() string {
	return i.entry.Input
}

func (i entryItem) Description() string {
	return i.entry.Result()
}

func (i entryItem) FilterValue() string {
	return i.entry.Input + " " + i.entry.Label
}

// itemDelegate renders history rows for the unsectioned list view
type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(entryItem)
	if !ok {
		return
	}
	fmt.Fprint(w, renderEntryLine(i.entry, index == m.Index(), m.Width()))
}

// renderEntryLine lays out one entry as icon, expression, result and source.
// Widths are measured in terminal cells so wide runes line up.
func renderEntryLine(e *entry.Entry, selected bool, width int) string {
	icon := "○"
	style := normalStyle
	if e.Status == entry.Failed {
		icon = "✗"
		style = failedStyle
	}
	if selected {
		icon = "▸"
		if e.Status != entry.Failed {
			style = selectedItemStyle
		}
	}

	input := runewidth.FillRight(runewidth.Truncate(e.Input, inputColumn, "…"), inputColumn)
	line := fmt.Sprintf("%s %s  %s", icon, input, e.Result())
	if e.Label != "" {
		line += "  # " + e.Label
	}

	var source string
	if e.SourceFile != "" {
		source = fmt.Sprintf("  %s:%d", filepath.Base(e.SourceFile), e.LineNumber)
	}

	if width > 0 {
		room := width - runewidth.StringWidth(source)
		if room < inputColumn {
			room = inputColumn
		}
		line = runewidth.Truncate(line, room, "…")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, style.Render(line), sourceStyle.Render(source))
}

func entriesToItems(entries []*entry.Entry) []list.Item {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = entryItem{entry: e}
	}
	return items
}
