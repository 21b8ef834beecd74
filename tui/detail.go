package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/technologicalMayhem/human-date-parser/entry"
)

func (m Model) detailView() string {
	if m.detailEntry == nil {
		return ""
	}
	e := m.detailEntry

	cardWidth := m.width - 8
	if cardWidth < 40 {
		cardWidth = 40
	}
	if cardWidth > 100 {
		cardWidth = 100
	}

	statusStyle := normalStyle
	if e.Status == entry.Failed {
		statusStyle = failedStyle
	}

	detailCardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(statusStyle.GetForeground()).
		Padding(1, 2).
		Width(cardWidth)

	var rows []string
	field := func(name, value string, style lipgloss.Style) {
		rows = append(rows, inputHintStyle.Render(name+": ")+style.Render(value))
	}

	rows = append(rows, inputLabelStyle.Render("Expression:"), "")
	for _, line := range wrapText(e.Input, cardWidth-4) {
		rows = append(rows, normalStyle.Render(line))
	}
	rows = append(rows, "", sourceStyle.Render(strings.Repeat("─", 33)), "")

	field("Reference", e.Reference.String()+" "+e.Reference.Weekday().String(), normalStyle)
	if e.Status == entry.Failed {
		for i, line := range wrapText(e.Err.Error(), cardWidth-12) {
			if i == 0 {
				field("Error", line, statusStyle)
				continue
			}
			rows = append(rows, statusStyle.Render("       "+line))
		}
	} else {
		field("Value", e.Value.String()+" "+e.Value.Weekday().String(), previewStyle)
		field("Offset", offset(e.Reference, e.Value).String(), normalStyle)
	}
	field("Status", e.Status.String(), statusStyle)
	if e.Label != "" {
		field("Label", e.Label, normalStyle)
	}
	if e.SourceFile != "" {
		field("Source", fmt.Sprintf("%s:%d", e.SourceFile, e.LineNumber), sourceStyle)
	}

	visible := m.height - 10
	if visible < 5 {
		visible = 5
	}
	start := m.detailScroll
	if start > len(rows)-1 {
		start = len(rows) - 1
	}
	end := start + visible
	if end > len(rows) {
		end = len(rows)
	}

	content := strings.Join(rows[start:end], "\n")
	content += "\n\n" + inputHintStyle.Render("e to edit again, esc to close")

	cardStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		AlignHorizontal(lipgloss.Center).
		AlignVertical(lipgloss.Center)

	return cardStyle.Render(detailCardStyle.Render(content))
}

func wrapText(text string, width int) []string {
	if width < 10 {
		width = 10
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	// Widths are terminal cells, not bytes
	var lines []string
	var line strings.Builder
	cells := 0

	for _, word := range words {
		w := runewidth.StringWidth(word)
		switch {
		case cells == 0:
			line.WriteString(word)
			cells = w
		case cells+1+w <= width:
			line.WriteString(" ")
			line.WriteString(word)
			cells += 1 + w
		default:
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
			cells = w
		}
	}

	if cells > 0 {
		lines = append(lines, line.String())
	}

	return lines
}
