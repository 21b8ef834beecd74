package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// headerView shows the reference instant and the live preview of the input
func (m Model) headerView() string {
	var b strings.Builder

	ref := m.reference()
	refLabel := "Time now: "
	if m.pinned != nil {
		refLabel = "Pinned:   "
	}
	b.WriteString(inputHintStyle.Render(refLabel))
	b.WriteString(normalStyle.Render(ref.String() + " " + ref.Weekday().String()))
	b.WriteString("\n")

	label := inputLabelStyle.Render("› ")
	b.WriteString(inputBoxStyle.Render(label + m.input.View()))
	b.WriteString("\n")

	v, ok, err := m.preview()
	switch {
	case !ok:
		b.WriteString(inputHintStyle.Render("  Calculated: (type an expression)"))
	case err != nil:
		b.WriteString(failedStyle.Render("  ⚠ " + err.Error()))
	default:
		b.WriteString(inputHintStyle.Render("  Calculated: "))
		b.WriteString(previewStyle.Render(v.String() + " " + v.Weekday().String()))
		b.WriteString(sourceStyle.Render("  (" + offset(ref, v).String() + ")"))
	}
	return b.String()
}

// sectionedView renders history grouped by day relative to the reference
func (m Model) sectionedView() string {
	items := m.flatSections()
	if len(items) == 0 {
		return normalStyle.Render("No expressions yet")
	}

	sectionStyle := lipgloss.NewStyle().
		Foreground(titleStyle.GetForeground()).
		Bold(true).
		MarginTop(1)

	visible := m.visibleCompactItems()
	start := m.compactScroll
	end := start + visible
	if end > len(items) {
		end = len(items)
	}

	var output []string
	if start > 0 {
		output = append(output, sourceStyle.Render(fmt.Sprintf("  ↑ %d more above", start)))
	}

	idx := 0
	for _, s := range m.sections(m.reference()) {
		if len(s.entries) == 0 {
			continue
		}
		sectionStart, sectionEnd := idx, idx+len(s.entries)
		if sectionEnd > start && sectionStart < end {
			output = append(output, sectionStyle.Render(s.title))
			for i, e := range s.entries {
				global := sectionStart + i
				if global < start || global >= end {
					continue
				}
				selected := m.mode != modeInput && global == m.compactIndex
				output = append(output, renderEntryLine(e, selected, m.width-4))
			}
		}
		idx = sectionEnd
	}

	if end < len(items) {
		output = append(output, sourceStyle.Render(fmt.Sprintf("  ↓ %d more below", len(items)-end)))
	}
	return strings.Join(output, "\n")
}

func (m Model) themePickerView() string {
	var b strings.Builder
	b.WriteString(inputLabelStyle.Render("Select Theme"))
	b.WriteString(inputHintStyle.Render("  (↑/k ↓/j to preview, enter to select, esc to cancel)"))
	b.WriteString("\n\n")

	for i, t := range themes {
		cursor := "  "
		name := normalStyle.Render(t.Name)
		if i == m.previewTheme {
			cursor = "▸ "
			name = selectedItemStyle.Render(t.Name)
		}
		b.WriteString(cursor + name + "\n")
	}
	return b.String()
}

// View renders the UI
func (m Model) View() string {
	if m.mode == modeDetail {
		return appStyle.Render(m.detailView())
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")

	if m.sortEnabled {
		b.WriteString(m.sectionedView())
	} else {
		b.WriteString(m.list.View())
	}

	switch m.mode {
	case modeFilter:
		label := inputLabelStyle.Render("Filter: ")
		hint := inputHintStyle.Render("  (enter to apply, esc to cancel)")
		b.WriteString("\n")
		b.WriteString(inputBoxStyle.Render(label + m.filterInput.View() + hint))

	case modeTheme:
		b.WriteString("\n\n")
		b.WriteString(m.themePickerView())

	default:
		if m.filterInput.Value() != "" {
			b.WriteString("\n")
			b.WriteString(inputLabelStyle.Render(fmt.Sprintf("Filtered: %q", m.filterInput.Value())))
			b.WriteString(inputHintStyle.Render("  (/ to modify, esc in filter to clear)"))
		}
		if m.statusMessage != "" {
			b.WriteString("\n")
			b.WriteString(inputHintStyle.Render(m.statusMessage))
		}
		b.WriteString("\n\n")
		b.WriteString(m.help.View(m.keys))
	}

	return appStyle.Render(b.String())
}
