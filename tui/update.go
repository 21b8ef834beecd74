package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/technologicalMayhem/human-date-parser/entry"
)

// statusTTL is how long a status message stays on screen
const statusTTL = 3 * time.Second

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if key.Matches(msg, keys.Pin) {
			m.togglePin()
			return m, nil
		}

		switch m.mode {
		case modeFilter:
			return m.updateFilterMode(msg)
		case modeTheme:
			return m.updateThemeMode(msg)
		case modeDetail:
			return m.updateDetailMode(msg)
		case modeBrowse:
			return m.updateBrowseMode(msg)
		default:
			return m.updateInputMode(msg)
		}

	case TickMsg:
		if m.statusMessage != "" && time.Time(msg).Sub(m.statusMessageTime) > statusTTL {
			m.statusMessage = ""
		}
		return m, m.tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		listHeight := msg.Height - 12
		if listHeight < 5 {
			listHeight = 5
		}
		m.list.SetSize(msg.Width-4, listHeight)
		m.input.Width = msg.Width - 24

	case FileUpdateMsg:
		m.entries = entry.MergeFromFile(m.entries, msg.FilePath, msg.Entries)
		entry.SortByValue(m.entries)
		m.refreshList()
		return m, m.waitForFileUpdate()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Resolve):
		if e := m.commit(); e != nil && e.Status == entry.Failed {
			m.setStatus(e.Err.Error())
		}
		return m, nil

	case key.Matches(msg, keys.Switch):
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil

	case msg.Type == tea.KeyEscape:
		m.input.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateBrowseMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// 'dd' deletes, vim-style
	if msg.String() == "d" {
		if m.pendingDelete {
			m.deleteSelected()
			m.pendingDelete = false
		} else {
			m.pendingDelete = true
		}
		return m, nil
	}
	m.pendingDelete = false

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Switch), msg.Type == tea.KeyEscape:
		m.mode = modeInput
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.Theme):
		m.mode = modeTheme
		m.originalTheme = m.themeIndex
		m.previewTheme = m.themeIndex
		return m, nil

	case key.Matches(msg, keys.Sort):
		m.sortEnabled = !m.sortEnabled
		return m, nil

	case key.Matches(msg, keys.Filter):
		m.mode = modeFilter
		m.filterInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, keys.Detail), key.Matches(msg, keys.Resolve):
		if e := m.selectedEntry(); e != nil {
			m.mode = modeDetail
			m.detailEntry = e
			m.detailScroll = 0
		}
		return m, nil

	case key.Matches(msg, keys.Reuse):
		if e := m.selectedEntry(); e != nil {
			m.mode = modeInput
			m.input.SetValue(e.Input)
			m.input.Focus()
			m.input.CursorEnd()
			return m, textinput.Blink
		}
		return m, nil
	}

	if m.sortEnabled {
		last := len(m.flatSections()) - 1
		switch {
		case key.Matches(msg, keys.Up):
			if m.compactIndex > 0 {
				m.compactIndex--
			}
			m.scrollCompactToSelection()
			return m, nil
		case key.Matches(msg, keys.Down):
			if m.compactIndex < last {
				m.compactIndex++
			}
			m.scrollCompactToSelection()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateFilterMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = modeBrowse
		m.filterInput.Blur()
		m.filterInput.Reset()
		m.refreshList()
		return m, nil
	case tea.KeyEnter:
		m.mode = modeBrowse
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.refreshList()
	return m, cmd
}

func (m Model) updateThemeMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.themeIndex = m.originalTheme
		themes[m.themeIndex].applyStyles()
		m.mode = modeBrowse
		return m, nil
	case tea.KeyEnter:
		m.themeIndex = m.previewTheme
		m.mode = modeBrowse
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Up):
		if m.previewTheme > 0 {
			m.previewTheme--
			themes[m.previewTheme].applyStyles()
		}
	case key.Matches(msg, keys.Down):
		if m.previewTheme < len(themes)-1 {
			m.previewTheme++
			themes[m.previewTheme].applyStyles()
		}
	}
	return m, nil
}

func (m Model) updateDetailMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEscape, key.Matches(msg, keys.Quit):
		m.mode = modeBrowse
		m.detailEntry = nil
		m.detailScroll = 0
	case key.Matches(msg, keys.Up):
		if m.detailScroll > 0 {
			m.detailScroll--
		}
	case key.Matches(msg, keys.Down):
		m.detailScroll++
	case key.Matches(msg, keys.Reuse):
		if m.detailEntry != nil {
			m.mode = modeInput
			m.input.SetValue(m.detailEntry.Input)
			m.input.Focus()
			m.input.CursorEnd()
			m.detailEntry = nil
			m.detailScroll = 0
			return m, textinput.Blink
		}
	}
	return m, nil
}
