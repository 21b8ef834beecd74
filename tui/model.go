package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/technologicalMayhem/human-date-parser/datetime"
	"github.com/technologicalMayhem/human-date-parser/entry"
)

// Input modes
type inputMode int

const (
	modeInput inputMode = iota
	modeBrowse
	modeFilter
	modeTheme
	modeDetail
)

// TickMsg is sent every second so an unpinned reference follows the clock
type TickMsg time.Time

// FileUpdateMsg is sent when a watched expression file was re-resolved
type FileUpdateMsg struct {
	FilePath string
	Entries  []*entry.Entry
}

// Model is the Bubble Tea model for the interactive resolver
type Model struct {
	parser        *datetime.Parser
	clock         clockwork.Clock
	pinned        *datetime.DateTime // nil follows the clock
	list          list.Model
	entries       []*entry.Entry
	watcherEvents <-chan FileUpdateMsg
	pendingDelete bool
	width         int
	height        int

	// Sectioned view
	sortEnabled   bool
	compactIndex  int
	compactScroll int

	mode        inputMode
	input       textinput.Model
	filterInput textinput.Model

	// Theme picker
	themeIndex    int
	previewTheme  int
	originalTheme int

	detailEntry  *entry.Entry
	detailScroll int

	help help.Model
	keys keyMap

	statusMessage     string
	statusMessageTime time.Time
}

// Config carries everything the model needs from the command line
type Config struct {
	Parser    *datetime.Parser
	Clock     clockwork.Clock
	Reference *datetime.DateTime // pins the reference instant when set
	Entries   []*entry.Entry     // initial entries from watched files
	Events    <-chan FileUpdateMsg
}

// New creates a new TUI model
func New(cfg Config) Model {
	themes[0].applyStyles()

	if cfg.Parser == nil {
		cfg.Parser = datetime.New()
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}

	entries := append([]*entry.Entry(nil), cfg.Entries...)
	entry.SortByValue(entries)

	l := list.New(entriesToItems(entries), itemDelegate{}, 80, 20)
	l.Title = ""
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false) // filtering is done by the model
	l.SetShowHelp(false)

	in := textinput.New()
	in.Placeholder = "last friday at 19:45  or  2 hours and 5 minutes ago"
	in.CharLimit = 200
	in.Width = 50
	in.Focus()

	fi := textinput.New()
	fi.Placeholder = "type to filter..."
	fi.CharLimit = 100
	fi.Width = 40

	return Model{
		parser:        cfg.Parser,
		clock:         cfg.Clock,
		pinned:        cfg.Reference,
		list:          l,
		entries:       entries,
		watcherEvents: cfg.Events,
		mode:          modeInput,
		input:         in,
		filterInput:   fi,
		help:          help.New(),
		keys:          keys,
		sortEnabled:   true,
	}
}

// Init starts the tick timer and the watcher subscription
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		m.tickCmd(),
	}
	if m.watcherEvents != nil {
		cmds = append(cmds, m.waitForFileUpdate())
	}
	return tea.Batch(cmds...)
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return TickMsg(m.clock.Now())
	})
}

func (m Model) waitForFileUpdate() tea.Cmd {
	return func() tea.Msg {
		if m.watcherEvents == nil {
			return nil
		}
		event, ok := <-m.watcherEvents
		if !ok {
			return nil
		}
		return event
	}
}
