package tui

import (
	"strings"
	"time"

	"github.com/technologicalMayhem/human-date-parser/datetime"
	"github.com/technologicalMayhem/human-date-parser/entry"
)

// reference returns the instant expressions are resolved against
func (m Model) reference() datetime.DateTime {
	if m.pinned != nil {
		return *m.pinned
	}
	return datetime.FromTime(m.clock.Now())
}

// togglePin freezes the reference at the current clock value, or releases it
func (m *Model) togglePin() {
	if m.pinned != nil {
		m.pinned = nil
		m.setStatus("reference follows the clock")
		return
	}
	ref := datetime.FromTime(m.clock.Now())
	m.pinned = &ref
	m.setStatus("reference pinned at " + ref.String())
}

// preview resolves the text currently in the input box without recording it
func (m Model) preview() (v datetime.DateTime, ok bool, err error) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return datetime.DateTime{}, false, nil
	}
	v, err = m.parser.Parse(text, m.reference())
	return v, true, err
}

// commit resolves the input box and adds the outcome to the history.
// Failed expressions are kept too so the error stays visible.
func (m *Model) commit() *entry.Entry {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return nil
	}
	e := entry.Resolve(m.parser, text, m.reference())
	m.entries = append(m.entries, e)
	entry.SortByValue(m.entries)
	m.input.Reset()
	m.refreshList()
	return e
}

func (m *Model) setStatus(msg string) {
	m.statusMessage = msg
	m.statusMessageTime = m.clock.Now()
}

// refreshList updates the list items from the current entries, applying
// the filter if active
func (m *Model) refreshList() {
	m.list.SetItems(entriesToItems(m.filteredEntries()))
	if last := len(m.filteredEntries()) - 1; m.compactIndex > last {
		m.compactIndex = last
	}
	if m.compactIndex < 0 {
		m.compactIndex = 0
	}
}

func (m Model) filteredEntries() []*entry.Entry {
	filterText := strings.ToLower(m.filterInput.Value())
	if filterText == "" {
		return m.entries
	}
	var filtered []*entry.Entry
	for _, e := range m.entries {
		hay := strings.ToLower(e.Input + " " + e.Label + " " + e.Result())
		if strings.Contains(hay, filterText) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// selectedEntry returns the currently selected entry, or nil if none
func (m *Model) selectedEntry() *entry.Entry {
	if m.sortEnabled {
		items := m.flatSections()
		if m.compactIndex >= 0 && m.compactIndex < len(items) {
			return items[m.compactIndex]
		}
		return nil
	}

	item := m.list.SelectedItem()
	if item == nil {
		return nil
	}
	ei, ok := item.(entryItem)
	if !ok {
		return nil
	}
	return ei.entry
}

// deleteSelected removes the selected entry from the history
func (m *Model) deleteSelected() {
	e := m.selectedEntry()
	if e == nil {
		return
	}
	for i, cur := range m.entries {
		if cur == e {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			break
		}
	}
	m.refreshList()
}

// section groups entries by where their value falls relative to a reference
type section struct {
	title   string
	entries []*entry.Entry
}

// sections buckets the filtered entries by day relative to ref. Weeks start
// on Monday, matching the resolver.
func (m Model) sections(ref datetime.DateTime) []section {
	day := func(d datetime.DateTime) time.Time {
		return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	}
	today := day(ref)
	tomorrow := today.AddDate(0, 0, 1)
	weekEnd := today.AddDate(0, 0, 7-(int(today.Weekday())+6)%7)
	nextWeekEnd := weekEnd.AddDate(0, 0, 7)

	out := []section{
		{title: "Earlier"},
		{title: "Today"},
		{title: "Tomorrow"},
		{title: "Later This Week"},
		{title: "Next Week"},
		{title: "Further Out"},
		{title: "Unresolved"},
	}
	for _, e := range m.filteredEntries() {
		idx := 5
		if e.Status == entry.Failed {
			idx = 6
		} else {
			d := day(e.Value)
			switch {
			case d.Before(today):
				idx = 0
			case d.Equal(today):
				idx = 1
			case d.Equal(tomorrow):
				idx = 2
			case d.Before(weekEnd):
				idx = 3
			case d.Before(nextWeekEnd):
				idx = 4
			}
		}
		out[idx].entries = append(out[idx].entries, e)
	}
	return out
}

// flatSections lists entries in the order the sectioned view shows them
func (m Model) flatSections() []*entry.Entry {
	var flat []*entry.Entry
	for _, s := range m.sections(m.reference()) {
		flat = append(flat, s.entries...)
	}
	return flat
}

// offset expresses the distance from ref to v as a duration in days and
// smaller units
func offset(ref, v datetime.DateTime) datetime.Duration {
	secs := int64(v.In(nil).Sub(ref.In(nil)) / time.Second)
	sign := datetime.Future
	if secs < 0 {
		sign, secs = datetime.Past, -secs
	}
	return datetime.NewDuration(sign,
		datetime.Term{Quantity: secs / 86400, Unit: datetime.Day},
		datetime.Term{Quantity: secs % 86400 / 3600, Unit: datetime.Hour},
		datetime.Term{Quantity: secs % 3600 / 60, Unit: datetime.Minute},
		datetime.Term{Quantity: secs % 60, Unit: datetime.Second},
	)
}

// scrollCompactToSelection ensures the selected item is visible
func (m *Model) scrollCompactToSelection() {
	visibleItems := m.visibleCompactItems()

	if m.compactIndex < m.compactScroll {
		m.compactScroll = m.compactIndex
	}
	if m.compactIndex >= m.compactScroll+visibleItems {
		m.compactScroll = m.compactIndex - visibleItems + 1
	}
	if m.compactScroll < 0 {
		m.compactScroll = 0
	}
}

// visibleCompactItems returns how many rows fit below the input box,
// allowing for a few section headers
func (m *Model) visibleCompactItems() int {
	availableHeight := m.height - 12
	availableHeight -= 3
	if availableHeight < 1 {
		return 1
	}
	return availableHeight
}
