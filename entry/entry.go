package entry

import (
	"sort"

	"github.com/technologicalMayhem/human-date-parser/datetime"
)

// Status reports whether an entry's expression resolved
type Status int

const (
	Resolved Status = iota // Expression matched a grammar
	Failed                 // Expression produced a parse error
)

func (s Status) String() string {
	switch s {
	case Resolved:
		return "ok"
	case Failed:
		return "error"
	default:
		return "unknown"
	}
}

// Entry is one expression together with the value it resolved to
type Entry struct {
	Input      string
	Label      string // Trailing "# label" from an expression file
	Reference  datetime.DateTime
	Value      datetime.DateTime
	Err        error
	SourceFile string // Empty for expressions typed interactively
	LineNumber int
	Status     Status
}

// Resolve parses input against ref and records the outcome
func Resolve(p *datetime.Parser, input string, ref datetime.DateTime) *Entry {
	e := &Entry{Input: input, Reference: ref}
	e.Value, e.Err = p.Parse(input, ref)
	if e.Err != nil {
		e.Status = Failed
	}
	return e
}

// Result returns the resolved value or the error message
func (e *Entry) Result() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Value.String()
}

// SortByValue orders entries by resolved value; failed entries go last in
// their original order
func SortByValue(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Status != b.Status {
			return a.Status == Resolved
		}
		if a.Status == Failed {
			return false
		}
		return a.Value.Before(b.Value)
	})
}

// MergeFromFile replaces every entry from filePath with fresh ones
func MergeFromFile(existing []*Entry, filePath string, fresh []*Entry) []*Entry {
	merged := make([]*Entry, 0, len(existing)+len(fresh))
	for _, e := range existing {
		if e.SourceFile != filePath {
			merged = append(merged, e)
		}
	}
	return append(merged, fresh...)
}

// CountFailed returns how many entries did not resolve
func CountFailed(entries []*Entry) int {
	n := 0
	for _, e := range entries {
		if e.Status == Failed {
			n++
		}
	}
	return n
}
