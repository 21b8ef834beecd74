package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/technologicalMayhem/human-date-parser/datetime"
	"github.com/technologicalMayhem/human-date-parser/entry"
)

// record is the JSON rendering of one resolved entry.
type record struct {
	Input     string             `json:"input"`
	Label     string             `json:"label,omitempty"`
	Reference datetime.DateTime  `json:"reference"`
	Value     *datetime.DateTime `json:"value,omitempty"`
	Error     string             `json:"error,omitempty"`
	File      string             `json:"file,omitempty"`
	Line      int                `json:"line,omitempty"`
}

func newRecord(e *entry.Entry) record {
	r := record{
		Input:     e.Input,
		Label:     e.Label,
		Reference: e.Reference,
		File:      e.SourceFile,
		Line:      e.LineNumber,
	}
	if e.Err != nil {
		r.Error = e.Err.Error()
	} else {
		v := e.Value
		r.Value = &v
	}
	return r
}

// printer writes entries either as text or as JSON lines.
type printer struct {
	w    io.Writer
	json bool
	enc  *json.Encoder
}

func newPrinter(w io.Writer, asJSON bool) *printer {
	p := &printer{w: w, json: asJSON}
	if asJSON {
		p.enc = json.NewEncoder(w)
	}
	return p
}

// interactive prints the REPL form: the reference and the value, or just
// the error message.
func (p *printer) interactive(e *entry.Entry) error {
	if p.json {
		return p.enc.Encode(newRecord(e))
	}
	if e.Err != nil {
		_, err := fmt.Fprintln(p.w, e.Err)
		return err
	}
	_, err := fmt.Fprintf(p.w, "Time now: %s\nCalculated: %s\n\n", e.Reference, e.Value)
	return err
}

// value prints just the resolved value.
func (p *printer) value(e *entry.Entry) error {
	if p.json {
		return p.enc.Encode(newRecord(e))
	}
	_, err := fmt.Fprintln(p.w, e.Result())
	return err
}

// located prints an entry from an expression file with its position.
func (p *printer) located(e *entry.Entry) error {
	if p.json {
		return p.enc.Encode(newRecord(e))
	}
	line := fmt.Sprintf("%s:%d\t%s\t=>\t%s", e.SourceFile, e.LineNumber, e.Input, e.Result())
	if e.Label != "" {
		line += "\t# " + e.Label
	}
	_, err := fmt.Fprintln(p.w, line)
	return err
}
