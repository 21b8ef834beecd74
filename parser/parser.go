package parser

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/technologicalMayhem/human-date-parser/datetime"
	"github.com/technologicalMayhem/human-date-parser/entry"
)

// Extension is the file extension of expression files when a directory is
// scanned or watched
const Extension = ".dates"

// labelPattern splits "expression # label" (the # must follow whitespace)
var labelPattern = regexp.MustCompile(`^(.*?)\s+#\s*(.*)$`)

// ParseFile reads an expression file and resolves every expression in it.
// ref is the reference instant for all lines.
func ParseFile(filepath string, p *datetime.Parser, ref datetime.DateTime) ([]*entry.Entry, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	entries, err := Parse(file, p, ref)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading %s", filepath)
	}
	for _, e := range entries {
		e.SourceFile = filepath
	}
	return entries, nil
}

// Parse resolves one expression per line of r. Blank lines and lines
// starting with # are skipped; text after " # " becomes the entry label.
// Lines that fail to resolve are returned as Failed entries.
func Parse(r io.Reader, p *datetime.Parser, ref datetime.DateTime) ([]*entry.Entry, error) {
	var entries []*entry.Entry
	scanner := bufio.NewScanner(r)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		expr, label := ExtractLabel(line)
		e := entry.Resolve(p, expr, ref)
		e.Label = label
		e.LineNumber = lineNumber
		entries = append(entries, e)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// ExtractLabel splits a line into its expression and optional label
func ExtractLabel(line string) (expr, label string) {
	if m := labelPattern.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return strings.TrimSpace(line), ""
}
