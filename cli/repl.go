package cli

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/technologicalMayhem/human-date-parser/entry"
)

// repl resolves one expression per input line until EOF or cancellation.
// The reference is read from the clock for every line unless --ref pins it.
func (a *app) repl(ctx context.Context, in io.Reader, out io.Writer) error {
	p := newPrinter(out, a.cfg.JSON)
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		e := entry.Resolve(a.parser, line, a.reference())
		logger.Debug("resolved", "input", line, "result", e.Result(), "status", e.Status.String())
		if err := p.interactive(e); err != nil {
			return errors.Wrap(err, "writing result")
		}
	}
	return errors.Wrap(scanner.Err(), "reading input")
}
