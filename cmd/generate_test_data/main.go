// Command generate_test_data writes a random corpus of date expressions in
// the expression file format, one per line, covering every grammar the
// resolver accepts plus a share of malformed lines.
package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/technologicalMayhem/human-date-parser/datetime"
	"github.com/technologicalMayhem/human-date-parser/parser"
)

var (
	keywords   = []string{"now", "today", "yesterday", "tomorrow", "overmorrow"}
	weekdays   = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday", "mon", "fri", "sun"}
	qualifiers = []string{"this", "last", "next"}
	unitNames  = []string{"second", "minute", "hour", "day", "week", "month", "year"}
	monthNames = []string{"january", "feb", "march", "apr", "may", "june", "jul", "august", "sept", "october", "nov", "december"}
	labels     = []string{"standup", "dentist", "release", "retro", "call mom", "deploy", "backup check", ""}

	malformed = []string{
		"banana",
		"in 3 days ago",
		"3 days",
		"in five days",
		"2024-13-01",
		"2024-02-30 10:00",
		"tomorrow 25:00",
		"next fortnight",
		"last friday at",
	}
)

type generator struct {
	rng *rand.Rand
}

func (g generator) pick(xs []string) string {
	return xs[g.rng.Intn(len(xs))]
}

func (g generator) clock() string {
	switch g.rng.Intn(4) {
	case 0:
		return fmt.Sprintf("%d%s", 1+g.rng.Intn(12), g.pick([]string{"am", "pm"}))
	case 1:
		return fmt.Sprintf("%02d:%02d:%02d", g.rng.Intn(24), g.rng.Intn(60), g.rng.Intn(60))
	case 2:
		return g.pick([]string{"noon", "midnight"})
	default:
		return fmt.Sprintf("%02d:%02d", g.rng.Intn(24), g.rng.Intn(4)*15)
	}
}

func (g generator) withClock(phrase string) string {
	switch g.rng.Intn(4) {
	case 0:
		return phrase + " " + g.clock()
	case 1:
		return phrase + " at " + g.clock()
	case 2:
		return g.clock() + ", " + phrase
	default:
		return phrase
	}
}

// trailingClock is withClock for literal dates, which only take a clock after
// the date
func (g generator) trailingClock(phrase string) string {
	switch g.rng.Intn(3) {
	case 0:
		return phrase + " " + g.clock()
	case 1:
		return phrase + " at " + g.clock()
	default:
		return phrase
	}
}

func (g generator) duration() string {
	n := 1 + g.rng.Intn(3)
	parts := make([]string, n)
	for i := range parts {
		q := g.rng.Intn(40)
		u := g.pick(unitNames)
		if q != 1 || g.rng.Intn(2) == 0 {
			u += "s"
		}
		if q == 1 && g.rng.Intn(3) == 0 {
			parts[i] = "a " + strings.TrimSuffix(u, "s")
			continue
		}
		parts[i] = fmt.Sprintf("%d %s", q, u)
	}
	body := parts[0]
	if n > 1 {
		body = strings.Join(parts[:n-1], ", ") + " and " + parts[n-1]
	}
	if g.rng.Intn(2) == 0 {
		return "in " + body
	}
	return body + " ago"
}

// expression returns one random line in a random grammar
func (g generator) expression() string {
	switch g.rng.Intn(9) {
	case 0:
		return g.pick(malformed)
	case 1:
		return g.withClock(g.pick(keywords[1:]))
	case 2:
		return g.withClock(g.pick(weekdays))
	case 3:
		return g.withClock(g.pick(qualifiers) + " " + g.pick(weekdays))
	case 4:
		return g.pick(qualifiers) + " week " + g.pick(weekdays)
	case 5:
		return g.pick(qualifiers) + " " + g.pick(unitNames)
	case 6:
		d := g.duration()
		if strings.HasSuffix(d, "ago") && g.rng.Intn(3) == 0 {
			d += " at " + g.clock()
		}
		return d
	case 7:
		y := 1990 + g.rng.Intn(60)
		m := 1 + g.rng.Intn(12)
		d := 1 + g.rng.Intn(28)
		if g.rng.Intn(2) == 0 {
			return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", y, m, d, g.rng.Intn(24), g.rng.Intn(60), g.rng.Intn(60))
		}
		return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
	default:
		return g.trailingClock(fmt.Sprintf("%d %s %d", 1+g.rng.Intn(28), g.pick(monthNames), 1990+g.rng.Intn(60)))
	}
}

func newRootCmd() *cobra.Command {
	var (
		count    int
		seed     int64
		output   string
		expected bool
		refText  string
	)

	cmd := &cobra.Command{
		Use:   "generate_test_data",
		Short: "Write a random corpus of date expressions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if filepath.Ext(output) != parser.Extension {
				return errors.Errorf("output %s must end in %s", output, parser.Extension)
			}

			ref, err := datetime.Parse(refText, datetime.FromTime(time.Now()))
			if err != nil {
				return errors.Wrap(err, "parsing --ref")
			}

			if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
				return errors.Wrap(err, "creating output directory")
			}
			f, err := os.Create(output)
			if err != nil {
				return errors.Wrap(err, "creating output file")
			}
			defer f.Close()

			w := bufio.NewWriter(f)
			fmt.Fprintf(w, "# %d generated expressions, seed %d\n", count, seed)
			if expected {
				fmt.Fprintf(w, "# labels hold the value resolved against %s\n", ref)
			}

			g := generator{rng: rand.New(rand.NewSource(seed))}
			p := datetime.New()
			for i := 0; i < count; i++ {
				line := g.expression()
				label := g.pick(labels)
				if expected {
					v, err := p.Parse(line, ref)
					if err != nil {
						label = "error"
					} else {
						label = v.String()
					}
				}
				if label != "" {
					line += "  # " + label
				}
				fmt.Fprintln(w, line)
			}
			if err := w.Flush(); err != nil {
				return errors.Wrap(err, "writing output file")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d expressions at %s\n", count, output)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 200, "number of expressions")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().StringVarP(&output, "output", "o", filepath.Join("testdata", "generated"+parser.Extension), "output file")
	cmd.Flags().BoolVar(&expected, "expected", false, "label each line with its resolved value")
	cmd.Flags().StringVar(&refText, "ref", "now", "reference instant for --expected")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
