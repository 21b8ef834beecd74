package datetime

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// terminalPunct is stripped from the end of the input together with any
// whitespace around it.
const terminalPunct = ".!?;, \t"

// Normalize folds case, maps compatibility characters to their canonical
// form (full-width digits become ASCII), collapses runs of whitespace and
// removes trailing sentence punctuation.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	// A Caser keeps state between calls and cannot be shared.
	s = cases.Fold().String(s)
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimRight(s, terminalPunct)
}

// tokenize splits normalized text into words, keeping commas as tokens of
// their own.
func tokenize(s string) []string {
	return strings.Fields(strings.ReplaceAll(s, ",", " , "))
}

// cursor walks a token list for the matchers.
type cursor struct {
	toks []string
	pos  int
}

func (c *cursor) done() bool {
	return c.pos >= len(c.toks)
}

func (c *cursor) peek() string {
	if c.done() {
		return ""
	}
	return c.toks[c.pos]
}

func (c *cursor) next() string {
	tok := c.peek()
	if !c.done() {
		c.pos++
	}
	return tok
}

// accept consumes the next token if it equals word.
func (c *cursor) accept(word string) bool {
	if c.peek() == word && word != "" {
		c.pos++
		return true
	}
	return false
}
