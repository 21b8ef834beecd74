package datetime

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is a duration unit.
type Unit int

const (
	Second Unit = iota
	Minute
	Hour
	Day
	Week
	Month
	Year

	unitCount
)

var unitNames = [...]string{
	Second: "second",
	Minute: "minute",
	Hour:   "hour",
	Day:    "day",
	Week:   "week",
	Month:  "month",
	Year:   "year",
}

func (u Unit) String() string {
	if u >= 0 && u < unitCount {
		return unitNames[u]
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// isCalendar reports whether u is applied to the date fields rather than as
// elapsed time.
func (u Unit) isCalendar() bool {
	return u == Month || u == Year
}

// units maps every accepted spelling to its unit.
var units = map[string]Unit{
	"second": Second, "seconds": Second, "sec": Second, "secs": Second,
	"minute": Minute, "minutes": Minute, "min": Minute, "mins": Minute,
	"hour": Hour, "hours": Hour, "hr": Hour, "hrs": Hour,
	"day": Day, "days": Day,
	"week": Week, "weeks": Week, "wk": Week, "wks": Week,
	"month": Month, "months": Month,
	"year": Year, "years": Year, "yr": Year, "yrs": Year,
}

// maxOffsetYears bounds how far each part of a parsed offset may reach in
// either direction. Calendar terms and fixed-duration terms are checked
// separately, so together they stay within twice this many years.
const maxOffsetYears = 10000

const (
	maxOffsetMonths  = maxOffsetYears * 12
	maxOffsetSeconds = maxOffsetYears * 365 * 24 * 60 * 60
)

// qualifiedUnits holds the singular names accepted after this, last and next.
var qualifiedUnits = map[string]Unit{
	"second": Second,
	"minute": Minute,
	"hour":   Hour,
	"day":    Day,
	"week":   Week,
	"month":  Month,
	"year":   Year,
}

// unitSeconds is the fixed length of each non-calendar unit.
var unitSeconds = [...]int64{
	Second: 1,
	Minute: 60,
	Hour:   60 * 60,
	Day:    24 * 60 * 60,
	Week:   7 * 24 * 60 * 60,
}

// Sign is the direction of a relative offset.
type Sign int

const (
	Future Sign = 1
	Past   Sign = -1
)

func (s Sign) String() string {
	switch s {
	case Future:
		return "future"
	case Past:
		return "past"
	default:
		return fmt.Sprintf("Sign(%d)", int(s))
	}
}

// Term is a single quantity and unit, e.g. "3 days".
type Term struct {
	Quantity int64
	Unit     Unit
}

// Duration is a signed, multi-unit offset. Quantities of the same unit are
// summed.
type Duration struct {
	Sign    Sign
	amounts [unitCount]int64
}

// NewDuration builds a Duration from terms.
func NewDuration(sign Sign, terms ...Term) Duration {
	d := Duration{Sign: sign}
	for _, t := range terms {
		d.add(t)
	}
	return d
}

func (d *Duration) add(t Term) {
	if t.Unit >= 0 && t.Unit < unitCount {
		d.amounts[t.Unit] += t.Quantity
	}
}

// Get returns the summed quantity for u.
func (d Duration) Get(u Unit) int64 {
	if u < 0 || u >= unitCount {
		return 0
	}
	return d.amounts[u]
}

// Terms returns the non-zero buckets from the largest unit to the smallest.
func (d Duration) Terms() []Term {
	var terms []Term
	for u := Year; u >= Second; u-- {
		if d.amounts[u] != 0 {
			terms = append(terms, Term{Quantity: d.amounts[u], Unit: u})
		}
	}
	return terms
}

// String renders d in the grammar ParseDuration accepts.
func (d Duration) String() string {
	terms := d.Terms()
	parts := make([]string, len(terms))
	for i, t := range terms {
		name := t.Unit.String()
		if t.Quantity != 1 {
			name += "s"
		}
		parts[i] = strconv.FormatInt(t.Quantity, 10) + " " + name
	}

	var body string
	switch len(parts) {
	case 0:
		body = "0 seconds"
	case 1:
		body = parts[0]
	default:
		body = strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
	}

	if d.Sign == Past {
		return body + " ago"
	}
	return "in " + body
}

// ParseDuration parses "in <terms>" or "<terms> ago", where terms are
// quantity/unit pairs joined by "and", commas or nothing:
//
//	in 3 days
//	10 hours and 5 minutes ago
//	1 year, 2 months, 3 weeks and 5 days ago
//	an hour ago
func ParseDuration(s string) (Duration, error) {
	d, ok, err := parseDuration(tokenize(Normalize(s)))
	if err != nil {
		return Duration{}, err
	}
	if !ok {
		return Duration{}, unrecognized(s)
	}
	return d, nil
}

// parseDuration reports ok=false when toks are not shaped like a duration
// phrase or name an unknown unit. Once the shape is certain, bad quantities
// and a missing or doubled direction marker are errors.
func parseDuration(toks []string) (Duration, bool, error) {
	future := len(toks) > 0 && toks[0] == "in"
	if future {
		toks = toks[1:]
	}
	past := len(toks) > 0 && toks[len(toks)-1] == "ago"
	if past {
		toks = toks[:len(toks)-1]
	}

	pairs, ok := splitTerms(toks)
	if !ok {
		return Duration{}, false, nil
	}

	parsed := make([]Term, len(pairs))
	for i, p := range pairs {
		u, known := units[p[1]]
		if !known {
			return Duration{}, false, nil
		}
		parsed[i].Unit = u
	}
	var months, secs int64
	for i, p := range pairs {
		q, err := parseQuantity(p[0])
		if err != nil {
			return Duration{}, true, err
		}
		parsed[i].Quantity = q

		switch u := parsed[i].Unit; u {
		case Year:
			months += q * 12
		case Month:
			months += q
		default:
			secs += q * unitSeconds[u]
		}
		if months > maxOffsetMonths || secs > maxOffsetSeconds {
			return Duration{}, true, &InvalidNumberError{Token: p[0]}
		}
	}

	if future == past {
		return Duration{}, true, ErrConflictingModifiers
	}

	sign := Future
	if past {
		sign = Past
	}
	return NewDuration(sign, parsed...), true, nil
}

// splitTerms groups toks into quantity/unit pairs. Pairs may be separated by
// ",", "and" or ", and", or directly follow each other.
func splitTerms(toks []string) ([][2]string, bool) {
	var pairs [][2]string
	for i := 0; i < len(toks); {
		if isSeparator(toks[i]) {
			if len(pairs) == 0 {
				return nil, false
			}
			n := 1
			if toks[i] == "," && i+1 < len(toks) && toks[i+1] == "and" {
				n = 2
			}
			i += n
			if i >= len(toks) || isSeparator(toks[i]) {
				return nil, false
			}
			continue
		}
		if i+1 >= len(toks) || isSeparator(toks[i+1]) {
			return nil, false
		}
		pairs = append(pairs, [2]string{toks[i], toks[i+1]})
		i += 2
	}
	return pairs, len(pairs) > 0
}

func isSeparator(tok string) bool {
	return tok == "," || tok == "and"
}

// parseQuantity accepts "a", "an" or a digit sequence that fits in 32 bits.
func parseQuantity(tok string) (int64, error) {
	if tok == "a" || tok == "an" {
		return 1, nil
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, &InvalidNumberError{Token: tok}
		}
	}
	n, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0, &InvalidNumberError{Token: tok}
	}
	return n, nil
}
