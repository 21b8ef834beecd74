// Package datetime turns human-phrased English date and time expressions
// ("last friday at 19:45", "in 3 days", "10 hours and 5 minutes ago") into a
// single timezone-naive DateTime.
//
// Every expression is resolved against a reference instant supplied by the
// caller. The package never reads the system clock and never attaches a
// location to its results; zone semantics belong to the caller.
//
// Recognition is an ordered chain of independent grammar matchers:
//
//   - absolute dates ("2022-11-07 13:25:30", "15 feb 2017", "march 3")
//   - keyword days ("now", "today 18:30", "tomorrow", "overmorrow")
//   - weekday combinations ("this friday 17:00", "13:25, next tuesday")
//   - qualified units ("next week", "last month")
//   - relative offsets ("in 3 days", "a year ago", "7 days ago at 04:00")
//
// The first grammar that matches the whole normalized input wins. All
// functions are safe for concurrent use by multiple goroutines.
package datetime

import (
	"fmt"
	"time"
)

// Layout is the time package layout of DateTime.String. It is also a valid
// absolute expression, so formatted values parse back to themselves.
const Layout = "2006-01-02 15:04:05"

// DateTime is a calendar date and wall-clock time without a zone.
type DateTime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// Date returns the DateTime for the given fields. Out-of-range values are
// normalized the way time.Date normalizes them (October 32 is November 1).
func Date(year int, month time.Month, day, hour, min, sec int) DateTime {
	return FromTime(time.Date(year, month, day, hour, min, sec, 0, time.UTC))
}

// FromTime takes the wall-clock fields of t and drops its location and
// sub-second part.
func FromTime(t time.Time) DateTime {
	return DateTime{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// In interprets d as a wall-clock time in loc. A nil loc means UTC.
func (d DateTime) In(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second, 0, loc)
}

// utc is the arithmetic carrier: UTC has no DST, so field arithmetic on it is
// exact elapsed time.
func (d DateTime) utc() time.Time {
	return d.In(time.UTC)
}

// Weekday returns the day of the week of d.
func (d DateTime) Weekday() time.Weekday {
	return d.utc().Weekday()
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after o.
func (d DateTime) Compare(o DateTime) int {
	return d.utc().Compare(o.utc())
}

// Before reports whether d is strictly before o.
func (d DateTime) Before(o DateTime) bool {
	return d.Compare(o) < 0
}

// IsZero reports whether d is the zero value.
func (d DateTime) IsZero() bool {
	return d == DateTime{}
}

// String formats d as YYYY-MM-DD HH:MM:SS.
func (d DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		d.Year, int(d.Month), d.Day, d.Hour, d.Minute, d.Second)
}

// MarshalText encodes d in Layout.
func (d DateTime) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a value in Layout.
func (d *DateTime) UnmarshalText(data []byte) error {
	t, err := time.Parse(Layout, string(data))
	if err != nil {
		return fmt.Errorf("datetime: %w", err)
	}
	*d = FromTime(t)
	return nil
}

// Parser resolves expressions under a fixed set of policies. A Parser is
// immutable once built and may be shared between goroutines.
type Parser struct {
	unqualified UnqualifiedPolicy
	weekdayTime WeekdayTimePolicy
}

// New returns a Parser with the default policies overridden by opts.
func New(opts ...Option) *Parser {
	p := &Parser{
		unqualified: UnqualifiedThisWeek,
		weekdayTime: WeekdayMidnight,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = New()

// Parse resolves input against ref using the default policies.
func Parse(input string, ref DateTime) (DateTime, error) {
	return defaultParser.Parse(input, ref)
}

// Parse resolves input against ref. It returns either the resolved value or
// one of the error types in this package; the input must match a grammar in
// full.
func (p *Parser) Parse(input string, ref DateTime) (DateTime, error) {
	toks := tokenize(Normalize(input))
	if len(toks) == 0 {
		return DateTime{}, unrecognized(input)
	}

	for _, m := range matchers {
		s, ok, err := m(&cursor{toks: toks}, ref)
		if err != nil {
			return DateTime{}, err
		}
		if ok {
			return s.resolve(ref, p), nil
		}
	}

	return DateTime{}, unrecognized(input)
}
