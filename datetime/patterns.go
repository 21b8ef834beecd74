package datetime

import (
	"regexp"
	"strconv"
	"time"
)

// keywordDays maps day keywords to their offset from the reference date.
// "now" is handled separately since it keeps the full reference instant.
var keywordDays = map[string]int{
	"today":      0,
	"yesterday":  -1,
	"tomorrow":   1,
	"overmorrow": 2,
}

// Qualifier modifies a weekday or unit reference.
type Qualifier int

const (
	QualifierNone Qualifier = iota
	QualifierThis
	QualifierLast
	QualifierNext
)

var qualifierNames = [...]string{
	QualifierNone: "",
	QualifierThis: "this",
	QualifierLast: "last",
	QualifierNext: "next",
}

func (q Qualifier) String() string {
	if int(q) >= 0 && int(q) < len(qualifierNames) {
		return qualifierNames[q]
	}
	return "Qualifier(" + strconv.Itoa(int(q)) + ")"
}

var qualifiers = map[string]Qualifier{
	"this": QualifierThis,
	"last": QualifierLast,
	"next": QualifierNext,
}

var weekdays = map[string]time.Weekday{
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
	"sunday": time.Sunday, "sun": time.Sunday,
}

var months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// clockWords are named times of day.
var clockWords = map[string]clock{
	"noon":     {hour: 12},
	"midday":   {hour: 12},
	"midnight": {},
}

var (
	// isoDatePattern matches YYYY-MM-DD with an optional T-joined clock.
	isoDatePattern = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})(?:t(.+))?$`)

	// clockPattern matches 24-hour H:MM[:SS] and 12-hour H[:MM[:SS]]am|pm.
	clockPattern = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?(?::(\d{2}))?(am|pm)?$`)

	// dayPattern matches a day of month with an optional ordinal suffix.
	dayPattern = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)?$`)

	yearPattern = regexp.MustCompile(`^\d{4}$`)
)

// clock is a validated time of day.
type clock struct {
	hour, minute, second int
}

// parseClock reports whether tok is shaped like a clock literal. A token
// that is clock-shaped but out of range yields an InvalidDateComponentError.
func parseClock(tok string) (clock, bool, error) {
	if c, ok := clockWords[tok]; ok {
		return c, true, nil
	}

	m := clockPattern.FindStringSubmatch(tok)
	if m == nil || (m[2] == "" && m[4] == "") {
		return clock{}, false, nil
	}

	c := clock{hour: atoi(m[1]), minute: atoi(m[2]), second: atoi(m[3])}
	switch m[4] {
	case "am", "pm":
		if c.hour < 1 || c.hour > 12 {
			return clock{}, true, invalidComponent(FieldHour, c.hour)
		}
		c.hour %= 12
		if m[4] == "pm" {
			c.hour += 12
		}
	default:
		if c.hour > 23 {
			return clock{}, true, invalidComponent(FieldHour, c.hour)
		}
	}
	if c.minute > 59 {
		return clock{}, true, invalidComponent(FieldMinute, c.minute)
	}
	if c.second > 59 {
		return clock{}, true, invalidComponent(FieldSecond, c.second)
	}
	return c, true, nil
}

// leadingClock consumes a clock and an optional comma at the start of the
// cursor. The error, if any, is only meaningful once the rest of the input
// has matched.
func leadingClock(c *cursor) (clk clock, found bool, err error) {
	clk, found, err = parseClock(c.peek())
	if !found {
		return clock{}, false, nil
	}
	c.next()
	c.accept(",")
	return clk, true, err
}

// trailingClock parses an optional "[at] clock" that must end the input.
// ok is false when tokens remain that are not such a clause.
func trailingClock(c *cursor) (clk *clock, ok bool, err error) {
	if c.done() {
		return nil, true, nil
	}
	c.accept("at")
	parsed, found, err := parseClock(c.next())
	if !found || !c.done() {
		return nil, false, nil
	}
	if err != nil {
		return nil, true, err
	}
	return &parsed, true, nil
}

// validateDate checks the fields of a calendar date literal.
func validateDate(year, month, day int) error {
	if year < 1 {
		return invalidComponent(FieldYear, year)
	}
	if month < 1 || month > 12 {
		return invalidComponent(FieldMonth, month)
	}
	if day < 1 || day > daysIn(time.Month(month), year) {
		return invalidComponent(FieldDay, day)
	}
	return nil
}

// daysIn returns the number of days in month m of year.
func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// atoi converts a short digit string matched by a pattern; "" is 0.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
