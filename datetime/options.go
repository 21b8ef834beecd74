package datetime

import "fmt"

// UnqualifiedPolicy decides what a weekday without "this", "last" or "next"
// refers to.
type UnqualifiedPolicy int

const (
	// UnqualifiedThisWeek resolves "friday" like "this friday": the Friday of
	// the Monday-start week containing the reference date.
	UnqualifiedThisWeek UnqualifiedPolicy = iota
	// UnqualifiedUpcoming resolves "friday" like "next friday".
	UnqualifiedUpcoming
)

var unqualifiedNames = [...]string{
	UnqualifiedThisWeek: "this",
	UnqualifiedUpcoming: "upcoming",
}

func (u UnqualifiedPolicy) String() string {
	if int(u) >= 0 && int(u) < len(unqualifiedNames) {
		return unqualifiedNames[u]
	}
	return fmt.Sprintf("UnqualifiedPolicy(%d)", int(u))
}

// ParseUnqualifiedPolicy maps "this" or "upcoming" to a policy.
func ParseUnqualifiedPolicy(s string) (UnqualifiedPolicy, error) {
	for i, name := range unqualifiedNames {
		if s == name {
			return UnqualifiedPolicy(i), nil
		}
	}
	return 0, fmt.Errorf("datetime: unknown unqualified weekday policy %q (want this or upcoming)", s)
}

// WeekdayTimePolicy decides the time of day of a weekday reference that has
// no explicit clock.
type WeekdayTimePolicy int

const (
	// WeekdayMidnight resolves "next friday" to 00:00:00.
	WeekdayMidnight WeekdayTimePolicy = iota
	// WeekdayReferenceTime keeps the reference instant's time of day.
	WeekdayReferenceTime
)

var weekdayTimeNames = [...]string{
	WeekdayMidnight:      "midnight",
	WeekdayReferenceTime: "reference",
}

func (w WeekdayTimePolicy) String() string {
	if int(w) >= 0 && int(w) < len(weekdayTimeNames) {
		return weekdayTimeNames[w]
	}
	return fmt.Sprintf("WeekdayTimePolicy(%d)", int(w))
}

// ParseWeekdayTimePolicy maps "midnight" or "reference" to a policy.
func ParseWeekdayTimePolicy(s string) (WeekdayTimePolicy, error) {
	for i, name := range weekdayTimeNames {
		if s == name {
			return WeekdayTimePolicy(i), nil
		}
	}
	return 0, fmt.Errorf("datetime: unknown weekday time policy %q (want midnight or reference)", s)
}

// Option configures a Parser.
type Option func(*Parser)

// WithUnqualifiedWeekday sets the policy for weekdays without a qualifier.
func WithUnqualifiedWeekday(policy UnqualifiedPolicy) Option {
	return func(p *Parser) {
		p.unqualified = policy
	}
}

// WithWeekdayTime sets the time-of-day policy for weekday references.
func WithWeekdayTime(policy WeekdayTimePolicy) Option {
	return func(p *Parser) {
		p.weekdayTime = policy
	}
}
