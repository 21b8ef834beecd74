package datetime

import "time"

// shape is a recognized expression waiting for its reference instant. Shapes
// live for one Parse call.
type shape interface {
	resolve(ref DateTime, p *Parser) DateTime
}

// absoluteShape is a literal date and time; the reference does not matter.
type absoluteShape struct {
	value DateTime
}

func (s absoluteShape) resolve(DateTime, *Parser) DateTime {
	return s.value
}

// keywordShape is now/today/yesterday/tomorrow/overmorrow with an optional
// clock.
type keywordShape struct {
	now   bool
	days  int
	clock *clock
}

func (s keywordShape) resolve(ref DateTime, _ *Parser) DateTime {
	if s.now {
		return ref
	}
	d := ref.addDays(s.days)
	if s.clock != nil {
		d = d.at(*s.clock)
	}
	return d
}

// weekdayShape is a qualified weekday, optionally anchored to a whole week
// ("next week monday").
type weekdayShape struct {
	qualifier Qualifier
	week      bool
	weekday   time.Weekday
	clock     *clock
}

func (s weekdayShape) resolve(ref DateTime, p *Parser) DateTime {
	var d DateTime
	if s.week {
		d = weekOf(ref, s.qualifier, s.weekday)
	} else {
		q := s.qualifier
		if q == QualifierNone {
			q = QualifierThis
			if p.unqualified == UnqualifiedUpcoming {
				q = QualifierNext
			}
		}
		d = weekdayFrom(ref, q, s.weekday)
	}

	switch {
	case s.clock != nil:
		return d.at(*s.clock)
	case p.weekdayTime == WeekdayReferenceTime:
		return d
	default:
		return d.at(clock{})
	}
}

// unitShape is "this/last/next <unit>".
type unitShape struct {
	qualifier Qualifier
	unit      Unit
}

func (s unitShape) resolve(ref DateTime, _ *Parser) DateTime {
	switch s.qualifier {
	case QualifierNext:
		return NewDuration(Future, Term{Quantity: 1, Unit: s.unit}).Apply(ref)
	case QualifierLast:
		return NewDuration(Past, Term{Quantity: 1, Unit: s.unit}).Apply(ref)
	default:
		return ref
	}
}

// offsetShape is a signed duration with an optional clock applied after the
// offset.
type offsetShape struct {
	duration Duration
	clock    *clock
}

func (s offsetShape) resolve(ref DateTime, _ *Parser) DateTime {
	d := s.duration.Apply(ref)
	if s.clock != nil {
		d = d.at(*s.clock)
	}
	return d
}

// Apply shifts ref by d. Years and months move the date fields first and
// clamp the day to the end of the target month (January 31 plus one month is
// the last day of February). Weeks, days, hours, minutes and seconds follow
// as exact elapsed time. Amounts are expected to stay within the range
// ParseDuration accepts.
func (d Duration) Apply(ref DateTime) DateTime {
	sign := int64(1)
	if d.Sign == Past {
		sign = -1
	}

	months := sign * (d.amounts[Year]*12 + d.amounts[Month])
	out := addMonths(ref, months)

	var secs int64
	for u := Second; u < unitCount; u++ {
		if !u.isCalendar() {
			secs += d.amounts[u] * unitSeconds[u]
		}
	}
	secs *= sign

	// Whole days keep each time.Date argument small enough for a 32-bit int.
	days, rem := secs/unitSeconds[Day], secs%unitSeconds[Day]
	return FromTime(time.Date(out.Year, out.Month, out.Day+int(days),
		out.Hour, out.Minute, out.Second+int(rem), 0, time.UTC))
}

// addMonths moves d by n calendar months, clamping the day of month.
func addMonths(d DateTime, n int64) DateTime {
	if n == 0 {
		return d
	}
	total := int64(d.Year)*12 + int64(d.Month-1) + n
	year := floorDiv(total, 12)
	month := time.Month(total-year*12) + 1

	d.Year = int(year)
	d.Month = month
	d.Day = min(d.Day, daysIn(month, d.Year))
	return d
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// weekdayFrom finds weekday w relative to the date of ref:
//
//	this: inside the Monday-start week containing ref
//	last: 1 to 7 days before ref
//	next: 1 to 7 days after ref
//
// The time of day of ref is kept.
func weekdayFrom(ref DateTime, q Qualifier, w time.Weekday) DateTime {
	cur := int(ref.Weekday())
	target := int(w)
	switch q {
	case QualifierLast:
		back := (cur - target + 7) % 7
		if back == 0 {
			back = 7
		}
		return ref.addDays(-back)
	case QualifierNext:
		ahead := (target - cur + 7) % 7
		if ahead == 0 {
			ahead = 7
		}
		return ref.addDays(ahead)
	default:
		return ref.addDays(mondayIndex(w) - mondayIndex(ref.Weekday()))
	}
}

// weekOf finds weekday w inside the Monday-start week containing ref,
// shifted one week back for "last" and forward for "next".
func weekOf(ref DateTime, q Qualifier, w time.Weekday) DateTime {
	shift := 0
	switch q {
	case QualifierLast:
		shift = -7
	case QualifierNext:
		shift = 7
	}
	return ref.addDays(shift + mondayIndex(w) - mondayIndex(ref.Weekday()))
}

// mondayIndex numbers weekdays from Monday=0 to Sunday=6.
func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

func (d DateTime) addDays(n int) DateTime {
	return Date(d.Year, d.Month, d.Day+n, d.Hour, d.Minute, d.Second)
}

// at replaces the time of day of d.
func (d DateTime) at(c clock) DateTime {
	d.Hour, d.Minute, d.Second = c.hour, c.minute, c.second
	return d
}
