package datetime

import "time"

// matcher attempts to recognize the whole token stream. ok=false declines and
// lets the next matcher try; a non-nil error means the shape was recognized
// but is invalid, and ends the search.
type matcher func(c *cursor, ref DateTime) (s shape, ok bool, err error)

// matchers are tried in order; the first full match wins.
var matchers = []matcher{
	matchAbsolute,
	matchKeyword,
	matchWeekday,
	matchQualifiedUnit,
	matchOffset,
}

// matchAbsolute recognizes literal calendar dates:
//
//	2022-11-07
//	2022-11-07 13:25:30
//	2022-11-07t13:25
//	15 feb 2017 at 10:00
//	march 3rd, 2024
//	13 november
func matchAbsolute(c *cursor, ref DateTime) (shape, bool, error) {
	if m := isoDatePattern.FindStringSubmatch(c.peek()); m != nil {
		c.next()
		year, month, day := atoi(m[1]), atoi(m[2]), atoi(m[3])

		var clk *clock
		var clkErr error
		if m[4] != "" {
			parsed, found, err := parseClock(m[4])
			if !found || !c.done() {
				return nil, false, nil
			}
			clk, clkErr = &parsed, err
		} else {
			var ok bool
			clk, ok, clkErr = trailingClock(c)
			if !ok {
				return nil, false, nil
			}
		}
		return absoluteDate(year, month, day, clk, clkErr)
	}

	year, month, day, ok := namedDate(c, ref)
	if !ok {
		return nil, false, nil
	}
	clk, ok, clkErr := trailingClock(c)
	if !ok {
		return nil, false, nil
	}
	return absoluteDate(year, month, day, clk, clkErr)
}

// namedDate parses "D month [YYYY]" or "month D[,] [YYYY]". A missing year
// is taken from ref.
func namedDate(c *cursor, ref DateTime) (year, month, day int, ok bool) {
	year = ref.Year
	if dm := dayPattern.FindStringSubmatch(c.peek()); dm != nil {
		c.next()
		m, known := months[c.next()]
		if !known {
			return 0, 0, 0, false
		}
		day, month = atoi(dm[1]), int(m)
	} else if m, known := months[c.peek()]; known {
		c.next()
		dm := dayPattern.FindStringSubmatch(c.next())
		if dm == nil {
			return 0, 0, 0, false
		}
		day, month = atoi(dm[1]), int(m)
	} else {
		return 0, 0, 0, false
	}

	save := c.pos
	c.accept(",")
	if yearPattern.MatchString(c.peek()) {
		year = atoi(c.next())
	} else {
		c.pos = save
	}
	return year, month, day, true
}

func absoluteDate(year, month, day int, clk *clock, clkErr error) (shape, bool, error) {
	if err := validateDate(year, month, day); err != nil {
		return nil, true, err
	}
	if clkErr != nil {
		return nil, true, clkErr
	}
	var c clock
	if clk != nil {
		c = *clk
	}
	return absoluteShape{value: DateTime{
		Year:   year,
		Month:  time.Month(month),
		Day:    day,
		Hour:   c.hour,
		Minute: c.minute,
		Second: c.second,
	}}, true, nil
}

// matchKeyword recognizes day keywords with an optional clock on either
// side, and a bare clock meaning today:
//
//	now
//	today 18:30
//	tomorrow at 9am
//	15:20, yesterday
//	12:30
func matchKeyword(c *cursor, _ DateTime) (shape, bool, error) {
	leadClk, lead, leadErr := leadingClock(c)

	word := c.next()
	if word == "" {
		if !lead {
			return nil, false, nil
		}
		if leadErr != nil {
			return nil, true, leadErr
		}
		return keywordShape{clock: &leadClk}, true, nil
	}

	if word == "now" {
		// Any clock next to "now" is accepted and ignored.
		if !lead {
			if _, ok, _ := trailingClock(c); !ok {
				return nil, false, nil
			}
		}
		if !c.done() {
			return nil, false, nil
		}
		return keywordShape{now: true}, true, nil
	}

	days, known := keywordDays[word]
	if !known {
		return nil, false, nil
	}

	if lead {
		if !c.done() {
			return nil, false, nil
		}
		if leadErr != nil {
			return nil, true, leadErr
		}
		return keywordShape{days: days, clock: &leadClk}, true, nil
	}

	clk, ok, err := trailingClock(c)
	if !ok {
		return nil, false, nil
	}
	if err != nil {
		return nil, true, err
	}
	return keywordShape{days: days, clock: clk}, true, nil
}

// matchWeekday recognizes weekday references in either order:
//
//	friday
//	this friday 17:00
//	last friday at 19:45
//	13:25, next tuesday
//	next week monday
func matchWeekday(c *cursor, _ DateTime) (shape, bool, error) {
	leadClk, lead, leadErr := leadingClock(c)

	s := weekdayShape{}
	if q, ok := qualifiers[c.peek()]; ok {
		c.next()
		s.qualifier = q
		s.week = c.accept("week")
	}

	wd, ok := weekdays[c.next()]
	if !ok {
		return nil, false, nil
	}
	s.weekday = wd

	if lead {
		if !c.done() {
			return nil, false, nil
		}
		if leadErr != nil {
			return nil, true, leadErr
		}
		s.clock = &leadClk
		return s, true, nil
	}

	clk, ok, err := trailingClock(c)
	if !ok {
		return nil, false, nil
	}
	if err != nil {
		return nil, true, err
	}
	s.clock = clk
	return s, true, nil
}

// matchQualifiedUnit recognizes "this|last|next <unit>", e.g. "next week".
func matchQualifiedUnit(c *cursor, _ DateTime) (shape, bool, error) {
	q, ok := qualifiers[c.next()]
	if !ok {
		return nil, false, nil
	}
	u, ok := qualifiedUnits[c.next()]
	if !ok || !c.done() {
		return nil, false, nil
	}
	return unitShape{qualifier: q, unit: u}, true, nil
}

// matchOffset recognizes relative offsets with an optional trailing clock:
//
//	in 3 days
//	2 hours, 32 minutes and 7 seconds ago
//	7 days ago at 04:00
func matchOffset(c *cursor, _ DateTime) (shape, bool, error) {
	toks := c.toks

	var clk *clock
	var clkErr error
	if n := len(toks); n >= 3 && toks[n-2] == "at" {
		parsed, found, err := parseClock(toks[n-1])
		if found {
			clk, clkErr = &parsed, err
			toks = toks[:n-2]
		}
	}

	d, ok, err := parseDuration(toks)
	if !ok {
		return nil, false, nil
	}
	if err != nil {
		return nil, true, err
	}
	if clkErr != nil {
		return nil, true, clkErr
	}
	return offsetShape{duration: d, clock: clk}, true, nil
}
