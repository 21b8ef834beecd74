package datetime

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/araddon/dateparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// refs returns fixed edge-case instants plus a deterministic random sample.
func refs(t *testing.T) []DateTime {
	t.Helper()

	out := []DateTime{
		ref,
		dt(2024, 2, 29, 23, 59, 59),
		dt(2023, 12, 31, 23, 30, 0),
		dt(2000, 1, 1, 0, 0, 0),
		dt(1999, 12, 31, 12, 0, 0),
		dt(2024, 5, 6, 0, 0, 0),  // Monday
		dt(2024, 5, 12, 0, 0, 0), // Sunday
	}

	rng := rand.New(rand.NewSource(20240508))
	for i := 0; i < 50; i++ {
		out = append(out, Date(1970+rng.Intn(100), time.Month(1+rng.Intn(12)), 1+rng.Intn(28),
			rng.Intn(24), rng.Intn(60), rng.Intn(60)))
	}
	return out
}

func TestPropertyNowIsReference(t *testing.T) {
	t.Parallel()

	for _, r := range refs(t) {
		got, err := Parse("now", r)
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
}

func TestPropertyKeywordsShiftOneDay(t *testing.T) {
	t.Parallel()

	for _, r := range refs(t) {
		y, err := Parse("yesterday", r)
		require.NoError(t, err)
		tm, err := Parse("tomorrow", r)
		require.NoError(t, err)

		assert.Equal(t, r.In(nil).AddDate(0, 0, -1), y.In(nil), "yesterday from %s", r)
		assert.Equal(t, r.In(nil).AddDate(0, 0, 1), tm.In(nil), "tomorrow from %s", r)
	}
}

func TestPropertyAbsoluteRoundTrip(t *testing.T) {
	t.Parallel()

	for _, r := range refs(t) {
		got, err := Parse(r.String(), ref)
		require.NoError(t, err)
		assert.Equal(t, r, got)

		again, err := Parse(got.String(), dt(1980, 1, 1, 0, 0, 0))
		require.NoError(t, err)
		assert.Equal(t, got, again)
	}
}

func TestPropertyFixedUnitsInvert(t *testing.T) {
	t.Parallel()

	phrases := []string{
		"3 days",
		"2 weeks",
		"36 hours",
		"90 minutes",
		"86401 seconds",
		"1 week, 2 days, 3 hours, 4 minutes and 5 seconds",
	}

	for _, r := range refs(t) {
		for _, p := range phrases {
			forward, err := Parse("in "+p, r)
			require.NoError(t, err)
			back, err := Parse(p+" ago", forward)
			require.NoError(t, err)
			assert.Equal(t, r, back, "in %s then %s ago from %s", p, p, r)
		}
	}
}

func TestPropertyOffsetDirection(t *testing.T) {
	t.Parallel()

	phrases := []string{
		"3 weeks and 2 days",
		"1 month",
		"9999 years",
		"120000 months",
		"9999 years and 2147483647 seconds",
		strings.Repeat("2147483647 seconds and ", 100) + "1 second",
	}

	for _, r := range refs(t) {
		for _, p := range phrases {
			later, err := Parse("in "+p, r)
			require.NoError(t, err)
			assert.False(t, later.Before(r), "in %s from %s gave %s", p, r, later)

			earlier, err := Parse(p+" ago", r)
			require.NoError(t, err)
			assert.False(t, r.Before(earlier), "%s ago from %s gave %s", p, r, earlier)
		}
	}

	got, err := Parse("in 9999 years", ref)
	require.NoError(t, err)
	assert.Equal(t, "12023-05-08 12:00:00", got.String())
}

func TestPropertyMonthsDoNotAlwaysInvert(t *testing.T) {
	t.Parallel()

	start := dt(2024, 1, 31, 0, 0, 0)
	forward, err := Parse("in 1 month", start)
	require.NoError(t, err)
	assert.Equal(t, dt(2024, 2, 29, 0, 0, 0), forward)

	back, err := Parse("1 month ago", forward)
	require.NoError(t, err)
	assert.Equal(t, dt(2024, 1, 29, 0, 0, 0), back)
	assert.NotEqual(t, start, back)
}

func TestPropertyWeekdayRanges(t *testing.T) {
	t.Parallel()

	names := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	for _, r := range refs(t) {
		date := dt(r.Year, r.Month, r.Day, 0, 0, 0).In(nil)
		weekStart := date.AddDate(0, 0, -mondayIndex(date.Weekday()))

		for _, name := range names {
			want := weekdays[name]

			last, err := Parse("last "+name, r)
			require.NoError(t, err)
			days := int(date.Sub(last.In(nil)).Hours() / 24)
			assert.Equal(t, want, last.Weekday())
			assert.True(t, days >= 1 && days <= 7, "last %s from %s is %d days back", name, r, days)

			next, err := Parse("next "+name, r)
			require.NoError(t, err)
			days = int(next.In(nil).Sub(date).Hours() / 24)
			assert.Equal(t, want, next.Weekday())
			assert.True(t, days >= 1 && days <= 7, "next %s from %s is %d days ahead", name, r, days)

			this, err := Parse("this "+name, r)
			require.NoError(t, err)
			offset := int(this.In(nil).Sub(weekStart).Hours() / 24)
			assert.Equal(t, want, this.Weekday())
			assert.True(t, offset >= 0 && offset <= 6, "this %s from %s leaves the week", name, r)
			assert.Equal(t, 0, this.Hour+this.Minute+this.Second)
		}
	}
}

func TestPropertyGarbageIsUnrecognized(t *testing.T) {
	t.Parallel()

	for _, r := range refs(t) {
		_, err := Parse("banana", r)
		assert.Equal(t, &UnrecognizedFormatError{Input: "banana"}, err)
	}
}

// TestAbsoluteAgreesWithDateparse cross-checks the ISO grammar against an
// independent parser.
func TestAbsoluteAgreesWithDateparse(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"2022-11-07 13:25:30",
		"2022-11-07 13:25",
		"2024-03-03",
		"2024-02-29 23:59:59",
		"1999-12-31 00:00:01",
	}
	for _, r := range refs(t)[:5] {
		inputs = append(inputs, r.String())
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			want, err := dateparse.ParseIn(in, time.UTC)
			require.NoError(t, err)
			got, err := Parse(in, ref)
			require.NoError(t, err)
			assert.Equal(t, FromTime(want), got)
		})
	}
}

func BenchmarkParse(b *testing.B) {
	inputs := []string{
		"2022-11-07 13:25:30",
		"tomorrow 18:30",
		"last friday at 19:45",
		"1 year, 2 months, 3 weeks and 5 days ago",
		"banana",
	}
	for _, in := range inputs {
		b.Run(fmt.Sprintf("%q", in), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = Parse(in, ref)
			}
		})
	}
}
