package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tim-Maes/ArrayExtensions/dates"
)

// day builds a UTC midnight timestamp for fixtures.
func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestWeekdaysWeekends splits a week starting Monday 2024-01-01.
func TestWeekdaysWeekends(t *testing.T) {
	week := []time.Time{
		day(2024, time.January, 1), // Mon
		day(2024, time.January, 5), // Fri
		day(2024, time.January, 6), // Sat
		day(2024, time.January, 7), // Sun
	}

	assert.Equal(t, week[:2], dates.Weekdays(week))
	assert.Equal(t, week[2:], dates.Weekends(week))
}

// TestInRange is inclusive at both ends.
func TestInRange(t *testing.T) {
	s := []time.Time{
		day(2024, time.January, 1),
		day(2024, time.January, 15),
		day(2024, time.February, 1),
	}

	got := dates.InRange(s, day(2024, time.January, 1), day(2024, time.January, 31))
	assert.Equal(t, s[:2], got)
}

// TestNonZero drops zero-value timestamps.
func TestNonZero(t *testing.T) {
	a := day(2024, time.May, 1)
	assert.Equal(t, []time.Time{a}, dates.NonZero([]time.Time{{}, a, {}}))
}

// TestEarliestLatest finds the extremes and validates empty input.
func TestEarliestLatest(t *testing.T) {
	s := []time.Time{
		day(2024, time.March, 5),
		day(2023, time.December, 31),
		day(2024, time.June, 1),
	}

	first, err := dates.Earliest(s)
	require.NoError(t, err)
	assert.Equal(t, day(2023, time.December, 31), first)

	last, err := dates.Latest(s)
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.June, 1), last)

	_, err = dates.Earliest(nil)
	assert.ErrorIs(t, err, dates.ErrEmptyInput)
	_, err = dates.Latest(nil)
	assert.ErrorIs(t, err, dates.ErrEmptyInput)
}

// TestSameDayDistinctDays ignores times of day.
func TestSameDayDistinctDays(t *testing.T) {
	morning := time.Date(2024, time.May, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, time.May, 10, 20, 0, 0, 0, time.UTC)
	other := day(2024, time.May, 11)

	assert.True(t, dates.SameDay(morning, evening))
	assert.False(t, dates.SameDay(morning, other))

	got := dates.DistinctDays([]time.Time{morning, evening, other})
	assert.Equal(t, []time.Time{morning, other}, got, "first instant per day wins")
}

// TestNthWeekdayOfMonth pins the (day−1)/7 bucket formula; January 2024
// has Tuesdays on the 2nd, 9th, 16th, 23rd and 30th.
func TestNthWeekdayOfMonth(t *testing.T) {
	tuesdays := []time.Time{
		day(2024, time.January, 2),
		day(2024, time.January, 9),
		day(2024, time.January, 30),
	}

	first, err := dates.NthWeekdayOfMonth(tuesdays, time.Tuesday, 1)
	require.NoError(t, err)
	assert.Equal(t, tuesdays[:1], first)

	second, err := dates.NthWeekdayOfMonth(tuesdays, time.Tuesday, 2)
	require.NoError(t, err)
	assert.Equal(t, tuesdays[1:2], second)

	fifth, err := dates.NthWeekdayOfMonth(tuesdays, time.Tuesday, 5)
	require.NoError(t, err)
	assert.Equal(t, tuesdays[2:], fifth)

	// Wrong weekday never matches, regardless of the bucket.
	none, err := dates.NthWeekdayOfMonth(tuesdays, time.Friday, 1)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = dates.NthWeekdayOfMonth(tuesdays, time.Tuesday, 0)
	assert.ErrorIs(t, err, dates.ErrOutOfRange)
	_, err = dates.NthWeekdayOfMonth(tuesdays, time.Tuesday, 6)
	assert.ErrorIs(t, err, dates.ErrOutOfRange)
}

// TestLastWeekdayOfMonth keeps only the final occurrence per month.
func TestLastWeekdayOfMonth(t *testing.T) {
	s := []time.Time{
		day(2024, time.January, 23),  // a Tuesday, but not the last
		day(2024, time.January, 30),  // last Tuesday of January
		day(2024, time.February, 27), // last Tuesday of February (leap year)
		day(2024, time.January, 31),  // a Wednesday
	}

	got := dates.LastWeekdayOfMonth(s, time.Tuesday)
	assert.Equal(t, []time.Time{s[1], s[2]}, got)
}

// TestQuarters covers Quarter, InQuarter and GroupByQuarter.
func TestQuarters(t *testing.T) {
	assert.Equal(t, 1, dates.Quarter(day(2024, time.March, 31)))
	assert.Equal(t, 4, dates.Quarter(day(2024, time.October, 1)))

	s := []time.Time{
		day(2024, time.January, 1),
		day(2024, time.April, 1),
		day(2024, time.May, 15),
	}

	q2, err := dates.InQuarter(s, 2)
	require.NoError(t, err)
	assert.Equal(t, s[1:], q2)

	_, err = dates.InQuarter(s, 5)
	assert.ErrorIs(t, err, dates.ErrOutOfRange)

	groups := dates.GroupByQuarter(s)
	assert.Equal(t, s[:1], groups[1])
	assert.Equal(t, s[1:], groups[2])
	assert.Empty(t, groups[3])
	assert.NotNil(t, groups[3], "empty quarters stay present")
}

// TestSeasons pins the meteorological boundaries (December is winter).
func TestSeasons(t *testing.T) {
	assert.Equal(t, dates.Winter, dates.SeasonOf(day(2024, time.December, 25)))
	assert.Equal(t, dates.Winter, dates.SeasonOf(day(2024, time.February, 29)))
	assert.Equal(t, dates.Spring, dates.SeasonOf(day(2024, time.March, 1)))
	assert.Equal(t, dates.Summer, dates.SeasonOf(day(2024, time.August, 31)))
	assert.Equal(t, dates.Autumn, dates.SeasonOf(day(2024, time.November, 30)))

	groups := dates.GroupBySeason([]time.Time{day(2024, time.July, 4)})
	assert.Len(t, groups[dates.Summer], 1)
	assert.Empty(t, groups[dates.Winter])
}

// TestGroupByDecade buckets by decade start year.
func TestGroupByDecade(t *testing.T) {
	s := []time.Time{
		day(1995, time.June, 1),
		day(1999, time.December, 31),
		day(2000, time.January, 1),
	}

	groups := dates.GroupByDecade(s)
	require.Len(t, groups, 2)
	assert.Equal(t, s[:2], groups[1990])
	assert.Equal(t, s[2:], groups[2000])
}

// TestBusinessDays walks the span between the extremes, excluding
// weekends and supplied holidays.
func TestBusinessDays(t *testing.T) {
	// Mon 2024-01-01 … Sun 2024-01-07: five weekdays.
	span := []time.Time{
		day(2024, time.January, 7),
		day(2024, time.January, 1),
	}

	n, err := dates.BusinessDays(span)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = dates.BusinessDays(span, dates.WithHolidays(day(2024, time.January, 1)))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	// Single element spans exactly one day.
	n, err = dates.BusinessDays([]time.Time{day(2024, time.January, 3)})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = dates.BusinessDays(nil)
	assert.ErrorIs(t, err, dates.ErrEmptyInput)
}
