package dates

import "time"

// NthWeekdayOfMonth returns the elements that are the nth occurrence
// of wd within their own month, n ∈ [1, 5]. Membership uses the exact
// bucket formula (day−1)/7 == n−1: the month's days are split into
// 7-day windows counted from day 1.
//
// Errors: ErrOutOfRange when n ∉ [1, 5].
func NthWeekdayOfMonth(s []time.Time, wd time.Weekday, n int) ([]time.Time, error) {
	if n < 1 || n > 5 {
		return nil, ErrOutOfRange
	}

	out := make([]time.Time, 0, len(s))
	for _, t := range s {
		if t.Weekday() == wd && (t.Day()-1)/7 == n-1 {
			out = append(out, t)
		}
	}

	return out, nil
}

// LastWeekdayOfMonth returns the elements that are the final occurrence
// of wd within their own month (no later same-weekday day exists before
// the month ends).
func LastWeekdayOfMonth(s []time.Time, wd time.Weekday) []time.Time {
	out := make([]time.Time, 0, len(s))
	for _, t := range s {
		if t.Weekday() != wd {
			continue
		}
		// A weekday occurrence is the last one iff day+7 overflows the month.
		if t.Day()+7 > daysInMonth(t) {
			out = append(out, t)
		}
	}

	return out
}

// daysInMonth returns the number of days in t's month.
func daysInMonth(t time.Time) int {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)

	return firstOfNext.AddDate(0, 0, -1).Day()
}

// Quarter returns the calendar quarter of t, 1 through 4.
func Quarter(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// InQuarter returns the elements falling in calendar quarter q ∈ [1, 4].
//
// Errors: ErrOutOfRange when q ∉ [1, 4].
func InQuarter(s []time.Time, q int) ([]time.Time, error) {
	if q < 1 || q > 4 {
		return nil, ErrOutOfRange
	}

	out := make([]time.Time, 0, len(s))
	for _, t := range s {
		if Quarter(t) == q {
			out = append(out, t)
		}
	}

	return out, nil
}

// Season names a meteorological season.
type Season string

const (
	Winter Season = "winter" // Dec, Jan, Feb
	Spring Season = "spring" // Mar, Apr, May
	Summer Season = "summer" // Jun, Jul, Aug
	Autumn Season = "autumn" // Sep, Oct, Nov
)

// SeasonOf returns the meteorological season of t.
func SeasonOf(t time.Time) Season {
	switch t.Month() {
	case time.December, time.January, time.February:
		return Winter
	case time.March, time.April, time.May:
		return Spring
	case time.June, time.July, time.August:
		return Summer
	default:
		return Autumn
	}
}

// GroupByQuarter buckets s by calendar quarter. All four keys are
// present; empty quarters map to empty (non-nil) slices.
func GroupByQuarter(s []time.Time) map[int][]time.Time {
	out := map[int][]time.Time{
		1: {}, 2: {}, 3: {}, 4: {},
	}
	for _, t := range s {
		q := Quarter(t)
		out[q] = append(out[q], t)
	}

	return out
}

// GroupBySeason buckets s by meteorological season. All four keys are
// present; empty seasons map to empty (non-nil) slices.
func GroupBySeason(s []time.Time) map[Season][]time.Time {
	out := map[Season][]time.Time{
		Winter: {}, Spring: {}, Summer: {}, Autumn: {},
	}
	for _, t := range s {
		se := SeasonOf(t)
		out[se] = append(out[se], t)
	}

	return out
}

// GroupByDecade buckets s by decade start year (1995 → 1990).
// Only decades that occur appear as keys.
func GroupByDecade(s []time.Time) map[int][]time.Time {
	out := make(map[int][]time.Time)
	for _, t := range s {
		decade := t.Year() / 10 * 10
		out[decade] = append(out[decade], t)
	}

	return out
}
