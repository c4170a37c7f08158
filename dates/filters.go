package dates

import "time"

// Weekdays returns the elements falling on Monday through Friday,
// in input order.
func Weekdays(s []time.Time) []time.Time {
	out := make([]time.Time, 0, len(s))
	for _, t := range s {
		if !isWeekend(t) {
			out = append(out, t)
		}
	}

	return out
}

// Weekends returns the elements falling on Saturday or Sunday,
// in input order.
func Weekends(s []time.Time) []time.Time {
	out := make([]time.Time, 0, len(s))
	for _, t := range s {
		if isWeekend(t) {
			out = append(out, t)
		}
	}

	return out
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()

	return wd == time.Saturday || wd == time.Sunday
}

// NonZero returns the elements that are not the zero time, in input
// order.
func NonZero(s []time.Time) []time.Time {
	out := make([]time.Time, 0, len(s))
	for _, t := range s {
		if !t.IsZero() {
			out = append(out, t)
		}
	}

	return out
}

// InRange returns the elements t with from ≤ t ≤ to, in input order.
func InRange(s []time.Time, from, to time.Time) []time.Time {
	out := make([]time.Time, 0, len(s))
	for _, t := range s {
		if !t.Before(from) && !t.After(to) {
			out = append(out, t)
		}
	}

	return out
}

// Earliest returns the minimum element of s.
//
// Errors: ErrEmptyInput when s has no elements.
func Earliest(s []time.Time) (time.Time, error) {
	if len(s) == 0 {
		return time.Time{}, ErrEmptyInput
	}

	best := s[0]
	for _, t := range s[1:] {
		if t.Before(best) {
			best = t
		}
	}

	return best, nil
}

// Latest returns the maximum element of s.
//
// Errors: ErrEmptyInput when s has no elements.
func Latest(s []time.Time) (time.Time, error) {
	if len(s) == 0 {
		return time.Time{}, ErrEmptyInput
	}

	best := s[0]
	for _, t := range s[1:] {
		if t.After(best) {
			best = t
		}
	}

	return best, nil
}

// SameDay reports whether a and b fall on the same calendar day in
// their respective locations.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}

// DistinctDays removes elements sharing a calendar day with an earlier
// element, keeping the first instant seen for each day in input order.
func DistinctDays(s []time.Time) []time.Time {
	type day struct {
		y int
		m time.Month
		d int
	}

	seen := make(map[day]struct{}, len(s))
	out := make([]time.Time, 0, len(s))
	for _, t := range s {
		y, m, d := t.Date()
		key := day{y, m, d}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}

	return out
}
