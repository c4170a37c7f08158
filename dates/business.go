package dates

import "time"

// Option configures BusinessDays.
type Option func(*options)

type options struct {
	holidays map[[3]int]struct{}
}

// WithHolidays excludes the given calendar days from the business-day
// count, in addition to weekends. Times of day are ignored.
func WithHolidays(days ...time.Time) Option {
	return func(o *options) {
		for _, d := range days {
			y, m, dd := d.Date()
			o.holidays[[3]int{y, int(m), dd}] = struct{}{}
		}
	}
}

// BusinessDays counts the weekdays between the earliest and latest
// element of s, inclusive, by iterating every calendar day in the span
// and excluding Saturdays, Sundays and any supplied holidays.
//
// Errors: ErrEmptyInput when s has no elements.
//
// Complexity: O(n + d) where d is the span in days.
func BusinessDays(s []time.Time, opts ...Option) (int, error) {
	first, err := Earliest(s)
	if err != nil {
		return 0, err
	}
	last, _ := Latest(s)

	o := options{holidays: make(map[[3]int]struct{})}
	for _, opt := range opts {
		opt(&o)
	}

	// Normalize both ends to midnight so the walk is day-granular.
	cur := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, first.Location())
	end := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, last.Location())

	var count int
	for !cur.After(end) {
		y, m, d := cur.Date()
		_, holiday := o.holidays[[3]int{y, int(m), d}]
		if !isWeekend(cur) && !holiday {
			count++
		}
		cur = cur.AddDate(0, 0, 1)
	}

	return count, nil
}
