// Package dates provides calendar filters and groupings over
// []time.Time: weekday/weekend splits, nth-occurrence queries,
// quarter/season/decade buckets and business-day counting.
//
// What:
//
//   - Filters: Weekdays, Weekends, InRange (inclusive), NonZero.
//   - Occurrence queries: NthWeekdayOfMonth and LastWeekdayOfMonth
//     select the elements that land on the requested slot of their
//     own month.
//   - Groupings: GroupByQuarter, GroupBySeason (meteorological),
//     GroupByDecade — deterministic, first-seen bucket order.
//   - BusinessDays walks every calendar day between the earliest and
//     latest element and counts the days that are neither Saturday,
//     Sunday nor on the supplied holiday list.
//
// Nth-occurrence semantics: membership uses the exact formula
// (day−1)/7 == n−1 with integer division — calendar days bucketed into
// 7-day windows counted from day 1, not ISO week-of-month.
//
// Day identity: two instants count as the same day when their
// year/month/day agree in their respective locations; times of day are
// ignored by the calendar queries.
//
// Errors:
//
//   - ErrEmptyInput: Earliest, Latest and BusinessDays need ≥1 element.
//   - ErrOutOfRange: occurrence n ∉ [1, 5] or quarter ∉ [1, 4].
package dates
