// Package stats provides descriptive statistics over numeric slices:
// central tendency, dispersion, higher moments, percentiles and IQR
// outlier detection.
//
// What:
//
//   - Generic reductions (Sum, Min, Max) over any ordered number type.
//   - Moments over []float64: Mean, Variance, StdDev, Skewness, Kurtosis.
//     All dispersion measures are population measures (divisor n, not n−1);
//     Kurtosis reports excess kurtosis, so a normal distribution scores 0.
//   - Percentile with linear interpolation between the two nearest ranks,
//     and Median defined as the mean of the two central sorted elements
//     for even lengths — the sole canonical formula; Percentile(50)
//     agrees by construction.
//   - Outliers via the IQR fence Q1 − k·IQR / Q3 + k·IQR with a
//     configurable multiplier (default 1.5).
//   - Series helpers: CumulativeSum, Deltas, Normalize, Correlation, Mode.
//
// Conventions:
//
//   - Inputs are never mutated: functions that need ordering sort a copy.
//   - Degenerate spread (σ = 0) degrades Skewness, Kurtosis and
//     Correlation to 0 rather than dividing by zero.
//
// Complexity:
//
//   - Reductions and moments: O(n).
//   - Median / Percentile / Outliers: O(n log n) for the sorted copy.
//
// Errors:
//
//   - ErrEmptyInput: the statistic requires at least one element.
//   - ErrOutOfRange: percentile outside [0, 100] or multiplier < 0.
//   - ErrLengthMismatch: Correlation over unequal-length slices.
package stats
