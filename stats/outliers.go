package stats

// DefaultMultiplier is the standard Tukey fence multiplier for IQR
// outlier detection.
const DefaultMultiplier = 1.5

// Option configures Outliers.
type Option func(*options)

type options struct {
	multiplier float64
}

// WithMultiplier overrides the IQR fence multiplier k. Larger values
// widen the fence and flag fewer elements.
func WithMultiplier(k float64) Option {
	return func(o *options) { o.multiplier = k }
}

// Outliers returns the elements of s lying below Q1 − k·IQR or above
// Q3 + k·IQR, in input order, where Q1 and Q3 are the 25th and 75th
// interpolated percentiles and k defaults to DefaultMultiplier.
//
// Errors:
//   - ErrEmptyInput when s has no elements.
//   - ErrOutOfRange when the configured multiplier is negative.
//
// Complexity: O(n log n).
func Outliers(s []float64, opts ...Option) ([]float64, error) {
	o := options{multiplier: DefaultMultiplier}
	for _, opt := range opts {
		opt(&o)
	}
	if o.multiplier < 0 {
		return nil, ErrOutOfRange
	}

	q1, err := Percentile(s, 25)
	if err != nil {
		return nil, err
	}
	q3, _ := Percentile(s, 75)

	iqr := q3 - q1
	lo := q1 - o.multiplier*iqr
	hi := q3 + o.multiplier*iqr

	out := make([]float64, 0)
	for _, v := range s {
		if v < lo || v > hi {
			out = append(out, v)
		}
	}

	return out, nil
}
