package seq

// Pair holds one element from each of two zipped slices.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip combines a and b element-wise into a slice of Pairs.
//
// Errors: ErrLengthMismatch when len(a) != len(b).
func Zip[A, B any](a []A, b []B) ([]Pair[A, B], error) {
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}

	out := make([]Pair[A, B], len(a))
	for i := range a {
		out[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}

	return out, nil
}

// Unzip splits a slice of Pairs back into its two component slices.
func Unzip[A, B any](pairs []Pair[A, B]) ([]A, []B) {
	as := make([]A, len(pairs))
	bs := make([]B, len(pairs))
	for i, p := range pairs {
		as[i] = p.First
		bs[i] = p.Second
	}

	return as, bs
}
