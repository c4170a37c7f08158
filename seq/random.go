package seq

import (
	"math/rand"
	"time"
)

// Option configures the randomized operations (Shuffle, Sample).
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithRand injects a deterministic random source. Without it, every
// call constructs a fresh time-seeded generator, so repeated calls are
// not reproducible.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("seq: WithRand requires a non-nil *rand.Rand")
	}

	return func(o *options) { o.rng = r }
}

func gatherOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.rng == nil {
		// Fresh generator per call keeps concurrent callers independent.
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return o
}

// Shuffle returns a copy of s with the elements in uniformly random
// order (Fisher–Yates). The input is never mutated.
func Shuffle[T any](s []T, opts ...Option) []T {
	o := gatherOptions(opts)

	out := make([]T, len(s))
	copy(out, s)
	o.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	return out
}

// Sample returns n elements drawn from s uniformly at random without
// replacement. The result order is random; the input is never mutated.
//
// Errors: ErrInvalidArgument when n < 0 or n > len(s).
func Sample[T any](s []T, n int, opts ...Option) ([]T, error) {
	if n < 0 || n > len(s) {
		return nil, ErrInvalidArgument
	}
	o := gatherOptions(opts)

	// Partial Fisher–Yates: only the first n positions need settling.
	work := make([]T, len(s))
	copy(work, s)
	for i := 0; i < n; i++ {
		j := i + o.rng.Intn(len(work)-i)
		work[i], work[j] = work[j], work[i]
	}

	return work[:n:n], nil
}
