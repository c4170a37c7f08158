package stats

import "math"

// Variance returns the population variance of s: the mean of squared
// deviations from the arithmetic mean, with divisor n (not n−1).
//
// Errors: ErrEmptyInput when s has no elements.
func Variance(s []float64) (float64, error) {
	mean, err := Mean(s)
	if err != nil {
		return 0, err
	}

	var sumSq float64
	for _, v := range s {
		d := v - mean
		sumSq += d * d
	}

	return sumSq / float64(len(s)), nil
}

// StdDev returns the population standard deviation of s.
//
// Errors: ErrEmptyInput when s has no elements.
func StdDev(s []float64) (float64, error) {
	variance, err := Variance(s)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(variance), nil
}

// Skewness returns the third standardized moment of s using the
// population standard deviation. Degrades to 0 when σ is 0.
//
// Errors: ErrEmptyInput when s has no elements.
func Skewness(s []float64) (float64, error) {
	return standardizedMoment(s, 3, 0)
}

// Kurtosis returns the excess kurtosis of s: the fourth standardized
// moment minus 3, so a normal distribution scores 0. Uses the
// population standard deviation and degrades to 0 when σ is 0.
//
// Errors: ErrEmptyInput when s has no elements.
func Kurtosis(s []float64) (float64, error) {
	return standardizedMoment(s, 4, 3)
}

// standardizedMoment computes the order-th standardized central moment
// minus the given offset, with the σ=0 guard shared by Skewness and
// Kurtosis.
func standardizedMoment(s []float64, order int, offset float64) (float64, error) {
	mean, err := Mean(s)
	if err != nil {
		return 0, err
	}

	var sumSq float64
	for _, v := range s {
		d := v - mean
		sumSq += d * d
	}
	sigma := math.Sqrt(sumSq / float64(len(s)))
	if sigma == 0 {
		return 0, nil
	}

	var moment float64
	for _, v := range s {
		moment += math.Pow((v-mean)/sigma, float64(order))
	}

	return moment/float64(len(s)) - offset, nil
}
