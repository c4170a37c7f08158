package stats_test

import (
	"fmt"

	"github.com/Tim-Maes/ArrayExtensions/stats"
)

// ExamplePercentile interpolates between the two nearest ranks.
func ExamplePercentile() {
	odd, _ := stats.Percentile([]float64{1, 2, 3, 4, 5}, 50)
	even, _ := stats.Percentile([]float64{1, 2, 3, 4}, 50)
	fmt.Println(odd, even)
	// Output:
	// 3 2.5
}

// ExampleOutliers flags values outside the Tukey fences.
func ExampleOutliers() {
	out, _ := stats.Outliers([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100})
	fmt.Println(out)
	// Output:
	// [100]
}
