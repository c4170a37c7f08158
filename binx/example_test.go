package binx_test

import (
	"fmt"

	"github.com/Tim-Maes/ArrayExtensions/binx"
)

// ExampleFindPattern reports every start offset, overlaps included.
func ExampleFindPattern() {
	fmt.Println(binx.FindPattern([]byte{0, 1, 2, 1, 2, 3}, []byte{1, 2}))
	// Output:
	// [1 3]
}

// ExampleToHex encodes a digest for display.
func ExampleToHex() {
	sum, _ := binx.MD5([]byte("abc"))
	fmt.Println(binx.ToHex(sum))
	// Output:
	// 900150983cd24fb0d6963f7d28e17f72
}
