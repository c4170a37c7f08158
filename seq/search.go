package seq

// NotFound is the sentinel index returned by BinarySearch when no
// element compares equal to the target.
const NotFound = -1

// BinarySearch locates target in s, which must already be sorted
// ascending under cmp (cmp(a, b) < 0 when a orders before b, 0 when
// equal, > 0 when after). It returns the index of an element comparing
// equal to target, or NotFound.
//
// Sortedness is not validated; behavior on unsorted input is
// undefined (caller responsibility).
//
// Complexity: O(log n).
func BinarySearch[T any](s []T, target T, cmp func(a, b T) int) int {
	low, high := 0, len(s)-1
	for low <= high {
		mid := low + (high-low)/2
		switch c := cmp(s[mid], target); {
		case c == 0:
			return mid
		case c < 0:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return NotFound
}
