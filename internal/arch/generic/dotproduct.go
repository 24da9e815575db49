package generic

import "github.com/cwbudde/algo-vecmath/internal/registry"

// DotProduct returns the dot product of a and b: sum(a[i] * b[i]).
// Returns 0 if slices are empty or have different lengths.
// Only the minimum length of the two slices is used.
func DotProduct[T registry.Float](a, b []T) T {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}

	var sum T
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
