package generic

import "github.com/cwbudde/algo-vecmath/internal/registry"

// Sum returns the sum of all elements in x: sum(x[i]).
// Returns 0 for an empty slice.
// This is the pure Go fallback implementation.
func Sum[T registry.Float](x []T) T {
	var sum T
	for _, v := range x {
		sum += v
	}
	return sum
}
