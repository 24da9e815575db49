package generic

import (
	"math"

	"github.com/cwbudde/algo-vecmath/internal/registry"
)

// MaxAbs returns the maximum absolute value in x.
// Returns 0 for an empty slice.
func MaxAbs[T registry.Float](x []T) T {
	if len(x) == 0 {
		return 0
	}

	max := T(math.Abs(float64(x[0])))
	for i := 1; i < len(x); i++ {
		v := T(math.Abs(float64(x[i])))
		if v > max {
			max = v
		}
	}
	return max
}
