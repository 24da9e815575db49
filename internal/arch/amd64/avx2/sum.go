//go:build !purego && amd64

package avx2

// Sum32 returns the sum of all elements in x.
// Returns 0 for an empty slice.
//
// The accumulator stays in the 128-bit tier even on 256-bit hardware:
// horizontal folds across 256-bit registers pair within each half and
// would change the rounding order.
func Sum32(x []float32) float32 {
	var acc0, acc1, acc2, acc3 float32

	n := len(x)
	i := 0

	vlen := n - 4
	for ; i <= vlen; i += 4 {
		acc0 += x[i]
		acc1 += x[i+1]
		acc2 += x[i+2]
		acc3 += x[i+3]
	}

	// Horizontal fold, pairwise: (acc0+acc1) + (acc2+acc3).
	sum := (acc0 + acc1) + (acc2 + acc3)

	// Scalar tail.
	for ; i < n; i++ {
		sum += x[i]
	}
	return sum
}

// Sum64 returns the sum of all elements in x.
// Returns 0 for an empty slice.
func Sum64(x []float64) float64 {
	var acc0, acc1 float64

	n := len(x)
	i := 0

	vlen := n - 2
	for ; i <= vlen; i += 2 {
		acc0 += x[i]
		acc1 += x[i+1]
	}

	// Horizontal fold.
	sum := acc0 + acc1

	// Scalar tail.
	for ; i < n; i++ {
		sum += x[i]
	}
	return sum
}
