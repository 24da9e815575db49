package vecmath

// Sum returns the sum of all elements in x: sum(x[i]).
// Returns 0 for an empty slice.
//
// Vector kernels accumulate in independent lanes (four for float32, two for
// float64) and fold pairwise before adding the scalar tail, so results can
// differ from a left-to-right scalar sum by a few ULP on ill-conditioned
// input. The scalar generic kernel sums left to right.
func Sum[T Float](x []T) T {
	return activeEntry[T]().Sum(x)
}
