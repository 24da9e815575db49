package vecmath

// MaxAbs returns the maximum absolute value in x: max(|x[i]|).
// Returns 0 for an empty slice.
//
// NaN handling is implementation-defined: kernels compare with plain
// floating-point ordering, so for inputs containing NaN the result is
// either NaN or the maximum over the remaining elements.
func MaxAbs[T Float](x []T) T {
	return activeEntry[T]().MaxAbs(x)
}
