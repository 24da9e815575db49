package vecmath

// DotProduct returns the dot product of a and b: sum(a[i] * b[i]).
// Returns 0 if slices are empty or have different lengths.
// Only the minimum length of the two slices is used.
func DotProduct[T Float](a, b []T) T {
	return activeEntry[T]().DotProduct(a, b)
}
