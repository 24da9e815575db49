package vecmath

// Magnitude computes the magnitude of complex pairs:
// dst[i] = sqrt(re[i]^2 + im[i]^2).
// Slices must have equal length. Panics if lengths differ.
// Automatically selects the best implementation based on CPU features.
func Magnitude[T Float](dst, re, im []T) {
	activeEntry[T]().Magnitude(dst, re, im)
}
