package vecmath

// Power computes the power (magnitude squared) of complex pairs:
// dst[i] = re[i]^2 + im[i]^2.
// Slices must have equal length. Panics if lengths differ.
// Automatically selects the best implementation based on CPU features.
func Power[T Float](dst, re, im []T) {
	activeEntry[T]().Power(dst, re, im)
}
