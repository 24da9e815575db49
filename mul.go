package vecmath

// MulBlock performs element-wise multiplication: dst[i] = a[i] * b[i].
// All slices must have equal length. Panics if lengths differ. dst may fully
// alias a and/or b.
// The implementation is automatically selected based on CPU features.
func MulBlock[T Float](dst, a, b []T) {
	activeEntry[T]().MulBlock(dst, a, b)
}

// MulBlockInPlace performs in-place element-wise multiplication: dst[i] *= src[i].
// Slices must have equal length. Panics if lengths differ.
func MulBlockInPlace[T Float](dst, src []T) {
	activeEntry[T]().MulBlockInPlace(dst, src)
}
