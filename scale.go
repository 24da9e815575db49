package vecmath

// ScaleBlock multiplies each element by a scalar: dst[i] = src[i] * scale.
// Slices must have equal length. Panics if lengths differ.
// Automatically selects the best implementation based on CPU features.
func ScaleBlock[T Float](dst, src []T, scale T) {
	activeEntry[T]().ScaleBlock(dst, src, scale)
}

// ScaleBlockInPlace multiplies each element by a scalar in-place: dst[i] *= scale.
// Automatically selects the best implementation based on CPU features.
func ScaleBlockInPlace[T Float](dst []T, scale T) {
	activeEntry[T]().ScaleBlockInPlace(dst, scale)
}
