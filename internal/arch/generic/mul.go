package generic

import "github.com/cwbudde/algo-vecmath/internal/registry"

// MulBlock performs element-wise multiplication: dst[i] = a[i] * b[i].
// Slices must have equal length. Panics if lengths differ.
// This is the pure Go fallback implementation.
func MulBlock[T registry.Float](dst, a, b []T) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// MulBlockInPlace performs in-place element-wise multiplication: dst[i] *= src[i].
// Slices must have equal length. Panics if lengths differ.
// This is the pure Go fallback implementation.
func MulBlockInPlace[T registry.Float](dst, src []T) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] *= src[i]
	}
}
