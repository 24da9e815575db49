package generic

import "github.com/cwbudde/algo-vecmath/internal/registry"

// AddMulBlock performs fused add-multiply: dst[i] = (a[i] + b[i]) * scale.
// Slices must have equal length. Panics if lengths differ.
// This is the pure Go fallback implementation.
func AddMulBlock[T registry.Float](dst, a, b []T, scale T) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] = (a[i] + b[i]) * scale
	}
}

// MulAddBlock performs fused multiply-add: dst[i] = a[i] * b[i] + c[i].
// Slices must have equal length. Panics if lengths differ.
// This is the pure Go fallback implementation.
func MulAddBlock[T registry.Float](dst, a, b, c []T) {
	if len(a) != len(b) || len(dst) != len(a) || len(c) != len(a) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i]*b[i] + c[i]
	}
}
