//go:build !purego && arm64

package neon

// ScaleBlock32 multiplies each element by a scalar: dst[i] = src[i] * scale.
// Slices must have equal length. Panics if lengths differ.
func ScaleBlock32(dst, src []float32, scale float32) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}

	n := len(dst)
	i := 0

	vlen := n - 4
	for ; i <= vlen; i += 4 {
		dst[i] = src[i] * scale
		dst[i+1] = src[i+1] * scale
		dst[i+2] = src[i+2] * scale
		dst[i+3] = src[i+3] * scale
	}

	for ; i < n; i++ {
		dst[i] = src[i] * scale
	}
}

// ScaleBlock64 multiplies each element by a scalar: dst[i] = src[i] * scale.
// Slices must have equal length. Panics if lengths differ.
func ScaleBlock64(dst, src []float64, scale float64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}

	n := len(dst)
	i := 0

	vlen := n - 2
	for ; i <= vlen; i += 2 {
		dst[i] = src[i] * scale
		dst[i+1] = src[i+1] * scale
	}

	for ; i < n; i++ {
		dst[i] = src[i] * scale
	}
}

// ScaleBlockInPlace32 multiplies each element by a scalar in-place: dst[i] *= scale.
func ScaleBlockInPlace32(dst []float32, scale float32) {
	n := len(dst)
	i := 0

	vlen := n - 4
	for ; i <= vlen; i += 4 {
		dst[i] *= scale
		dst[i+1] *= scale
		dst[i+2] *= scale
		dst[i+3] *= scale
	}

	for ; i < n; i++ {
		dst[i] *= scale
	}
}

// ScaleBlockInPlace64 multiplies each element by a scalar in-place: dst[i] *= scale.
func ScaleBlockInPlace64(dst []float64, scale float64) {
	n := len(dst)
	i := 0

	vlen := n - 2
	for ; i <= vlen; i += 2 {
		dst[i] *= scale
		dst[i+1] *= scale
	}

	for ; i < n; i++ {
		dst[i] *= scale
	}
}
