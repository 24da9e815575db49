//go:build !purego && amd64

package avx2

// MulBlock32 performs element-wise multiplication: dst[i] = a[i] * b[i].
// Slices must have equal length. Panics if lengths differ.
func MulBlock32(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}

	n := len(dst)
	i := 0

	// 256-bit tier: eight lanes per iteration.
	vlen := n - 8
	for ; i <= vlen; i += 8 {
		dst[i] = a[i] * b[i]
		dst[i+1] = a[i+1] * b[i+1]
		dst[i+2] = a[i+2] * b[i+2]
		dst[i+3] = a[i+3] * b[i+3]
		dst[i+4] = a[i+4] * b[i+4]
		dst[i+5] = a[i+5] * b[i+5]
		dst[i+6] = a[i+6] * b[i+6]
		dst[i+7] = a[i+7] * b[i+7]
	}

	// 128-bit tier: four lanes.
	vlen = n - 4
	for ; i <= vlen; i += 4 {
		dst[i] = a[i] * b[i]
		dst[i+1] = a[i+1] * b[i+1]
		dst[i+2] = a[i+2] * b[i+2]
		dst[i+3] = a[i+3] * b[i+3]
	}

	// Scalar tail.
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

// MulBlock64 performs element-wise multiplication: dst[i] = a[i] * b[i].
// Slices must have equal length. Panics if lengths differ.
func MulBlock64(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}

	n := len(dst)
	i := 0

	// 256-bit tier: four lanes per iteration.
	vlen := n - 4
	for ; i <= vlen; i += 4 {
		dst[i] = a[i] * b[i]
		dst[i+1] = a[i+1] * b[i+1]
		dst[i+2] = a[i+2] * b[i+2]
		dst[i+3] = a[i+3] * b[i+3]
	}

	// 128-bit tier: two lanes.
	vlen = n - 2
	for ; i <= vlen; i += 2 {
		dst[i] = a[i] * b[i]
		dst[i+1] = a[i+1] * b[i+1]
	}

	// Scalar tail.
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

// MulBlockInPlace32 performs in-place element-wise multiplication: dst[i] *= src[i].
// Slices must have equal length. Panics if lengths differ.
func MulBlockInPlace32(dst, src []float32) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}

	n := len(dst)
	i := 0

	vlen := n - 8
	for ; i <= vlen; i += 8 {
		dst[i] *= src[i]
		dst[i+1] *= src[i+1]
		dst[i+2] *= src[i+2]
		dst[i+3] *= src[i+3]
		dst[i+4] *= src[i+4]
		dst[i+5] *= src[i+5]
		dst[i+6] *= src[i+6]
		dst[i+7] *= src[i+7]
	}

	vlen = n - 4
	for ; i <= vlen; i += 4 {
		dst[i] *= src[i]
		dst[i+1] *= src[i+1]
		dst[i+2] *= src[i+2]
		dst[i+3] *= src[i+3]
	}

	for ; i < n; i++ {
		dst[i] *= src[i]
	}
}

// MulBlockInPlace64 performs in-place element-wise multiplication: dst[i] *= src[i].
// Slices must have equal length. Panics if lengths differ.
func MulBlockInPlace64(dst, src []float64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}

	n := len(dst)
	i := 0

	vlen := n - 4
	for ; i <= vlen; i += 4 {
		dst[i] *= src[i]
		dst[i+1] *= src[i+1]
		dst[i+2] *= src[i+2]
		dst[i+3] *= src[i+3]
	}

	vlen = n - 2
	for ; i <= vlen; i += 2 {
		dst[i] *= src[i]
		dst[i+1] *= src[i+1]
	}

	for ; i < n; i++ {
		dst[i] *= src[i]
	}
}
