//go:build !purego && amd64

package sse2

// AddBlock32 performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
func AddBlock32(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}

	n := len(dst)
	i := 0

	// 128-bit tier: four lanes per iteration.
	vlen := n - 4
	for ; i <= vlen; i += 4 {
		dst[i] = a[i] + b[i]
		dst[i+1] = a[i+1] + b[i+1]
		dst[i+2] = a[i+2] + b[i+2]
		dst[i+3] = a[i+3] + b[i+3]
	}

	// Scalar tail.
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

// AddBlock64 performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
func AddBlock64(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}

	n := len(dst)
	i := 0

	// 128-bit tier: two lanes per iteration.
	vlen := n - 2
	for ; i <= vlen; i += 2 {
		dst[i] = a[i] + b[i]
		dst[i+1] = a[i+1] + b[i+1]
	}

	// Scalar tail.
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

// AddBlockInPlace32 performs in-place element-wise addition: dst[i] += src[i].
// Slices must have equal length. Panics if lengths differ.
func AddBlockInPlace32(dst, src []float32) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}

	n := len(dst)
	i := 0

	vlen := n - 4
	for ; i <= vlen; i += 4 {
		dst[i] += src[i]
		dst[i+1] += src[i+1]
		dst[i+2] += src[i+2]
		dst[i+3] += src[i+3]
	}

	for ; i < n; i++ {
		dst[i] += src[i]
	}
}

// AddBlockInPlace64 performs in-place element-wise addition: dst[i] += src[i].
// Slices must have equal length. Panics if lengths differ.
func AddBlockInPlace64(dst, src []float64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}

	n := len(dst)
	i := 0

	vlen := n - 2
	for ; i <= vlen; i += 2 {
		dst[i] += src[i]
		dst[i+1] += src[i+1]
	}

	for ; i < n; i++ {
		dst[i] += src[i]
	}
}
