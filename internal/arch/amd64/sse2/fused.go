//go:build !purego && amd64

package sse2

// AddMulBlock32 performs fused add-multiply: dst[i] = (a[i] + b[i]) * scale.
// Slices must have equal length. Panics if lengths differ.
func AddMulBlock32(dst, a, b []float32, scale float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}

	n := len(dst)
	i := 0

	vlen := n - 4
	for ; i <= vlen; i += 4 {
		dst[i] = (a[i] + b[i]) * scale
		dst[i+1] = (a[i+1] + b[i+1]) * scale
		dst[i+2] = (a[i+2] + b[i+2]) * scale
		dst[i+3] = (a[i+3] + b[i+3]) * scale
	}

	for ; i < n; i++ {
		dst[i] = (a[i] + b[i]) * scale
	}
}

// AddMulBlock64 performs fused add-multiply: dst[i] = (a[i] + b[i]) * scale.
// Slices must have equal length. Panics if lengths differ.
func AddMulBlock64(dst, a, b []float64, scale float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}

	n := len(dst)
	i := 0

	vlen := n - 2
	for ; i <= vlen; i += 2 {
		dst[i] = (a[i] + b[i]) * scale
		dst[i+1] = (a[i+1] + b[i+1]) * scale
	}

	for ; i < n; i++ {
		dst[i] = (a[i] + b[i]) * scale
	}
}

// MulAddBlock32 performs fused multiply-add: dst[i] = a[i] * b[i] + c[i].
// Slices must have equal length. Panics if lengths differ.
func MulAddBlock32(dst, a, b, c []float32) {
	if len(a) != len(b) || len(dst) != len(a) || len(c) != len(a) {
		panic("vecmath: slice length mismatch")
	}

	n := len(dst)
	i := 0

	vlen := n - 4
	for ; i <= vlen; i += 4 {
		dst[i] = a[i]*b[i] + c[i]
		dst[i+1] = a[i+1]*b[i+1] + c[i+1]
		dst[i+2] = a[i+2]*b[i+2] + c[i+2]
		dst[i+3] = a[i+3]*b[i+3] + c[i+3]
	}

	for ; i < n; i++ {
		dst[i] = a[i]*b[i] + c[i]
	}
}

// MulAddBlock64 performs fused multiply-add: dst[i] = a[i] * b[i] + c[i].
// Slices must have equal length. Panics if lengths differ.
func MulAddBlock64(dst, a, b, c []float64) {
	if len(a) != len(b) || len(dst) != len(a) || len(c) != len(a) {
		panic("vecmath: slice length mismatch")
	}

	n := len(dst)
	i := 0

	vlen := n - 2
	for ; i <= vlen; i += 2 {
		dst[i] = a[i]*b[i] + c[i]
		dst[i+1] = a[i+1]*b[i+1] + c[i+1]
	}

	for ; i < n; i++ {
		dst[i] = a[i]*b[i] + c[i]
	}
}
