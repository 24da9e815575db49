//go:build !purego && amd64

package avx2

// AddMulBlock32 performs fused add-multiply: dst[i] = (a[i] + b[i]) * scale.
// Slices must have equal length. Panics if lengths differ.
func AddMulBlock32(dst, a, b []float32, scale float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}

	n := len(dst)
	i := 0

	vlen := n - 8
	for ; i <= vlen; i += 8 {
		dst[i] = (a[i] + b[i]) * scale
		dst[i+1] = (a[i+1] + b[i+1]) * scale
		dst[i+2] = (a[i+2] + b[i+2]) * scale
		dst[i+3] = (a[i+3] + b[i+3]) * scale
		dst[i+4] = (a[i+4] + b[i+4]) * scale
		dst[i+5] = (a[i+5] + b[i+5]) * scale
		dst[i+6] = (a[i+6] + b[i+6]) * scale
		dst[i+7] = (a[i+7] + b[i+7]) * scale
	}

	vlen = n - 4
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

	vlen := n - 4
	for ; i <= vlen; i += 4 {
		dst[i] = (a[i] + b[i]) * scale
		dst[i+1] = (a[i+1] + b[i+1]) * scale
		dst[i+2] = (a[i+2] + b[i+2]) * scale
		dst[i+3] = (a[i+3] + b[i+3]) * scale
	}

	vlen = n - 2
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

	vlen := n - 8
	for ; i <= vlen; i += 8 {
		dst[i] = a[i]*b[i] + c[i]
		dst[i+1] = a[i+1]*b[i+1] + c[i+1]
		dst[i+2] = a[i+2]*b[i+2] + c[i+2]
		dst[i+3] = a[i+3]*b[i+3] + c[i+3]
		dst[i+4] = a[i+4]*b[i+4] + c[i+4]
		dst[i+5] = a[i+5]*b[i+5] + c[i+5]
		dst[i+6] = a[i+6]*b[i+6] + c[i+6]
		dst[i+7] = a[i+7]*b[i+7] + c[i+7]
	}

	vlen = n - 4
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

	vlen := n - 4
	for ; i <= vlen; i += 4 {
		dst[i] = a[i]*b[i] + c[i]
		dst[i+1] = a[i+1]*b[i+1] + c[i+1]
		dst[i+2] = a[i+2]*b[i+2] + c[i+2]
		dst[i+3] = a[i+3]*b[i+3] + c[i+3]
	}

	vlen = n - 2
	for ; i <= vlen; i += 2 {
		dst[i] = a[i]*b[i] + c[i]
		dst[i+1] = a[i+1]*b[i+1] + c[i+1]
	}

	for ; i < n; i++ {
		dst[i] = a[i]*b[i] + c[i]
	}
}
