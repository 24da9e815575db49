//go:build !purego && amd64

package sse2

// Power32 computes power (magnitude squared) from separate real and imaginary
// parts: dst[i] = re[i]^2 + im[i]^2.
// Slices must have equal length. Panics if lengths differ.
func Power32(dst, re, im []float32) {
	if len(re) != len(im) || len(dst) != len(re) {
		panic("vecmath: slice length mismatch")
	}

	n := len(dst)
	i := 0

	vlen := n - 4
	for ; i <= vlen; i += 4 {
		dst[i] = re[i]*re[i] + im[i]*im[i]
		dst[i+1] = re[i+1]*re[i+1] + im[i+1]*im[i+1]
		dst[i+2] = re[i+2]*re[i+2] + im[i+2]*im[i+2]
		dst[i+3] = re[i+3]*re[i+3] + im[i+3]*im[i+3]
	}

	for ; i < n; i++ {
		dst[i] = re[i]*re[i] + im[i]*im[i]
	}
}

// Power64 computes power (magnitude squared) from separate real and imaginary
// parts: dst[i] = re[i]^2 + im[i]^2.
// Slices must have equal length. Panics if lengths differ.
func Power64(dst, re, im []float64) {
	if len(re) != len(im) || len(dst) != len(re) {
		panic("vecmath: slice length mismatch")
	}

	n := len(dst)
	i := 0

	vlen := n - 2
	for ; i <= vlen; i += 2 {
		dst[i] = re[i]*re[i] + im[i]*im[i]
		dst[i+1] = re[i+1]*re[i+1] + im[i+1]*im[i+1]
	}

	for ; i < n; i++ {
		dst[i] = re[i]*re[i] + im[i]*im[i]
	}
}
