//go:build !purego && amd64

package sse2

import "math"

// Magnitude32 computes magnitude from separate real and imaginary parts:
// dst[i] = sqrt(re[i]^2 + im[i]^2).
// Slices must have equal length. Panics if lengths differ.
func Magnitude32(dst, re, im []float32) {
	if len(re) != len(im) || len(dst) != len(re) {
		panic("vecmath: slice length mismatch")
	}

	n := len(dst)
	i := 0

	vlen := n - 4
	for ; i <= vlen; i += 4 {
		dst[i] = float32(math.Sqrt(float64(re[i]*re[i] + im[i]*im[i])))
		dst[i+1] = float32(math.Sqrt(float64(re[i+1]*re[i+1] + im[i+1]*im[i+1])))
		dst[i+2] = float32(math.Sqrt(float64(re[i+2]*re[i+2] + im[i+2]*im[i+2])))
		dst[i+3] = float32(math.Sqrt(float64(re[i+3]*re[i+3] + im[i+3]*im[i+3])))
	}

	for ; i < n; i++ {
		dst[i] = float32(math.Sqrt(float64(re[i]*re[i] + im[i]*im[i])))
	}
}

// Magnitude64 computes magnitude from separate real and imaginary parts:
// dst[i] = sqrt(re[i]^2 + im[i]^2).
// Slices must have equal length. Panics if lengths differ.
func Magnitude64(dst, re, im []float64) {
	if len(re) != len(im) || len(dst) != len(re) {
		panic("vecmath: slice length mismatch")
	}

	n := len(dst)
	i := 0

	vlen := n - 2
	for ; i <= vlen; i += 2 {
		dst[i] = math.Sqrt(re[i]*re[i] + im[i]*im[i])
		dst[i+1] = math.Sqrt(re[i+1]*re[i+1] + im[i+1]*im[i+1])
	}

	for ; i < n; i++ {
		dst[i] = math.Sqrt(re[i]*re[i] + im[i]*im[i])
	}
}
