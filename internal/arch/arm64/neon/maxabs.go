//go:build !purego && arm64

package neon

import "math"

// MaxAbs32 returns the maximum absolute value in x.
// Returns 0 for an empty slice.
func MaxAbs32(x []float32) float32 {
	if len(x) == 0 {
		return 0
	}

	var m0, m1, m2, m3 float32

	n := len(x)
	i := 0

	vlen := n - 4
	for ; i <= vlen; i += 4 {
		if v := float32(math.Abs(float64(x[i]))); v > m0 {
			m0 = v
		}
		if v := float32(math.Abs(float64(x[i+1]))); v > m1 {
			m1 = v
		}
		if v := float32(math.Abs(float64(x[i+2]))); v > m2 {
			m2 = v
		}
		if v := float32(math.Abs(float64(x[i+3]))); v > m3 {
			m3 = v
		}
	}

	if m1 > m0 {
		m0 = m1
	}
	if m3 > m2 {
		m2 = m3
	}
	if m2 > m0 {
		m0 = m2
	}

	for ; i < n; i++ {
		if v := float32(math.Abs(float64(x[i]))); v > m0 {
			m0 = v
		}
	}
	return m0
}

// MaxAbs64 returns the maximum absolute value in x.
// Returns 0 for an empty slice.
func MaxAbs64(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	var m0, m1 float64

	n := len(x)
	i := 0

	vlen := n - 2
	for ; i <= vlen; i += 2 {
		if v := math.Abs(x[i]); v > m0 {
			m0 = v
		}
		if v := math.Abs(x[i+1]); v > m1 {
			m1 = v
		}
	}

	if m1 > m0 {
		m0 = m1
	}

	for ; i < n; i++ {
		if v := math.Abs(x[i]); v > m0 {
			m0 = v
		}
	}
	return m0
}
