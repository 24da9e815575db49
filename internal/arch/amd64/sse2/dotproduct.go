//go:build !purego && amd64

package sse2

// DotProduct32 returns the dot product of a and b: sum(a[i] * b[i]).
// Returns 0 if slices are empty or have different lengths.
// Only the minimum length of the two slices is used.
func DotProduct32(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}

	var acc0, acc1, acc2, acc3 float32

	i := 0
	vlen := n - 4
	for ; i <= vlen; i += 4 {
		acc0 += a[i] * b[i]
		acc1 += a[i+1] * b[i+1]
		acc2 += a[i+2] * b[i+2]
		acc3 += a[i+3] * b[i+3]
	}

	sum := (acc0 + acc1) + (acc2 + acc3)

	for ; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// DotProduct64 returns the dot product of a and b: sum(a[i] * b[i]).
// Returns 0 if slices are empty or have different lengths.
// Only the minimum length of the two slices is used.
func DotProduct64(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}

	var acc0, acc1 float64

	i := 0
	vlen := n - 2
	for ; i <= vlen; i += 2 {
		acc0 += a[i] * b[i]
		acc1 += a[i+1] * b[i+1]
	}

	sum := acc0 + acc1

	for ; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
