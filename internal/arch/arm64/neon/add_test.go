//go:build !purego && arm64

package neon

import (
	"fmt"
	"testing"
)

// Sizes around the 4-lane float32 and 2-lane float64 widths.
var tierSizes = []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 11, 12, 16, 17, 32, 64, 100, 1000}

// TestAddBlock64NEON tests the float64 kernel directly
func TestAddBlock64NEON(t *testing.T) {
	for _, n := range tierSizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			a := make([]float64, n)
			b := make([]float64, n)
			dst := make([]float64, n)
			expected := make([]float64, n)

			for i := 0; i < n; i++ {
				a[i] = float64(i) + 0.5
				b[i] = float64(i) * 2.0
				expected[i] = a[i] + b[i]
			}

			AddBlock64(dst, a, b)

			for i := 0; i < n; i++ {
				if dst[i] != expected[i] {
					t.Errorf("AddBlock64[%d] = %v, want %v", i, dst[i], expected[i])
				}
			}
		})
	}
}

// TestAddBlock32NEON tests the float32 kernel directly
func TestAddBlock32NEON(t *testing.T) {
	for _, n := range tierSizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			a := make([]float32, n)
			b := make([]float32, n)
			dst := make([]float32, n)
			expected := make([]float32, n)

			for i := 0; i < n; i++ {
				a[i] = float32(i) + 0.5
				b[i] = float32(i) * 2.0
				expected[i] = a[i] + b[i]
			}

			AddBlock32(dst, a, b)

			for i := 0; i < n; i++ {
				if dst[i] != expected[i] {
					t.Errorf("AddBlock32[%d] = %v, want %v", i, dst[i], expected[i])
				}
			}
		})
	}
}

func sizeStr(n int) string {
	if n >= 1024 {
		return fmt.Sprintf("%dK", n/1024)
	}
	return fmt.Sprintf("%d", n)
}
