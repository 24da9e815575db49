//go:build !purego && amd64

package avx2

import "testing"

func TestMaxAbs64AVX2(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		expected float64
	}{
		{"empty", []float64{}, 0},
		{"single positive", []float64{3.5}, 3.5},
		{"single negative", []float64{-4.2}, 4.2},
		{"all positive", []float64{1, 2, 3, 4, 5}, 5},
		{"all negative", []float64{-1, -2, -3, -4, -5}, 5},
		{"mixed", []float64{-1.5, 2.0, -3.5, 4.0, -5.5}, 5.5},
		{"zeros", []float64{0, 0, 0}, 0},
		{"with zero", []float64{-3, 0, 2}, 3},
		{"max in second lane", []float64{1, -9, 2, 3, 4, 5, 6, 7, 8}, 9},
		{"large array", makeRange(-1000, 1000), 1000},
		{"unaligned size", makeRange(-99, 99), 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MaxAbs64(tt.input)
			if result != tt.expected {
				t.Errorf("MaxAbs64() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMaxAbs32AVX2(t *testing.T) {
	tests := []struct {
		name     string
		input    []float32
		expected float32
	}{
		{"empty", []float32{}, 0},
		{"single negative", []float32{-4.25}, 4.25},
		{"mixed", []float32{-1.5, 2.0, -3.5, 4.0, -5.5}, 5.5},
		{"max in tail", []float32{1, 2, 3, 4, 5, 6, 7, 8, -99}, 99},
		{"max in each lane position", []float32{0, 0, 0, 0, 0, 0, 0, -42}, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MaxAbs32(tt.input)
			if result != tt.expected {
				t.Errorf("MaxAbs32() = %v, want %v", result, tt.expected)
			}
		})
	}
}

// Note: NaN handling is implementation-defined. The kernels use plain
// comparisons, which never select a NaN lane over a numeric one.

// Helper function to create a range of float64 values
func makeRange(min, max int) []float64 {
	size := max - min + 1
	result := make([]float64, size)
	for i := 0; i < size; i++ {
		result[i] = float64(min + i)
	}
	return result
}
