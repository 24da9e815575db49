package vecmath

import "testing"

// Reference implementations for multiplication testing
func mulBlockRef[T Float](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func mulBlockInPlaceRef[T Float](dst, src []T) {
	for i := range dst {
		dst[i] *= src[i]
	}
}

func TestMulBlock(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testMulBlock[float32](t) })
	t.Run("float64", func(t *testing.T) { testMulBlock[float64](t) })
}

func testMulBlock[T Float](t *testing.T) {
	for _, n := range testSizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			a := make([]T, n)
			b := make([]T, n)
			dst := make([]T, n)
			expected := make([]T, n)

			for i := 0; i < n; i++ {
				a[i] = T(i) + 0.5
				b[i] = T(n-i) * 0.125
			}

			mulBlockRef(expected, a, b)
			MulBlock(dst, a, b)

			for i := 0; i < n; i++ {
				if !closeEnough(dst[i], expected[i]) {
					t.Errorf("MulBlock[%d]: got %v, want %v", i, dst[i], expected[i])
				}
			}
		})
	}
}

func TestMulBlockInPlace(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testMulBlockInPlace[float32](t) })
	t.Run("float64", func(t *testing.T) { testMulBlockInPlace[float64](t) })
}

func testMulBlockInPlace[T Float](t *testing.T) {
	for _, n := range testSizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			src := make([]T, n)
			dst := make([]T, n)
			expected := make([]T, n)

			for i := 0; i < n; i++ {
				src[i] = T(i) + 0.5
				dst[i] = T(n-i) * 0.125
				expected[i] = dst[i]
			}

			mulBlockInPlaceRef(expected, src)
			MulBlockInPlace(dst, src)

			for i := 0; i < n; i++ {
				if !closeEnough(dst[i], expected[i]) {
					t.Errorf("MulBlockInPlace[%d]: got %v, want %v", i, dst[i], expected[i])
				}
			}
		})
	}
}

func TestMulBlockPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MulBlock should panic on mismatched lengths")
		}
	}()
	MulBlock(make([]float64, 5), make([]float64, 5), make([]float64, 6))
}

func TestMulBlockInPlacePanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MulBlockInPlace should panic on mismatched lengths")
		}
	}()
	MulBlockInPlace(make([]float32, 5), make([]float32, 6))
}
