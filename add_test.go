package vecmath

import "testing"

// Reference implementations for addition testing
func addBlockRef[T Float](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func addBlockInPlaceRef[T Float](dst, src []T) {
	for i := range dst {
		dst[i] += src[i]
	}
}

func TestAddBlock(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testAddBlock[float32](t) })
	t.Run("float64", func(t *testing.T) { testAddBlock[float64](t) })
}

func testAddBlock[T Float](t *testing.T) {
	for _, n := range testSizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			a := make([]T, n)
			b := make([]T, n)
			dst := make([]T, n)
			expected := make([]T, n)

			for i := range a {
				a[i] = T(i) + 0.5
				b[i] = T(n-i) * 0.125
			}

			addBlockRef(expected, a, b)
			AddBlock(dst, a, b)

			for i := range dst {
				if !closeEnough(dst[i], expected[i]) {
					t.Errorf("AddBlock[%d]: got %v, want %v", i, dst[i], expected[i])
				}
			}
		})
	}
}

func TestAddBlockInPlace(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testAddBlockInPlace[float32](t) })
	t.Run("float64", func(t *testing.T) { testAddBlockInPlace[float64](t) })
}

func testAddBlockInPlace[T Float](t *testing.T) {
	for _, n := range testSizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			src := make([]T, n)
			dst := make([]T, n)
			expected := make([]T, n)

			for i := range src {
				src[i] = T(i) + 0.5
				dst[i] = T(n-i) * 0.125
				expected[i] = dst[i]
			}

			addBlockInPlaceRef(expected, src)
			AddBlockInPlace(dst, src)

			for i := range dst {
				if !closeEnough(dst[i], expected[i]) {
					t.Errorf("AddBlockInPlace[%d]: got %v, want %v", i, dst[i], expected[i])
				}
			}
		})
	}
}

func TestAddBlockPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("AddBlock should panic on mismatched lengths")
		}
	}()
	AddBlock(make([]float64, 5), make([]float64, 5), make([]float64, 6))
}

func TestAddBlockPanic32(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("AddBlock should panic on mismatched lengths")
		}
	}()
	AddBlock(make([]float32, 5), make([]float32, 6), make([]float32, 5))
}

func TestAddBlockInPlacePanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("AddBlockInPlace should panic on mismatched lengths")
		}
	}()
	AddBlockInPlace(make([]float64, 5), make([]float64, 6))
}
