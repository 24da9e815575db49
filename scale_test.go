package vecmath

import (
	"math"
	"testing"
)

// Reference implementations for scaling testing
func scaleBlockRef[T Float](dst, src []T, scale T) {
	for i := range dst {
		dst[i] = src[i] * scale
	}
}

func scaleBlockInPlaceRef[T Float](dst []T, scale T) {
	for i := range dst {
		dst[i] *= scale
	}
}

func TestScaleBlock(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testScaleBlock[float32](t) })
	t.Run("float64", func(t *testing.T) { testScaleBlock[float64](t) })
}

func testScaleBlock[T Float](t *testing.T) {
	scales := []float64{0.0, 1.0, -1.0, 0.5, 2.0, math.Pi}

	for _, n := range testSizes {
		for _, scale := range scales {
			t.Run(sizeStr(n)+"_scale_"+floatStr(scale), func(t *testing.T) {
				src := make([]T, n)
				dst := make([]T, n)
				expected := make([]T, n)

				for i := 0; i < n; i++ {
					src[i] = T(i) + 0.5
				}

				scaleBlockRef(expected, src, T(scale))
				ScaleBlock(dst, src, T(scale))

				for i := 0; i < n; i++ {
					if !closeEnough(dst[i], expected[i]) {
						t.Errorf("ScaleBlock[%d]: got %v, want %v", i, dst[i], expected[i])
					}
				}
			})
		}
	}
}

func TestScaleBlockInPlace(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testScaleBlockInPlace[float32](t) })
	t.Run("float64", func(t *testing.T) { testScaleBlockInPlace[float64](t) })
}

func testScaleBlockInPlace[T Float](t *testing.T) {
	scales := []float64{0.0, 1.0, -1.0, 0.5, 2.0, math.Pi}

	for _, n := range testSizes {
		for _, scale := range scales {
			t.Run(sizeStr(n)+"_scale_"+floatStr(scale), func(t *testing.T) {
				dst := make([]T, n)
				expected := make([]T, n)

				for i := 0; i < n; i++ {
					dst[i] = T(i) + 0.5
					expected[i] = dst[i]
				}

				scaleBlockInPlaceRef(expected, T(scale))
				ScaleBlockInPlace(dst, T(scale))

				for i := 0; i < n; i++ {
					if !closeEnough(dst[i], expected[i]) {
						t.Errorf("ScaleBlockInPlace[%d]: got %v, want %v", i, dst[i], expected[i])
					}
				}
			})
		}
	}
}

func TestScaleBlockPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("ScaleBlock should panic on mismatched lengths")
		}
	}()
	ScaleBlock(make([]float64, 5), make([]float64, 6), 1.0)
}
