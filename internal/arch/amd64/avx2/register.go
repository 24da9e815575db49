//go:build !purego && amd64

// Package avx2 provides vecmath kernels shaped for AVX2-class CPUs.
//
// The kernels are pure Go, unrolled to 256-bit register width (eight float32
// or four float64 lanes) with a 128-bit middle tier and a scalar tail, so the
// compiler and CPU can stream wide loads without lane remainder handling.
// TODO: replace the hot kernels with explicit AVX2 asm.
package avx2

import (
	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/cwbudde/algo-vecmath/internal/registry"
)

// init registers the AVX2-shaped implementations with the vecmath registries.
//
// Priority: 20 (high - preferred over SSE2 and generic when available)
func init() {
	registry.Global32.Register(registry.OpEntry[float32]{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,

		// Arithmetic operations
		AddBlock:          AddBlock32,
		AddBlockInPlace:   AddBlockInPlace32,
		MulBlock:          MulBlock32,
		MulBlockInPlace:   MulBlockInPlace32,
		ScaleBlock:        ScaleBlock32,
		ScaleBlockInPlace: ScaleBlockInPlace32,

		// Fused operations
		AddMulBlock: AddMulBlock32,
		MulAddBlock: MulAddBlock32,

		// Reduction operations
		Sum:        Sum32,
		DotProduct: DotProduct32,
		MaxAbs:     MaxAbs32,

		// Complex-pair operations
		Magnitude: Magnitude32,
		Power:     Power32,
	})

	registry.Global64.Register(registry.OpEntry[float64]{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,

		// Arithmetic operations
		AddBlock:          AddBlock64,
		AddBlockInPlace:   AddBlockInPlace64,
		MulBlock:          MulBlock64,
		MulBlockInPlace:   MulBlockInPlace64,
		ScaleBlock:        ScaleBlock64,
		ScaleBlockInPlace: ScaleBlockInPlace64,

		// Fused operations
		AddMulBlock: AddMulBlock64,
		MulAddBlock: MulAddBlock64,

		// Reduction operations
		Sum:        Sum64,
		DotProduct: DotProduct64,
		MaxAbs:     MaxAbs64,

		// Complex-pair operations
		Magnitude: Magnitude64,
		Power:     Power64,
	})
}
