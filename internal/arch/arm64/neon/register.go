//go:build !purego && arm64

// Package neon provides vecmath kernels shaped for ARM NEON (Advanced SIMD).
//
// The kernels are pure Go, unrolled to 128-bit register width (four float32
// or two float64 lanes) with a scalar tail. NEON is mandatory on ARMv8, so
// this entry is available on all arm64 CPUs.
package neon

import (
	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/cwbudde/algo-vecmath/internal/registry"
)

// init registers the NEON-shaped implementations with the vecmath registries.
//
// Priority: 15 (medium-high - ARM's equivalent to AVX/AVX2)
func init() {
	registry.Global32.Register(registry.OpEntry[float32]{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,

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
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,

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
