//go:build !purego && amd64

// Package sse2 provides vecmath kernels shaped for the x86-64 SSE2 baseline.
//
// The kernels are pure Go, unrolled to 128-bit register width (four float32
// or two float64 lanes) with a scalar tail. SSE2 is part of the x86-64
// baseline, so this entry is available on all amd64 CPUs.
package sse2

import (
	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/cwbudde/algo-vecmath/internal/registry"
)

// init registers the SSE2-shaped implementations with the vecmath registries.
//
// Priority: 10 (medium - preferred over generic, but lower than AVX2)
func init() {
	registry.Global32.Register(registry.OpEntry[float32]{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

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
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

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
