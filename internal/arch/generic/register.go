package generic

import (
	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/cwbudde/algo-vecmath/internal/registry"
)

func init() {
	registry.Global32.Register(entry[float32]())
	registry.Global64.Register(entry[float64]())
}

// entry builds the generic implementation entry for one element type.
// Priority 0 makes it the fallback of last resort; SIMDNone makes it
// compatible with every CPU, including ForceGeneric.
func entry[T registry.Float]() registry.OpEntry[T] {
	return registry.OpEntry[T]{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		AddBlock:          AddBlock[T],
		AddBlockInPlace:   AddBlockInPlace[T],
		MulBlock:          MulBlock[T],
		MulBlockInPlace:   MulBlockInPlace[T],
		ScaleBlock:        ScaleBlock[T],
		ScaleBlockInPlace: ScaleBlockInPlace[T],
		AddMulBlock:       AddMulBlock[T],
		MulAddBlock:       MulAddBlock[T],
		Sum:               Sum[T],
		DotProduct:        DotProduct[T],
		MaxAbs:            MaxAbs[T],
		Magnitude:         Magnitude[T],
		Power:             Power[T],
	}
}
