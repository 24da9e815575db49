package vecmath

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/cwbudde/algo-vecmath/internal/registry"
)

// Float constrains the element types vecmath operations accept. It
// intentionally has no type approximations (~): dispatch switches over
// exactly float32 and float64.
type Float interface {
	float32 | float64
}

var (
	// Cached kernel sets for each element type (initialized once, used many times)
	active32 *registry.OpEntry[float32]
	active64 *registry.OpEntry[float64]

	dispatchOnce sync.Once
)

// initDispatch performs one-time selection of the kernel sets for the current
// CPU. It selects the best registered implementation based on detected CPU
// features and caches the entries for all subsequent operation calls.
func initDispatch() {
	features := cpu.DetectFeatures()

	active32 = registry.Global32.Lookup(features)
	active64 = registry.Global64.Lookup(features)

	if active32 == nil || active64 == nil {
		panic("vecmath: no implementation registered (missing generic fallback?)")
	}

	if op := active32.MissingOp(); op != "" {
		panic("vecmath: selected implementation " + active32.Name + " missing " + op + " operation")
	}
	if op := active64.MissingOp(); op != "" {
		panic("vecmath: selected implementation " + active64.Name + " missing " + op + " operation")
	}
}

// activeEntry returns the selected kernel set for T.
//
// The zero-value switch pins T to one concrete element type per branch, so
// the pointer assertion cannot fail. Both the zero-value conversion and the
// pointer assertion are allocation-free, keeping per-call dispatch to two
// branches plus a function pointer call.
func activeEntry[T Float]() *registry.OpEntry[T] {
	dispatchOnce.Do(initDispatch)

	var zero T
	switch any(zero).(type) {
	case float32:
		return any(active32).(*registry.OpEntry[T])
	default:
		return any(active64).(*registry.OpEntry[T])
	}
}

// Implementation returns the name of the kernel set selected for the running
// CPU (e.g. "avx2", "sse2", "neon", "generic"). Intended for logging and
// diagnostics; the selection itself happens automatically.
func Implementation() string {
	return activeEntry[float64]().Name
}
