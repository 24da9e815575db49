// Package registry provides the implementation registry for vecmath operations.
//
// The registry-based dispatch system allows multiple implementation variants
// (generic, SSE2, AVX2, NEON, etc.) to coexist. The best implementation for
// the current CPU is selected automatically at runtime.
//
// Architecture-specific implementations register themselves via init()
// functions, once per element type: Global32 holds float32 kernel sets,
// Global64 holds float64 kernel sets. The vecmath package looks both up with
// the detected CPU features and caches the winning entries.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Float constrains kernel element types. It deliberately has no type
// approximations (~): dispatch in the vecmath package type-switches over
// exactly float32 and float64.
type Float interface {
	float32 | float64
}

// OpEntry represents a registered implementation variant for vecmath
// operations over one element type.
//
// Each entry contains typed function pointers for all supported operations at
// a specific SIMD level. Not all fields need to be populated - the vecmath
// package verifies the entry it selects via MissingOp before use.
type OpEntry[T Float] struct {
	// Name is a human-readable identifier for this implementation (e.g., "avx2", "neon").
	Name string

	// SIMDLevel indicates the SIMD instruction set required for this implementation.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible implementations exist.
	// Higher priority implementations are preferred. Suggested priorities:
	//   - Generic (SIMDNone): 0
	//   - SSE2: 10
	//   - AVX/NEON: 15
	//   - AVX2: 20
	//   - AVX-512: 30
	Priority int

	// AddBlock performs element-wise addition: dst[i] = a[i] + b[i].
	AddBlock func(dst, a, b []T)

	// AddBlockInPlace performs in-place element-wise addition: dst[i] += src[i].
	AddBlockInPlace func(dst, src []T)

	// MulBlock performs element-wise multiplication: dst[i] = a[i] * b[i].
	MulBlock func(dst, a, b []T)

	// MulBlockInPlace performs in-place element-wise multiplication: dst[i] *= src[i].
	MulBlockInPlace func(dst, src []T)

	// ScaleBlock performs element-wise scaling: dst[i] = src[i] * scale.
	ScaleBlock func(dst, src []T, scale T)

	// ScaleBlockInPlace performs in-place element-wise scaling: dst[i] *= scale.
	ScaleBlockInPlace func(dst []T, scale T)

	// AddMulBlock performs fused add-multiply: dst[i] = (a[i] + b[i]) * scale.
	AddMulBlock func(dst, a, b []T, scale T)

	// MulAddBlock performs fused multiply-add: dst[i] = a[i] * b[i] + c[i].
	MulAddBlock func(dst, a, b, c []T)

	// Sum returns the sum of all elements in the slice: sum(x[i]).
	Sum func(x []T) T

	// DotProduct returns the dot product of two slices: sum(a[i] * b[i]).
	DotProduct func(a, b []T) T

	// MaxAbs returns the maximum absolute value in the slice: max(|x[i]|).
	MaxAbs func(x []T) T

	// Magnitude computes magnitude from separate real and imaginary parts: dst[i] = sqrt(re[i]^2 + im[i]^2).
	Magnitude func(dst, re, im []T)

	// Power computes power (magnitude squared) from separate real and imaginary parts: dst[i] = re[i]^2 + im[i]^2.
	Power func(dst, re, im []T)
}

// MissingOp returns the name of the first unpopulated operation, or "" when
// the entry is complete. The vecmath package calls this on the entry it
// selects so a partially registered variant fails loudly at dispatch init
// instead of as a nil call later.
func (e *OpEntry[T]) MissingOp() string {
	switch {
	case e.AddBlock == nil:
		return "AddBlock"
	case e.AddBlockInPlace == nil:
		return "AddBlockInPlace"
	case e.MulBlock == nil:
		return "MulBlock"
	case e.MulBlockInPlace == nil:
		return "MulBlockInPlace"
	case e.ScaleBlock == nil:
		return "ScaleBlock"
	case e.ScaleBlockInPlace == nil:
		return "ScaleBlockInPlace"
	case e.AddMulBlock == nil:
		return "AddMulBlock"
	case e.MulAddBlock == nil:
		return "MulAddBlock"
	case e.Sum == nil:
		return "Sum"
	case e.DotProduct == nil:
		return "DotProduct"
	case e.MaxAbs == nil:
		return "MaxAbs"
	case e.Magnitude == nil:
		return "Magnitude"
	case e.Power == nil:
		return "Power"
	}
	return ""
}

// OpRegistry manages the registration and lookup of vecmath implementation
// variants for one element type.
//
// Implementations register themselves via init() functions. At runtime,
// Lookup() selects the highest-priority implementation compatible with the
// current CPU.
type OpRegistry[T Float] struct {
	mu      sync.RWMutex
	entries []OpEntry[T]
	sorted  bool // true if entries are sorted by priority (descending)
}

var (
	// Global32 is the default registry for float32 kernels.
	Global32 = &OpRegistry[float32]{}

	// Global64 is the default registry for float64 kernels.
	Global64 = &OpRegistry[float64]{}
)

// Register adds an implementation variant to the registry.
//
// This function is typically called from init() functions in
// architecture-specific implementation packages. It is safe to call
// concurrently, but all registrations should complete before the first call
// to Lookup().
func (r *OpRegistry[T]) Register(entry OpEntry[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best implementation variant for the given CPU features.
//
// Returns the highest-priority entry compatible with the CPU. If no
// compatible implementations are found, returns nil (which should never
// happen if a generic fallback is registered).
//
// This function is thread-safe and performs lazy sorting of entries on first call.
func (r *OpRegistry[T]) Lookup(features cpu.Features) *OpEntry[T] {
	r.mu.Lock()
	if !r.sorted {
		// Sort entries by priority (descending) for efficient lookup
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	// Find highest priority compatible implementation
	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil // Should never happen if generic fallback is registered
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry[T]) sortByPriority() {
	// Simple insertion sort (registry is small, ~3-5 entries)
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries, sorted by priority.
// This function is primarily intended for testing and debugging.
func (r *OpRegistry[T]) ListEntries() []OpEntry[T] {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry[T], len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
