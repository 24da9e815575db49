// Package vecmath provides vectorized math primitives for float32 and
// float64 slices.
//
// Kernels are written as tiered, unrolled loops shaped for specific SIMD
// instruction sets and registered per architecture. The best registered
// implementation for the running CPU is selected once, at first use, and
// every call after that dispatches through a cached function pointer.
//
// # Block Operations
//
// Element-wise arithmetic over equal-length slices:
//
//   - AddBlock: dst[i] = a[i] + b[i]
//   - AddBlockInPlace: dst[i] += src[i]
//   - MulBlock: dst[i] = a[i] * b[i]
//   - MulBlockInPlace: dst[i] *= src[i]
//   - ScaleBlock: dst[i] = src[i] * scale
//   - ScaleBlockInPlace: dst[i] *= scale
//
// Fused operations (reduced memory traffic):
//
//   - AddMulBlock: dst[i] = (a[i] + b[i]) * scale (mix with gain)
//   - MulAddBlock: dst[i] = a[i] * b[i] + c[i] (FMA pattern)
//
// Block operations panic if the slices have different lengths. dst may be
// the same slice as any input (each output element depends only on the
// same-indexed inputs); partial overlaps at an offset are undefined.
//
// # Reductions
//
//   - Sum: sum(x[i])
//   - DotProduct: sum(a[i] * b[i])
//   - MaxAbs: max(|x[i]|)
//
// Reductions return 0 for empty input and never panic.
//
// # Complex-Pair Operations
//
// Spectra stored as split re/im slices:
//
//   - Magnitude: dst[i] = sqrt(re[i]^2 + im[i]^2)
//   - Power: dst[i] = re[i]^2 + im[i]^2
//
// # Implementation Selection
//
// Architecture packages register their kernel sets at init time. At first
// use the package probes the CPU (see the cpu subpackage) and picks the
// registered implementation with the highest priority the CPU supports:
//
//   - amd64: AVX2 kernels, falling back to SSE2
//   - arm64: NEON kernels
//   - Other architectures: pure Go generic kernels
//
// The generic implementation is always registered and always compatible, so
// selection cannot fail. Two escape hatches force it explicitly: building
// with the purego tag compiles the architecture kernels out, and setting
// the VECMATH_FORCE_GENERIC environment variable to a non-empty value other
// than "0" or "false" skips CPU feature detection at runtime.
//
// Implementation reports the name of the selected kernel set.
//
// # Aligned Allocation
//
// AlignedSlice allocates slices whose first element sits on a 128-byte
// boundary, wide enough for any current vector register and a full cache
// line. Alignment is an optimization, not a requirement; kernels accept
// arbitrary slices.
//
// All operations have zero allocations and are safe for concurrent use
// (different goroutines may operate on different slices).
package vecmath
