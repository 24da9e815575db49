package vecmath

// AddBlock performs element-wise addition: dst[i] = a[i] + b[i].
//
// All slices must have equal length. Panics if lengths differ. dst may fully
// alias a and/or b (the same slice passed as input and output); partial
// overlaps at an offset are undefined.
//
// The implementation is automatically selected based on CPU features:
//   - AVX2-shaped kernels on x86-64 with AVX2 (Haswell 2013+): 8 float32 /
//     4 float64 lanes per iteration, with a 128-bit middle tier
//   - SSE2-shaped kernels on all other x86-64: 4 / 2 lanes
//   - NEON-shaped kernels on ARM64: 4 / 2 lanes
//   - Plain scalar loops otherwise, under the purego build tag, or when
//     forced via cpu.SetForcedFeatures or VECMATH_FORCE_GENERIC
//
// After the first call, subsequent calls have zero dispatch overhead
// (direct function pointer call through the cached kernel set).
func AddBlock[T Float](dst, a, b []T) {
	activeEntry[T]().AddBlock(dst, a, b)
}

// AddBlockInPlace performs in-place element-wise addition: dst[i] += src[i].
// Slices must have equal length. Panics if lengths differ.
func AddBlockInPlace[T Float](dst, src []T) {
	activeEntry[T]().AddBlockInPlace(dst, src)
}
