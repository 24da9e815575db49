package vecmath

import "unsafe"

// Alignment is the byte boundary AlignedSlice aligns to. 128 bytes covers
// every vector register width in use (16-byte SSE2/NEON through 64-byte
// AVX-512) and a full cache line on common CPUs.
const Alignment = 128

// AlignedSlice allocates a slice of n elements whose first element sits on
// an Alignment-byte boundary. The returned slice has length and capacity n;
// the backing array stays alive through the slice, so no finalizer or free
// call is needed. For n == 0 an empty slice is returned.
//
// Kernels accept any slice, aligned or not. Aligned operands keep wide loads
// and stores from straddling cache lines, which matters on large blocks.
func AlignedSlice[T Float](n int) []T {
	if n == 0 {
		return []T{}
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	// The runtime aligns backing arrays to at least the element size, so the
	// gap to the next boundary is always a whole number of elements.
	pad := Alignment / elemSize
	buf := make([]T, n+pad)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	off := 0
	if rem := int(addr % Alignment); rem != 0 {
		off = (Alignment - rem) / elemSize
	}
	return buf[off : off+n : off+n]
}

// IsAligned reports whether the first element of x sits on an Alignment-byte
// boundary. Returns false for an empty slice.
func IsAligned[T Float](x []T) bool {
	if len(x) == 0 {
		return false
	}
	return uintptr(unsafe.Pointer(&x[0]))%Alignment == 0
}
