//go:build !purego && amd64

package vecmath

// This file imports amd64-specific implementation packages to trigger
// their init() functions, which register implementations with the global
// registries.

import (
	// Generic implementations (pure Go fallback)
	_ "github.com/cwbudde/algo-vecmath/internal/arch/generic"

	// AMD64 implementations
	_ "github.com/cwbudde/algo-vecmath/internal/arch/amd64/avx2"
	_ "github.com/cwbudde/algo-vecmath/internal/arch/amd64/sse2"
)
