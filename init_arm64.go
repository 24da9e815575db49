//go:build !purego && arm64

package vecmath

// This file imports arm64-specific implementation packages to trigger
// their init() functions, which register implementations with the global
// registries.

import (
	// Generic implementations (pure Go fallback)
	_ "github.com/cwbudde/algo-vecmath/internal/arch/generic"

	// ARM64 implementations
	_ "github.com/cwbudde/algo-vecmath/internal/arch/arm64/neon"
)
