//go:build purego

package vecmath

// This file imports only the generic implementation package, so builds with
// the purego tag carry no architecture-specific kernels at all.

import (
	// Generic implementations (pure Go fallback)
	_ "github.com/cwbudde/algo-vecmath/internal/arch/generic"
)
