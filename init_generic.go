//go:build !purego && !amd64 && !arm64

package vecmath

// This file imports generic implementation packages for architectures
// without a dedicated kernel set.

import (
	// Generic implementations (pure Go fallback)
	_ "github.com/cwbudde/algo-vecmath/internal/arch/generic"
)
