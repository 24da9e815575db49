//go:build !purego && arm64

package registry_test

import (
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/cwbudde/algo-vecmath/internal/registry"

	// Import arm64-specific implementations
	_ "github.com/cwbudde/algo-vecmath/internal/arch/arm64/neon"
	_ "github.com/cwbudde/algo-vecmath/internal/arch/generic"
)

// TestRegistryIntegrationARM64 verifies implementations register on arm64.
func TestRegistryIntegrationARM64(t *testing.T) {
	t.Run("float32", func(t *testing.T) { checkARM64Registrations(t, registry.Global32) })
	t.Run("float64", func(t *testing.T) { checkARM64Registrations(t, registry.Global64) })
}

func checkARM64Registrations[T registry.Float](t *testing.T, reg *registry.OpRegistry[T]) {
	t.Helper()

	entries := reg.ListEntries()
	if len(entries) == 0 {
		t.Fatal("no implementations registered - init() functions not running")
	}

	t.Logf("Registered %d implementations on arm64:", len(entries))
	for _, e := range entries {
		t.Logf("  - %s (priority %d, level %s)", e.Name, e.Priority, e.SIMDLevel)
	}

	names := make(map[string]bool)
	for _, e := range entries {
		names[e.Name] = true
	}

	if !names["generic"] {
		t.Error("generic implementation not registered")
	}
	if !names["neon"] {
		t.Error("neon implementation not registered")
	}

	for i := range entries {
		if op := entries[i].MissingOp(); op != "" {
			t.Errorf("%s implementation missing %s", entries[i].Name, op)
		}
	}

	entry := reg.Lookup(cpu.DetectFeatures())
	if entry == nil {
		t.Fatal("Lookup returned nil")
	}
	t.Logf("Selected implementation for current CPU: %s", entry.Name)

	// NEON is mandatory on ARMv8, so real hardware should pick it.
	if cpu.DetectFeatures().HasNEON && !cpu.DetectFeatures().ForceGeneric && entry.Name != "neon" {
		t.Errorf("expected neon on NEON-capable host, got %s", entry.Name)
	}
}
