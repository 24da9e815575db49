package registry

import (
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestOpRegistryRegister(t *testing.T) {
	// Create a fresh registry for testing
	reg := &OpRegistry[float64]{}

	genericEntry := OpEntry[float64]{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		AddBlock: func(dst, a, b []float64) {
			// Dummy implementation
		},
	}
	reg.Register(genericEntry)

	avx2Entry := OpEntry[float64]{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		AddBlock: func(dst, a, b []float64) {
			// Dummy implementation
		},
	}
	reg.Register(avx2Entry)

	entries := reg.ListEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestOpRegistryLookupPriority(t *testing.T) {
	// Register implementations in random order to test sorting
	reg := &OpRegistry[float64]{}
	reg.Register(OpEntry[float64]{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
	})
	reg.Register(OpEntry[float64]{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
	})
	reg.Register(OpEntry[float64]{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
	})

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{
			name: "AVX2 available - select AVX2",
			features: cpu.Features{
				HasSSE2: true,
				HasAVX2: true,
			},
			want: "avx2",
		},
		{
			name: "SSE2 only - select SSE2",
			features: cpu.Features{
				HasSSE2: true,
				HasAVX2: false,
			},
			want: "sse2",
		},
		{
			name: "No SIMD - select generic",
			features: cpu.Features{
				HasSSE2: false,
				HasAVX2: false,
			},
			want: "generic",
		},
		{
			name: "ForceGeneric - select generic",
			features: cpu.Features{
				HasSSE2:      true,
				HasAVX2:      true,
				ForceGeneric: true,
			},
			want: "generic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := reg.Lookup(tt.features)
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if entry.Name != tt.want {
				t.Errorf("expected %q, got %q", tt.want, entry.Name)
			}
		})
	}
}

func TestOpRegistryLookupARM(t *testing.T) {
	reg := &OpRegistry[float32]{}
	reg.Register(OpEntry[float32]{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
	})
	reg.Register(OpEntry[float32]{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
	})

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{
			name:     "NEON available - select NEON",
			features: cpu.Features{HasNEON: true},
			want:     "neon",
		},
		{
			name:     "NEON unavailable - select generic",
			features: cpu.Features{HasNEON: false},
			want:     "generic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := reg.Lookup(tt.features)
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if entry.Name != tt.want {
				t.Errorf("expected %q, got %q", tt.want, entry.Name)
			}
		})
	}
}

func TestOpRegistryLookupEmpty(t *testing.T) {
	reg := &OpRegistry[float64]{}
	if entry := reg.Lookup(cpu.Features{}); entry != nil {
		t.Errorf("Lookup on empty registry = %v, want nil", entry)
	}
}

func TestListEntriesSorted(t *testing.T) {
	reg := &OpRegistry[float64]{}
	reg.Register(OpEntry[float64]{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10})
	reg.Register(OpEntry[float64]{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Register(OpEntry[float64]{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20})

	entries := reg.ListEntries()
	want := []string{"avx2", "sse2", "generic"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Name, name)
		}
	}
}

func TestOpRegistryReset(t *testing.T) {
	reg := &OpRegistry[float64]{}
	reg.Register(OpEntry[float64]{Name: "generic", SIMDLevel: cpu.SIMDNone})

	reg.Reset()

	if entries := reg.ListEntries(); len(entries) != 0 {
		t.Errorf("expected 0 entries after Reset, got %d", len(entries))
	}
	if entry := reg.Lookup(cpu.Features{}); entry != nil {
		t.Error("Lookup should return nil after Reset")
	}
}

func TestMissingOp(t *testing.T) {
	complete := completeEntry()
	if op := complete.MissingOp(); op != "" {
		t.Errorf("complete entry reports missing %q", op)
	}

	noSum := completeEntry()
	noSum.Sum = nil
	if op := noSum.MissingOp(); op != "Sum" {
		t.Errorf("MissingOp = %q, want %q", op, "Sum")
	}

	empty := &OpEntry[float64]{Name: "stub"}
	if op := empty.MissingOp(); op != "AddBlock" {
		t.Errorf("MissingOp = %q, want %q", op, "AddBlock")
	}
}

func completeEntry() *OpEntry[float64] {
	return &OpEntry[float64]{
		Name:              "stub",
		SIMDLevel:         cpu.SIMDNone,
		AddBlock:          func(dst, a, b []float64) {},
		AddBlockInPlace:   func(dst, src []float64) {},
		MulBlock:          func(dst, a, b []float64) {},
		MulBlockInPlace:   func(dst, src []float64) {},
		ScaleBlock:        func(dst, src []float64, scale float64) {},
		ScaleBlockInPlace: func(dst []float64, scale float64) {},
		AddMulBlock:       func(dst, a, b []float64, scale float64) {},
		MulAddBlock:       func(dst, a, b, c []float64) {},
		Sum:               func(x []float64) float64 { return 0 },
		DotProduct:        func(a, b []float64) float64 { return 0 },
		MaxAbs:            func(x []float64) float64 { return 0 },
		Magnitude:         func(dst, re, im []float64) {},
		Power:             func(dst, re, im []float64) {},
	}
}
