// Command vecinfo prints the CPU features and vecmath kernel selection for
// the current machine.
//
// Usage:
//
//	vecinfo [flags]
//
// Without flags it prints the detected CPU features, the selected
// implementation, and a table of all registered implementation variants.
//
// Examples:
//
//	vecinfo
//	vecinfo -list
//	VECMATH_FORCE_GENERIC=1 vecinfo
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/cwbudde/algo-vecmath/internal/registry"
)

func main() {
	list := flag.Bool("list", false, "list registered implementation names only")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vecinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints CPU features and vecmath kernel selection.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vecinfo\n")
		fmt.Fprintf(os.Stderr, "  vecinfo -list\n")
		fmt.Fprintf(os.Stderr, "  VECMATH_FORCE_GENERIC=1 vecinfo\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	features := cpu.DetectFeatures()
	printFeatures(features)

	fmt.Printf("\nSelected implementation: %s\n\n", vecmath.Implementation())

	printVariants(features)
}

func printList() {
	for _, e := range registry.Global64.ListEntries() {
		fmt.Println(e.Name)
	}
}

func printFeatures(f cpu.Features) {
	rows := [][2]string{
		{"Architecture", f.Architecture},
		{"SSE2", yesNo(f.HasSSE2)},
		{"AVX", yesNo(f.HasAVX)},
		{"AVX2", yesNo(f.HasAVX2)},
		{"AVX-512", yesNo(f.HasAVX512)},
		{"NEON", yesNo(f.HasNEON)},
		{"ForceGeneric", yesNo(f.ForceGeneric)},
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r[0], r[1]); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printVariants(features cpu.Features) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Variant\tType\tSIMD Level\tPriority\tComplete\tActive\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "-------\t----\t----------\t--------\t--------\t------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	if err := writeRows(tw, "float32", registry.Global32.ListEntries(), registry.Global32.Lookup(features)); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
		return
	}
	if err := writeRows(tw, "float64", registry.Global64.ListEntries(), registry.Global64.Lookup(features)); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
		return
	}

	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func writeRows[T registry.Float](tw *tabwriter.Writer, typ string, entries []registry.OpEntry[T], active *registry.OpEntry[T]) error {
	for i := range entries {
		e := &entries[i]
		complete := yesNo(e.MissingOp() == "")
		isActive := ""
		if active != nil && e.Name == active.Name {
			isActive = "*"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			e.Name, typ, e.SIMDLevel, e.Priority, complete, isActive); err != nil {
			return err
		}
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
