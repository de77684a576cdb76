package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/AntonioLujanoLuna/DLpyd/internal/serialization"
)

func runInspect(args []string) int {
	fs := flag.NewFlagSet("dlpyd inspect", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: dlpyd inspect <file.dlpd>")
		return 2
	}
	path := fs.Arg(0)

	r, err := serialization.NewReader(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer func() {
		_ = r.Close()
	}()

	printHeader(path, r.Header())
	return 0
}

func printHeader(path string, h serialization.Header) {
	fmt.Printf("%s\n", path)
	fmt.Printf("  format version:  %d\n", h.FormatVersion)
	fmt.Printf("  library version: %s\n", h.LibraryVersion)
	fmt.Printf("  kind:            %s\n", h.Kind)
	if h.ID != "" {
		fmt.Printf("  id:              %s\n", h.ID)
	}
	fmt.Printf("  created:         %s\n", h.CreatedAt.Format("2006-01-02 15:04:05 MST"))

	if cm := h.CheckpointMeta; cm != nil && cm.IsCheckpoint {
		fmt.Printf("  epoch:           %d\n", cm.Epoch)
		fmt.Printf("  step:            %d\n", cm.Step)
		fmt.Printf("  loss:            %g\n", cm.Loss)
		if cm.OptimizerType != "" {
			fmt.Printf("  optimizer:       %s\n", cm.OptimizerType)
		}
	}

	if len(h.Metadata) > 0 {
		fmt.Printf("  metadata:\n")
		keys := make([]string, 0, len(h.Metadata))
		for k := range h.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("    %s: %s\n", k, h.Metadata[k])
		}
	}

	var total int64
	fmt.Printf("  arrays (%d):\n", len(h.Arrays))
	for _, a := range h.Arrays {
		fmt.Printf("    %-40s %-8s %-16s %d bytes\n", a.Name, a.DType, shapeString(a.Shape), a.Size)
		total += a.Size
	}
	fmt.Printf("  total data:      %d bytes\n", total)
}

func shapeString(shape []int) string {
	parts := make([]string, len(shape))
	for i, d := range shape {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
