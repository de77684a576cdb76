package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/AntonioLujanoLuna/DLpyd/internal/meta"
	"github.com/AntonioLujanoLuna/DLpyd/internal/resolve"
)

func runDeps(args []string) int {
	fs := flag.NewFlagSet("dlpyd deps", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var file, index, extras string
	fs.StringVar(&file, "file", "dlpyd.toml", "path to the descriptor file")
	fs.StringVar(&file, "f", "dlpyd.toml", "path to the descriptor file (shorthand)")
	fs.StringVar(&index, "index", "", "path to the index snapshot")
	fs.StringVar(&index, "i", "", "path to the index snapshot (shorthand)")
	fs.StringVar(&extras, "extras", "", "comma-separated optional dependency groups to include")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if index == "" {
		fmt.Fprintln(os.Stderr, "Error: --index is required")
		return 2
	}

	m, idx, code := loadInputs(file, index)
	if code != 0 {
		return code
	}

	r := resolve.NewResolver(idx)
	res, err := r.Resolve(context.Background(), m, splitGroups(extras)...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Resolution failed:\n  %v\n", err)
		return 1
	}

	for _, name := range res.Order {
		pin := res.Pins[name]
		fmt.Printf("%s==%s\n", name, pin.Release.Version)
	}
	return 0
}

// loadInputs loads and validates the descriptor, then the index.
func loadInputs(file, index string) (*meta.Metadata, *resolve.Index, int) {
	m, err := meta.Load(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Descriptor error in %s:\n  %v\n", file, err)
		return nil, nil, 1
	}
	if err := meta.Validate(m); err != nil {
		fmt.Fprintf(os.Stderr, "%s is invalid:\n  %v\n", file, err)
		return nil, nil, 1
	}

	idx, err := resolve.LoadIndex(index)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Index error in %s:\n  %v\n", index, err)
		return nil, nil, 1
	}
	return m, idx, 0
}

func splitGroups(extras string) []string {
	if extras == "" {
		return nil
	}
	var groups []string
	for _, g := range strings.Split(extras, ",") {
		if g = strings.TrimSpace(g); g != "" {
			groups = append(groups, g)
		}
	}
	return groups
}
