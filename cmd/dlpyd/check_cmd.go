package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/AntonioLujanoLuna/DLpyd/internal/resolve"
)

func runCheck(args []string) int {
	fs := flag.NewFlagSet("dlpyd check", flag.ContinueOnError)
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
	report, err := r.CheckInterpreter(context.Background(), m, splitGroups(extras)...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Check failed:\n  %v\n", err)
		return 1
	}

	if report.OK() {
		fmt.Printf("✓ interpreter constraint %q is consistent across %d pinned package(s)\n",
			m.RequiresInterpreter, report.Checked)
		return 0
	}

	fmt.Fprintf(os.Stderr, "Interpreter constraint %q conflicts with %d package(s):\n",
		m.RequiresInterpreter, len(report.Conflicts))
	for _, c := range report.Conflicts {
		fmt.Fprintf(os.Stderr, "  %v\n", c)
	}
	return 1
}
