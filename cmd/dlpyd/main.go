// Package main provides the dlpyd command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/AntonioLujanoLuna/DLpyd/internal/log"
)

const appVersion = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 2
	}

	log.Configure(log.Config{Service: "dlpyd"})

	switch args[0] {
	case "validate":
		return runValidate(args[1:])
	case "deps":
		return runDeps(args[1:])
	case "check":
		return runCheck(args[1:])
	case "inspect":
		return runInspect(args[1:])
	case "version":
		fmt.Printf("dlpyd %s\n", appVersion)
		return 0
	case "help", "-h", "--help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", args[0])
		printUsage()
		return 2
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  dlpyd validate [--file|-f dlpyd.toml] [--watch]")
	fmt.Fprintln(os.Stderr, "  dlpyd deps [--file|-f dlpyd.toml] --index|-i index.yaml [--extras dev,docs]")
	fmt.Fprintln(os.Stderr, "  dlpyd check [--file|-f dlpyd.toml] --index|-i index.yaml [--extras dev,docs]")
	fmt.Fprintln(os.Stderr, "  dlpyd inspect <file.dlpd>")
	fmt.Fprintln(os.Stderr, "  dlpyd version")
}
