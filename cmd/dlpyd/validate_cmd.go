package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/AntonioLujanoLuna/DLpyd/internal/log"
	"github.com/AntonioLujanoLuna/DLpyd/internal/meta"
)

// debounceWindow coalesces editor write bursts into one re-validation.
const debounceWindow = 200 * time.Millisecond

func runValidate(args []string) int {
	fs := flag.NewFlagSet("dlpyd validate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var file string
	var watch bool
	fs.StringVar(&file, "file", "dlpyd.toml", "path to the descriptor file")
	fs.StringVar(&file, "f", "dlpyd.toml", "path to the descriptor file (shorthand)")
	fs.BoolVar(&watch, "watch", false, "re-validate whenever the descriptor changes")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "Unexpected argument: %s\n", fs.Arg(0))
		return 2
	}

	if !watch {
		return validateOnce(file)
	}
	return watchValidate(file)
}

// validateOnce loads and validates one descriptor, reporting every
// violation it finds.
func validateOnce(path string) int {
	m, err := meta.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Descriptor error in %s:\n  %v\n", path, err)
		return 1
	}

	if err := meta.Validate(m); err != nil {
		var verrs meta.ValidationErrors
		if errors.As(err, &verrs) {
			fmt.Fprintf(os.Stderr, "%s is invalid (%d problem(s)):\n", path, len(verrs))
			for _, ve := range verrs {
				fmt.Fprintf(os.Stderr, "  %v\n", ve)
			}
		} else {
			fmt.Fprintf(os.Stderr, "%s is invalid:\n  %v\n", path, err)
		}
		return 1
	}

	fmt.Printf("✓ %s is valid (%s %s)\n", path, m.Name, m.Version)
	return 0
}

// watchValidate validates the descriptor, then re-validates on every
// change until interrupted. The exit code reflects the last validation.
func watchValidate(path string) int {
	logger := log.WithComponent("watch")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: fsnotify.NewWatcher: %v\n", err)
		return 1
	}
	defer func() {
		_ = watcher.Close()
	}()

	// Watch the parent directory: editors replace files via rename, which
	// would silently drop a watch on the file itself.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: watch directory %s: %v\n", dir, err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	last := validateOnce(path)
	logger.Info().Str("path", path).Msg("watching descriptor")

	target := filepath.Base(path)
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return last
		case <-timerC:
			timer = nil
			timerC = nil
			last = validateOnce(path)
		case event, ok := <-watcher.Events:
			if !ok {
				return last
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
				timerC = timer.C
			} else {
				timer.Reset(debounceWindow)
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return last
			}
			logger.Warn().Err(werr).Msg("fsnotify watcher error")
		}
	}
}
