// Package main provides the entry point for the pathstage tool. It reserves
// unique, collision-free destination paths for a list of source identifiers
// so a later download step can write without overwriting existing files.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/isseis/go-unique-path/internal/logging"
	"github.com/isseis/go-unique-path/internal/stage"
	"github.com/isseis/go-unique-path/internal/terminal"
)

// Error definitions
var (
	ErrInputRequired = errors.New("either -config or -dir with identifier arguments is required")
)

var (
	configPath          = flag.String("config", "", "path to TOML config file")
	destDir             = flag.String("dir", "", "destination directory (overrides config)")
	logLevel            = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	dryRun              = flag.Bool("dry-run", false, "report paths without creating anything")
	workDir             = flag.Bool("work-dir", false, "also create a unique scratch directory for this run")
	forceInteractive    = flag.Bool("interactive", false, "force human-readable log output")
	forceNonInteractive = flag.Bool("non-interactive", false, "force JSON log output")
)

func main() {
	// Generate run ID early for error handling
	runID := logging.GenerateRunID()

	if err := run(runID); err != nil {
		fmt.Fprintf(os.Stderr, "pathstage: %v\n", err)
		os.Exit(1)
	}
}

func run(runID string) error {
	flag.Parse()

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		return err
	}
	detector := terminal.NewDetector(terminal.Options{
		ForceInteractive:    *forceInteractive,
		ForceNonInteractive: *forceNonInteractive,
	})
	logger := logging.NewLogger(os.Stderr, level, detector.IsInteractive()).With("run_id", runID)

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out, err := stage.NewStager(logger).Stage(ctx, cfg, *dryRun)
	if err != nil {
		return err
	}

	// Reserved paths go to stdout, one per line, so the tool composes with
	// a download step; everything else goes to stderr via the logger.
	for _, result := range out.Results {
		fmt.Println(result.Path)
	}
	return nil
}

// buildConfig assembles the staging config from a TOML file, command-line
// arguments, or both. Flags win over file values.
func buildConfig() (*stage.Config, error) {
	var cfg *stage.Config

	if *configPath != "" {
		loaded, err := stage.NewLoader().LoadConfig(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = &stage.Config{}
	}

	if *destDir != "" {
		cfg.Destination = *destDir
	}
	if *workDir {
		cfg.WorkDir = true
	}
	for _, identifier := range flag.Args() {
		cfg.Sources = append(cfg.Sources, stage.Source{Identifier: identifier})
	}

	if cfg.Destination == "" || len(cfg.Sources) == 0 {
		return nil, ErrInputRequired
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
