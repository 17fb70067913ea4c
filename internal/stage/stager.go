package stage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/isseis/go-unique-path/uniquepath"
)

// Result records the path reserved for a single source.
type Result struct {
	Identifier string
	Path       string
	// Reserved is true when the path was claimed by creating an empty file,
	// false when it was only verified non-existent at check time.
	Reserved bool
}

// Output is the outcome of a staging run.
type Output struct {
	// WorkDir is the unique scratch directory, empty unless requested.
	WorkDir string
	Results []Result
}

// Stager reserves destination paths for a staging configuration.
type Stager struct {
	gen    *uniquepath.Generator
	logger *slog.Logger
}

// NewStager creates a stager backed by the local disk.
func NewStager(logger *slog.Logger) *Stager {
	return &Stager{
		gen:    uniquepath.New(),
		logger: logger,
	}
}

// Stage reserves one destination path per source. With dryRun enabled no
// file or directory is created; the reported paths are advisory only and can
// be taken by another actor before use.
func (s *Stager) Stage(ctx context.Context, cfg *Config, dryRun bool) (*Output, error) {
	out := &Output{Results: make([]Result, 0, len(cfg.Sources))}

	if cfg.WorkDir {
		workDir, err := s.gen.TempDir(ctx, cfg.WorkDirPrefix, !dryRun)
		if err != nil {
			return out, fmt.Errorf("work directory: %w", err)
		}
		out.WorkDir = workDir
		s.logger.Info("work directory ready", "path", workDir, "created", !dryRun)
	}

	for _, src := range cfg.Sources {
		result, err := s.stageSource(ctx, cfg.Destination, src, dryRun)
		if err != nil {
			return out, fmt.Errorf("staging %q: %w", src.Identifier, err)
		}
		s.logger.Info("path reserved",
			"identifier", src.Identifier,
			"path", result.Path,
			"reserved", result.Reserved,
		)
		out.Results = append(out.Results, result)
	}
	return out, nil
}

func (s *Stager) stageSource(ctx context.Context, dir string, src Source, dryRun bool) (Result, error) {
	var (
		path     string
		err      error
		reserved bool
	)
	switch {
	case src.RandomExt != "":
		// Random never creates, so it serves dry runs unchanged.
		path, err = s.gen.Random(ctx, dir, src.RandomExt)
	case dryRun:
		path, err = s.gen.FromIdentifierAdvisory(ctx, dir, src.Identifier)
	default:
		path, err = s.gen.FromIdentifier(ctx, dir, src.Identifier)
		reserved = err == nil
	}
	if err != nil {
		return Result{}, err
	}
	return Result{Identifier: src.Identifier, Path: path, Reserved: reserved}, nil
}
