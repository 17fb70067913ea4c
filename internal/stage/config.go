// Package stage reserves unique destination paths for a batch of source
// identifiers before any download or copy begins, so that concurrent staging
// runs never overwrite each other's artifacts.
package stage

import (
	"errors"
	"fmt"
)

// Error definitions for the stage package
var (
	// ErrInvalidConfigPath is returned when the config file path is empty.
	ErrInvalidConfigPath = errors.New("invalid config file path")
	// ErrNoDestination is returned when the config names no destination directory.
	ErrNoDestination = errors.New("destination directory is required")
	// ErrNoSources is returned when the config lists no sources.
	ErrNoSources = errors.New("at least one source is required")
	// ErrEmptyIdentifier is returned when a source has no identifier and no random extension.
	ErrEmptyIdentifier = errors.New("source needs an identifier or a random extension")
)

// Config describes one staging run.
type Config struct {
	// Destination is the directory unique paths are reserved in. It must
	// already exist.
	Destination string `toml:"destination"`

	// WorkDir requests a unique scratch directory under the system temp
	// location for this run.
	WorkDir bool `toml:"work_dir"`

	// WorkDirPrefix names the scratch directory prefix. Empty means the
	// library default.
	WorkDirPrefix string `toml:"work_dir_prefix"`

	// Sources lists the artifacts to reserve paths for.
	Sources []Source `toml:"sources"`
}

// Source describes a single artifact to stage.
type Source struct {
	// Identifier is a URI or bare filename the destination name is derived
	// from.
	Identifier string `toml:"identifier"`

	// RandomExt, when set, reserves a random token name with this extension
	// instead of a name derived from the identifier. Useful for sources
	// whose names must not leak into the destination directory.
	RandomExt string `toml:"random_ext"`
}

// Validate checks the config for structural problems. Existence of the
// destination directory is checked at staging time, not here.
func (c *Config) Validate() error {
	if c.Destination == "" {
		return ErrNoDestination
	}
	if len(c.Sources) == 0 {
		return ErrNoSources
	}
	for i, src := range c.Sources {
		if src.Identifier == "" && src.RandomExt == "" {
			return fmt.Errorf("%w: source %d", ErrEmptyIdentifier, i)
		}
	}
	return nil
}
