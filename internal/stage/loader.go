package stage

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Loader handles loading and validating staging configurations.
type Loader struct{}

// NewLoader creates a new config loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadConfig loads and validates a TOML configuration from a file path.
func (l *Loader) LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, ErrInvalidConfigPath
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
