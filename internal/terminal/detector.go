// Package terminal provides helpers for deciding whether the current process
// is attached to an interactive terminal or running under CI, which drives
// the choice of log output format.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ciEnvVars contains common CI environment variables
var ciEnvVars = []string{
	"CI",                     // Generic CI indicator
	"CONTINUOUS_INTEGRATION", // Generic CI indicator
	"GITHUB_ACTIONS",         // GitHub Actions
	"GITLAB_CI",              // GitLab CI
	"JENKINS_URL",            // Jenkins
	"BUILDKITE",              // Buildkite
	"CIRCLECI",               // Circle CI
	"TRAVIS",                 // Travis CI
	"TF_BUILD",               // Azure DevOps
}

// Options control interactive detection.
type Options struct {
	ForceInteractive    bool // Treat the session as interactive regardless of environment
	ForceNonInteractive bool // Treat the session as non-interactive regardless of environment
}

// Detector reports terminal capabilities for the current process.
type Detector struct {
	options Options
}

// NewDetector creates a detector with the given options.
func NewDetector(options Options) *Detector {
	return &Detector{options: options}
}

// IsInteractive returns true when log output should be formatted for a human
// reader. Explicit options win over environment detection.
func (d *Detector) IsInteractive() bool {
	if d.options.ForceInteractive {
		return true
	}
	if d.options.ForceNonInteractive {
		return false
	}
	if d.IsCIEnvironment() {
		return false
	}
	return d.IsTerminal()
}

// IsTerminal checks if stderr is connected to a terminal. Log output goes to
// stderr, so stdout redirection alone does not disable interactive mode.
func (d *Detector) IsTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// IsCIEnvironment checks if the current environment is a CI/CD system.
func (d *Detector) IsCIEnvironment() bool {
	for _, envVar := range ciEnvVars {
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		// The generic CI variable must be truthy; for the others presence
		// is enough.
		if envVar == "CI" {
			return isCITruthy(value)
		}
		return true
	}
	return false
}

// isCITruthy rejects CI=false and similar explicit opt-outs.
func isCITruthy(value string) bool {
	lower := strings.ToLower(strings.TrimSpace(value))
	return lower != "false" && lower != "0" && lower != "no"
}
