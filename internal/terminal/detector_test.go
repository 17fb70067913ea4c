package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearCIEnv(t *testing.T) {
	t.Helper()
	for _, envVar := range ciEnvVars {
		t.Setenv(envVar, "")
	}
}

func TestIsCIEnvironment(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
		want   bool
	}{
		{"no CI variables", "", "", false},
		{"CI true", "CI", "true", true},
		{"CI 1", "CI", "1", true},
		{"CI false", "CI", "false", false},
		{"CI 0", "CI", "0", false},
		{"CI no", "CI", "no", false},
		{"GitHub Actions", "GITHUB_ACTIONS", "true", true},
		{"Jenkins", "JENKINS_URL", "https://jenkins.example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearCIEnv(t)
			if tt.envVar != "" {
				t.Setenv(tt.envVar, tt.value)
			}
			d := NewDetector(Options{})
			assert.Equal(t, tt.want, d.IsCIEnvironment())
		})
	}
}

func TestIsInteractive_ForcedOptions(t *testing.T) {
	clearCIEnv(t)
	t.Setenv("CI", "true")

	forced := NewDetector(Options{ForceInteractive: true})
	assert.True(t, forced.IsInteractive(), "ForceInteractive should override CI detection")

	suppressed := NewDetector(Options{ForceInteractive: true, ForceNonInteractive: false})
	assert.True(t, suppressed.IsInteractive())

	nonInteractive := NewDetector(Options{ForceNonInteractive: true})
	assert.False(t, nonInteractive.IsInteractive())
}

func TestIsInteractive_CIWins(t *testing.T) {
	clearCIEnv(t)
	t.Setenv("CI", "true")

	d := NewDetector(Options{})
	assert.False(t, d.IsInteractive(), "CI environments are never interactive")
}
