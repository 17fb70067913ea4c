package stage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stage.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
destination = "/data/incoming"
work_dir = true
work_dir_prefix = "staging"

[[sources]]
identifier = "https://example.com/pics/photo.jpg"

[[sources]]
random_ext = ".bin"
`)

	cfg, err := NewLoader().LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/incoming", cfg.Destination)
	assert.True(t, cfg.WorkDir)
	assert.Equal(t, "staging", cfg.WorkDirPrefix)
	require.Len(t, cfg.Sources, 2)
	assert.Equal(t, "https://example.com/pics/photo.jpg", cfg.Sources[0].Identifier)
	assert.Equal(t, ".bin", cfg.Sources[1].RandomExt)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := NewLoader().LoadConfig("")
	assert.ErrorIs(t, err, ErrInvalidConfigPath)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := NewLoader().LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedTOML(t *testing.T) {
	path := writeConfig(t, `destination = [unclosed`)

	_, err := NewLoader().LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := writeConfig(t, `destination = "/data"`)

	_, err := NewLoader().LoadConfig(path)
	assert.ErrorIs(t, err, ErrNoSources)
}
