package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gkantsidis/yangparse/config"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	assert.False(t, cfg.Strict)
	assert.Empty(t, cfg.SearchPath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "logfmt", cfg.Log.Format)
}

func TestLoadParsesYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "yangvalidate.yaml")
	contents := `
search_path:
  - /usr/share/yang
  - ./modules
strict: true
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Strict)
	assert.Equal(t, []string{"/usr/share/yang", "./modules"}, cfg.SearchPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strict: [this is not a bool"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}
