package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"skim/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFileMissing(t *testing.T) {
	cfg, err := config.LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	// Defaults
	assert.False(t, cfg.General.ShowHidden)
	assert.True(t, cfg.General.ConfirmDelete)
	assert.Equal(t, "detail", cfg.View.Mode)
	assert.Equal(t, "name", cfg.View.Sort)
	assert.Equal(t, "asc", cfg.View.Order)
	assert.Equal(t, "default", cfg.Theme.Name)
}

func TestLoadConfigFileMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
general:
  show_hidden: true
view:
  sort: size
ignore:
  - "*.tmp"
  - "*.swp"
theme:
  name: dark
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := config.LoadConfigFile(path)
	require.NoError(t, err)

	assert.True(t, cfg.General.ShowHidden)
	assert.Equal(t, "size", cfg.View.Sort)
	// Unset fields keep defaults, booleans included
	assert.True(t, cfg.General.ConfirmDelete)
	assert.False(t, cfg.General.Debug)
	assert.Equal(t, "detail", cfg.View.Mode)
	assert.Equal(t, "asc", cfg.View.Order)
	assert.Equal(t, []string{"*.tmp", "*.swp"}, cfg.Ignore)
	assert.Equal(t, "dark", cfg.Theme.Name)
	assert.Len(t, cfg.IgnoreGlobs(), 2)
}

func TestLoadConfigFileExplicitFalse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
general:
  confirm_delete: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.False(t, cfg.General.ConfirmDelete, "an explicit false must override the default")
}

func TestLoadConfigFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("view:\n  sort: biggest\n"), 0644))

	_, err := config.LoadConfigFile(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := config.New()
	require.NoError(t, cfg.Validate())

	cfg.View.Mode = "hologram"
	assert.Error(t, cfg.Validate())

	cfg = config.New()
	cfg.Ignore = []string{"[unclosed"}
	assert.Error(t, cfg.Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := config.New()
	cfg.General.ShowHidden = true
	cfg.View.Mode = "grid"
	require.NoError(t, config.SaveConfig(cfg, path))

	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.True(t, loaded.General.ShowHidden)
	assert.Equal(t, "grid", loaded.View.Mode)
}

func TestApplyTheme(t *testing.T) {
	cfg := config.New()
	cfg.ApplyTheme("light")
	assert.Equal(t, "light", cfg.Theme.Name)
	assert.NotEmpty(t, cfg.Theme.Primary)

	// Unknown names fall back to the default palette
	cfg.ApplyTheme("neon")
	assert.Equal(t, config.GetTheme("default")["primary"], cfg.Theme.Primary)
}
