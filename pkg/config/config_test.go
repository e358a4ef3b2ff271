// Test Type: Unit Test
// Description: Tests for layered configuration loading and validation

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracksort/tracksort/pkg/config"
	"github.com/tracksort/tracksort/pkg/errors"
)

// isolateEnv keeps a developer's real config out of the test run
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func TestLoad_Defaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{".wav"}, cfg.Settings.Extensions)
	assert.Equal(t, "SORTED_MUSIC", cfg.Settings.OutputDir)
	assert.Equal(t, "99_Uncategorized/Other", cfg.Settings.FallbackFolder)
	assert.Equal(t, "_FAVORITES", cfg.Settings.FavoritesFolder)
	assert.Equal(t, "+++", cfg.Settings.FavoritesMarker)
	assert.Equal(t, 50, cfg.Settings.BatchSize)
	assert.Equal(t, 10000, cfg.Settings.MaxVersionProbes)
	assert.Equal(t, 1, cfg.Settings.Workers)

	// The embedded rule table ships with the genre defaults
	require.NotEmpty(t, cfg.Rules)
	names := make(map[string]config.RuleDef, len(cfg.Rules))
	for _, r := range cfg.Rules {
		names[r.Name] = r
	}
	house, ok := names["electronic_house"]
	require.True(t, ok, "default rules should include electronic_house")
	assert.Equal(t, "01_Electronic_Dance/House", house.Folder)
	assert.Equal(t, 3, house.Priority)
	assert.Contains(t, house.Keywords, "house")
}

func TestLoad_UserFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tracksort.toml")
	content := `
[settings]
batch_size = 10
workers = 4

[[rules]]
name = "only"
folder = "X/Y"
keywords = ["x"]
priority = 1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Settings.BatchSize)
	assert.Equal(t, 4, cfg.Settings.Workers)
	// Untouched settings keep their defaults
	assert.Equal(t, "SORTED_MUSIC", cfg.Settings.OutputDir)
	// A user rules table replaces the default table wholesale
	require.Len(t, cfg.Rules, 1)
	assert.Equal(t, "only", cfg.Rules[0].Name)
}

func TestLoad_YAMLConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tracksort.yaml")
	content := `
settings:
  batch_size: 25
rules:
  - name: techno
    folder: Electronic/Techno
    keywords: [techno]
    priority: 1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Settings.BatchSize)
	require.Len(t, cfg.Rules, 1)
	assert.Equal(t, "Electronic/Techno", cfg.Rules[0].Folder)
}

func TestLoad_EnvOverride(t *testing.T) {
	isolateEnv(t)
	t.Setenv("TRACKSORT_SETTINGS_BATCH_SIZE", "7")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Settings.BatchSize)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_InvalidSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tracksort.toml")
	require.NoError(t, os.WriteFile(path, []byte("[settings]\nbatch_size = 0\n"), 0644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestExportTOML_RoundTrips(t *testing.T) {
	isolateEnv(t)

	cfg, err := config.Load("")
	require.NoError(t, err)

	out, err := config.ExportTOML(cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "batch_size = 50")
	assert.Contains(t, out, "electronic_house")
}
