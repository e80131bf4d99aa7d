package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromPath_MissingFileGivesDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPath_OverridesDefaults(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `theme: Dark
output_dir: /tmp/blueprints
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, cfg.Theme)
	assert.Equal(t, "/tmp/blueprints", cfg.OutputDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// untouched keys keep their defaults
	assert.Equal(t, "https://aistudio.google.com/", cfg.StudioURL)
	assert.NotEmpty(t, cfg.TargetModel)
}

func TestLoadFromPath_Errors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("theme: [unclosed"), 0o644))
	_, err := LoadFromPath(bad)
	assert.ErrorContains(t, err, "parsing config")

	weird := filepath.Join(dir, "weird.yaml")
	require.NoError(t, os.WriteFile(weird, []byte("theme: sepia\n"), 0o644))
	_, err = LoadFromPath(weird)
	assert.ErrorContains(t, err, "unknown theme")
}

func TestSaveTo_RoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Theme = ThemeLight
	cfg.TargetModel = "some-model"
	require.NoError(t, cfg.SaveTo(path))

	got, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestSaveTheme_OnlyTouchesTheme(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	fresh := filepath.Join(dir, "fresh", "config.yaml")
	require.NoError(t, SaveTheme(fresh, ThemeLight))
	data, err := os.ReadFile(fresh)
	require.NoError(t, err)
	assert.Equal(t, "theme: light\n", string(data))

	existing := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(existing, []byte("theme: light\noutput_dir: /tmp/out\n"), 0o644))
	require.NoError(t, SaveTheme(existing, ThemeDark))
	data, err = os.ReadFile(existing)
	require.NoError(t, err)
	assert.Contains(t, string(data), "theme: dark")
	assert.Contains(t, string(data), "output_dir: /tmp/out")
	assert.NotContains(t, string(data), "studio_url")
	assert.NotContains(t, string(data), "logging")

	cfg, err := LoadFromPath(existing)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Logging, cfg.Logging)
}

func TestConfigPath_Env(t *testing.T) {
	t.Setenv(EnvPath, "/custom/gamebrief.yaml")
	assert.Equal(t, "/custom/gamebrief.yaml", ConfigPath())
}

func TestResolveTheme(t *testing.T) {
	t.Parallel()
	tests := []struct {
		pref string
		dark bool
		want string
	}{
		{ThemeDark, false, ThemeDark},
		{ThemeLight, true, ThemeLight},
		{"", true, ThemeDark},
		{"", false, ThemeLight},
		{"garbage", true, ThemeDark},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveTheme(tt.pref, tt.dark), "pref=%q dark=%v", tt.pref, tt.dark)
	}
}
