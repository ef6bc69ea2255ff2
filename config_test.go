package vktriangle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "Vulcan Test", cfg.Window.Title)
	assert.Equal(t, []string{KhronosValidationLayer}, cfg.ValidationLayers)
	assert.Equal(t, DiagnosticsEnabled, cfg.Diagnostics)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())

	app, err := cfg.AppInfo()
	require.NoError(t, err)
	assert.Equal(t, "Hello World Triangle", app.Name)
	assert.Equal(t, "No Engine", app.EngineName)
	assert.Equal(t, DefaultAPIVersion, app.APIVersion)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vktriangle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  name: spinning triangle
  api_version: "1.1"
window:
  width: 1024
  height: 768
  title: Triangle
validation_layers:
  - VK_LAYER_KHRONOS_validation
  - VK_LAYER_LUNARG_monitor
log:
  level: debug
  encoding: json
`), 0o644))

	cfg, err := LoadConfig(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "spinning triangle", cfg.App.Name)
	assert.Equal(t, "No Engine", cfg.App.EngineName)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height)
	assert.Equal(t, "Triangle", cfg.Window.Title)
	assert.Equal(t, []string{KhronosValidationLayer, "VK_LAYER_LUNARG_monitor"}, cfg.ValidationLayers)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Encoding)

	app, err := cfg.AppInfo()
	require.NoError(t, err)
	assert.Equal(t, MakeVersion(1, 1, 0), app.APIVersion)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("VKTRIANGLE_WINDOW_TITLE", "from env")
	t.Setenv("VKTRIANGLE_WINDOW_WIDTH", "640")

	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "from env", cfg.Window.Title)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: 0\n"), 0o644))
	_, err = LoadConfig(viper.New(), path)
	assert.ErrorContains(t, err, "invalid window size")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative height", func(c *Config) { c.Window.Height = -1 }, "invalid window size"},
		{"empty title", func(c *Config) { c.Window.Title = "" }, "window title"},
		{"bad api version", func(c *Config) { c.App.APIVersion = "latest" }, "app.api_version"},
		{"no layers", func(c *Config) {
			c.Diagnostics = true
			c.ValidationLayers = nil
		}, "without validation layers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}
