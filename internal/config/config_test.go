package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "geonym.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
canvas:
  size: 512
  caption: true
generate:
  seed: 99
server:
  shutdown_timeout: 2s
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.Canvas.Size)
	assert.True(t, cfg.Canvas.Caption)
	assert.Equal(t, "#FFFFFF", cfg.Canvas.Background, "unset keys keep defaults")
	assert.Equal(t, 5, cfg.Generate.Depth)
	assert.Equal(t, uint64(99), cfg.Generate.Seed)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 32, cfg.Server.ImageCache)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero size", "canvas: {size: 0}"},
		{"bad background", "canvas: {background: chartreuse}"},
		{"negative depth", "generate: {depth: -1}"},
		{"too deep", "generate: {depth: 99}"},
		{"bad level", "log: {level: loud}"},
		{"bad format", "log: {format: xml}"},
		{"negative timeout", "server: {shutdown_timeout: -1s}"},
		{"negative image cache", "server: {image_cache: -1}"},
		{"not yaml", "canvas: [1, 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
