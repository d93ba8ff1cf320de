// Package config loads the playground configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/geonym"
	"github.com/gogpu/geonym/internal/logging"
)

// Config is the playground configuration.
type Config struct {
	Canvas   Canvas   `yaml:"canvas"`
	Generate Generate `yaml:"generate"`
	Server   Server   `yaml:"server"`
	Log      Log      `yaml:"log"`
}

// Canvas controls the drawing surface.
type Canvas struct {
	Size       int    `yaml:"size"`
	Background string `yaml:"background"`
	Caption    bool   `yaml:"caption"`
}

// Generate controls tree generation.
// A zero Seed means every scene draws a fresh random seed.
type Generate struct {
	Depth int    `yaml:"depth"`
	Seed  uint64 `yaml:"seed"`
}

// Server controls the HTTP driver.
type Server struct {
	Addr            string        `yaml:"addr"`
	Metrics         bool          `yaml:"metrics"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// ImageCache is the per-shard entry limit of the image cache; zero disables it.
	ImageCache int `yaml:"image_cache"`
}

// Log controls the application logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Canvas:   Canvas{Size: 800, Background: "#FFFFFF"},
		Generate: Generate{Depth: 5},
		Server:   Server{Addr: ":8080", Metrics: true, ShutdownTimeout: 5 * time.Second, ImageCache: 32},
		Log:      Log{Level: "info", Format: "text"},
	}
}

// Load reads a YAML configuration file over the defaults.
// An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Canvas.Size <= 0 {
		return fmt.Errorf("canvas.size must be positive, got %d", c.Canvas.Size)
	}
	if _, err := geonym.ParseColor(c.Canvas.Background); err != nil {
		return fmt.Errorf("canvas.background: %w", err)
	}
	if c.Generate.Depth < 0 {
		return fmt.Errorf("generate.depth: %w", geonym.ErrNegativeDepth)
	}
	if c.Generate.Depth > geonym.MaxDepth {
		return fmt.Errorf("generate.depth %d: %w", c.Generate.Depth, geonym.ErrDepthLimit)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server.shutdown_timeout must not be negative")
	}
	if c.Server.ImageCache < 0 {
		return fmt.Errorf("server.image_cache must not be negative, got %d", c.Server.ImageCache)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if err := logging.CheckFormat(c.Log.Format); err != nil {
		return fmt.Errorf("log.format: %w", err)
	}
	return nil
}
