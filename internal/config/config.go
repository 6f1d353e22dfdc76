// Package config handles geomtool configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrInvalidConfig is returned by Validate for settings that cannot work.
var ErrInvalidConfig = errors.New("invalid config")

// Bounds kinds used by the culling section.
const (
	BoundsBox    = "box"
	BoundsSphere = "sphere"
)

// Config holds all geomtool settings.
type Config struct {
	Camera   CameraConfig   `yaml:"camera"`
	Viewport ViewportConfig `yaml:"viewport"`
	Culling  CullingConfig  `yaml:"culling"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// CameraConfig is the default camera used when a scene file has none.
type CameraConfig struct {
	Position [3]float32 `yaml:"position"`
	Target   [3]float32 `yaml:"target"`
	Up       [3]float32 `yaml:"up"`
	FOV      float32    `yaml:"fov"` // Vertical field of view in degrees
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
}

// ViewportConfig holds the screen dimensions used for picking and aspect ratio.
type ViewportConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	MinDepth float32 `yaml:"min_depth"`
	MaxDepth float32 `yaml:"max_depth"`
}

// CullingConfig holds frustum culling settings.
type CullingConfig struct {
	Workers int     `yaml:"workers"`
	Bounds  string  `yaml:"bounds"`  // "box" or "sphere"
	Padding float32 `yaml:"padding"` // Added to every bound before testing
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
	Quiet      bool   `yaml:"quiet"` // Disable console output
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Camera: CameraConfig{
			Position: [3]float32{0, 5, 15},
			Target:   [3]float32{0, 0, 0},
			Up:       [3]float32{0, 1, 0},
			FOV:      60,
			Near:     0.1,
			Far:      1000,
		},
		Viewport: ViewportConfig{
			Width:    1280,
			Height:   720,
			MinDepth: 0,
			MaxDepth: 1,
		},
		Culling: CullingConfig{
			Workers: runtime.NumCPU(),
			Bounds:  BoundsBox,
			Padding: 0,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// Validate reports settings that would make the geometry degenerate.
func (c *Config) Validate() error {
	switch {
	case c.Viewport.Width <= 0 || c.Viewport.Height <= 0:
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalidConfig, c.Viewport.Width, c.Viewport.Height)
	case c.Viewport.MaxDepth <= c.Viewport.MinDepth:
		return fmt.Errorf("%w: depth range [%g, %g]", ErrInvalidConfig, c.Viewport.MinDepth, c.Viewport.MaxDepth)
	case c.Camera.Near <= 0:
		return fmt.Errorf("%w: camera near %g must be positive", ErrInvalidConfig, c.Camera.Near)
	case c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: camera far %g must exceed near %g", ErrInvalidConfig, c.Camera.Far, c.Camera.Near)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: camera fov %g out of (0, 180)", ErrInvalidConfig, c.Camera.FOV)
	case c.Culling.Workers < 1:
		return fmt.Errorf("%w: culling workers %d", ErrInvalidConfig, c.Culling.Workers)
	case c.Culling.Bounds != BoundsBox && c.Culling.Bounds != BoundsSphere:
		return fmt.Errorf("%w: unknown bounds kind %q", ErrInvalidConfig, c.Culling.Bounds)
	}
	return nil
}
