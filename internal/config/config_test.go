package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/pflag"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Viewport.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Viewport.Width)
	}
	if cfg.Viewport.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Viewport.Height)
	}
	if cfg.Viewport.MaxDepth != 1 {
		t.Errorf("expected max depth 1, got %f", cfg.Viewport.MaxDepth)
	}

	if cfg.Camera.FOV != 60 {
		t.Errorf("expected fov 60, got %f", cfg.Camera.FOV)
	}
	if cfg.Camera.Up != [3]float32{0, 1, 0} {
		t.Errorf("expected up +Y, got %v", cfg.Camera.Up)
	}

	if cfg.Culling.Workers < 1 {
		t.Errorf("expected at least one worker, got %d", cfg.Culling.Workers)
	}
	if cfg.Culling.Bounds != BoundsBox {
		t.Errorf("expected bounds %q, got %q", BoundsBox, cfg.Culling.Bounds)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.File != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.File)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
camera:
  position: [1, 2, 3]
  fov: 45
  far: 250

viewport:
  width: 1920
  height: 1080

culling:
  workers: 3
  bounds: sphere
  padding: 0.5

logging:
  level: "debug"
  file: "geom.log"
  quiet: true
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Camera.Position != [3]float32{1, 2, 3} {
		t.Errorf("expected position [1 2 3], got %v", cfg.Camera.Position)
	}
	if cfg.Camera.FOV != 45 {
		t.Errorf("expected fov 45, got %f", cfg.Camera.FOV)
	}
	if cfg.Camera.Far != 250 {
		t.Errorf("expected far 250, got %f", cfg.Camera.Far)
	}
	// Unset keys keep their defaults
	if cfg.Camera.Near != 0.1 {
		t.Errorf("expected near to stay 0.1, got %f", cfg.Camera.Near)
	}

	if cfg.Viewport.Width != 1920 || cfg.Viewport.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Viewport.Width, cfg.Viewport.Height)
	}

	if cfg.Culling.Workers != 3 {
		t.Errorf("expected 3 workers, got %d", cfg.Culling.Workers)
	}
	if cfg.Culling.Bounds != BoundsSphere {
		t.Errorf("expected sphere bounds, got %s", cfg.Culling.Bounds)
	}
	if cfg.Culling.Padding != 0.5 {
		t.Errorf("expected padding 0.5, got %f", cfg.Culling.Padding)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.File != "geom.log" {
		t.Errorf("expected log file 'geom.log', got %s", cfg.Logging.File)
	}
	if !cfg.Logging.Quiet {
		t.Error("expected quiet logging")
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
viewport:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	// Keep the user's real config directory out of the search
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(LocalConfigFile, []byte("viewport:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Errorf("expected to find %s in current directory", LocalConfigFile)
	}
}

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return fs
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verify func(t *testing.T, cfg *Config)
	}{
		{
			name: "debug flag",
			args: []string{"--debug"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name: "workers flag",
			args: []string{"--workers", "7"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Culling.Workers != 7 {
					t.Errorf("expected 7 workers, got %d", cfg.Culling.Workers)
				}
			},
		},
		{
			name: "width and height flags",
			args: []string{"--width", "2560", "--height", "1440"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Viewport.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Viewport.Width)
				}
				if cfg.Viewport.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Viewport.Height)
				}
			},
		},
		{
			name: "fov flag",
			args: []string{"--fov", "90"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Camera.FOV != 90 {
					t.Errorf("expected fov 90, got %f", cfg.Camera.FOV)
				}
			},
		},
		{
			name: "log file flag",
			args: []string{"--log-file", "out.log"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.File != "out.log" {
					t.Errorf("expected log file out.log, got %s", cfg.Logging.File)
				}
			},
		},
		{
			name: "unset flags leave defaults",
			args: nil,
			verify: func(t *testing.T, cfg *Config) {
				def := Default()
				if cfg.Viewport != def.Viewport || cfg.Camera != def.Camera {
					t.Errorf("expected defaults, got %+v", cfg)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			applyFlags(cfg, newFlagSet(t, tt.args...))
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
viewport:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	fs := newFlagSet(t, "--config", configPath, "--width", "1920")

	cfg, err := Load(fs)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Viewport.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Viewport.Width)
	}
	// Height should be from file (900) since no flag override
	if cfg.Viewport.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Viewport.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("culling:\n  bounds: capsule\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(newFlagSet(t, "--config", configPath))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Viewport.Width = 0 }},
		{"inverted depth", func(c *Config) { c.Viewport.MinDepth, c.Viewport.MaxDepth = 1, 0 }},
		{"zero near", func(c *Config) { c.Camera.Near = 0 }},
		{"far before near", func(c *Config) { c.Camera.Far = 0.05 }},
		{"fov too wide", func(c *Config) { c.Camera.FOV = 180 }},
		{"no workers", func(c *Config) { c.Culling.Workers = 0 }},
		{"bad bounds", func(c *Config) { c.Culling.Bounds = "capsule" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestSaveToAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Culling.Bounds = BoundsSphere
	cfg.Camera.Position = [3]float32{4, 5, 6}

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Culling.Bounds != BoundsSphere {
		t.Errorf("expected sphere bounds, got %s", loaded.Culling.Bounds)
	}
	if loaded.Camera.Position != cfg.Camera.Position {
		t.Errorf("expected position %v, got %v", cfg.Camera.Position, loaded.Camera.Position)
	}
}

func TestSaveToConfigDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("config dir comes from APPDATA")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	if err := Default().Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := LoadFile(DefaultPath()); err != nil {
		t.Errorf("LoadFile(%s): %v", DefaultPath(), err)
	}
}
