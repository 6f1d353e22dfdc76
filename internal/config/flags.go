package config

import "github.com/spf13/pflag"

// Flag names shared with the command line.
const (
	FlagConfig  = "config"
	FlagDebug   = "debug"
	FlagWorkers = "workers"
	FlagWidth   = "width"
	FlagHeight  = "height"
	FlagFOV     = "fov"
	FlagLogFile = "log-file"
)

// RegisterFlags adds the config override flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "Path to config file")
	fs.Bool(FlagDebug, false, "Enable debug logging")
	fs.Int(FlagWorkers, 0, "Number of culling workers")
	fs.Int(FlagWidth, 0, "Viewport width")
	fs.Int(FlagHeight, 0, "Viewport height")
	fs.Float32(FlagFOV, 0, "Vertical field of view in degrees")
	fs.String(FlagLogFile, "", "Write logs to this file")
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath(fs *pflag.FlagSet) string {
	if fs == nil {
		return ""
	}
	path, _ := fs.GetString(FlagConfig)
	return path
}

// applyFlags applies flags the user actually set to the config.
func applyFlags(cfg *Config, fs *pflag.FlagSet) {
	if fs == nil {
		return
	}
	if fs.Changed(FlagDebug) {
		if debug, _ := fs.GetBool(FlagDebug); debug {
			cfg.Logging.Level = "debug"
		}
	}
	if fs.Changed(FlagWorkers) {
		cfg.Culling.Workers, _ = fs.GetInt(FlagWorkers)
	}
	if fs.Changed(FlagWidth) {
		cfg.Viewport.Width, _ = fs.GetInt(FlagWidth)
	}
	if fs.Changed(FlagHeight) {
		cfg.Viewport.Height, _ = fs.GetInt(FlagHeight)
	}
	if fs.Changed(FlagFOV) {
		cfg.Camera.FOV, _ = fs.GetFloat32(FlagFOV)
	}
	if fs.Changed(FlagLogFile) {
		cfg.Logging.File, _ = fs.GetString(FlagLogFile)
	}
}
