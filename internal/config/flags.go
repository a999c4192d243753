package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagResolution = flag.Int("resolution", 0, "Initial terrain resolution (power of two, 4-512)")
	flagNoVSync    = flag.Bool("novsync", false, "Disable vertical sync")
	flagSaveConfig = flag.String("save-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveConfigPath returns the --save-config destination, if any.
func SaveConfigPath() string {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Window.ShowStats = true
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagResolution > 0 {
		cfg.Terrain.Resolution = *flagResolution
	}
	if *flagNoVSync {
		cfg.Window.VSync = false
	}
}
