// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Terrain     TerrainConfig     `yaml:"terrain"`
	Textures    TexturesConfig    `yaml:"textures"`
	Shaders     ShadersConfig     `yaml:"shaders"`
	Camera      CameraConfig      `yaml:"camera"`
	Controls    ControlsConfig    `yaml:"controls"`
	Assets      AssetsConfig      `yaml:"assets"`
	Screenshots ScreenshotsConfig `yaml:"screenshots"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title         string `yaml:"title"`
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Fullscreen    bool   `yaml:"fullscreen"`
	VSync         bool   `yaml:"vsync"`
	CaptureCursor bool   `yaml:"capture_cursor"` // relative mouse mode
	ShowStats     bool   `yaml:"show_stats"`     // FPS and state in the title bar
}

// TerrainConfig holds surface and drawing settings.
type TerrainConfig struct {
	Resolution  int     `yaml:"resolution"`   // grid vertices per side at startup
	Scale       float32 `yaml:"scale"`        // model matrix scale
	HeightScale float32 `yaml:"height_scale"` // displacement of a white heightmap texel
	Tiling      float32 `yaml:"tiling"`       // color texture repeats across the grid
	ClearColor  [3]int  `yaml:"clear_color"`  // RGB, 0-255
}

// TexturesConfig holds texture asset paths.
type TexturesConfig struct {
	Grass     string `yaml:"grass"`
	Rock      string `yaml:"rock"`
	Snow      string `yaml:"snow"`
	HeightMap string `yaml:"height_map"`
}

// ShadersConfig overrides the built-in shaders when both paths are set.
type ShadersConfig struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// Custom reports whether shader files replace the built-in sources.
func (s ShadersConfig) Custom() bool {
	return s.Vertex != "" && s.Fragment != ""
}

// CameraConfig holds free-fly camera tuning.
type CameraConfig struct {
	MoveSpeed        float32 `yaml:"move_speed"`        // units per second
	MouseSensitivity float32 `yaml:"mouse_sensitivity"` // degrees per pixel
}

// ControlsConfig holds key handling settings.
type ControlsConfig struct {
	RepeatFrames int `yaml:"repeat_frames"` // frames before a held key repeats; 0 disables repeat
}

// AssetsConfig holds asset search roots.
type AssetsConfig struct {
	Paths []string `yaml:"paths"` // later entries take priority
}

// ScreenshotsConfig holds screenshot output settings.
type ScreenshotsConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:         "Height Maps",
			Width:         800,
			Height:        600,
			Fullscreen:    false,
			VSync:         true,
			CaptureCursor: true,
			ShowStats:     true,
		},
		Terrain: TerrainConfig{
			Resolution:  256,
			Scale:       4,
			HeightScale: 0.25,
			Tiling:      8,
			ClearColor:  [3]int{48, 31, 67},
		},
		Textures: TexturesConfig{
			Grass:     "data/textures/grass.png",
			Rock:      "data/textures/rock.png",
			Snow:      "data/textures/snowrocks.png",
			HeightMap: "data/height_maps/hmap_mountain.png",
		},
		Camera: CameraConfig{
			MoveSpeed:        4.0,
			MouseSensitivity: 0.1,
		},
		Controls: ControlsConfig{
			RepeatFrames: 20,
		},
		Assets: AssetsConfig{
			Paths: []string{"."},
		},
		Screenshots: ScreenshotsConfig{
			Dir:    "screenshots",
			Prefix: "terrain",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// ClearColorRGB returns the clear color scaled to [0,1].
func (t TerrainConfig) ClearColorRGB() [3]float32 {
	return [3]float32{
		float32(t.ClearColor[0]) / 255,
		float32(t.ClearColor[1]) / 255,
		float32(t.ClearColor[2]) / 255,
	}
}
