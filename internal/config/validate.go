package config

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"

	"github.com/Faultbox/heightmaps/internal/viewer"
)

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}

	if !viewer.Resolution(c.Terrain.Resolution).Valid() {
		err = multierr.Append(err, fmt.Errorf("terrain.resolution: %d is not a power of two in [%d, %d]",
			c.Terrain.Resolution, viewer.MinResolution, viewer.MaxResolution))
	}
	if c.Terrain.Scale <= 0 {
		err = multierr.Append(err, fmt.Errorf("terrain.scale: must be positive, got %g", c.Terrain.Scale))
	}
	if c.Terrain.HeightScale < 0 {
		err = multierr.Append(err, fmt.Errorf("terrain.height_scale: must not be negative, got %g", c.Terrain.HeightScale))
	}
	if c.Terrain.Tiling <= 0 {
		err = multierr.Append(err, fmt.Errorf("terrain.tiling: must be positive, got %g", c.Terrain.Tiling))
	}
	for i, v := range c.Terrain.ClearColor {
		if v < 0 || v > 255 {
			err = multierr.Append(err, fmt.Errorf("terrain.clear_color[%d]: %d out of range [0, 255]", i, v))
		}
	}

	textures := []struct{ name, path string }{
		{"grass", c.Textures.Grass},
		{"rock", c.Textures.Rock},
		{"snow", c.Textures.Snow},
		{"height_map", c.Textures.HeightMap},
	}
	for _, tex := range textures {
		if tex.path == "" {
			err = multierr.Append(err, fmt.Errorf("textures.%s: path is empty", tex.name))
		} else if escapesRoots(tex.path) {
			err = multierr.Append(err, fmt.Errorf("textures.%s: %q leaves the asset paths; use an absolute path instead", tex.name, tex.path))
		}
	}

	if (c.Shaders.Vertex == "") != (c.Shaders.Fragment == "") {
		err = multierr.Append(err, fmt.Errorf("shaders: vertex and fragment must be set together"))
	}
	for _, sh := range []struct{ name, path string }{
		{"vertex", c.Shaders.Vertex},
		{"fragment", c.Shaders.Fragment},
	} {
		if sh.path != "" && escapesRoots(sh.path) {
			err = multierr.Append(err, fmt.Errorf("shaders.%s: %q leaves the asset paths; use an absolute path instead", sh.name, sh.path))
		}
	}

	if c.Camera.MoveSpeed <= 0 {
		err = multierr.Append(err, fmt.Errorf("camera.move_speed: must be positive, got %g", c.Camera.MoveSpeed))
	}
	if c.Camera.MouseSensitivity <= 0 {
		err = multierr.Append(err, fmt.Errorf("camera.mouse_sensitivity: must be positive, got %g", c.Camera.MouseSensitivity))
	}

	if c.Controls.RepeatFrames < 0 {
		err = multierr.Append(err, fmt.Errorf("controls.repeat_frames: must not be negative, got %d", c.Controls.RepeatFrames))
	}

	if len(c.Assets.Paths) == 0 {
		err = multierr.Append(err, fmt.Errorf("assets.paths: at least one search path is required"))
	}

	if c.Screenshots.Prefix == "" {
		err = multierr.Append(err, fmt.Errorf("screenshots.prefix: must not be empty"))
	}

	if !validLevels[c.Logging.Level] {
		err = multierr.Append(err, fmt.Errorf("logging.level: unknown level %q", c.Logging.Level))
	}

	return err
}

// escapesRoots reports whether a relative asset path climbs out of its
// search root. Absolute paths are read as-is and never escape.
func escapesRoots(p string) bool {
	if filepath.IsAbs(p) {
		return false
	}
	clean := path.Clean(filepath.ToSlash(p))
	return clean == ".." || strings.HasPrefix(clean, "../")
}
