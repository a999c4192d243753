package viewer

import (
	"fmt"
	"time"

	"github.com/Faultbox/heightmaps/internal/engine/camera"
)

// FrameStats measures frames per second over one-second windows.
type FrameStats struct {
	frames int
	start  time.Time
}

// Tick counts a frame finished at now. Once at least a second has passed
// since the window opened it returns the window's rate and starts a new one.
func (s *FrameStats) Tick(now time.Time) (fps float64, ok bool) {
	if s.start.IsZero() {
		s.start = now
	}
	s.frames++

	elapsed := now.Sub(s.start)
	if elapsed < time.Second {
		return 0, false
	}

	fps = float64(s.frames) / elapsed.Seconds()
	s.frames = 0
	s.start = now
	return fps, true
}

// Title formats the window title with live stats.
func (s *State) Title(base string, fps float64) string {
	title := fmt.Sprintf("%s | %.0f FPS | %s camera | resolution %d", base, fps, s.Camera.Mode(), s.Resolution)
	if s.Camera.Mode() == camera.ModeOrbit {
		title += fmt.Sprintf(" | orbit speed %d", s.Camera.OrbitSpeed())
	}
	return title
}
