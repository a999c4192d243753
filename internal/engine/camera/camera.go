// Package camera implements the viewer camera: an orbit mode that circles the
// terrain and a free-fly mode driven by keyboard and mouse.
package camera

import (
	"github.com/Faultbox/heightmaps/pkg/math"
)

// Mode identifies the active camera mode.
type Mode int

const (
	ModeOrbit Mode = iota
	ModeFree
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeOrbit:
		return "orbit"
	case ModeFree:
		return "free"
	default:
		return "unknown"
	}
}

// Projection planes shared by both modes.
const (
	NearPlane = 0.0001
	FarPlane  = 100.0
)

// Settings holds the tunable free-fly constants.
type Settings struct {
	MoveSpeed        float32 // world units per second
	MouseSensitivity float32 // degrees per pixel
}

// DefaultSettings returns the stock free-fly tuning.
func DefaultSettings() Settings {
	return Settings{
		MoveSpeed:        4.0,
		MouseSensitivity: 0.1,
	}
}

// state is implemented by *OrbitState and *FreeState. Exactly one is held by
// a Controller at a time.
type state interface {
	mode() Mode
	position() math.Vec3
	view() math.Mat4
	projection(aspect float32) math.Mat4
}

// Controller owns the camera state machine. It starts in orbit mode.
type Controller struct {
	settings Settings
	current  state
}

// New creates a controller in orbit mode.
func New(settings Settings) *Controller {
	return &Controller{
		settings: settings,
		current:  NewOrbitState(),
	}
}

// Mode returns the active mode.
func (c *Controller) Mode() Mode {
	return c.current.mode()
}

// Orbit returns the orbit state when orbit mode is active.
func (c *Controller) Orbit() (*OrbitState, bool) {
	s, ok := c.current.(*OrbitState)
	return s, ok
}

// Free returns the free-fly state when free mode is active.
func (c *Controller) Free() (*FreeState, bool) {
	s, ok := c.current.(*FreeState)
	return s, ok
}

// Toggle switches to the other mode. The state of the mode being entered is
// rebuilt from its fixed defaults; nothing carries over from the mode left.
func (c *Controller) Toggle() Mode {
	switch c.current.(type) {
	case *OrbitState:
		c.current = NewFreeState()
	default:
		c.current = NewOrbitState()
	}
	return c.current.mode()
}

// Position returns the camera position in world space.
func (c *Controller) Position() math.Vec3 {
	return c.current.position()
}

// Update advances per-frame camera state. In orbit mode the accumulated
// rotation is applied to the current position once.
func (c *Controller) Update() {
	if s, ok := c.Orbit(); ok {
		s.step()
	}
}

// IncreaseOrbitSpeed raises the orbit speed by one step. It reports whether
// the speed changed; it never changes outside orbit mode or above MaxOrbitSpeed.
func (c *Controller) IncreaseOrbitSpeed() bool {
	s, ok := c.Orbit()
	if !ok {
		return false
	}
	return s.SetSpeed(s.speed + 1)
}

// DecreaseOrbitSpeed lowers the orbit speed by one step, see IncreaseOrbitSpeed.
func (c *Controller) DecreaseOrbitSpeed() bool {
	s, ok := c.Orbit()
	if !ok {
		return false
	}
	return s.SetSpeed(s.speed - 1)
}

// OrbitSpeed returns the orbit speed, or 0 in free mode.
func (c *Controller) OrbitSpeed() int {
	if s, ok := c.Orbit(); ok {
		return s.speed
	}
	return 0
}

// Integrate applies held movement keys for a frame of dt seconds.
// It is a no-op in orbit mode.
func (c *Controller) Integrate(m Movement, dt float32) {
	if s, ok := c.Free(); ok {
		s.integrate(m, c.settings.MoveSpeed*dt)
	}
}

// MouseMove feeds an absolute cursor position. It is a no-op in orbit mode.
func (c *Controller) MouseMove(x, y float32) {
	if s, ok := c.Free(); ok {
		s.look(x, y, c.settings.MouseSensitivity)
	}
}

// Scroll adjusts the free-fly field of view. It is a no-op in orbit mode.
func (c *Controller) Scroll(dy float32) {
	if s, ok := c.Free(); ok {
		s.zoom(dy)
	}
}

// ViewMatrix returns the view matrix for the active mode.
func (c *Controller) ViewMatrix() math.Mat4 {
	return c.current.view()
}

// ProjectionMatrix returns the projection matrix for the active mode.
func (c *Controller) ProjectionMatrix(aspect float32) math.Mat4 {
	return c.current.projection(aspect)
}
