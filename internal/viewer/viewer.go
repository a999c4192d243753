// Package viewer holds the frame-independent application state: the camera,
// the terrain resolution and the discrete key actions that change them.
package viewer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/heightmaps/internal/engine/camera"
	"github.com/Faultbox/heightmaps/internal/engine/input"
	"github.com/Faultbox/heightmaps/internal/engine/terrain"
	"github.com/Faultbox/heightmaps/pkg/math"
)

// Options configures a new State.
type Options struct {
	Resolution   Resolution
	RepeatFrames int
	Camera       camera.Settings
	Bindings     Bindings
	Logger       *zap.Logger
}

// State is the viewer state mutated once per frame by Step.
type State struct {
	Camera     *camera.Controller
	Resolution Resolution

	// MeshDirty is set whenever Resolution changes and cleared by TakeMesh.
	MeshDirty bool

	width, height int

	quit       bool
	screenshot bool

	bindings Bindings
	watch    []input.Key
	trigger  *input.Trigger
	log      *zap.Logger
}

// New creates the viewer state. The mesh starts dirty so the first frame
// builds it.
func New(opts Options) *State {
	if !opts.Resolution.Valid() {
		opts.Resolution = DefaultResolution
	}
	if opts.Bindings == nil {
		opts.Bindings = DefaultBindings()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Camera == (camera.Settings{}) {
		opts.Camera = camera.DefaultSettings()
	}

	return &State{
		Camera:     camera.New(opts.Camera),
		Resolution: opts.Resolution,
		MeshDirty:  true,
		width:      1,
		height:     1,
		bindings:   opts.Bindings,
		watch:      opts.Bindings.keys(),
		trigger:    input.NewTrigger(opts.RepeatFrames),
		log:        opts.Logger,
	}
}

// Step advances one frame: held movement keys, then triggered actions, then
// the camera's own per-frame update.
func (s *State) Step(keys input.KeyState, dt float32) {
	s.Camera.Integrate(movementFromKeys(keys), dt)

	for _, key := range s.trigger.Sample(keys, s.watch) {
		s.Apply(s.bindings[key])
	}

	s.Camera.Update()
}

// Apply performs one action and reports whether it changed anything.
func (s *State) Apply(a Action) bool {
	switch a {
	case ActionToggleCamera:
		mode := s.Camera.Toggle()
		s.log.Info("camera mode changed", zap.Stringer("mode", mode))
		return true

	case ActionIncreaseResolution:
		return s.setResolution(s.Resolution.Doubled())

	case ActionDecreaseResolution:
		return s.setResolution(s.Resolution.Halved())

	case ActionOrbitFaster:
		if !s.Camera.IncreaseOrbitSpeed() {
			return false
		}
		s.log.Info("orbit speed changed", zap.Int("speed", s.Camera.OrbitSpeed()))
		return true

	case ActionOrbitSlower:
		if !s.Camera.DecreaseOrbitSpeed() {
			return false
		}
		s.log.Info("orbit speed changed", zap.Int("speed", s.Camera.OrbitSpeed()))
		return true

	case ActionScreenshot:
		s.screenshot = true
		return true

	case ActionQuit:
		s.quit = true
		return true
	}
	return false
}

func (s *State) setResolution(r Resolution) bool {
	if r == s.Resolution {
		s.log.Debug("resolution at limit", zap.Int("resolution", int(r)))
		return false
	}
	s.Resolution = r
	s.MeshDirty = true
	s.log.Info("resolution changed", zap.Int("resolution", int(r)))
	return true
}

// HandleEvent applies a window or pointer event.
func (s *State) HandleEvent(e input.Event) {
	switch e.Type {
	case input.EventQuit:
		s.quit = true
	case input.EventWindowResize:
		s.SetViewport(e.Width, e.Height)
	case input.EventMouseMove:
		s.Camera.MouseMove(e.X, e.Y)
	case input.EventScroll:
		s.Camera.Scroll(e.DY)
	}
}

// SetViewport records the drawable size used for the projection aspect.
// Non-positive sizes, as reported for a minimized window, are ignored.
func (s *State) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width = width
	s.height = height
}

// Aspect returns width/height of the viewport.
func (s *State) Aspect() float32 {
	return float32(s.width) / float32(s.height)
}

// Matrices returns the view and projection matrices for the current frame.
func (s *State) Matrices() (view, projection math.Mat4) {
	return s.Camera.ViewMatrix(), s.Camera.ProjectionMatrix(s.Aspect())
}

// TakeMesh returns a freshly generated mesh if the resolution changed since
// the last call, otherwise nil.
func (s *State) TakeMesh() *terrain.Mesh {
	if !s.MeshDirty {
		return nil
	}
	s.MeshDirty = false
	return terrain.Generate(int(s.Resolution))
}

// TakeScreenshot reports and clears a pending screenshot request.
func (s *State) TakeScreenshot() bool {
	pending := s.screenshot
	s.screenshot = false
	return pending
}

// ShouldQuit reports whether the viewer was asked to exit.
func (s *State) ShouldQuit() bool {
	return s.quit
}
