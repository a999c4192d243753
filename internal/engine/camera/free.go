package camera

import (
	"github.com/Faultbox/heightmaps/pkg/math"
)

// Free mode defaults.
var (
	DefaultFreePosition = math.Vec3{X: 0, Y: 3, Z: 5}
	DefaultFreeFront    = math.Vec3{X: 0, Y: 0, Z: -1}
)

const (
	DefaultFreeFOV   = 70.0
	DefaultFreeYaw   = -90.0
	DefaultFreePitch = 0.0

	MinFOV   = 1.0
	MaxFOV   = 90.0
	MaxPitch = 89.0
)

// Movement is the set of held free-fly movement keys for one frame.
type Movement struct {
	Forward, Back bool
	Left, Right   bool
	Up, Down      bool
}

// FreeState is a first-person camera. Angles are in degrees.
type FreeState struct {
	Position math.Vec3
	Front    math.Vec3
	Up       math.Vec3

	Yaw   float32 // unbounded
	Pitch float32 // clamped to [-MaxPitch, MaxPitch]
	FOV   float32 // clamped to [MinFOV, MaxFOV]

	// firstMouse is true until the first cursor sample arrives, which only
	// establishes the baseline for later deltas.
	firstMouse   bool
	lastX, lastY float32
}

// NewFreeState returns free mode at its defaults.
func NewFreeState() *FreeState {
	return &FreeState{
		Position:   DefaultFreePosition,
		Front:      DefaultFreeFront,
		Up:         math.WorldUp,
		Yaw:        DefaultFreeYaw,
		Pitch:      DefaultFreePitch,
		FOV:        DefaultFreeFOV,
		firstMouse: true,
	}
}

// AwaitingBaseline reports whether the next cursor sample will be treated as
// a zero-delta baseline.
func (s *FreeState) AwaitingBaseline() bool {
	return s.firstMouse
}

// Right returns the unit vector to the camera's right.
func (s *FreeState) Right() math.Vec3 {
	return s.Front.Cross(s.Up).Normalize()
}

func (s *FreeState) integrate(m Movement, distance float32) {
	if m.Forward {
		s.Position = s.Position.Add(s.Front.Scale(distance))
	}
	if m.Back {
		s.Position = s.Position.Sub(s.Front.Scale(distance))
	}
	if m.Left {
		s.Position = s.Position.Sub(s.Right().Scale(distance))
	}
	if m.Right {
		s.Position = s.Position.Add(s.Right().Scale(distance))
	}
	if m.Up {
		s.Position = s.Position.Add(s.Up.Scale(distance))
	}
	if m.Down {
		s.Position = s.Position.Sub(s.Up.Scale(distance))
	}
}

func (s *FreeState) look(x, y, sensitivity float32) {
	if s.firstMouse {
		s.lastX = x
		s.lastY = y
		s.firstMouse = false
	}

	// Screen Y grows downward.
	dx := (x - s.lastX) * sensitivity
	dy := (s.lastY - y) * sensitivity
	s.lastX = x
	s.lastY = y

	s.Yaw += dx
	s.Pitch = math.Clamp(s.Pitch+dy, -MaxPitch, MaxPitch)
	s.Front = frontFromAngles(s.Yaw, s.Pitch)
}

func (s *FreeState) zoom(dy float32) {
	s.FOV = math.Clamp(s.FOV-dy, MinFOV, MaxFOV)
}

// frontFromAngles converts yaw/pitch in degrees to a unit look direction.
func frontFromAngles(yaw, pitch float32) math.Vec3 {
	y := math.Radians(yaw)
	p := math.Radians(pitch)
	return math.Vec3{
		X: math.Cos(y) * math.Cos(p),
		Y: math.Sin(p),
		Z: math.Sin(y) * math.Cos(p),
	}.Normalize()
}

func (s *FreeState) mode() Mode {
	return ModeFree
}

func (s *FreeState) position() math.Vec3 {
	return s.Position
}

func (s *FreeState) view() math.Mat4 {
	return math.LookAt(s.Position, s.Position.Add(s.Front), s.Up)
}

func (s *FreeState) projection(aspect float32) math.Mat4 {
	return math.Perspective(math.Radians(s.FOV), aspect, NearPlane, FarPlane)
}
