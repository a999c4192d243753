package camera

import (
	"github.com/Faultbox/heightmaps/pkg/math"
)

// Orbit mode defaults.
var (
	DefaultOrbitPosition = math.Vec3{X: 5, Y: 5, Z: 5}
	DefaultOrbitTarget   = math.Vec3{X: 0, Y: 1, Z: 0}
)

const (
	// OrbitFOV is the fixed vertical field of view in orbit mode, in degrees.
	OrbitFOV = 45.0

	// MaxOrbitSpeed is the highest orbit speed; one step is one degree per frame.
	MaxOrbitSpeed = 10
)

// OrbitState circles the camera around the world up axis through the origin.
//
// Every frame the current position is multiplied by the rotation matrix, so
// the motion compounds. The radius is preserved only because the rotation
// pivot is the origin; moving Target away from the Y axis would not make the
// camera circle it.
type OrbitState struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3

	speed    int
	rotation math.Mat4
}

// NewOrbitState returns orbit mode at its defaults: speed 0, identity rotation.
func NewOrbitState() *OrbitState {
	return &OrbitState{
		Position: DefaultOrbitPosition,
		Target:   DefaultOrbitTarget,
		Up:       math.WorldUp,
		rotation: math.Identity(),
	}
}

// Speed returns the orbit speed in degrees per frame.
func (s *OrbitState) Speed() int {
	return s.speed
}

// Rotation returns the per-frame rotation matrix.
func (s *OrbitState) Rotation() math.Mat4 {
	return s.rotation
}

// SetSpeed clamps speed to [0, MaxOrbitSpeed] and rebuilds the rotation
// matrix from scratch. It reports whether the speed changed.
func (s *OrbitState) SetSpeed(speed int) bool {
	if speed < 0 {
		speed = 0
	}
	if speed > MaxOrbitSpeed {
		speed = MaxOrbitSpeed
	}
	if speed == s.speed {
		return false
	}
	s.speed = speed
	s.rotation = math.RotateY(math.Radians(float32(speed)))
	return true
}

func (s *OrbitState) step() {
	s.Position = s.rotation.TransformVec3(s.Position)
}

func (s *OrbitState) mode() Mode {
	return ModeOrbit
}

func (s *OrbitState) position() math.Vec3 {
	return s.Position
}

func (s *OrbitState) view() math.Mat4 {
	return math.LookAt(s.Position, s.Target, s.Up)
}

func (s *OrbitState) projection(aspect float32) math.Mat4 {
	return math.Perspective(math.Radians(OrbitFOV), aspect, NearPlane, FarPlane)
}
