package camera

import (
	"testing"

	"github.com/Faultbox/heightmaps/pkg/math"
)

func TestNew_StartsInOrbit(t *testing.T) {
	c := New(DefaultSettings())
	if c.Mode() != ModeOrbit {
		t.Fatalf("Mode() = %v, want orbit", c.Mode())
	}
	s, ok := c.Orbit()
	if !ok {
		t.Fatal("Orbit() not available in orbit mode")
	}
	if s.Position != DefaultOrbitPosition || s.Target != DefaultOrbitTarget || s.Up != math.WorldUp {
		t.Errorf("orbit defaults = %+v", s)
	}
	if _, ok := c.Free(); ok {
		t.Error("Free() available in orbit mode")
	}
}

func TestOrbit_SpeedZeroKeepsPosition(t *testing.T) {
	c := New(DefaultSettings())
	s, _ := c.Orbit()
	if !s.Rotation().IsIdentity() {
		t.Fatalf("rotation at speed 0 = %v, want identity", s.Rotation())
	}

	for i := 0; i < 1000; i++ {
		c.Update()
	}
	if c.Position() != (math.Vec3{X: 5, Y: 5, Z: 5}) {
		t.Errorf("position after updates at speed 0 = %v, want (5,5,5)", c.Position())
	}
}

func TestOrbit_FullRevolution(t *testing.T) {
	c := New(DefaultSettings())
	for i := 0; i < 20; i++ {
		c.IncreaseOrbitSpeed()
	}
	if c.OrbitSpeed() != MaxOrbitSpeed {
		t.Fatalf("OrbitSpeed() = %d, want %d", c.OrbitSpeed(), MaxOrbitSpeed)
	}

	start := c.Position()
	c.Update()
	if c.Position().ApproxEqual(start, 1e-3) {
		t.Fatal("position did not move at speed 10")
	}

	for i := 1; i < 36; i++ {
		c.Update()
	}
	if !c.Position().ApproxEqual(start, 1e-3) {
		t.Errorf("after 36 updates at 10 deg: position = %v, want %v", c.Position(), start)
	}
}

func TestOrbit_RotationIsAboutWorldUp(t *testing.T) {
	c := New(DefaultSettings())
	c.IncreaseOrbitSpeed()
	start := c.Position()

	for i := 0; i < 90; i++ {
		c.Update()
	}
	got := c.Position()

	// 90 one-degree steps about +Y: (x, y, z) -> (z, y, -x).
	want := math.Vec3{X: start.Z, Y: start.Y, Z: -start.X}
	if !got.ApproxEqual(want, 1e-3) {
		t.Errorf("position after 90 deg = %v, want %v", got, want)
	}
	if math.Abs(got.Y-start.Y) > 1e-5 {
		t.Errorf("orbit changed height: %v -> %v", start.Y, got.Y)
	}
}

// The rotation pivots on the world origin, not on Target. With the default
// target on the Y axis the horizontal radius to the target is constant; this
// would not hold if Target moved off the axis.
func TestOrbit_RadiusPreservedOnlyForAxisTarget(t *testing.T) {
	c := New(DefaultSettings())
	for i := 0; i < 7; i++ {
		c.IncreaseOrbitSpeed()
	}
	s, _ := c.Orbit()

	radius := func(p, target math.Vec3) float32 {
		return math.Vec3{X: p.X - target.X, Z: p.Z - target.Z}.Length()
	}
	want := radius(s.Position, s.Target)
	for i := 0; i < 100; i++ {
		c.Update()
		if got := radius(s.Position, s.Target); math.Abs(got-want) > 1e-3 {
			t.Fatalf("frame %d: radius to target = %v, want %v", i, got, want)
		}
	}

	s.Target = math.Vec3{X: 2, Y: 1, Z: 0}
	want = radius(s.Position, s.Target)
	drifted := false
	for i := 0; i < 18; i++ {
		c.Update()
		if math.Abs(radius(s.Position, s.Target)-want) > 1e-2 {
			drifted = true
		}
	}
	if !drifted {
		t.Error("radius to an off-axis target stayed constant; rotation pivot is expected to be the origin")
	}
}

func TestOrbit_SpeedClamp(t *testing.T) {
	c := New(DefaultSettings())

	if c.DecreaseOrbitSpeed() {
		t.Error("DecreaseOrbitSpeed at 0 reported a change")
	}
	for i := 0; i < MaxOrbitSpeed; i++ {
		if !c.IncreaseOrbitSpeed() {
			t.Fatalf("IncreaseOrbitSpeed step %d reported no change", i)
		}
	}
	if c.IncreaseOrbitSpeed() {
		t.Error("IncreaseOrbitSpeed at max reported a change")
	}
	if c.OrbitSpeed() != MaxOrbitSpeed {
		t.Errorf("OrbitSpeed() = %d, want %d", c.OrbitSpeed(), MaxOrbitSpeed)
	}
}

func TestOrbit_RotationRebuiltNotAccumulated(t *testing.T) {
	c := New(DefaultSettings())
	c.IncreaseOrbitSpeed()
	c.IncreaseOrbitSpeed()
	c.IncreaseOrbitSpeed()
	s, _ := c.Orbit()

	want := math.RotateY(math.Radians(3))
	if s.Rotation() != want {
		t.Errorf("rotation at speed 3 = %v, want %v", s.Rotation(), want)
	}

	c.DecreaseOrbitSpeed()
	c.DecreaseOrbitSpeed()
	c.DecreaseOrbitSpeed()
	if !s.Rotation().IsIdentity() {
		t.Errorf("rotation back at speed 0 = %v, want identity", s.Rotation())
	}
}

func TestToggle_ResetsFreeDefaults(t *testing.T) {
	c := New(DefaultSettings())
	c.IncreaseOrbitSpeed()
	c.Update()

	if got := c.Toggle(); got != ModeFree {
		t.Fatalf("Toggle() = %v, want free", got)
	}
	s, ok := c.Free()
	if !ok {
		t.Fatal("Free() not available after toggle")
	}
	if s.Position != DefaultFreePosition || s.Front != DefaultFreeFront || s.Up != math.WorldUp {
		t.Errorf("free defaults = %+v", s)
	}
	if !s.AwaitingBaseline() {
		t.Error("entering free mode should reset the mouse baseline")
	}
	if c.OrbitSpeed() != 0 {
		t.Errorf("OrbitSpeed() in free mode = %d, want 0", c.OrbitSpeed())
	}
}

func TestToggle_RoundTripRestoresOrbitDefaults(t *testing.T) {
	c := New(DefaultSettings())
	for i := 0; i < 5; i++ {
		c.IncreaseOrbitSpeed()
		c.Update()
	}

	c.Toggle()
	c.MouseMove(100, 100)
	c.MouseMove(400, -250)
	c.Integrate(Movement{Forward: true, Left: true, Up: true}, 2.5)
	c.Scroll(30)
	c.Toggle()

	if c.Mode() != ModeOrbit {
		t.Fatalf("Mode() = %v, want orbit", c.Mode())
	}
	s, _ := c.Orbit()
	if s.Position != (math.Vec3{X: 5, Y: 5, Z: 5}) {
		t.Errorf("orbit position = %v, want (5,5,5)", s.Position)
	}
	if s.Target != (math.Vec3{X: 0, Y: 1, Z: 0}) {
		t.Errorf("orbit target = %v, want (0,1,0)", s.Target)
	}
	if s.Speed() != 0 || !s.Rotation().IsIdentity() {
		t.Errorf("orbit speed = %d rotation = %v, want 0 and identity", s.Speed(), s.Rotation())
	}
}

func TestFree_FirstMouseIsBaseline(t *testing.T) {
	c := New(DefaultSettings())
	c.Toggle()
	s, _ := c.Free()

	c.MouseMove(5000, -3000)
	if s.Yaw != DefaultFreeYaw || s.Pitch != DefaultFreePitch {
		t.Errorf("first sample moved the camera: yaw=%v pitch=%v", s.Yaw, s.Pitch)
	}
	if s.AwaitingBaseline() {
		t.Error("baseline still pending after first sample")
	}

	c.MouseMove(5010, -3020)
	if got, want := s.Yaw, float32(DefaultFreeYaw+1); math.Abs(got-want) > 1e-4 {
		t.Errorf("yaw = %v, want %v", got, want)
	}
	if got, want := s.Pitch, float32(2); math.Abs(got-want) > 1e-4 {
		t.Errorf("pitch = %v, want %v", got, want)
	}
}

func TestFree_PitchClamp(t *testing.T) {
	c := New(DefaultSettings())
	c.Toggle()
	s, _ := c.Free()

	c.MouseMove(0, 0)
	for i := 1; i <= 50; i++ {
		c.MouseMove(0, float32(-i*10000))
		if s.Pitch > MaxPitch {
			t.Fatalf("pitch = %v exceeds %v", s.Pitch, MaxPitch)
		}
	}
	if s.Pitch != MaxPitch {
		t.Errorf("pitch = %v, want %v", s.Pitch, MaxPitch)
	}

	for i := 1; i <= 50; i++ {
		c.MouseMove(0, float32(i*10000))
		if s.Pitch < -MaxPitch {
			t.Fatalf("pitch = %v below %v", s.Pitch, -MaxPitch)
		}
	}
	if s.Pitch != -MaxPitch {
		t.Errorf("pitch = %v, want %v", s.Pitch, -MaxPitch)
	}
}

func TestFree_YawUnbounded(t *testing.T) {
	c := New(DefaultSettings())
	c.Toggle()
	s, _ := c.Free()

	c.MouseMove(0, 0)
	c.MouseMove(100000, 0)
	if s.Yaw < 9000 {
		t.Errorf("yaw = %v, want unbounded growth", s.Yaw)
	}
}

func TestFree_FrontIsUnitVector(t *testing.T) {
	c := New(DefaultSettings())
	c.Toggle()
	s, _ := c.Free()

	c.MouseMove(0, 0)
	for _, p := range [][2]float32{{37, -12}, {-400, 80}, {1234, 999}} {
		c.MouseMove(p[0], p[1])
		if l := s.Front.Length(); math.Abs(l-1) > 1e-5 {
			t.Errorf("front %v has length %v", s.Front, l)
		}
		want := frontFromAngles(s.Yaw, s.Pitch)
		if !s.Front.ApproxEqual(want, 1e-6) {
			t.Errorf("front = %v, want %v", s.Front, want)
		}
	}
}

func TestFree_FOVClamp(t *testing.T) {
	c := New(DefaultSettings())
	c.Toggle()
	s, _ := c.Free()

	for i := 0; i < 200; i++ {
		c.Scroll(1)
		if s.FOV < MinFOV {
			t.Fatalf("fov = %v below %v", s.FOV, MinFOV)
		}
	}
	if s.FOV != MinFOV {
		t.Errorf("fov = %v, want %v", s.FOV, MinFOV)
	}

	for i := 0; i < 200; i++ {
		c.Scroll(-1)
		if s.FOV > MaxFOV {
			t.Fatalf("fov = %v above %v", s.FOV, MaxFOV)
		}
	}
	if s.FOV != MaxFOV {
		t.Errorf("fov = %v, want %v", s.FOV, MaxFOV)
	}
}

func TestOrbit_IgnoresFreeInput(t *testing.T) {
	c := New(DefaultSettings())
	before := c.ProjectionMatrix(1.5)

	c.Scroll(20)
	c.MouseMove(10, 10)
	c.MouseMove(500, 500)
	c.Integrate(Movement{Forward: true, Up: true}, 1)

	if c.Position() != DefaultOrbitPosition {
		t.Errorf("position = %v, want %v", c.Position(), DefaultOrbitPosition)
	}
	if c.ProjectionMatrix(1.5) != before {
		t.Error("orbit projection changed after scroll")
	}
}

func TestFree_IgnoresOrbitSpeed(t *testing.T) {
	c := New(DefaultSettings())
	c.Toggle()
	if c.IncreaseOrbitSpeed() || c.DecreaseOrbitSpeed() {
		t.Error("orbit speed changed in free mode")
	}
}

func TestFree_Integrate(t *testing.T) {
	tests := []struct {
		name string
		move Movement
		want math.Vec3
	}{
		{"forward", Movement{Forward: true}, math.Vec3{X: 0, Y: 3, Z: 3}},
		{"back", Movement{Back: true}, math.Vec3{X: 0, Y: 3, Z: 7}},
		{"left", Movement{Left: true}, math.Vec3{X: -2, Y: 3, Z: 5}},
		{"right", Movement{Right: true}, math.Vec3{X: 2, Y: 3, Z: 5}},
		{"up", Movement{Up: true}, math.Vec3{X: 0, Y: 5, Z: 5}},
		{"down", Movement{Down: true}, math.Vec3{X: 0, Y: 1, Z: 5}},
		{"forward and back cancel", Movement{Forward: true, Back: true}, DefaultFreePosition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(DefaultSettings())
			c.Toggle()
			// 4 units/s for half a second.
			c.Integrate(tt.move, 0.5)
			if !c.Position().ApproxEqual(tt.want, 1e-5) {
				t.Errorf("position = %v, want %v", c.Position(), tt.want)
			}
		})
	}
}

func TestFree_IntegrateIsFramerateIndependent(t *testing.T) {
	a := New(DefaultSettings())
	a.Toggle()
	b := New(DefaultSettings())
	b.Toggle()

	a.Integrate(Movement{Forward: true}, 1)
	for i := 0; i < 60; i++ {
		b.Integrate(Movement{Forward: true}, 1.0/60)
	}
	if !a.Position().ApproxEqual(b.Position(), 1e-4) {
		t.Errorf("1x1s = %v, 60x(1/60)s = %v", a.Position(), b.Position())
	}
}

func TestMatrices(t *testing.T) {
	c := New(DefaultSettings())
	aspect := float32(800.0 / 600.0)

	wantView := math.LookAt(DefaultOrbitPosition, DefaultOrbitTarget, math.WorldUp)
	if c.ViewMatrix() != wantView {
		t.Errorf("orbit view = %v, want %v", c.ViewMatrix(), wantView)
	}
	wantProj := math.Perspective(math.Radians(45), aspect, 0.0001, 100)
	if c.ProjectionMatrix(aspect) != wantProj {
		t.Errorf("orbit projection = %v, want %v", c.ProjectionMatrix(aspect), wantProj)
	}

	c.Toggle()
	s, _ := c.Free()
	s.FOV = 30
	wantView = math.LookAt(DefaultFreePosition, DefaultFreePosition.Add(DefaultFreeFront), math.WorldUp)
	if c.ViewMatrix() != wantView {
		t.Errorf("free view = %v, want %v", c.ViewMatrix(), wantView)
	}
	wantProj = math.Perspective(math.Radians(30), aspect, 0.0001, 100)
	if c.ProjectionMatrix(aspect) != wantProj {
		t.Errorf("free projection = %v, want %v", c.ProjectionMatrix(aspect), wantProj)
	}
}

func TestModeString(t *testing.T) {
	if ModeOrbit.String() != "orbit" || ModeFree.String() != "free" || Mode(9).String() != "unknown" {
		t.Error("unexpected Mode.String() output")
	}
}
