package viewer

import (
	"sort"

	"github.com/Faultbox/heightmaps/internal/engine/camera"
	"github.com/Faultbox/heightmaps/internal/engine/input"
)

// Action is a discrete command triggered by a key press.
type Action int

const (
	ActionNone Action = iota
	ActionToggleCamera
	ActionIncreaseResolution
	ActionDecreaseResolution
	ActionOrbitFaster
	ActionOrbitSlower
	ActionScreenshot
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:               "none",
	ActionToggleCamera:       "toggle_camera",
	ActionIncreaseResolution: "increase_resolution",
	ActionDecreaseResolution: "decrease_resolution",
	ActionOrbitFaster:        "orbit_faster",
	ActionOrbitSlower:        "orbit_slower",
	ActionScreenshot:         "screenshot",
	ActionQuit:               "quit",
}

// String returns the action name.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Bindings maps discrete keys to actions.
type Bindings map[input.Key]Action

// DefaultBindings returns the stock key layout.
func DefaultBindings() Bindings {
	return Bindings{
		input.KeyC:           ActionToggleCamera,
		input.KeyEqual:       ActionIncreaseResolution,
		input.KeyKeypadPlus:  ActionIncreaseResolution,
		input.KeyMinus:       ActionDecreaseResolution,
		input.KeyKeypadMinus: ActionDecreaseResolution,
		input.KeyUp:          ActionOrbitFaster,
		input.KeyDown:        ActionOrbitSlower,
		input.KeyF12:         ActionScreenshot,
		input.KeyEscape:      ActionQuit,
	}
}

// keys returns the bound keys in a stable order.
func (b Bindings) keys() []input.Key {
	keys := make([]input.Key, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// movementFromKeys reads the continuous free-fly keys.
func movementFromKeys(keys input.KeyState) camera.Movement {
	return camera.Movement{
		Forward: keys.IsPressed(input.KeyW),
		Back:    keys.IsPressed(input.KeyS),
		Left:    keys.IsPressed(input.KeyA),
		Right:   keys.IsPressed(input.KeyD),
		Up:      keys.IsPressed(input.KeySpace),
		Down:    keys.IsPressed(input.KeyLeftShift),
	}
}
