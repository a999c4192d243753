// Package input defines the key and event vocabulary shared by the window
// backend and the viewer, and the trigger that turns held keys into
// discrete actions.
package input

// Key identifies a keyboard key independent of the window backend.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
	KeyLeftShift
	KeyC
	KeyEqual
	KeyMinus
	KeyKeypadPlus
	KeyKeypadMinus
	KeyUp
	KeyDown
	KeyEscape
	KeyF12
	keyCount
)

var keyNames = [...]string{
	KeyUnknown:     "unknown",
	KeyW:           "W",
	KeyA:           "A",
	KeyS:           "S",
	KeyD:           "D",
	KeySpace:       "Space",
	KeyLeftShift:   "LeftShift",
	KeyC:           "C",
	KeyEqual:       "=",
	KeyMinus:       "-",
	KeyKeypadPlus:  "Keypad+",
	KeyKeypadMinus: "Keypad-",
	KeyUp:          "Up",
	KeyDown:        "Down",
	KeyEscape:      "Escape",
	KeyF12:         "F12",
}

// String returns a readable key name.
func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return keyNames[KeyUnknown]
	}
	return keyNames[k]
}

// AllKeys returns every known key.
func AllKeys() []Key {
	keys := make([]Key, 0, keyCount-1)
	for k := KeyUnknown + 1; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// KeyState reports whether a key is held down right now.
type KeyState interface {
	IsPressed(k Key) bool
}

// KeySet is a KeyState backed by a set. Useful for tests and replay.
type KeySet map[Key]bool

// IsPressed implements KeyState.
func (s KeySet) IsPressed(k Key) bool {
	return s[k]
}

// EventType enumerates the asynchronous events delivered by the backend.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventMouseMove
	EventScroll
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Width  int     // EventWindowResize
	Height int     // EventWindowResize
	X, Y   float32 // EventMouseMove: absolute cursor position
	DX, DY float32 // EventScroll
}
