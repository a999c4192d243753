package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/heightmaps/internal/engine/input"
)

var scancodes = map[input.Key]sdl.Scancode{
	input.KeyW:           sdl.SCANCODE_W,
	input.KeyA:           sdl.SCANCODE_A,
	input.KeyS:           sdl.SCANCODE_S,
	input.KeyD:           sdl.SCANCODE_D,
	input.KeySpace:       sdl.SCANCODE_SPACE,
	input.KeyLeftShift:   sdl.SCANCODE_LSHIFT,
	input.KeyC:           sdl.SCANCODE_C,
	input.KeyEqual:       sdl.SCANCODE_EQUALS,
	input.KeyMinus:       sdl.SCANCODE_MINUS,
	input.KeyKeypadPlus:  sdl.SCANCODE_KP_PLUS,
	input.KeyKeypadMinus: sdl.SCANCODE_KP_MINUS,
	input.KeyUp:          sdl.SCANCODE_UP,
	input.KeyDown:        sdl.SCANCODE_DOWN,
	input.KeyEscape:      sdl.SCANCODE_ESCAPE,
	input.KeyF12:         sdl.SCANCODE_F12,
}

// Keyboard polls the SDL keyboard state. Its view is refreshed by
// PollEvents; read it after pumping events each frame.
type Keyboard struct{}

// IsPressed reports whether key is currently held.
func (Keyboard) IsPressed(key input.Key) bool {
	sc, ok := scancodes[key]
	if !ok {
		return false
	}
	state := sdl.GetKeyboardState()
	return int(sc) < len(state) && state[sc] != 0
}

var _ input.KeyState = Keyboard{}

func init() {
	for _, k := range input.AllKeys() {
		if _, ok := scancodes[k]; !ok {
			panic("window: no scancode for key " + k.String())
		}
	}
}
