package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/heightmaps/internal/engine/input"
)

// PollEvents drains the SDL queue and returns the translated events. The
// returned slice is reused by the next call.
//
// Mouse motion is reported as an absolute position of a virtual cursor that
// accumulates relative motion, so it keeps moving while the cursor is
// captured.
func (w *Window) PollEvents() []input.Event {
	w.events = w.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.events = append(w.events, input.Event{Type: input.EventQuit})

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				width, height := w.DrawableSize()
				w.events = append(w.events, input.Event{
					Type:   input.EventWindowResize,
					Width:  width,
					Height: height,
				})
			}

		case *sdl.MouseMotionEvent:
			w.cursorX += float32(e.XRel)
			w.cursorY += float32(e.YRel)
			w.events = append(w.events, input.Event{
				Type: input.EventMouseMove,
				X:    w.cursorX,
				Y:    w.cursorY,
			})

		case *sdl.MouseWheelEvent:
			dx, dy := float32(e.X), float32(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				dx, dy = -dx, -dy
			}
			w.events = append(w.events, input.Event{
				Type: input.EventScroll,
				DX:   dx,
				DY:   dy,
			})
		}
	}

	return w.events
}
