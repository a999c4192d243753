package input

// DefaultRepeatFrames is the number of frames a held key must stay down
// before its action fires again.
const DefaultRepeatFrames = 20

// Trigger converts polled key state into discrete presses. A key fires on
// the frame it goes down and, while held, again every repeatFrames frames.
// Keys are tracked independently.
type Trigger struct {
	repeatFrames int
	held         map[Key]int // frames since the key last fired
}

// NewTrigger creates a trigger. repeatFrames <= 0 disables repeat, so a held
// key fires only once.
func NewTrigger(repeatFrames int) *Trigger {
	return &Trigger{
		repeatFrames: repeatFrames,
		held:         make(map[Key]int),
	}
}

// Sample checks the watched keys once for the current frame and returns the
// keys that fire, in watch order. Call it exactly once per frame.
func (t *Trigger) Sample(state KeyState, watch []Key) []Key {
	var fired []Key
	for _, k := range watch {
		if !state.IsPressed(k) {
			delete(t.held, k)
			continue
		}

		frames, wasHeld := t.held[k]
		if !wasHeld {
			t.held[k] = 0
			fired = append(fired, k)
			continue
		}

		frames++
		if t.repeatFrames > 0 && frames >= t.repeatFrames {
			frames = 0
			fired = append(fired, k)
		}
		t.held[k] = frames
	}
	return fired
}
