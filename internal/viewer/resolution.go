package viewer

// Resolution is the number of grid vertices along each side of the terrain.
// Valid values are powers of two in [MinResolution, MaxResolution].
type Resolution int

const (
	MinResolution     Resolution = 4
	MaxResolution     Resolution = 512
	DefaultResolution Resolution = 256
)

// Valid reports whether r is a power of two within bounds.
func (r Resolution) Valid() bool {
	return r >= MinResolution && r <= MaxResolution && r&(r-1) == 0
}

// Doubled returns 2r, or r unchanged once MaxResolution is reached.
func (r Resolution) Doubled() Resolution {
	if r*2 > MaxResolution {
		return r
	}
	return r * 2
}

// Halved returns r/2, or r unchanged once MinResolution is reached.
func (r Resolution) Halved() Resolution {
	if r/2 < MinResolution {
		return r
	}
	return r / 2
}
