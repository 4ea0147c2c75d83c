package ecs

// Clock is the scene time in milliseconds. Now is absolute since the world
// was created; Delta is the length of the current frame.
type Clock struct {
	Now   float64
	Delta float64
	Frame uint64
}

// Advance moves the clock forward by deltaMs. Negative deltas are treated
// as zero.
func (c *Clock) Advance(deltaMs float64) {
	if deltaMs < 0 {
		deltaMs = 0
	}
	c.Delta = deltaMs
	c.Now += deltaMs
	c.Frame++
}
