package game

import (
	"fmt"
	"math"
)

// Location is a position inside a named world.
type Location struct {
	World string  `json:"world"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Yaw   float32 `json:"yaw,omitempty"`
	Pitch float32 `json:"pitch,omitempty"`
}

// Distance returns the straight-line distance to o, ignoring the world.
// Callers compare worlds first; distances across worlds are meaningless.
func (l Location) Distance(o Location) float64 {
	dx, dy, dz := l.X-o.X, l.Y-o.Y, l.Z-o.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// SameBlock reports whether both locations fall in the same block of the same world.
func (l Location) SameBlock(o Location) bool {
	return l.World == o.World &&
		math.Floor(l.X) == math.Floor(o.X) &&
		math.Floor(l.Y) == math.Floor(o.Y) &&
		math.Floor(l.Z) == math.Floor(o.Z)
}

func (l Location) String() string {
	return fmt.Sprintf("%s(%.1f, %.1f, %.1f)", l.World, l.X, l.Y, l.Z)
}
