package components

import (
	"github.com/lixenwraith/spacewar/input"
	"github.com/lixenwraith/spacewar/vmath"
)

// ShipComponent is one player-controlled combatant
// Position is the top-left of the ship bounding box
type ShipComponent struct {
	Position vmath.Vec2F
	Velocity vmath.Vec2F // Set each frame from input, zero when idle
	Side     Side        // Fixed at creation
	Keys     input.KeyMap

	// ActiveProjectiles counts live pool slots owned by this ship
	ActiveProjectiles int

	// Health is clamped at zero
	Health int
}

// Bounds returns the full ship bounding box for the given ship size
func (s *ShipComponent) Bounds(width, height float64) vmath.RectF {
	return vmath.RectF{X: s.Position.X, Y: s.Position.Y, Width: width, Height: height}
}

// Damage subtracts hits from health, never dropping below zero
func (s *ShipComponent) Damage(hits int) {
	if hits <= 0 {
		return
	}
	s.Health -= hits
	if s.Health < 0 {
		s.Health = 0
	}
}

// Destroyed reports whether the ship has no health left
func (s *ShipComponent) Destroyed() bool {
	return s.Health == 0
}
