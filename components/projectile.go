package components

import "github.com/lixenwraith/spacewar/vmath"

// ProjectileComponent is one slot of the fixed-capacity projectile pool
// Owner is meaningful only while Active
type ProjectileComponent struct {
	Active       bool
	Position     vmath.Vec2F
	PrevPosition vmath.Vec2F // Position one frame earlier, for swept collision
	Owner        Side
}
