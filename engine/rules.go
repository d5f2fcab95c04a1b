package engine

import (
	"github.com/lixenwraith/spacewar/components"
	"github.com/lixenwraith/spacewar/constants"
	"github.com/lixenwraith/spacewar/vmath"
)

// Rules holds the geometry and balance parameters of a duel
// Immutable for the lifetime of a GameContext
type Rules struct {
	ArenaWidth  float64
	ArenaHeight float64

	ShipWidth    float64
	ShipHeight   float64
	ShipSpeed    float64 // Units per second
	HitboxInsetX float64
	HitboxInsetY float64

	InitialHealth int
	FireCap       int // Max live projectiles per ship

	ProjectileWidth  float64
	ProjectileHeight float64
	ProjectileSpeed  float64 // Units per second
}

// DefaultRules returns the stock duel parameters
func DefaultRules() Rules {
	return Rules{
		ArenaWidth:       constants.ArenaWidth,
		ArenaHeight:      constants.ArenaHeight,
		ShipWidth:        constants.ShipWidth,
		ShipHeight:       constants.ShipHeight,
		ShipSpeed:        constants.ShipSpeed,
		HitboxInsetX:     constants.HitboxInsetX,
		HitboxInsetY:     constants.HitboxInsetY,
		InitialHealth:    constants.ShipInitialHealth,
		FireCap:          constants.FireCap,
		ProjectileWidth:  constants.ProjectileWidth,
		ProjectileHeight: constants.ProjectileHeight,
		ProjectileSpeed:  constants.ProjectileSpeed,
	}
}

// PoolCapacity sizes the projectile pool so that every ship below its fire cap has a free slot
func (r Rules) PoolCapacity() int {
	return r.FireCap * constants.ShipCount
}

// Hitbox returns the centered sub-rectangle of the ship that projectiles can strike
func (r Rules) Hitbox(ship *components.ShipComponent) vmath.RectF {
	return vmath.RectInset(ship.Bounds(r.ShipWidth, r.ShipHeight), r.HitboxInsetX, r.HitboxInsetY)
}

// MovementBounds returns the allowed top-left range for a ship on the given side
// Each ship is confined to its own half of the arena
func (r Rules) MovementBounds(side components.Side) (minX, maxX, minY, maxY float64) {
	half := r.ArenaWidth / 2
	if side == components.SideLeft {
		minX, maxX = 0, half-r.ShipWidth
	} else {
		minX, maxX = half, r.ArenaWidth-r.ShipWidth
	}
	return minX, maxX, 0, r.ArenaHeight - r.ShipHeight
}

// SpawnPosition returns the round-start position: centered in its half, vertically centered
func (r Rules) SpawnPosition(side components.Side) vmath.Vec2F {
	centerX := r.ArenaWidth * 0.25
	if side == components.SideRight {
		centerX = r.ArenaWidth * 0.75
	}
	return vmath.Vec2F{
		X: centerX - r.ShipWidth/2,
		Y: r.ArenaHeight/2 - r.ShipHeight/2,
	}
}

// Muzzle returns where a new projectile appears: against the ship's leading edge, vertically centered
func (r Rules) Muzzle(ship *components.ShipComponent) vmath.Vec2F {
	x := ship.Position.X - r.ProjectileWidth
	if ship.Side == components.SideLeft {
		x = ship.Position.X + r.ShipWidth
	}
	return vmath.Vec2F{
		X: x,
		Y: ship.Position.Y + r.ShipHeight/2 - r.ProjectileHeight/2,
	}
}

// OutOfArena reports whether a projectile travelling for side has passed the far boundary
func (r Rules) OutOfArena(side components.Side, x float64) bool {
	if side == components.SideLeft {
		return x > r.ArenaWidth
	}
	return x < -r.ProjectileWidth
}
