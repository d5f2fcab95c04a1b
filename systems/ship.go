package systems

import (
	"fmt"

	"github.com/lixenwraith/spacewar/components"
	"github.com/lixenwraith/spacewar/engine"
	"github.com/lixenwraith/spacewar/events"
	"github.com/lixenwraith/spacewar/input"
	"github.com/lixenwraith/spacewar/vmath"
)

// movementIntent reads the ship's direction keys into a unit-or-zero vector per axis
// Opposing keys cancel
func movementIntent(keys input.KeyMap, src input.Source) vmath.Vec2F {
	var intent vmath.Vec2F
	if src.Down(keys.Up) {
		intent.Y--
	}
	if src.Down(keys.Down) {
		intent.Y++
	}
	if src.Down(keys.Left) {
		intent.X--
	}
	if src.Down(keys.Right) {
		intent.X++
	}
	return intent
}

// ApplyMovement sets velocity from input and integrates position over dt seconds
// Diagonal intent is normalized so it is no faster than axis movement
// Position is then clamped into the ship's half of the arena
func ApplyMovement(ctx *engine.GameContext, side components.Side, src input.Source, dt float64) {
	ship := ctx.Ship(side)
	rules := &ctx.Rules

	intent := vmath.V2FNormalize(movementIntent(ship.Keys, src))
	ship.Velocity = vmath.V2FScale(intent, rules.ShipSpeed)
	ship.Position = vmath.V2FAdd(ship.Position, vmath.V2FScale(ship.Velocity, dt))

	minX, maxX, minY, maxY := rules.MovementBounds(side)
	ship.Position.X = vmath.ClampF(ship.Position.X, minX, maxX)
	ship.Position.Y = vmath.ClampF(ship.Position.Y, minY, maxY)
}

// TryFire emits a projectile when fire was freshly pressed and the ship is under its fire cap
// Rate limiting is purely capacity based: a slot frees the instant a projectile retires
// Returns whether a shot was fired
func TryFire(ctx *engine.GameContext, side components.Side, src input.Source) bool {
	ship := ctx.Ship(side)
	if !src.Pressed(ship.Keys.Fire) || ship.ActiveProjectiles >= ctx.Rules.FireCap {
		return false
	}

	// Pool.Emit charges the owner's count
	if _, err := ctx.Pool.Emit(side); err != nil {
		// Capacity accounting guarantees a free slot
		panic(fmt.Errorf("fire %s: %w", side, err))
	}

	ctx.Emit(events.GameEvent{Type: events.EventShotFired, Side: side})
	return true
}
