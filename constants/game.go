package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the simulation and rendering frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single frame's delta so a stalled terminal never teleports ships
	MaxFrameDelta = 100 * time.Millisecond
)

// Arena Constants (simulation units, origin top-left)
const (
	ArenaWidth  = 240.0
	ArenaHeight = 135.0
)

// Ship Constants
const (
	ShipWidth  = 10.0
	ShipHeight = 10.0

	// ShipSpeed is the ship speed in arena units per second
	ShipSpeed = 90.0

	// ShipInitialHealth is the health each ship starts a round with
	ShipInitialHealth = 3

	// FireCap is the maximum number of live projectiles one ship may own
	FireCap = 3

	// HitboxInsetX/Y shrink the ship box on each side to form the hitbox
	HitboxInsetX = 2.0
	HitboxInsetY = 2.0
)

// Projectile Constants
const (
	ProjectileWidth  = 3.0
	ProjectileHeight = 1.0

	// ProjectileSpeed is the projectile speed in arena units per second
	ProjectileSpeed = 240.0
)

// ShipCount is the number of combatants in a duel
const ShipCount = 2

// PoolCapacity is FireCap × ShipCount so the per-ship cap guarantees a free slot
const PoolCapacity = FireCap * ShipCount
