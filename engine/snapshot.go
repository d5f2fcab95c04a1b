package engine

import "github.com/lixenwraith/spacewar/components"

// ShipView is the presentation state of one ship
type ShipView struct {
	Side              string  `msgpack:"side"`
	X                 float64 `msgpack:"x"`
	Y                 float64 `msgpack:"y"`
	Health            int     `msgpack:"health"`
	ActiveProjectiles int     `msgpack:"active"`
}

// ProjectileView is the presentation state of one live projectile
type ProjectileView struct {
	Owner string  `msgpack:"owner"`
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
}

// Snapshot is a read-only copy of round state for presentation sinks
// Sinks never write back into the simulation
type Snapshot struct {
	MatchID     string           `msgpack:"match"`
	Frame       uint64           `msgpack:"frame"`
	Ships       []ShipView       `msgpack:"ships"`
	Projectiles []ProjectileView `msgpack:"projectiles"`
	Winner      string           `msgpack:"winner"`
	Tally       Tally            `msgpack:"tally"`

	// Geometry needed to scale the scene
	ArenaWidth       float64 `msgpack:"arena_w"`
	ArenaHeight      float64 `msgpack:"arena_h"`
	ShipWidth        float64 `msgpack:"ship_w"`
	ShipHeight       float64 `msgpack:"ship_h"`
	ProjectileWidth  float64 `msgpack:"proj_w"`
	ProjectileHeight float64 `msgpack:"proj_h"`
	InitialHealth    int     `msgpack:"max_health"`
}

// Snapshot copies the current round state
func (g *GameContext) Snapshot() Snapshot {
	s := Snapshot{
		MatchID:          g.MatchID.String(),
		Frame:            g.Frame,
		Ships:            make([]ShipView, 0, len(g.Ships)),
		Projectiles:      make([]ProjectileView, 0, g.Pool.Capacity()),
		Winner:           g.Winner.String(),
		Tally:            g.Tally,
		ArenaWidth:       g.Rules.ArenaWidth,
		ArenaHeight:      g.Rules.ArenaHeight,
		ShipWidth:        g.Rules.ShipWidth,
		ShipHeight:       g.Rules.ShipHeight,
		ProjectileWidth:  g.Rules.ProjectileWidth,
		ProjectileHeight: g.Rules.ProjectileHeight,
		InitialHealth:    g.Rules.InitialHealth,
	}
	for i := range g.Ships {
		ship := &g.Ships[i]
		s.Ships = append(s.Ships, ShipView{
			Side:              ship.Side.String(),
			X:                 ship.Position.X,
			Y:                 ship.Position.Y,
			Health:            ship.Health,
			ActiveProjectiles: ship.ActiveProjectiles,
		})
	}
	g.Pool.Each(func(_ int, p *components.ProjectileComponent) {
		s.Projectiles = append(s.Projectiles, ProjectileView{
			Owner: p.Owner.String(),
			X:     p.Position.X,
			Y:     p.Position.Y,
		})
	})
	return s
}
