package systems

import (
	"github.com/lixenwraith/spacewar/components"
	"github.com/lixenwraith/spacewar/engine"
	"github.com/lixenwraith/spacewar/vmath"
)

// ResolveHits retires every live attacker projectile whose swept path crosses the defender's hitbox
// The swept span covers prev→current x so fast projectiles cannot tunnel through a narrow hitbox
// Only the attacker's projectiles are tested, so a ship never hits itself
// Returns the number of hits
func ResolveHits(ctx *engine.GameContext, attacker, defender components.Side) int {
	rules := &ctx.Rules
	hitbox := rules.Hitbox(ctx.Ship(defender))

	hits := 0
	ctx.Pool.Each(func(i int, p *components.ProjectileComponent) {
		if p.Owner != attacker {
			return
		}
		span := vmath.SweptSpanX(p.PrevPosition.X, p.Position.X, p.Position.Y, rules.ProjectileHeight)
		if vmath.RectsOverlap(span, hitbox) {
			ctx.Pool.Retire(i)
			hits++
		}
	})
	return hits
}
