package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/spacewar/components"
	"github.com/lixenwraith/spacewar/constants"
)

// ErrPoolExhausted signals that no inactive slot exists
// Capacity accounting guarantees a slot for every ship under its fire cap, so this is a bookkeeping bug
var ErrPoolExhausted = errors.New("projectile pool exhausted")

// ProjectilePool is fixed-capacity projectile storage with per-owner accounting
// Slots are scanned linearly; the pool is a handful of elements
type ProjectilePool struct {
	slots []components.ProjectileComponent
	ships *[constants.ShipCount]components.ShipComponent
	rules *Rules
}

// NewProjectilePool allocates all slots up front; nothing is allocated during play
func NewProjectilePool(rules *Rules, ships *[constants.ShipCount]components.ShipComponent) *ProjectilePool {
	return &ProjectilePool{
		slots: make([]components.ProjectileComponent, rules.PoolCapacity()),
		ships: ships,
		rules: rules,
	}
}

// Capacity returns the number of slots
func (p *ProjectilePool) Capacity() int {
	return len(p.slots)
}

// Slot returns a copy of the slot at index i
func (p *ProjectilePool) Slot(i int) components.ProjectileComponent {
	return p.slots[i]
}

// Emit activates the first inactive slot at the owner's muzzle and charges the owner's budget
// Returns the slot index, or ErrPoolExhausted when every slot is live
func (p *ProjectilePool) Emit(owner components.Side) (int, error) {
	idx := -1
	for i := range p.slots {
		if !p.slots[i].Active {
			idx = i
			break
		}
	}
	if idx < 0 {
		return -1, fmt.Errorf("%w: owner %s holds %d", ErrPoolExhausted, owner, p.ships[owner].ActiveProjectiles)
	}

	ship := &p.ships[owner]
	muzzle := p.rules.Muzzle(ship)
	p.slots[idx] = components.ProjectileComponent{
		Active:       true,
		Position:     muzzle,
		PrevPosition: muzzle,
		Owner:        owner,
	}
	ship.ActiveProjectiles++
	return idx, nil
}

// Retire deactivates slot i and refunds its owner
// Returns false without touching any count when the slot is already inactive
func (p *ProjectilePool) Retire(i int) bool {
	slot := &p.slots[i]
	if !slot.Active {
		return false
	}
	slot.Active = false
	p.ships[slot.Owner].ActiveProjectiles--
	return true
}

// AdvanceAll moves every live projectile horizontally by speed × dt in its owner's direction
// Projectiles that cross the far boundary are retired; that is a miss, not a hit
func (p *ProjectilePool) AdvanceAll(dt float64) {
	step := p.rules.ProjectileSpeed * dt
	for i := range p.slots {
		slot := &p.slots[i]
		if !slot.Active {
			continue
		}
		slot.PrevPosition = slot.Position
		slot.Position.X += step * slot.Owner.Direction()

		if p.rules.OutOfArena(slot.Owner, slot.Position.X) {
			p.Retire(i)
		}
	}
}

// ActiveCount returns the number of live slots owned by side
func (p *ProjectilePool) ActiveCount(side components.Side) int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Active && p.slots[i].Owner == side {
			n++
		}
	}
	return n
}

// Each calls fn for every live slot in scan order
func (p *ProjectilePool) Each(fn func(i int, proj *components.ProjectileComponent)) {
	for i := range p.slots {
		if p.slots[i].Active {
			fn(i, &p.slots[i])
		}
	}
}

// Clear deactivates every slot and zeroes all owner counts
func (p *ProjectilePool) Clear() {
	for i := range p.slots {
		p.slots[i] = components.ProjectileComponent{}
	}
	for i := range p.ships {
		p.ships[i].ActiveProjectiles = 0
	}
}
