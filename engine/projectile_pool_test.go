package engine

import (
	"errors"
	"testing"

	"github.com/lixenwraith/spacewar/components"
	"github.com/lixenwraith/spacewar/input"
)

func newTestContext() *GameContext {
	return NewGameContext(DefaultRules(), input.DefaultBindings())
}

// assertAccounting checks that each ship's count matches the live slots it owns
func assertAccounting(t *testing.T, g *GameContext) {
	t.Helper()
	for i := range g.Ships {
		side := components.Side(i)
		ship := &g.Ships[i]
		if ship.ActiveProjectiles < 0 || ship.ActiveProjectiles > g.Rules.FireCap {
			t.Errorf("%s: count %d outside [0, %d]", side, ship.ActiveProjectiles, g.Rules.FireCap)
		}
		if live := g.Pool.ActiveCount(side); live != ship.ActiveProjectiles {
			t.Errorf("%s: count %d but %d live slots", side, ship.ActiveProjectiles, live)
		}
	}
}

func TestPoolCapacityMatchesFireCap(t *testing.T) {
	g := newTestContext()
	if g.Pool.Capacity() != g.Rules.FireCap*2 {
		t.Errorf("Expected capacity %d, got %d", g.Rules.FireCap*2, g.Pool.Capacity())
	}
}

func TestEmitPlacesProjectileAtMuzzle(t *testing.T) {
	g := newTestContext()
	left := g.Ship(components.SideLeft)
	right := g.Ship(components.SideRight)

	li, err := g.Pool.Emit(components.SideLeft)
	if err != nil {
		t.Fatalf("Emit left: %v", err)
	}
	ri, err := g.Pool.Emit(components.SideRight)
	if err != nil {
		t.Fatalf("Emit right: %v", err)
	}

	lp := g.Pool.Slot(li)
	if lp.Position.X != left.Position.X+g.Rules.ShipWidth {
		t.Errorf("Left muzzle x = %f, want %f", lp.Position.X, left.Position.X+g.Rules.ShipWidth)
	}
	wantY := left.Position.Y + g.Rules.ShipHeight/2 - g.Rules.ProjectileHeight/2
	if lp.Position.Y != wantY {
		t.Errorf("Left muzzle y = %f, want %f", lp.Position.Y, wantY)
	}
	if lp.PrevPosition != lp.Position {
		t.Error("PrevPosition should equal Position on emit")
	}

	rp := g.Pool.Slot(ri)
	if rp.Position.X != right.Position.X-g.Rules.ProjectileWidth {
		t.Errorf("Right muzzle x = %f, want %f", rp.Position.X, right.Position.X-g.Rules.ProjectileWidth)
	}
	if left.ActiveProjectiles != 1 || right.ActiveProjectiles != 1 {
		t.Errorf("Expected counts 1/1, got %d/%d", left.ActiveProjectiles, right.ActiveProjectiles)
	}
	assertAccounting(t, g)
}

func TestEmitUsesFirstFreeSlot(t *testing.T) {
	g := newTestContext()
	g.Pool.Emit(components.SideLeft)
	g.Pool.Emit(components.SideLeft)
	g.Pool.Retire(0)

	idx, err := g.Pool.Emit(components.SideRight)
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if idx != 0 {
		t.Errorf("Expected reuse of slot 0, got %d", idx)
	}
}

func TestEmitExhaustedReturnsSentinel(t *testing.T) {
	g := newTestContext()
	for i := 0; i < g.Pool.Capacity(); i++ {
		side := components.Side(i % 2)
		if _, err := g.Pool.Emit(side); err != nil {
			t.Fatalf("Emit %d: %v", i, err)
		}
	}
	if _, err := g.Pool.Emit(components.SideLeft); !errors.Is(err, ErrPoolExhausted) {
		t.Errorf("Expected ErrPoolExhausted, got %v", err)
	}
}

func TestRetireTwiceDoesNotDoubleDecrement(t *testing.T) {
	g := newTestContext()
	idx, _ := g.Pool.Emit(components.SideLeft)

	if !g.Pool.Retire(idx) {
		t.Fatal("First retire should succeed")
	}
	if g.Pool.Retire(idx) {
		t.Error("Second retire should be rejected")
	}
	if got := g.Ship(components.SideLeft).ActiveProjectiles; got != 0 {
		t.Errorf("Expected count 0 after double retire, got %d", got)
	}
	assertAccounting(t, g)
}

func TestAdvanceAllMovesByOwnerDirection(t *testing.T) {
	g := newTestContext()
	li, _ := g.Pool.Emit(components.SideLeft)
	ri, _ := g.Pool.Emit(components.SideRight)
	before := [2]float64{g.Pool.Slot(li).Position.X, g.Pool.Slot(ri).Position.X}

	dt := 0.1
	g.Pool.AdvanceAll(dt)

	step := g.Rules.ProjectileSpeed * dt
	lp, rp := g.Pool.Slot(li), g.Pool.Slot(ri)
	if lp.Position.X != before[0]+step {
		t.Errorf("Left projectile x = %f, want %f", lp.Position.X, before[0]+step)
	}
	if rp.Position.X != before[1]-step {
		t.Errorf("Right projectile x = %f, want %f", rp.Position.X, before[1]-step)
	}
	if lp.PrevPosition.X != before[0] || rp.PrevPosition.X != before[1] {
		t.Error("PrevPosition should hold the pre-advance position")
	}
	if lp.Position.Y != lp.PrevPosition.Y {
		t.Error("Projectiles must travel strictly horizontally")
	}
}

func TestAdvanceAllRetiresAtFarBoundary(t *testing.T) {
	g := newTestContext()
	g.Pool.Emit(components.SideLeft)
	g.Pool.Emit(components.SideRight)

	// Long enough to cross the whole arena from either spawn
	for i := 0; i < 120; i++ {
		g.Pool.AdvanceAll(1.0 / 60)
	}

	if g.Pool.ActiveCount(components.SideLeft) != 0 || g.Pool.ActiveCount(components.SideRight) != 0 {
		t.Error("Projectiles should be retired after leaving the arena")
	}
	assertAccounting(t, g)
}

func TestAdvanceAllKeepsProjectileInsideArena(t *testing.T) {
	g := newTestContext()
	idx, _ := g.Pool.Emit(components.SideRight)
	g.Pool.AdvanceAll(1.0 / 60)
	if !g.Pool.Slot(idx).Active {
		t.Error("Projectile should stay active while inside the arena")
	}
}

// TestCapacityInvariantRandomSequence fires and retires in an interleaved pattern
func TestCapacityInvariantRandomSequence(t *testing.T) {
	g := newTestContext()
	for step := 0; step < 200; step++ {
		side := components.Side(step % 2)
		switch {
		case step%7 == 0:
			g.Pool.Retire(step % g.Pool.Capacity())
		case g.Ship(side).ActiveProjectiles < g.Rules.FireCap:
			if _, err := g.Pool.Emit(side); err != nil {
				t.Fatalf("step %d: %v", step, err)
			}
		default:
			g.Pool.AdvanceAll(0.05)
		}
		assertAccounting(t, g)
	}
}
