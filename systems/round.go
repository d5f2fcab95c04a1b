package systems

import (
	"log"

	"github.com/lixenwraith/spacewar/components"
	"github.com/lixenwraith/spacewar/engine"
	"github.com/lixenwraith/spacewar/events"
	"github.com/lixenwraith/spacewar/input"
)

// EvaluateWinner derives the round outcome from both health totals
// Simultaneous destruction is a draw regardless of which hit was resolved first
func EvaluateWinner(left, right *components.ShipComponent) components.Winner {
	switch {
	case left.Destroyed() && right.Destroyed():
		return components.WinnerDraw
	case left.Destroyed():
		return components.WinnerFor(right.Side)
	case right.Destroyed():
		return components.WinnerFor(left.Side)
	default:
		return components.WinnerNone
	}
}

// StepRound runs one Playing frame and returns the outcome
// Order: projectiles advance, ships move and fire, hits resolve in both directions,
// then the winner is evaluated once both ships have taken damage
func StepRound(ctx *engine.GameContext, src input.Source, dt float64) components.Winner {
	if ctx.Winner.Decided() {
		return ctx.Winner
	}
	ctx.Frame++

	ctx.Pool.AdvanceAll(dt)

	sides := [...]components.Side{components.SideLeft, components.SideRight}
	for _, side := range sides {
		ApplyMovement(ctx, side, src, dt)
		TryFire(ctx, side, src)
	}

	// Both directions land before evaluation so mutual kills tie
	for _, attacker := range sides {
		applyHits(ctx, attacker, attacker.Opponent())
	}

	left, right := ctx.Ship(components.SideLeft), ctx.Ship(components.SideRight)
	ctx.Winner = EvaluateWinner(left, right)
	if ctx.Winner.Decided() {
		ctx.Tally.Record(ctx.Winner)
		ctx.Emit(events.GameEvent{Type: events.EventRoundOver, Winner: ctx.Winner})
		log.Printf("round over: match %s winner %s after %d frames (tally L%d R%d D%d)",
			ctx.MatchID, ctx.Winner, ctx.Frame, ctx.Tally.LeftWins, ctx.Tally.RightWins, ctx.Tally.Draws)
	}
	return ctx.Winner
}

func applyHits(ctx *engine.GameContext, attacker, defender components.Side) {
	hits := ResolveHits(ctx, attacker, defender)
	if hits == 0 {
		return
	}
	ctx.Ship(defender).Damage(hits)
	ctx.Emit(events.GameEvent{Type: events.EventHit, Side: defender, Count: hits})
}
