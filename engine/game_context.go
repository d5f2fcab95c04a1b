package engine

import (
	"log"

	"github.com/google/uuid"

	"github.com/lixenwraith/spacewar/components"
	"github.com/lixenwraith/spacewar/constants"
	"github.com/lixenwraith/spacewar/events"
	"github.com/lixenwraith/spacewar/input"
)

// Tally counts decided rounds since the last full reset
type Tally struct {
	LeftWins  int `msgpack:"left"`
	RightWins int `msgpack:"right"`
	Draws     int `msgpack:"draws"`
}

// Record adds a decided outcome to the tally
func (t *Tally) Record(w components.Winner) {
	switch w {
	case components.WinnerLeft:
		t.LeftWins++
	case components.WinnerRight:
		t.RightWins++
	case components.WinnerDraw:
		t.Draws++
	}
}

// GameContext holds all round state
// Ships and the pool are reset in place between rounds, never reallocated
// Single-threaded: mutated only from the frame loop
type GameContext struct {
	// ===== Immutable After Init =====
	Rules    Rules
	Bindings input.Bindings

	// ===== Round State =====
	Ships   [constants.ShipCount]components.ShipComponent
	Pool    *ProjectilePool
	Winner  components.Winner
	MatchID uuid.UUID // Fresh per round
	Frame   uint64    // Playing frames simulated this round

	// ===== Session State =====
	Tally Tally

	Events *events.EventQueue

	newMatchID func() uuid.UUID
}

// NewGameContext creates a context with both ships at their spawn positions
func NewGameContext(rules Rules, bindings input.Bindings) *GameContext {
	g := &GameContext{
		Rules:      rules,
		Bindings:   bindings,
		Events:     events.NewEventQueue(),
		newMatchID: uuid.New,
	}
	g.Pool = NewProjectilePool(&g.Rules, &g.Ships)
	g.Reset()
	return g
}

// SetMatchIDSource replaces the match id generator
func (g *GameContext) SetMatchIDSource(fn func() uuid.UUID) {
	g.newMatchID = fn
}

// Ship returns the ship on the given side
func (g *GameContext) Ship(side components.Side) *components.ShipComponent {
	return &g.Ships[side]
}

// ResetRound restores ships, projectiles and outcome to round-start values
// The win tally survives; used for rematches
func (g *GameContext) ResetRound() {
	keys := [constants.ShipCount]input.KeyMap{g.Bindings.Left, g.Bindings.Right}
	for i := range g.Ships {
		side := components.Side(i)
		g.Ships[i] = components.ShipComponent{
			Position: g.Rules.SpawnPosition(side),
			Side:     side,
			Keys:     keys[i],
			Health:   g.Rules.InitialHealth,
		}
	}
	g.Pool.Clear()
	g.Winner = components.WinnerNone
	g.Frame = 0
	g.MatchID = g.newMatchID()
	g.Events.Clear()
	log.Printf("round reset: match %s", g.MatchID)
}

// Reset performs a full reset, including the win tally
// The result matches a freshly created context apart from the match id
func (g *GameContext) Reset() {
	g.Tally = Tally{}
	g.ResetRound()
}

// Emit queues a game event for the audio bridge and spectators
func (g *GameContext) Emit(ev events.GameEvent) {
	g.Events.Push(ev)
}
