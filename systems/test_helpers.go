package systems

import (
	"github.com/lixenwraith/spacewar/audio"
	"github.com/lixenwraith/spacewar/components"
	"github.com/lixenwraith/spacewar/engine"
	"github.com/lixenwraith/spacewar/input"
)

func newTestContext() *engine.GameContext {
	return engine.NewGameContext(engine.DefaultRules(), input.DefaultBindings())
}

// idle is a frame with no keys held
var idle = input.NewFrame(nil, nil)

// hold returns a frame with the given keys held but not freshly pressed
func hold(keys ...input.Key) input.Frame {
	return input.NewFrame(keys, nil)
}

// press returns a frame with the given keys freshly pressed
func press(keys ...input.Key) input.Frame {
	return input.NewFrame(nil, keys)
}

// recordingPlayer captures every sound request
type recordingPlayer struct {
	played []audio.SoundType
}

func (p *recordingPlayer) Play(st audio.SoundType) bool {
	p.played = append(p.played, st)
	return true
}

// placeProjectile activates a pool slot owned by side at x,y with a given previous x
func placeProjectile(ctx *engine.GameContext, side components.Side, prevX, x, y float64) int {
	i, err := ctx.Pool.Emit(side)
	if err != nil {
		panic(err)
	}
	ctx.Pool.Each(func(j int, p *components.ProjectileComponent) {
		if j != i {
			return
		}
		p.PrevPosition.X, p.PrevPosition.Y = prevX, y
		p.Position.X, p.Position.Y = x, y
	})
	return i
}
