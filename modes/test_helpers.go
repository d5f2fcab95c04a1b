package modes

import (
	"github.com/lixenwraith/spacewar/engine"
	"github.com/lixenwraith/spacewar/input"
)

const frameDT = 1.0 / 60.0

var idle = input.NewFrame(nil, nil)

func press(keys ...input.Key) input.Frame {
	return input.NewFrame(nil, keys)
}

func hold(keys ...input.Key) input.Frame {
	return input.NewFrame(keys, nil)
}

func newTestMachine() (*Machine, *engine.GameContext) {
	ctx := engine.NewGameContext(engine.DefaultRules(), input.DefaultBindings())
	return NewMachine(ctx), ctx
}

// startRound selects Start and runs the first Playing frame
func startRound(m *Machine) {
	m.Step(frameDT, press(m.ctx.Bindings.Global.Select), nil)
	m.Step(frameDT, idle, nil)
}

// recordingPresenter logs draw calls in order
type recordingPresenter struct {
	calls  []string
	dimmed []bool
	menus  []MenuView
}

func (p *recordingPresenter) DrawArena(_ engine.Snapshot, dimmed bool) {
	p.calls = append(p.calls, "arena")
	p.dimmed = append(p.dimmed, dimmed)
}

func (p *recordingPresenter) DrawMenu(view MenuView) {
	p.calls = append(p.calls, "menu")
	p.menus = append(p.menus, view)
}

func (p *recordingPresenter) Show() {
	p.calls = append(p.calls, "show")
}
