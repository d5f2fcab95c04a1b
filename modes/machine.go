package modes

import (
	"log"

	"github.com/lixenwraith/spacewar/engine"
	"github.com/lixenwraith/spacewar/events"
	"github.com/lixenwraith/spacewar/input"
	"github.com/lixenwraith/spacewar/systems"
)

// Machine owns the current mode and dispatches OnEnter, Update and Draw to it
// One Machine per process; it lives for the whole run
type Machine struct {
	ctx *engine.GameContext

	mode    Mode
	entered Mode // Mode whose OnEnter last ran
	from    Mode // Mode active before the last transition

	cursor [modeCount]int
}

// NewMachine creates a machine starting in the main menu
func NewMachine(ctx *engine.GameContext) *Machine {
	return &Machine{
		ctx:     ctx,
		mode:    ModeMainMenu,
		entered: modeNone,
		from:    modeNone,
	}
}

// Mode returns the active mode
func (m *Machine) Mode() Mode {
	return m.mode
}

// Cursor returns the menu cursor of the active mode
func (m *Machine) Cursor() int {
	return m.cursor[m.mode]
}

// Step runs one frame: OnEnter if the mode just changed, then Update and Draw
// Returns the mode that will be active next frame; ModeQuit ends the run
// p may be nil to run headless
func (m *Machine) Step(dt float64, src input.Source, p Presenter) Mode {
	if m.mode == ModeQuit {
		return ModeQuit
	}
	if src.CloseRequested() {
		m.transition(ModeQuit)
		return ModeQuit
	}

	if m.mode != m.entered {
		m.onEnter()
		m.entered = m.mode
	}

	next := m.update(dt, src)
	if p != nil {
		m.draw(p)
	}
	if next != m.mode {
		m.transition(next)
	}
	return m.mode
}

func (m *Machine) transition(next Mode) {
	log.Printf("mode %s -> %s", m.mode, next)
	m.from = m.mode
	m.mode = next
}

func (m *Machine) onEnter() {
	switch m.mode {
	case ModePlaying:
		if m.from == ModePaused {
			m.ctx.Emit(events.GameEvent{Type: events.EventResumed})
			return
		}
		// Fresh round from the main menu or a rematch
		m.ctx.ResetRound()
		m.ctx.Emit(events.GameEvent{Type: events.EventRoundStart})
	case ModePaused:
		m.cursor[ModePaused] = 0
		m.ctx.Emit(events.GameEvent{Type: events.EventPaused})
	case ModeMainMenu, ModeRoundOver:
		m.cursor[m.mode] = 0
	}
}

func (m *Machine) update(dt float64, src input.Source) Mode {
	global := m.ctx.Bindings.Global
	if src.Pressed(global.Quit) {
		return ModeQuit
	}
	if input.AnyPressed(src, global.Mute) {
		m.ctx.Emit(events.GameEvent{Type: events.EventMuteToggled})
	}

	switch m.mode {
	case ModePlaying:
		if src.Pressed(global.Pause) {
			return ModePaused
		}
		if systems.StepRound(m.ctx, src, dt).Decided() {
			return ModeRoundOver
		}
		return ModePlaying
	case ModePaused:
		if src.Pressed(global.Pause) {
			m.ctx.Emit(events.GameEvent{Type: events.EventMenuSelect})
			return ModePlaying
		}
		return m.updateMenu(src)
	default:
		return m.updateMenu(src)
	}
}

// updateMenu moves the cursor and activates the selected item
// Either ship's up/down/fire keys drive menus along with the global keys
func (m *Machine) updateMenu(src input.Source) Mode {
	b := &m.ctx.Bindings
	items := menuItems(m.mode)
	cursor := &m.cursor[m.mode]

	if input.AnyPressed(src, b.Global.MenuUp, b.Left.Up, b.Right.Up) {
		*cursor = moveCursor(*cursor, -1, len(items))
	}
	if input.AnyPressed(src, b.Global.MenuDown, b.Left.Down, b.Right.Down) {
		*cursor = moveCursor(*cursor, 1, len(items))
	}
	if !input.AnyPressed(src, b.Global.Select, b.Left.Fire, b.Right.Fire) {
		return m.mode
	}
	return m.activate(items[*cursor].Action)
}

func (m *Machine) activate(action Action) Mode {
	if action == ActionMainMenu {
		// Full reset, tally included; the queue is cleared so the select event follows it
		m.ctx.Reset()
	}
	m.ctx.Emit(events.GameEvent{Type: events.EventMenuSelect})

	switch action {
	case ActionStart, ActionResume, ActionRematch:
		return ModePlaying
	case ActionMainMenu:
		return ModeMainMenu
	default:
		return ModeQuit
	}
}

func (m *Machine) draw(p Presenter) {
	switch m.mode {
	case ModePlaying:
		p.DrawArena(m.ctx.Snapshot(), false)
	case ModePaused, ModeRoundOver:
		p.DrawArena(m.ctx.Snapshot(), true)
		p.DrawMenu(m.menuView())
	case ModeMainMenu:
		p.DrawMenu(m.menuView())
	}
	p.Show()
}

func (m *Machine) menuView() MenuView {
	items := menuItems(m.mode)
	view := MenuView{
		Title:  menuTitle(m.mode, m.ctx.Winner),
		Items:  make([]string, len(items)),
		Cursor: m.cursor[m.mode],
	}
	for i, it := range items {
		view.Items[i] = it.Label
	}
	if m.mode == ModeRoundOver || m.mode == ModePaused {
		view.Subtitle = tallyLine(m.ctx.Tally)
		view.Overlay = true
	}
	return view
}
