package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/spacewar/constants"
	"github.com/lixenwraith/spacewar/engine"
	"github.com/lixenwraith/spacewar/modes"
)

// hudRows is the number of screen rows above the arena
const hudRows = 1

// TerminalRenderer presents snapshots and menus on a tcell screen
// Arena coordinates are scaled to whatever size the terminal currently has
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// viewport maps arena units to screen cells
type viewport struct {
	originY        int
	width, height  int
	scaleX, scaleY float64
}

func newViewport(snap *engine.Snapshot, screenW, screenH int) viewport {
	v := viewport{originY: hudRows, width: screenW, height: screenH - hudRows}
	if v.height < 1 {
		v.height = 1
	}
	if snap.ArenaWidth > 0 {
		v.scaleX = float64(v.width) / snap.ArenaWidth
	}
	if snap.ArenaHeight > 0 {
		v.scaleY = float64(v.height) / snap.ArenaHeight
	}
	return v
}

// span converts an arena interval to a half-open cell range, at least one cell wide
func span(pos, size, scale float64) (int, int) {
	lo := int(pos * scale)
	hi := int((pos + size) * scale)
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

// DrawArena draws the HUD, divider, ships and projectiles
func (r *TerminalRenderer) DrawArena(snap engine.Snapshot, dimmed bool) {
	w, h := r.screen.Size()
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', bg)

	fg := func(c tcell.Color) tcell.Style {
		if dimmed {
			c = Dim(c)
		}
		return bg.Foreground(c)
	}

	vp := newViewport(&snap, w, h)

	divX := vp.width / 2
	for y := 0; y < vp.height; y++ {
		r.screen.SetContent(divX, vp.originY+y, constants.GlyphDivider, nil, fg(RgbDivider))
	}

	for _, p := range snap.Projectiles {
		x0, x1 := span(p.X, snap.ProjectileWidth, vp.scaleX)
		y0, _ := span(p.Y, snap.ProjectileHeight, vp.scaleY)
		style := fg(projectileColor(p.Owner))
		for x := x0; x < x1; x++ {
			r.setArena(vp, x, y0, constants.GlyphProjectile, style)
		}
	}

	for _, s := range snap.Ships {
		x0, x1 := span(s.X, snap.ShipWidth, vp.scaleX)
		y0, y1 := span(s.Y, snap.ShipHeight, vp.scaleY)
		style := fg(shipColor(s.Side))

		nose, noseX := constants.GlyphShipLeft, x1-1
		if s.Side == "right" {
			nose, noseX = constants.GlyphShipRight, x0
		}
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				ch := constants.GlyphShipBody
				if x == noseX && y == (y0+y1)/2 {
					ch = nose
				}
				r.setArena(vp, x, y, ch, style)
			}
		}
	}

	r.drawHud(&snap, w, fg)
}

// setArena writes a cell given arena-relative cell coordinates, clipping to the viewport
func (r *TerminalRenderer) setArena(vp viewport, x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= vp.width || y < 0 || y >= vp.height {
		return
	}
	r.screen.SetContent(x, vp.originY+y, ch, nil, style)
}

// drawHud draws health pips for each ship and the round tally on the top row
func (r *TerminalRenderer) drawHud(snap *engine.Snapshot, w int, fg func(tcell.Color) tcell.Style) {
	for _, s := range snap.Ships {
		pips := make([]rune, 0, snap.InitialHealth)
		styles := make([]tcell.Style, 0, snap.InitialHealth)
		for i := 0; i < snap.InitialHealth; i++ {
			if i < s.Health {
				pips = append(pips, constants.GlyphHealth)
				styles = append(styles, fg(shipColor(s.Side)))
			} else {
				pips = append(pips, constants.GlyphHealthLost)
				styles = append(styles, fg(RgbHealthLost))
			}
		}

		startX := 1
		if s.Side == "right" {
			startX = w - len(pips) - 1
		}
		for i, ch := range pips {
			r.screen.SetContent(startX+i, 0, ch, nil, styles[i])
		}
	}

	tally := fmt.Sprintf("%d : %d", snap.Tally.LeftWins, snap.Tally.RightWins)
	if snap.Tally.Draws > 0 {
		tally = fmt.Sprintf("%s  (%d draws)", tally, snap.Tally.Draws)
	}
	r.drawText((w-len(tally))/2, 0, tally, fg(RgbHud))
}

// DrawMenu draws a centered panel with the title, optional subtitle and items
// A non-overlay menu wipes the previous frame so no stale arena shows around the panel
func (r *TerminalRenderer) DrawMenu(view modes.MenuView) {
	w, h := r.screen.Size()
	if !view.Overlay {
		r.screen.Fill(' ', tcell.StyleDefault.Background(RgbBackground))
	}

	panelW := len(view.Title)
	if len(view.Subtitle) > panelW {
		panelW = len(view.Subtitle)
	}
	for _, it := range view.Items {
		if len(it)+4 > panelW {
			panelW = len(it) + 4
		}
	}
	panelW += 4
	panelH := len(view.Items) + 4
	if view.Subtitle != "" {
		panelH++
	}

	px := (w - panelW) / 2
	py := (h - panelH) / 2
	panel := tcell.StyleDefault.Background(RgbMenuPanel)
	for y := py; y < py+panelH; y++ {
		for x := px; x < px+panelW; x++ {
			r.screen.SetContent(x, y, ' ', nil, panel)
		}
	}

	row := py + 1
	r.drawCentered(w, row, view.Title, panel.Foreground(RgbMenuTitle).Bold(true))
	row++
	if view.Subtitle != "" {
		r.drawCentered(w, row, view.Subtitle, panel.Foreground(RgbHud))
		row++
	}
	row++

	for i, it := range view.Items {
		style := panel.Foreground(RgbMenuItem)
		label := "  " + it + "  "
		if i == view.Cursor {
			style = tcell.StyleDefault.Background(RgbMenuCursorBg).Foreground(RgbMenuCursorFg)
			label = "> " + it + " <"
		}
		r.drawCentered(w, row+i, label, style)
	}
}

// Show flushes the frame to the terminal
func (r *TerminalRenderer) Show() {
	r.screen.Show()
}

func (r *TerminalRenderer) drawCentered(w, y int, s string, style tcell.Style) {
	r.drawText((w-len([]rune(s)))/2, y, s, style)
}

func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
