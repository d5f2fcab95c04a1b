package constants

// Menu Titles
const (
	TitleMainMenu  = "SPACE WAR"
	TitlePaused    = "PAUSED"
	TitleLeftWins  = "LEFT SHIP WINS"
	TitleRightWins = "RIGHT SHIP WINS"
	TitleDraw      = "DRAW"
)

// Menu Item Labels
const (
	LabelStart    = "Start"
	LabelResume   = "Resume"
	LabelRematch  = "Rematch"
	LabelMainMenu = "Main Menu"
	LabelQuit     = "Quit"
)

// Glyphs
const (
	GlyphShipBody   = '█'
	GlyphShipLeft   = '▶'
	GlyphShipRight  = '◀'
	GlyphProjectile = '━'
	GlyphDivider    = '┊'
	GlyphHealth     = '♥'
	GlyphHealthLost = '♡'
)

// PauseDimFactor scales foreground brightness of the frozen scene under the pause overlay
const PauseDimFactor = 0.35
