package modes

import (
	"fmt"

	"github.com/lixenwraith/spacewar/components"
	"github.com/lixenwraith/spacewar/constants"
	"github.com/lixenwraith/spacewar/engine"
)

var (
	mainMenuItems = []MenuItem{
		{Label: constants.LabelStart, Action: ActionStart},
		{Label: constants.LabelQuit, Action: ActionQuit},
	}
	pausedItems = []MenuItem{
		{Label: constants.LabelResume, Action: ActionResume},
		{Label: constants.LabelMainMenu, Action: ActionMainMenu},
		{Label: constants.LabelQuit, Action: ActionQuit},
	}
	roundOverItems = []MenuItem{
		{Label: constants.LabelRematch, Action: ActionRematch},
		{Label: constants.LabelMainMenu, Action: ActionMainMenu},
		{Label: constants.LabelQuit, Action: ActionQuit},
	}
)

// menuItems returns the menu of a mode, nil for modes without one
func menuItems(m Mode) []MenuItem {
	switch m {
	case ModeMainMenu:
		return mainMenuItems
	case ModePaused:
		return pausedItems
	case ModeRoundOver:
		return roundOverItems
	default:
		return nil
	}
}

// menuTitle returns the heading shown above a mode's menu
func menuTitle(m Mode, w components.Winner) string {
	switch m {
	case ModeMainMenu:
		return constants.TitleMainMenu
	case ModePaused:
		return constants.TitlePaused
	case ModeRoundOver:
		switch w {
		case components.WinnerLeft:
			return constants.TitleLeftWins
		case components.WinnerRight:
			return constants.TitleRightWins
		default:
			return constants.TitleDraw
		}
	default:
		return ""
	}
}

func tallyLine(t engine.Tally) string {
	return fmt.Sprintf("Left %d  Right %d  Draws %d", t.LeftWins, t.RightWins, t.Draws)
}

// moveCursor steps a cursor by delta, wrapping around n items
func moveCursor(cursor, delta, n int) int {
	if n == 0 {
		return 0
	}
	return ((cursor+delta)%n + n) % n
}
