package components

// Winner is the round outcome; WinnerNone while the round is undecided
type Winner uint8

const (
	WinnerNone Winner = iota
	WinnerLeft
	WinnerRight
	WinnerDraw
)

// WinnerFor returns the winner value crediting the given side
func WinnerFor(s Side) Winner {
	if s == SideLeft {
		return WinnerLeft
	}
	return WinnerRight
}

// Decided reports whether the round has a terminal outcome
func (w Winner) Decided() bool {
	return w != WinnerNone
}

func (w Winner) String() string {
	switch w {
	case WinnerNone:
		return "none"
	case WinnerLeft:
		return "left"
	case WinnerRight:
		return "right"
	case WinnerDraw:
		return "draw"
	default:
		return "unknown"
	}
}
