package components

// Side identifies which half of the arena a ship owns
// The value doubles as the ship's index in the two-ship array
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

// Direction returns the horizontal travel sign of projectiles fired from this side
func (s Side) Direction() float64 {
	if s == SideLeft {
		return 1
	}
	return -1
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}
