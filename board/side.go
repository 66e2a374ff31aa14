package board

// Side is the colour of a piece or of the player to move. It doubles as an
// index into per-side arrays.
type Side uint8

const (
	SideWhite Side = iota
	SideBlack
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	return s ^ 1
}
