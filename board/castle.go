package board

import (
	"strings"

	"github.com/daystram/chesscore/position"
)

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteRight
	CastleDirectionWhiteLeft
	CastleDirectionBlackRight
	CastleDirectionBlackLeft
)

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "White 0-0"
	case CastleDirectionWhiteLeft:
		return "White 0-0-0"
	case CastleDirectionBlackRight:
		return "Black 0-0"
	case CastleDirectionBlackLeft:
		return "Black 0-0-0"
	default:
		return ""
	}
}

// castleDirectionOf maps a two-file king move of side s onto its direction.
func castleDirectionOf(s Side, kingTo position.Pos) CastleDirection {
	right := kingTo.X() == position.FileG
	switch {
	case s == SideWhite && right:
		return CastleDirectionWhiteRight
	case s == SideWhite:
		return CastleDirectionWhiteLeft
	case right:
		return CastleDirectionBlackRight
	default:
		return CastleDirectionBlackLeft
	}
}

// CastleRights is a 4-bit mask: bit 0 White 0-0, bit 1 White 0-0-0,
// bit 2 Black 0-0, bit 3 Black 0-0-0.
type CastleRights uint8

const (
	CastleRightsNone CastleRights = 0
	CastleRightsAll  CastleRights = 0b1111
)

func (c *CastleRights) Set(d CastleDirection, allow bool) {
	if allow {
		*c |= maskCastleRights[d]
	} else {
		*c &^= maskCastleRights[d]
	}
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return c&maskCastleRights[d] != 0
}

func (c CastleRights) IsSideAllowed(s Side) bool {
	if s == SideWhite {
		return c&(maskCastleRights[CastleDirectionWhiteLeft]|maskCastleRights[CastleDirectionWhiteRight]) != 0
	}
	return c&(maskCastleRights[CastleDirectionBlackLeft]|maskCastleRights[CastleDirectionBlackRight]) != 0
}

// String returns the FEN castling field.
func (c CastleRights) String() string {
	if c&CastleRightsAll == 0 {
		return "-"
	}
	builder := strings.Builder{}
	for _, d := range castleDirectionsFEN {
		if c.IsAllowed(d) {
			_, _ = builder.WriteString(castleSymbol[d])
		}
	}
	return builder.String()
}

var (
	castleDirectionsFEN = [4]CastleDirection{
		CastleDirectionWhiteRight,
		CastleDirectionWhiteLeft,
		CastleDirectionBlackRight,
		CastleDirectionBlackLeft,
	}
	castleSymbol = [4 + 1]string{
		CastleDirectionWhiteRight: "K",
		CastleDirectionWhiteLeft:  "Q",
		CastleDirectionBlackRight: "k",
		CastleDirectionBlackLeft:  "q",
	}
)
