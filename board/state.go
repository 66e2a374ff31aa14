package board

import (
	"github.com/daystram/chesscore/position"
)

type State uint8

const (
	// StateUnknown is when game state is unknown.
	StateUnknown State = iota

	// StateRunning is when game is on progress.
	StateRunning

	// StateCheckWhite is when White King is in check.
	StateCheckWhite

	// StateCheckBlack is when Black King is in check.
	StateCheckBlack

	// StateCheckmateWhite is when White King is in checkmate.
	StateCheckmateWhite

	// StateCheckmateBlack is when Black King is in checkmate.
	StateCheckmateBlack

	// StateStalemate is when a side cannot move a piece and King is not in check.
	StateStalemate

	// StateFiftyMoveViolated is when the game has gone through 50 moves without any captures or pawn moves.
	StateFiftyMoveViolated

	// StateInsufficientMaterial is when neither side has enough pieces left to deliver checkmate.
	StateInsufficientMaterial
)

func (s State) IsRunning() bool {
	switch s {
	case StateRunning, StateCheckWhite, StateCheckBlack:
		return true
	default:
		return false
	}
}

func (s State) IsCheck() bool {
	switch s {
	case StateCheckWhite, StateCheckBlack:
		return true
	default:
		return false
	}
}

func (s State) IsCheckmate() bool {
	switch s {
	case StateCheckmateWhite, StateCheckmateBlack:
		return true
	default:
		return false
	}
}

func (s State) IsDraw() bool {
	switch s {
	case StateStalemate, StateFiftyMoveViolated, StateInsufficientMaterial:
		return true
	default:
		return false
	}
}

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "StateUnknown"
	case StateRunning:
		return "StateRunning"
	case StateCheckWhite:
		return "StateCheckWhite"
	case StateCheckBlack:
		return "StateCheckBlack"
	case StateCheckmateWhite:
		return "StateCheckmateWhite"
	case StateCheckmateBlack:
		return "StateCheckmateBlack"
	case StateStalemate:
		return "StateStalemate"
	case StateFiftyMoveViolated:
		return "StateFiftyMoveViolated"
	case StateInsufficientMaterial:
		return "StateInsufficientMaterial"
	default:
		return ""
	}
}

// State classifies the position for the side to move using g's legal moves.
func (b *Board) State(g *MoveGenerator) State {
	var list MoveList
	if g.GenerateLegalMoves(b, false, &list) == 0 {
		if b.IsInCheck() {
			if b.turn == SideWhite {
				return StateCheckmateWhite
			}
			return StateCheckmateBlack
		}
		return StateStalemate
	}
	if b.halfMoveClock >= 100 {
		return StateFiftyMoveViolated
	}
	if b.isInsufficientMaterial() {
		return StateInsufficientMaterial
	}
	if b.IsInCheck() {
		if b.turn == SideWhite {
			return StateCheckWhite
		}
		return StateCheckBlack
	}
	return StateRunning
}

// isInsufficientMaterial covers bare kings, a single minor piece, and bishops
// that all stand on the same square colour.
func (b *Board) isInsufficientMaterial() bool {
	var minors, knights int
	bishopColors := [2]bool{}
	for pos, p := range b.cells.Enumerate() {
		switch p.Type() {
		case PieceTypeKing:
		case PieceTypeKnight:
			minors++
			knights++
		case PieceTypeBishop:
			minors++
			bishopColors[squareColor(pos)] = true
		default:
			return false
		}
	}
	if minors <= 1 {
		return true
	}
	return knights == 0 && !(bishopColors[0] && bishopColors[1])
}

func squareColor(pos position.Pos) int {
	return int(pos.X()+pos.Y()) % 2
}
