package board

import (
	"fmt"

	"github.com/daystram/chesscore/position"
)

// ParseUCI decodes long algebraic move text such as e2e4 or a7a8q against b.
// The text carries no flag, so double pushes, en passant and castling are
// inferred from the pieces on b. The move is not checked for legality.
func ParseUCI(text string, b *Board) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return NullMove, fmt.Errorf("%w: %q", ErrInvalidMove, text)
	}
	from, err := position.NewPosFromNotation(text[0:2])
	if err != nil {
		return NullMove, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	to, err := position.NewPosFromNotation(text[2:4])
	if err != nil {
		return NullMove, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	if from == to {
		return NullMove, fmt.Errorf("%w: %q does not move", ErrInvalidMove, text)
	}
	moving := b.cells.Get(from)
	if moving.IsEmpty() {
		return NullMove, fmt.Errorf("%w: no piece on %s", ErrInvalidMove, from)
	}

	flag := MoveFlagNone
	if len(text) == 5 {
		var t PieceType
		switch text[4] {
		case 'q':
			t = PieceTypeQueen
		case 'n':
			t = PieceTypeKnight
		case 'b':
			t = PieceTypeBishop
		case 'r':
			t = PieceTypeRook
		default:
			return NullMove, fmt.Errorf("%w: unknown promotion %q", ErrInvalidMove, text[4:])
		}
		if moving.Type() != PieceTypePawn {
			return NullMove, fmt.Errorf("%w: %s cannot promote", ErrInvalidMove, moving)
		}
		flag = promoteFlag(t)
	}

	switch moving.Type() {
	case PieceTypePawn:
		lastRank := to.Y() == pawnLastRank[moving.Side()]
		if flag != MoveFlagNone && !lastRank {
			return NullMove, fmt.Errorf("%w: %q promotes short of the last rank", ErrInvalidMove, text)
		}
		if flag == MoveFlagNone && (to.Y() == position.Rank1 || to.Y() == position.Rank8) {
			return NullMove, fmt.Errorf("%w: %q reaches %s without promoting", ErrInvalidMove, text, to)
		}
		switch {
		case flag != MoveFlagNone:
		case abs(to.Y()-from.Y()) == 2:
			flag = MoveFlagPawnTwo
		case from.X() != to.X() && b.cells.Get(to).IsEmpty():
			flag = MoveFlagEnPassant
		}
	case PieceTypeKing:
		if abs(to.X()-from.X()) > 1 {
			flag = MoveFlagCastle
		}
	}
	return newMove(from, to, flag), nil
}
