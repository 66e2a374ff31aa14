package board

import (
	"errors"
	"fmt"

	"github.com/daystram/chesscore/position"
)

var (
	ErrInvalidMove      = errors.New("invalid move")
	ErrInvalidSquare    = errors.New("invalid square")
	ErrMoveListOverflow = errors.New("move list overflow")
)

type MoveFlag uint8

const (
	MoveFlagNone MoveFlag = iota
	MoveFlagEnPassant
	MoveFlagCastle
	MoveFlagPawnTwo
	MoveFlagPromoteQueen
	MoveFlagPromoteKnight
	MoveFlagPromoteRook
	MoveFlagPromoteBishop
)

func (f MoveFlag) String() string {
	switch f {
	case MoveFlagNone:
		return "None"
	case MoveFlagEnPassant:
		return "EnPassant"
	case MoveFlagCastle:
		return "Castle"
	case MoveFlagPawnTwo:
		return "PawnTwo"
	case MoveFlagPromoteQueen:
		return "PromoteQueen"
	case MoveFlagPromoteKnight:
		return "PromoteKnight"
	case MoveFlagPromoteRook:
		return "PromoteRook"
	case MoveFlagPromoteBishop:
		return "PromoteBishop"
	default:
		return ""
	}
}

// Move is packed as from (bits 0-5) | to (bits 6-11) | flag (bits 12-15).
// The zero value is the null move.
type Move uint16

const (
	NullMove Move = 0

	moveFromMask  = 0x003F
	moveToMask    = 0x0FC0
	moveFlagMask  = 0xF000
	moveToShift   = 6
	moveFlagShift = 12
)

// NewMove validates the squares and flag before packing them.
func NewMove(from, to position.Pos, flag MoveFlag) (Move, error) {
	if !from.Valid() {
		return NullMove, fmt.Errorf("%w: from %d", ErrInvalidSquare, from)
	}
	if !to.Valid() {
		return NullMove, fmt.Errorf("%w: to %d", ErrInvalidSquare, to)
	}
	if flag > MoveFlagPromoteBishop {
		return NullMove, fmt.Errorf("%w: flag %d", ErrInvalidMove, flag)
	}
	return newMove(from, to, flag), nil
}

func newMove(from, to position.Pos, flag MoveFlag) Move {
	return Move(uint16(from)&moveFromMask | uint16(to)<<moveToShift&moveToMask | uint16(flag)<<moveFlagShift)
}

func (m Move) From() position.Pos {
	return position.Pos(m & moveFromMask)
}

func (m Move) To() position.Pos {
	return position.Pos((m & moveToMask) >> moveToShift)
}

func (m Move) Flag() MoveFlag {
	return MoveFlag((m & moveFlagMask) >> moveFlagShift)
}

func (m Move) IsNull() bool {
	return m == NullMove
}

func (m Move) IsPromote() bool {
	return m.Flag() >= MoveFlagPromoteQueen
}

func (m Move) IsEnPassant() bool {
	return m.Flag() == MoveFlagEnPassant
}

func (m Move) IsCastle() bool {
	return m.Flag() == MoveFlagCastle
}

func (m Move) IsPawnTwo() bool {
	return m.Flag() == MoveFlagPawnTwo
}

func (m Move) PromotePieceType() PieceType {
	switch m.Flag() {
	case MoveFlagPromoteQueen:
		return PieceTypeQueen
	case MoveFlagPromoteKnight:
		return PieceTypeKnight
	case MoveFlagPromoteRook:
		return PieceTypeRook
	case MoveFlagPromoteBishop:
		return PieceTypeBishop
	default:
		return PieceTypeNone
	}
}

func promoteFlag(t PieceType) MoveFlag {
	switch t {
	case PieceTypeQueen:
		return MoveFlagPromoteQueen
	case PieceTypeKnight:
		return MoveFlagPromoteKnight
	case PieceTypeRook:
		return MoveFlagPromoteRook
	case PieceTypeBishop:
		return MoveFlagPromoteBishop
	default:
		return MoveFlagNone
	}
}

func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	return m.UCI()
}

// UCI returns the long algebraic form, e.g. e2e4 or e7e8q.
func (m Move) UCI() string {
	return m.From().Notation() + m.To().Notation() + m.PromotePieceType().SymbolFEN(SideBlack)
}

// MaxMoves is the largest number of moves any legal position can offer.
const MaxMoves = 218

// MoveList is a fixed-capacity move buffer owned by the caller and reused
// between generator calls.
type MoveList struct {
	moves [MaxMoves]Move
	n     int
}

// Add panics once the list is full. No legal position has more moves, so an
// overflow is a generator defect.
func (l *MoveList) Add(mv Move) {
	if l.n >= MaxMoves {
		panic(fmt.Errorf("%w: capacity %d exceeded by %s", ErrMoveListOverflow, MaxMoves, mv))
	}
	l.moves[l.n] = mv
	l.n++
}

func (l *MoveList) Reset() {
	l.n = 0
}

func (l *MoveList) Len() int {
	return l.n
}

func (l *MoveList) At(i int) Move {
	return l.moves[i]
}

// Slice aliases the list storage; it is invalidated by the next Reset.
func (l *MoveList) Slice() []Move {
	return l.moves[:l.n]
}

func (l *MoveList) Contains(mv Move) bool {
	for _, m := range l.moves[:l.n] {
		if m == mv {
			return true
		}
	}
	return false
}
