package board

import (
	"errors"
	"math"

	"github.com/daystram/chesscore/position"
)

var (
	ErrNoMoveToUnmake = errors.New("no move to unmake")
)

func (b *Board) put(pos position.Pos, p Piece) {
	b.cells.Set(pos, p)
	b.hash ^= zobristConstantPiece[p][pos]
}

func (b *Board) remove(pos position.Pos) Piece {
	p := b.cells.Get(pos)
	if !p.IsEmpty() {
		b.hash ^= zobristConstantPiece[p][pos]
		b.cells.Set(pos, PieceNone)
	}
	return p
}

// capturedPos is where the captured piece stands; it differs from the target
// square only for en passant.
func capturedPos(mv Move, mover Side) position.Pos {
	if !mv.IsEnPassant() {
		return mv.To()
	}
	if mover == SideWhite {
		return mv.To() - Width
	}
	return mv.To() + Width
}

// MakeMove applies mv, which must be pseudo-legal for the side to move. The
// move can be reverted with UnmakeMove.
func (b *Board) MakeMove(mv Move) {
	from, to := mv.From(), mv.To()
	mover := b.turn
	moving := b.cells.Get(from)
	capPos := capturedPos(mv, mover)
	captured := b.cells.Get(capPos)

	b.moves = append(b.moves, mv)
	b.undos = append(b.undos, undoRecord{
		hash:          b.hash,
		captured:      captured,
		capturedPos:   capPos,
		castleRights:  b.castleRights,
		enPassant:     b.enPassant,
		halfMoveClock: b.halfMoveClock,
		fullMoveClock: b.fullMoveClock,
	})

	// board
	b.remove(capPos)
	b.remove(from)
	if mv.IsPromote() {
		b.put(to, NewPiece(mv.PromotePieceType(), mover))
	} else {
		b.put(to, moving)
	}
	if mv.IsCastle() {
		hopsRook := posCastling[castleDirectionOf(mover, to)][PieceTypeRook]
		b.put(hopsRook[1], b.remove(hopsRook[0]))
	}
	if moving.Type() == PieceTypeKing {
		b.kingPos[mover] = to
	}
	if captured.Type() == PieceTypeKing {
		b.kingPos[captured.Side()] = position.NoPos
	}

	// update enPassant
	if b.enPassant.Valid() {
		b.hash ^= zobristConstantEnPassant[b.enPassant]
	}
	b.enPassant = position.NoPos
	if mv.IsPawnTwo() {
		b.enPassant = (from + to) / 2
		b.hash ^= zobristConstantEnPassant[b.enPassant]
	}

	// update half move clock
	if moving.Type() == PieceTypePawn || !captured.IsEmpty() {
		b.halfMoveClock = 0
	} else if b.halfMoveClock < math.MaxUint32 {
		b.halfMoveClock++
	}

	// update full move clock, saturating at the maximum
	if mover == SideBlack && b.fullMoveClock < math.MaxUint32 {
		b.fullMoveClock++
	}

	// update castleRights
	if b.castleRights != CastleRightsNone {
		rights := b.castleRights
		if moving.Type() == PieceTypeKing {
			if mover == SideWhite {
				rights.Set(CastleDirectionWhiteRight, false)
				rights.Set(CastleDirectionWhiteLeft, false)
			} else {
				rights.Set(CastleDirectionBlackRight, false)
				rights.Set(CastleDirectionBlackLeft, false)
			}
		}
		rights &^= maskCastleRightsLost[from] | maskCastleRightsLost[to]
		b.hash ^= zobristConstantCastleRights[b.castleRights] ^ zobristConstantCastleRights[rights]
		b.castleRights = rights
	}

	b.turn = mover.Opposite()
	b.hash ^= zobristConstantSideBlack
	b.inCheck = checkUnknown
}

// UnmakeMove reverts the last MakeMove. It fails with ErrNoMoveToUnmake,
// leaving the board untouched, when there is nothing to revert.
func (b *Board) UnmakeMove() error {
	if len(b.moves) == 0 || len(b.undos) == 0 {
		return ErrNoMoveToUnmake
	}
	mv := b.moves[len(b.moves)-1]
	u := b.undos[len(b.undos)-1]
	b.moves = b.moves[:len(b.moves)-1]
	b.undos = b.undos[:len(b.undos)-1]

	from, to := mv.From(), mv.To()
	mover := b.turn.Opposite()

	if mv.IsCastle() {
		hopsRook := posCastling[castleDirectionOf(mover, to)][PieceTypeRook]
		b.put(hopsRook[0], b.remove(hopsRook[1]))
	}
	moved := b.remove(to)
	if mv.IsPromote() {
		moved = NewPiece(PieceTypePawn, mover)
	}
	b.put(from, moved)
	if !u.captured.IsEmpty() {
		b.put(u.capturedPos, u.captured)
		if u.captured.Type() == PieceTypeKing {
			b.kingPos[u.captured.Side()] = u.capturedPos
		}
	}
	if moved.Type() == PieceTypeKing {
		b.kingPos[mover] = from
	}

	b.castleRights = u.castleRights
	b.enPassant = u.enPassant
	b.halfMoveClock = u.halfMoveClock
	b.fullMoveClock = u.fullMoveClock
	b.turn = mover
	b.hash = u.hash
	b.inCheck = checkUnknown
	return nil
}
