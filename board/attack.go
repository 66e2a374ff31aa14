package board

import (
	"github.com/daystram/chesscore/position"
)

// IsSquareAttacked reports whether any piece of side by attacks pos. It scans
// outward from pos using the precomputed tables instead of generating moves.
func (b *Board) IsSquareAttacked(pos position.Pos, by Side) bool {
	if !pos.Valid() {
		return false
	}
	t := precomputed

	// a pawn of by attacks pos from the squares a pawn of the other side on
	// pos would attack
	pawn := NewPiece(PieceTypePawn, by)
	for _, from := range t.PawnAttacks(by.Opposite(), pos) {
		if b.cells.Get(from) == pawn {
			return true
		}
	}

	knight := NewPiece(PieceTypeKnight, by)
	for _, from := range t.KnightDestinations(pos) {
		if b.cells.Get(from) == knight {
			return true
		}
	}

	for i := range rookDirections {
		for _, from := range t.RookRay(pos, i) {
			p := b.cells.Get(from)
			if p.IsEmpty() {
				continue
			}
			if p.IsSide(by) && p.IsOrthogonalSlider() {
				return true
			}
			break
		}
	}

	for i := range bishopDirections {
		for _, from := range t.BishopRay(pos, i) {
			p := b.cells.Get(from)
			if p.IsEmpty() {
				continue
			}
			if p.IsSide(by) && p.IsDiagonalSlider() {
				return true
			}
			break
		}
	}

	king := NewPiece(PieceTypeKing, by)
	for _, from := range t.KingDestinations(pos) {
		if b.cells.Get(from) == king {
			return true
		}
	}

	return false
}

// IsInCheck reports whether the side to move is in check. The result is cached
// until the next MakeMove or UnmakeMove.
func (b *Board) IsInCheck() bool {
	if b.inCheck == checkUnknown {
		b.inCheck = checkNo
		if b.IsKingChecked(b.turn) {
			b.inCheck = checkYes
		}
	}
	return b.inCheck == checkYes
}

// IsKingChecked is false when side s has no king.
func (b *Board) IsKingChecked(s Side) bool {
	return b.IsSquareAttacked(b.kingPos[s], s.Opposite())
}
