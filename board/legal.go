package board

// IsLegal reports whether the pseudo-legal move mv keeps the mover's king out
// of check. Castling additionally requires the king's start, transit and
// destination squares to be unattacked. The board is restored before
// returning.
func (b *Board) IsLegal(mv Move) bool {
	mover := b.turn
	if mv.IsCastle() {
		for _, pos := range posCastlingSafe[castleDirectionOf(mover, mv.To())] {
			if b.IsSquareAttacked(pos, mover.Opposite()) {
				return false
			}
		}
	}
	b.MakeMove(mv)
	legal := !b.IsKingChecked(mover)
	_ = b.UnmakeMove()
	return legal
}

// GenerateLegalMoves fills list with the legal moves of the side to move.
func (g *MoveGenerator) GenerateLegalMoves(b *Board, capturesOnly bool, list *MoveList) int {
	g.GenerateMoves(b, capturesOnly, list)
	n := 0
	for i := 0; i < list.n; i++ {
		if mv := list.moves[i]; b.IsLegal(mv) {
			list.moves[n] = mv
			n++
		}
	}
	list.n = n
	return n
}
