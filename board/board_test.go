package board

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daystram/chesscore/position"
)

func TestNewBoard(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	require.NoError(t, err)
	assert.Equal(t, DefaultStartingPositionFEN, b.FEN())
	assert.Equal(t, position.E1, b.KingPos(SideWhite))
	assert.Equal(t, position.E8, b.KingPos(SideBlack))
	assert.Equal(t, CastleRightsAll, b.CastleRights())
	assert.Equal(t, position.NoPos, b.EnPassant())
	assert.Equal(t, Start().Hash(), b.Hash())
	assert.Empty(t, b.History())

	b, err = NewBoard(WithFEN("8/8/8/8/8/8/8/9 w - - 0 1"))
	assert.ErrorIs(t, err, ErrInvalidFEN)
	assert.Nil(t, b)
}

func TestPieces(t *testing.T) {
	t.Parallel()
	b := Start()
	var squares []position.Pos
	var pieces []Piece
	for pos, p := range b.Pieces() {
		squares = append(squares, pos)
		pieces = append(pieces, p)
	}
	assert.Len(t, squares, 32)
	assert.True(t, lo.IsSorted(squares))
	assert.Equal(t, NewPiece(PieceTypeRook, SideWhite), pieces[0])
	assert.Equal(t, NewPiece(PieceTypeRook, SideBlack), pieces[31])
	assert.Len(t, lo.Filter(pieces, func(p Piece, _ int) bool { return p.Type() == PieceTypePawn }), 16)

	// the sequence is a snapshot
	seq := b.Pieces()
	b.MakeMove(newMove(position.E2, position.E4, MoveFlagPawnTwo))
	for pos := range seq {
		assert.NotEqual(t, position.E4, pos)
	}
}

func TestHashTransposition(t *testing.T) {
	t.Parallel()
	a, b := Start(), Start()
	for _, uci := range []string{"g1f3", "g8f6", "b1c3"} {
		mv, err := ParseUCI(uci, a)
		require.NoError(t, err)
		a.MakeMove(mv)
	}
	for _, uci := range []string{"b1c3", "g8f6", "g1f3"} {
		mv, err := ParseUCI(uci, b)
		require.NoError(t, err)
		b.MakeMove(mv)
	}
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, Start().Hash(), a.Hash())
}

func TestDumpDraw(t *testing.T) {
	b := Start()
	dump := b.Dump()
	assert.Contains(t, dump, " 8 | r | n | b | q | k | b | n | r |")
	assert.Contains(t, dump, " 1 | R | N | B | Q | K | B | N | R |")

	color.NoColor = true
	draw := b.Draw()
	assert.Equal(t, 9, len(strings.Split(draw, "\n")))
	assert.Contains(t, draw, "♔")
	assert.Contains(t, draw, "♜")

	assert.Contains(t, b.DebugString(), "turn: White")
}
