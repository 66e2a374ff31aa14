package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUCI(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		fen      string
		text     string
		wantFlag MoveFlag
		wantErr  bool
	}{
		{name: "quiet", fen: DefaultStartingPositionFEN, text: "g1f3", wantFlag: MoveFlagNone},
		{name: "single push", fen: DefaultStartingPositionFEN, text: "e2e3", wantFlag: MoveFlagNone},
		{name: "double push", fen: DefaultStartingPositionFEN, text: "d2d4", wantFlag: MoveFlagPawnTwo},
		{name: "en passant", fen: "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", text: "e5d6", wantFlag: MoveFlagEnPassant},
		{name: "pawn capture", fen: kiwipeteFEN, text: "d5e6", wantFlag: MoveFlagNone},
		{name: "castle", fen: kiwipeteFEN, text: "e1c1", wantFlag: MoveFlagCastle},
		{name: "king step", fen: kiwipeteFEN, text: "e1f1", wantFlag: MoveFlagNone},
		{name: "promotion", fen: "3rk3/2P5/8/8/8/8/8/4K3 w - - 0 1", text: "c7d8r", wantFlag: MoveFlagPromoteRook},
		{name: "too short", fen: DefaultStartingPositionFEN, text: "e2e", wantErr: true},
		{name: "too long", fen: DefaultStartingPositionFEN, text: "e2e4qq", wantErr: true},
		{name: "bad square", fen: DefaultStartingPositionFEN, text: "e2i4", wantErr: true},
		{name: "uppercase", fen: DefaultStartingPositionFEN, text: "E2E4", wantErr: true},
		{name: "null", fen: DefaultStartingPositionFEN, text: "e2e2", wantErr: true},
		{name: "empty square", fen: DefaultStartingPositionFEN, text: "e4e5", wantErr: true},
		{name: "bad promotion", fen: "3rk3/2P5/8/8/8/8/8/4K3 w - - 0 1", text: "c7c8k", wantErr: true},
		{name: "non pawn promotion", fen: DefaultStartingPositionFEN, text: "g1f3q", wantErr: true},
		{name: "promotion short of last rank", fen: DefaultStartingPositionFEN, text: "e2e3q", wantErr: true},
		{name: "black promotion short of last rank", fen: kiwipeteFEN, text: "h3g2q", wantErr: true},
		{name: "missing promotion", fen: "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", text: "a7a8", wantErr: true},
		{name: "black missing promotion", fen: "4k3/8/8/8/8/8/1p6/R3K3 b - - 0 1", text: "b2a1", wantErr: true},
		{name: "black promotion", fen: "4k3/8/8/8/8/8/1p6/R3K3 b - - 0 1", text: "b2a1n", wantFlag: MoveFlagPromoteKnight},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := NewBoard(WithFEN(tt.fen))
			require.NoError(t, err)

			mv, err := ParseUCI(tt.text, b)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMove)
				assert.Equal(t, NullMove, mv)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFlag, mv.Flag())
			assert.Equal(t, tt.text, mv.UCI())
		})
	}
}

func TestParseUCIMatchesGenerator(t *testing.T) {
	t.Parallel()
	g := NewMoveGenerator()
	for _, fen := range []string{DefaultStartingPositionFEN, kiwipeteFEN, position3FEN, position4FEN, position5FEN} {
		b, err := NewBoard(WithFEN(fen))
		require.NoError(t, err)
		walkRandom(b, g, 5, 30, func(b *Board) {
			for _, mv := range g.Moves(b, false) {
				got, err := ParseUCI(mv.UCI(), b)
				require.NoError(t, err)
				assert.Equal(t, mv, got, "%s at %s", mv, b.FEN())
			}
		})
	}
}
