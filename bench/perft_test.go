package bench

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/corentings/chess/v2"
	"github.com/dylhunn/dragontoothmg"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daystram/chesscore/board"
)

const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

func TestPerft(t *testing.T) {
	t.Parallel()

	// Results obtained from https://www.chessprogramming.org/Perft_Results.
	tests := map[string][]struct {
		depth     int
		want      Stats
		onlyNodes bool
	}{
		board.DefaultStartingPositionFEN: {
			{depth: 0, want: Stats{Nodes: 1}},
			{depth: 1, want: Stats{Nodes: 20}},
			{depth: 2, want: Stats{Nodes: 400}},
			{depth: 3, want: Stats{Nodes: 8_902, Captures: 34, Checks: 12}},
			{depth: 4, want: Stats{Nodes: 197_281, Captures: 1_576, Checks: 469}},
		},
		kiwipeteFEN: {
			{depth: 1, want: Stats{Nodes: 48, Captures: 8, Castles: 2}},
			{depth: 2, want: Stats{Nodes: 2_039, Captures: 351, EnPassants: 1, Castles: 91, Checks: 3}},
			{depth: 3, want: Stats{Nodes: 97_862, Captures: 17_102, EnPassants: 45, Castles: 3_162, Checks: 993}},
		},
		position3FEN: {
			{depth: 1, want: Stats{Nodes: 14, Captures: 1, Checks: 2}},
			{depth: 2, want: Stats{Nodes: 191, Captures: 14, Checks: 10}},
			{depth: 3, want: Stats{Nodes: 2_812, Captures: 209, EnPassants: 2, Checks: 267}},
			{depth: 4, want: Stats{Nodes: 43_238, Captures: 3_348, EnPassants: 123, Checks: 1_680}},
		},
		position4FEN: {
			{depth: 1, want: Stats{Nodes: 6}},
			{depth: 2, want: Stats{Nodes: 264, Captures: 87, Castles: 6, Promotions: 48, Checks: 10}},
			{depth: 3, want: Stats{Nodes: 9_467, Captures: 1_021, EnPassants: 4, Promotions: 120, Checks: 38}},
		},
		position5FEN: {
			{depth: 1, want: Stats{Nodes: 44}, onlyNodes: true},
			{depth: 2, want: Stats{Nodes: 1_486}, onlyNodes: true},
			{depth: 3, want: Stats{Nodes: 62_379}, onlyNodes: true},
		},
	}

	g := board.NewMoveGenerator()
	for fen, constraints := range tests {
		for _, tt := range constraints {
			fen, tt := fen, tt
			t.Run(fmt.Sprintf("perft(%d): %s", tt.depth, fen), func(t *testing.T) {
				t.Parallel()
				b, err := board.NewBoard(board.WithFEN(fen))
				require.NoError(t, err)
				before := b.FEN()

				got := Perft(b, g, tt.depth)
				if tt.onlyNodes {
					assert.Equal(t, tt.want.Nodes, got.Nodes)
				} else {
					assert.Equal(t, tt.want, got)
				}
				assert.Equal(t, before, b.FEN())
				assert.Zero(t, b.Ply())
			})
		}
	}
}

func TestPerftParallel(t *testing.T) {
	t.Parallel()
	g := board.NewMoveGenerator()
	for _, fen := range []string{board.DefaultStartingPositionFEN, kiwipeteFEN, position4FEN} {
		b, err := board.NewBoard(board.WithFEN(fen))
		require.NoError(t, err)

		got, err := PerftParallel(context.Background(), b, g, 3)
		require.NoError(t, err)
		assert.Equal(t, Perft(b, g, 3), got, fen)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := PerftParallel(ctx, board.Start(), g, 3)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDivide(t *testing.T) {
	t.Parallel()
	g := board.NewMoveGenerator()
	b, err := board.NewBoard(board.WithFEN(kiwipeteFEN))
	require.NoError(t, err)

	entries, total := Divide(b, g, 2)
	assert.Len(t, entries, 48)
	assert.Equal(t, uint64(2_039), total.Nodes)
	assert.Equal(t, total.Nodes, lo.SumBy(entries, func(e DivideEntry) uint64 { return e.Nodes }))
	assert.Equal(t, Perft(b, g, 2), total)

	e1g1, ok := lo.Find(entries, func(e DivideEntry) bool { return e.Move.UCI() == "e1g1" })
	require.True(t, ok)
	assert.Equal(t, uint64(43), e1g1.Nodes)
	assert.Equal(t, "e1g1: 43", e1g1.String())

	_, one := Divide(b, g, 1)
	assert.Equal(t, Perft(b, g, 1), one)
}

func TestRun(t *testing.T) {
	t.Parallel()
	out := make(chan string, 64)
	s, err := Run(context.Background(), Config{FEN: board.DefaultStartingPositionFEN, Depth: 2, Divide: true}, out)
	require.NoError(t, err)
	close(out)
	lines := lo.ChannelToSlice(out)
	assert.Len(t, lines, 21)
	assert.Contains(t, lines[20], "nodes=400")
	assert.Equal(t, uint64(400), s.Nodes)

	_, err = Run(context.Background(), Config{FEN: "8/8/8/8/8/8/8/9 w - - 0 1", Depth: 1}, nil)
	assert.ErrorIs(t, err, board.ErrInvalidFEN)

	s, err = Run(context.Background(), Config{FEN: kiwipeteFEN, Depth: 3, HashTableSize: 1 << 12}, nil)
	require.NoError(t, err)
	assert.Equal(t, Stats{Nodes: 97_862}, s)

	_, err = Run(context.Background(), Config{FEN: kiwipeteFEN, Depth: 1, HashTableSize: 3}, nil)
	assert.Error(t, err)

	s, err = Run(context.Background(), Config{FEN: position4FEN, Depth: 2, PromotionMode: board.PromotionModeQueenOnly}, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(12), s.Promotions)
}

// randomPositions collects FENs along seeded random legal games.
func randomPositions(t *testing.T, g *board.MoveGenerator, seed int64, games, plies int) []string {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	var fens []string
	for _, start := range []string{board.DefaultStartingPositionFEN, kiwipeteFEN, position3FEN, position4FEN, position5FEN} {
		for i := 0; i < games; i++ {
			b, err := board.NewBoard(board.WithFEN(start))
			require.NoError(t, err)
			for ply := 0; ply < plies; ply++ {
				fens = append(fens, b.FEN())
				moves := LegalMoves(b, g)
				if len(moves) == 0 {
					break
				}
				b.MakeMove(moves[r.Intn(len(moves))])
			}
		}
	}
	return fens
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var sum uint64
	for _, mv := range moves {
		unapply := b.Apply(mv)
		sum += dragontoothPerft(b, depth-1)
		unapply()
	}
	return sum
}

func TestPerftMatchesDragontooth(t *testing.T) {
	t.Parallel()
	g := board.NewMoveGenerator()
	for _, fen := range randomPositions(t, g, 42, 3, 40) {
		b, err := board.NewBoard(board.WithFEN(fen))
		require.NoError(t, err)
		ref := dragontoothmg.ParseFen(fen)
		assert.Equal(t, dragontoothPerft(&ref, 2), Perft(b, g, 2).Nodes, fen)
	}
}

func TestLegalMovesMatchChess(t *testing.T) {
	t.Parallel()
	g := board.NewMoveGenerator()
	for _, fen := range randomPositions(t, g, 7, 4, 60) {
		b, err := board.NewBoard(board.WithFEN(fen))
		require.NoError(t, err)
		opt, err := chess.FEN(fen)
		require.NoError(t, err)
		game := chess.NewGame(opt)

		want := lo.Map(game.ValidMoves(), func(mv chess.Move, _ int) string {
			return chess.UCINotation{}.Encode(game.Position(), &mv)
		})
		got := lo.Map(LegalMoves(b, g), func(mv board.Move, _ int) string {
			return mv.UCI()
		})
		assert.ElementsMatch(t, want, got, fen)
	}
}
