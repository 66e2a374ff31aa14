package bench

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chesscore/board"
)

// Stats counts the leaf nodes of a perft tree and classifies the moves that
// lead into them.
type Stats struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

func (s *Stats) Add(o Stats) {
	s.Nodes += o.Nodes
	s.Captures += o.Captures
	s.EnPassants += o.EnPassants
	s.Castles += o.Castles
	s.Promotions += o.Promotions
	s.Checks += o.Checks
}

func (s Stats) String() string {
	return message.NewPrinter(language.English).
		Sprintf("nodes=%d cap=%d enp=%d cas=%d pro=%d chk=%d",
			s.Nodes, s.Captures, s.EnPassants, s.Castles, s.Promotions, s.Checks)
}

// tally classifies the leaf move mv played from b.
func (s *Stats) tally(b *board.Board, mv board.Move) {
	if mv.IsEnPassant() || !b.PieceAt(mv.To()).IsEmpty() {
		s.Captures++
	}
	if mv.IsEnPassant() {
		s.EnPassants++
	}
	if mv.IsCastle() {
		s.Castles++
	}
	if mv.IsPromote() {
		s.Promotions++
	}
	b.MakeMove(mv)
	if b.IsInCheck() {
		s.Checks++
	}
	_ = b.UnmakeMove()
}

// LegalMoves returns the legal moves of the side to move in generation order.
func LegalMoves(b *board.Board, g *board.MoveGenerator) []board.Move {
	var list board.MoveList
	g.GenerateLegalMoves(b, false, &list)
	return append([]board.Move(nil), list.Slice()...)
}

// Perft walks the legal move tree of b to depth using make/unmake. b is
// restored before returning.
func Perft(b *board.Board, g *board.MoveGenerator, depth int) Stats {
	var s Stats
	lists := make([]board.MoveList, depth)
	runPerft(b, g, depth, lists, &s)
	return s
}

func runPerft(b *board.Board, g *board.MoveGenerator, d int, lists []board.MoveList, s *Stats) uint64 {
	if d == 0 {
		s.Nodes++
		return 1
	}

	list := &lists[d-1]
	n := g.GenerateLegalMoves(b, false, list)
	if d == 1 {
		for i := 0; i < n; i++ {
			s.tally(b, list.At(i))
		}
		s.Nodes += uint64(n)
		return uint64(n)
	}

	var sum uint64
	for i := 0; i < n; i++ {
		b.MakeMove(list.At(i))
		sum += runPerft(b, g, d-1, lists, s)
		_ = b.UnmakeMove()
	}
	return sum
}

// PerftParallel splits the root moves over cloned boards. Cancelling ctx
// stops subtrees that have not started yet.
func PerftParallel(ctx context.Context, b *board.Board, g *board.MoveGenerator, depth int) (Stats, error) {
	if depth <= 1 {
		return Perft(b, g, depth), nil
	}

	var (
		mu    sync.Mutex
		total Stats
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for _, mv := range LegalMoves(b, g) {
		bb := b.Clone()
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			bb.MakeMove(mv)
			s := Perft(bb, g, depth-1)
			mu.Lock()
			total.Add(s)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Stats{}, err
	}
	return total, nil
}

type DivideEntry struct {
	Move  board.Move
	Nodes uint64
}

func (e DivideEntry) String() string {
	return fmt.Sprintf("%s: %d", e.Move.UCI(), e.Nodes)
}

// Divide reports the perft node count below each root move.
func Divide(b *board.Board, g *board.MoveGenerator, depth int) ([]DivideEntry, Stats) {
	var total Stats
	if depth < 1 {
		return nil, total
	}
	moves := LegalMoves(b, g)
	entries := make([]DivideEntry, 0, len(moves))
	for _, mv := range moves {
		b.MakeMove(mv)
		s := Perft(b, g, depth-1)
		_ = b.UnmakeMove()
		if depth == 1 {
			s = Stats{}
			s.tally(b, mv)
			s.Nodes = 1
		}
		entries = append(entries, DivideEntry{Move: mv, Nodes: s.Nodes})
		total.Add(s)
	}
	return entries, total
}

type Config struct {
	FEN           string
	Depth         int
	Parallel      bool
	Divide        bool
	PromotionMode board.PromotionMode
	// HashTableSize enables the node-count cache when non-zero. Only Nodes is
	// reported on that path.
	HashTableSize uint64
}

// Run executes a perft described by cfg, streaming divide lines and the final
// summary to out when it is not nil.
func Run(ctx context.Context, cfg Config, out chan<- string) (Stats, error) {
	b, err := board.NewBoard(board.WithFEN(cfg.FEN))
	if err != nil {
		return Stats{}, err
	}
	g := board.NewMoveGenerator(board.WithPromotionMode(cfg.PromotionMode))
	log.Debug().
		Str("fen", cfg.FEN).
		Int("depth", cfg.Depth).
		Bool("parallel", cfg.Parallel).
		Bool("divide", cfg.Divide).
		Stringer("promotions", cfg.PromotionMode).
		Msg("perft starting")

	start := time.Now()
	var s Stats
	switch {
	case cfg.Divide:
		var entries []DivideEntry
		entries, s = Divide(b, g, cfg.Depth)
		for _, e := range entries {
			send(out, e.String())
		}
	case cfg.HashTableSize > 0:
		tt, err := NewHashTable(cfg.HashTableSize)
		if err != nil {
			return Stats{}, err
		}
		s.Nodes = PerftHashed(b, g, cfg.Depth, tt)
		hits, misses, writes := tt.Stats()
		log.Debug().Int("hits", hits).Int("misses", misses).Int("writes", writes).Msg("hash table stats")
	case cfg.Parallel:
		s, err = PerftParallel(ctx, b, g, cfg.Depth)
		if err != nil {
			return Stats{}, err
		}
	default:
		s = Perft(b, g, cfg.Depth)
	}
	elapsed := time.Since(start)

	log.Debug().Uint64("nodes", s.Nodes).Dur("elapsed", elapsed).Msg("perft done")
	send(out, message.NewPrinter(language.English).
		Sprintf("d=%d %s rate=%dn/s (%.3fs elapsed)",
			cfg.Depth, s, int(float64(s.Nodes)/max(elapsed.Seconds(), 1e-9)), elapsed.Seconds()))
	return s, nil
}

func send(out chan<- string, line string) {
	if out != nil {
		out <- line
	}
}
