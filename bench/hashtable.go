package bench

import (
	"fmt"
	"math/bits"

	"github.com/daystram/chesscore/board"
)

const DefaultHashTableSize = 1 << 20 // number of entries

// HashTable caches subtree node counts by position hash and remaining depth.
// It is not safe for concurrent use.
type HashTable struct {
	table    []entry
	maskHash uint64

	// stats
	hits   int
	misses int
	writes int
}

type entry struct {
	hash  uint64
	nodes uint64
	depth uint8
	used  bool
}

// NewHashTable allocates size entries; size must be a power of two.
func NewHashTable(size uint64) (*HashTable, error) {
	if size == 0 || bits.OnesCount64(size) != 1 {
		return nil, fmt.Errorf("hash table size %d is not a power of two", size)
	}
	return &HashTable{
		table:    make([]entry, size),
		maskHash: size - 1,
	}, nil
}

func (t *HashTable) Set(b *board.Board, depth int, nodes uint64) {
	hash := b.Hash()
	e := &t.table[hash&t.maskHash]
	if e.used && e.hash != hash && int(e.depth) > depth {
		return
	}
	t.writes++
	*e = entry{hash: hash, nodes: nodes, depth: uint8(depth), used: true}
}

func (t *HashTable) Get(b *board.Board, depth int) (uint64, bool) {
	hash := b.Hash()
	e := t.table[hash&t.maskHash]
	if !e.used || e.hash != hash || int(e.depth) != depth {
		t.misses++
		return 0, false
	}
	t.hits++
	return e.nodes, true
}

func (t *HashTable) ResetStats() {
	t.hits = 0
	t.misses = 0
	t.writes = 0
}

func (t *HashTable) Stats() (int, int, int) {
	return t.hits, t.misses, t.writes
}

// PerftHashed counts leaf nodes like Perft, reusing subtree counts from tt.
// Move classification is not available on this path.
func PerftHashed(b *board.Board, g *board.MoveGenerator, depth int, tt *HashTable) uint64 {
	lists := make([]board.MoveList, depth)
	return runPerftHashed(b, g, depth, lists, tt)
}

func runPerftHashed(b *board.Board, g *board.MoveGenerator, d int, lists []board.MoveList, tt *HashTable) uint64 {
	if d == 0 {
		return 1
	}
	if nodes, ok := tt.Get(b, d); ok {
		return nodes
	}

	list := &lists[d-1]
	n := g.GenerateLegalMoves(b, false, list)
	var sum uint64
	if d == 1 {
		sum = uint64(n)
	} else {
		for i := 0; i < n; i++ {
			b.MakeMove(list.At(i))
			sum += runPerftHashed(b, g, d-1, lists, tt)
			_ = b.UnmakeMove()
		}
	}
	tt.Set(b, d, sum)
	return sum
}
