package board

import (
	"github.com/daystram/chesscore/position"
)

// Direction indices, in the order of Tables.DirectionOffset.
const (
	DirectionN = iota
	DirectionS
	DirectionW
	DirectionE
	DirectionNW
	DirectionSE
	DirectionNE
	DirectionSW

	totalDirections
)

// Tables holds the square geometry shared by move generation and attack
// detection. It is built once and never mutated; slices handed out by its
// accessors must be treated as read-only.
type Tables struct {
	directionOffsets   [totalDirections]position.Pos
	squaresToEdge      [position.TotalCells][totalDirections]uint8
	knightDestinations [position.TotalCells][]position.Pos
	kingDestinations   [position.TotalCells][]position.Pos
	pawnAttacks        [2][position.TotalCells][]position.Pos
	rookRays           [position.TotalCells][4][]position.Pos
	bishopRays         [position.TotalCells][4][]position.Pos
}

var (
	// clockwise from north-north-east
	knightDeltas = [8][2]position.Pos{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	// clockwise from north
	kingDeltas = [8][2]position.Pos{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}

	rookDirections   = [4]int{DirectionN, DirectionS, DirectionW, DirectionE}
	bishopDirections = [4]int{DirectionNW, DirectionSE, DirectionNE, DirectionSW}
)

// PrecomputedTables returns the process-wide tables.
func PrecomputedTables() *Tables {
	return precomputed
}

func newTables() *Tables {
	t := &Tables{
		directionOffsets: [totalDirections]position.Pos{8, -8, -1, 1, 7, -7, 9, -9},
	}

	for pos := position.Pos(0); pos.Valid(); pos++ {
		x, y := pos.X(), pos.Y()
		north := 7 - y
		south := y
		west := x
		east := 7 - x
		t.squaresToEdge[pos] = [totalDirections]uint8{
			DirectionN:  uint8(north),
			DirectionS:  uint8(south),
			DirectionW:  uint8(west),
			DirectionE:  uint8(east),
			DirectionNW: uint8(min(north, west)),
			DirectionSE: uint8(min(south, east)),
			DirectionNE: uint8(min(north, east)),
			DirectionSW: uint8(min(south, west)),
		}

		t.knightDestinations[pos] = destinations(x, y, knightDeltas[:])
		t.kingDestinations[pos] = destinations(x, y, kingDeltas[:])
		t.pawnAttacks[SideWhite][pos] = destinations(x, y, [][2]position.Pos{{-1, 1}, {1, 1}})
		t.pawnAttacks[SideBlack][pos] = destinations(x, y, [][2]position.Pos{{-1, -1}, {1, -1}})

		for i, d := range rookDirections {
			t.rookRays[pos][i] = t.ray(pos, d)
		}
		for i, d := range bishopDirections {
			t.bishopRays[pos][i] = t.ray(pos, d)
		}
	}
	return t
}

func destinations(x, y position.Pos, deltas [][2]position.Pos) []position.Pos {
	var dst []position.Pos
	for _, d := range deltas {
		if position.InBounds(x+d[0], y+d[1]) {
			dst = append(dst, position.NewPos(x+d[0], y+d[1]))
		}
	}
	return dst
}

// ray walks outward from pos, nearest square first.
func (t *Tables) ray(pos position.Pos, direction int) []position.Pos {
	n := int(t.squaresToEdge[pos][direction])
	r := make([]position.Pos, 0, n)
	for i := 1; i <= n; i++ {
		r = append(r, pos+t.directionOffsets[direction]*position.Pos(i))
	}
	return r
}

func (t *Tables) DirectionOffset(direction int) position.Pos {
	return t.directionOffsets[direction]
}

func (t *Tables) SquaresToEdge(pos position.Pos, direction int) int {
	return int(t.squaresToEdge[pos][direction])
}

func (t *Tables) KnightDestinations(pos position.Pos) []position.Pos {
	return t.knightDestinations[pos]
}

func (t *Tables) KingDestinations(pos position.Pos) []position.Pos {
	return t.kingDestinations[pos]
}

// PawnAttacks returns the squares a pawn of side s standing on pos attacks.
func (t *Tables) PawnAttacks(s Side, pos position.Pos) []position.Pos {
	return t.pawnAttacks[s][pos]
}

// RookRay returns the ray towards rookDirections[i] (N, S, W, E).
func (t *Tables) RookRay(pos position.Pos, i int) []position.Pos {
	return t.rookRays[pos][i]
}

// BishopRay returns the ray towards bishopDirections[i] (NW, SE, NE, SW).
func (t *Tables) BishopRay(pos position.Pos, i int) []position.Pos {
	return t.bishopRays[pos][i]
}
