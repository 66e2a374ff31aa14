package board

import (
	"github.com/daystram/chesscore/position"
)

const zobristSeed = 7

var (
	zobristConstantPiece        [16][position.TotalCells]uint64
	zobristConstantEnPassant    [position.TotalCells]uint64
	zobristConstantCastleRights [16]uint64
	zobristConstantSideBlack    uint64
)

// zobristKeys is a splitmix64 stream.
type zobristKeys struct {
	state uint64
}

func (z *zobristKeys) next() uint64 {
	z.state += 0x9e3779b97f4a7c15
	x := z.state
	x = (x ^ x>>30) * 0xbf58476d1ce4e5b9
	x = (x ^ x>>27) * 0x94d049bb133111eb
	return x ^ x>>31
}

func initZobrist() {
	keys := zobristKeys{state: zobristSeed}
	for _, s := range []Side{SideWhite, SideBlack} {
		for t := PieceTypePawn; t <= PieceTypeKing; t++ {
			p := NewPiece(t, s)
			for pos := position.Pos(0); pos.Valid(); pos++ {
				zobristConstantPiece[p][pos] = keys.next()
			}
		}
	}
	for pos := position.Pos(0); pos.Valid(); pos++ {
		zobristConstantEnPassant[pos] = keys.next()
	}
	for c := range zobristConstantCastleRights {
		zobristConstantCastleRights[c] = keys.next()
	}
	zobristConstantSideBlack = keys.next()
}
