package board

import (
	"github.com/daystram/chesscore/position"
)

var (
	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	precomputed *Tables

	maskCastleRights = [4 + 1]CastleRights{
		CastleDirectionWhiteRight: 0b0001,
		CastleDirectionWhiteLeft:  0b0010,
		CastleDirectionBlackRight: 0b0100,
		CastleDirectionBlackLeft:  0b1000,
	}

	// rights revoked when a move starts or ends on the square
	maskCastleRightsLost = [position.TotalCells]CastleRights{
		position.A1: 0b0010,
		position.H1: 0b0001,
		position.A8: 0b1000,
		position.H8: 0b0100,
	}

	posCastling = [4 + 1][6 + 1][2]position.Pos{
		CastleDirectionWhiteRight: {
			PieceTypeKing: {position.E1, position.G1},
			PieceTypeRook: {position.H1, position.F1},
		},
		CastleDirectionWhiteLeft: {
			PieceTypeKing: {position.E1, position.C1},
			PieceTypeRook: {position.A1, position.D1},
		},
		CastleDirectionBlackRight: {
			PieceTypeKing: {position.E8, position.G8},
			PieceTypeRook: {position.H8, position.F8},
		},
		CastleDirectionBlackLeft: {
			PieceTypeKing: {position.E8, position.C8},
			PieceTypeRook: {position.A8, position.D8},
		},
	}

	// squares between king and rook
	posCastlingEmpty = [4 + 1][]position.Pos{
		CastleDirectionWhiteRight: {position.F1, position.G1},
		CastleDirectionWhiteLeft:  {position.D1, position.C1, position.B1},
		CastleDirectionBlackRight: {position.F8, position.G8},
		CastleDirectionBlackLeft:  {position.D8, position.C8, position.B8},
	}

	// squares the king stands on or crosses
	posCastlingSafe = [4 + 1][]position.Pos{
		CastleDirectionWhiteRight: {position.E1, position.F1, position.G1},
		CastleDirectionWhiteLeft:  {position.E1, position.D1, position.C1},
		CastleDirectionBlackRight: {position.E8, position.F8, position.G8},
		CastleDirectionBlackLeft:  {position.E8, position.D8, position.C8},
	}
)

func init() {
	precomputed = newTables()
	initZobrist()
}
