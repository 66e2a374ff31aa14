package board

import (
	"fmt"
	"strings"

	"github.com/daystram/chesscore/position"
)

// PromotionMode selects which under-promotions quiet generation emits. The
// queen promotion is always emitted.
type PromotionMode uint8

const (
	PromotionModeAll PromotionMode = iota
	PromotionModeQueenOnly
	PromotionModeQueenAndKnight
)

func (m PromotionMode) String() string {
	switch m {
	case PromotionModeAll:
		return "all"
	case PromotionModeQueenOnly:
		return "queen"
	case PromotionModeQueenAndKnight:
		return "queen-knight"
	default:
		return ""
	}
}

func ParsePromotionMode(s string) (PromotionMode, error) {
	switch strings.ToLower(s) {
	case "", "all":
		return PromotionModeAll, nil
	case "queen":
		return PromotionModeQueenOnly, nil
	case "queen-knight":
		return PromotionModeQueenAndKnight, nil
	default:
		return PromotionModeAll, fmt.Errorf("unknown promotion mode %q", s)
	}
}

func (m PromotionMode) allows(t PieceType) bool {
	switch m {
	case PromotionModeQueenOnly:
		return t == PieceTypeQueen
	case PromotionModeQueenAndKnight:
		return t == PieceTypeQueen || t == PieceTypeKnight
	default:
		return true
	}
}

var (
	pawnPushOffset = [2]position.Pos{SideWhite: 8, SideBlack: -8}
	pawnStartRank  = [2]position.Pos{SideWhite: position.Rank2, SideBlack: position.Rank7}
	pawnLastRank   = [2]position.Pos{SideWhite: position.Rank8, SideBlack: position.Rank1}
	// rank a pawn stands on when it may capture en passant
	pawnEnPassantRank = [2]position.Pos{SideWhite: position.Rank5, SideBlack: position.Rank4}

	castleDirections = [2][2]CastleDirection{
		SideWhite: {CastleDirectionWhiteRight, CastleDirectionWhiteLeft},
		SideBlack: {CastleDirectionBlackRight, CastleDirectionBlackLeft},
	}
)

// MoveGenerator produces pseudo-legal moves: every move obeys piece movement
// and occupancy, but may leave the mover's own king in check.
type MoveGenerator struct {
	PromotionMode PromotionMode

	tables *Tables
}

type moveGeneratorConfig struct {
	promotionMode PromotionMode
}

type MoveGeneratorOption func(*moveGeneratorConfig)

func WithPromotionMode(m PromotionMode) MoveGeneratorOption {
	return func(cfg *moveGeneratorConfig) {
		cfg.promotionMode = m
	}
}

func NewMoveGenerator(opts ...MoveGeneratorOption) *MoveGenerator {
	cfg := &moveGeneratorConfig{
		promotionMode: PromotionModeAll,
	}
	for _, f := range opts {
		f(cfg)
	}
	return &MoveGenerator{
		PromotionMode: cfg.promotionMode,
		tables:        PrecomputedTables(),
	}
}

// GenerateMoves resets list and fills it with the moves of the side to move,
// scanning squares in ascending order. When capturesOnly is set, quiet moves
// are skipped. It returns the number of moves generated.
func (g *MoveGenerator) GenerateMoves(b *Board, capturesOnly bool, list *MoveList) int {
	list.Reset()
	turn := b.turn
	for pos := position.Pos(0); pos.Valid(); pos++ {
		p := b.cells.Get(pos)
		if !p.IsSide(turn) {
			continue
		}
		switch p.Type() {
		case PieceTypePawn:
			g.pawnMoves(b, pos, turn, capturesOnly, list)
		case PieceTypeKnight:
			g.stepMoves(b, g.tables.KnightDestinations(pos), pos, turn, capturesOnly, list)
		case PieceTypeBishop:
			g.slideMoves(b, pos, turn, false, true, capturesOnly, list)
		case PieceTypeRook:
			g.slideMoves(b, pos, turn, true, false, capturesOnly, list)
		case PieceTypeQueen:
			g.slideMoves(b, pos, turn, true, true, capturesOnly, list)
		case PieceTypeKing:
			g.stepMoves(b, g.tables.KingDestinations(pos), pos, turn, capturesOnly, list)
			if !capturesOnly {
				g.castleMoves(b, pos, turn, list)
			}
		case PieceTypeNone:
		}
	}
	return list.Len()
}

// Moves is a convenience wrapper returning a fresh slice.
func (g *MoveGenerator) Moves(b *Board, capturesOnly bool) []Move {
	var list MoveList
	g.GenerateMoves(b, capturesOnly, &list)
	return append([]Move(nil), list.Slice()...)
}

func (g *MoveGenerator) slideMoves(b *Board, from position.Pos, turn Side, orthogonal, diagonal, capturesOnly bool, list *MoveList) {
	walk := func(ray []position.Pos) {
		for _, to := range ray {
			target := b.cells.Get(to)
			if target.IsEmpty() {
				if !capturesOnly {
					list.Add(newMove(from, to, MoveFlagNone))
				}
				continue
			}
			if !target.IsSide(turn) {
				list.Add(newMove(from, to, MoveFlagNone))
			}
			return
		}
	}
	if orthogonal {
		for i := range rookDirections {
			walk(g.tables.RookRay(from, i))
		}
	}
	if diagonal {
		for i := range bishopDirections {
			walk(g.tables.BishopRay(from, i))
		}
	}
}

func (g *MoveGenerator) stepMoves(b *Board, dst []position.Pos, from position.Pos, turn Side, capturesOnly bool, list *MoveList) {
	for _, to := range dst {
		target := b.cells.Get(to)
		if target.IsSide(turn) {
			continue
		}
		if target.IsEmpty() && capturesOnly {
			continue
		}
		list.Add(newMove(from, to, MoveFlagNone))
	}
}

func (g *MoveGenerator) castleMoves(b *Board, from position.Pos, turn Side, list *MoveList) {
	if !b.castleRights.IsSideAllowed(turn) {
		return
	}
	rook := NewPiece(PieceTypeRook, turn)
	for _, d := range castleDirections[turn] {
		if !b.castleRights.IsAllowed(d) {
			continue
		}
		hopsKing := posCastling[d][PieceTypeKing]
		if from != hopsKing[0] || b.cells.Get(posCastling[d][PieceTypeRook][0]) != rook {
			continue
		}
		clear := true
		for _, pos := range posCastlingEmpty[d] {
			if !b.cells.Get(pos).IsEmpty() {
				clear = false
				break
			}
		}
		if clear {
			list.Add(newMove(from, hopsKing[1], MoveFlagCastle))
		}
	}
}

func (g *MoveGenerator) pawnMoves(b *Board, from position.Pos, turn Side, capturesOnly bool, list *MoveList) {
	push := pawnPushOffset[turn]
	promoting := (from + push).Y() == pawnLastRank[turn]

	// pushes
	if one := from + push; b.cells.Get(one).IsEmpty() {
		if promoting {
			g.promotions(from, one, capturesOnly, list)
		} else if !capturesOnly {
			list.Add(newMove(from, one, MoveFlagNone))
			if two := one + push; from.Y() == pawnStartRank[turn] && b.cells.Get(two).IsEmpty() {
				list.Add(newMove(from, two, MoveFlagPawnTwo))
			}
		}
	}

	// captures, west then east
	for _, df := range [2]position.Pos{-1, 1} {
		x := from.X() + df
		if x < 0 || x >= Width {
			continue
		}
		to := from + push + df
		if to == b.enPassant && from.Y() == pawnEnPassantRank[turn] {
			list.Add(newMove(from, to, MoveFlagEnPassant))
			continue
		}
		target := b.cells.Get(to)
		if target.IsEmpty() || target.IsSide(turn) {
			continue
		}
		if promoting {
			g.promotions(from, to, capturesOnly, list)
		} else {
			list.Add(newMove(from, to, MoveFlagNone))
		}
	}
}

func (g *MoveGenerator) promotions(from, to position.Pos, capturesOnly bool, list *MoveList) {
	for _, t := range PawnPromoteCandidates {
		if t != PieceTypeQueen && (capturesOnly || !g.PromotionMode.allows(t)) {
			continue
		}
		list.Add(newMove(from, to, promoteFlag(t)))
	}
}
