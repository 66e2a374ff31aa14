package board

import (
	"fmt"
	"iter"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/chesscore/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = position.TotalCells
)

// cells is the mailbox: one packed Piece per square.
type cells [TotalCells]Piece

func (c *cells) Get(pos position.Pos) Piece {
	return c[pos]
}

func (c *cells) Set(pos position.Pos, p Piece) {
	c[pos] = p
}

func (c *cells) Clear() {
	*c = cells{}
}

// Enumerate yields every occupied square in ascending order.
func (c *cells) Enumerate() iter.Seq2[position.Pos, Piece] {
	return func(yield func(position.Pos, Piece) bool) {
		for pos := position.Pos(0); pos.Valid(); pos++ {
			if c[pos].IsEmpty() {
				continue
			}
			if !yield(pos, c[pos]) {
				return
			}
		}
	}
}

type undoRecord struct {
	hash          uint64
	captured      Piece
	capturedPos   position.Pos
	castleRights  CastleRights
	enPassant     position.Pos
	halfMoveClock uint32
	fullMoveClock uint32
}

type checkStatus uint8

const (
	checkUnknown checkStatus = iota
	checkNo
	checkYes
)

// Board is a mutable chess position. It is changed only through MakeMove and
// UnmakeMove and must not be shared between goroutines; use Clone instead.
type Board struct {
	cells cells

	// meta
	turn          Side
	castleRights  CastleRights
	enPassant     position.Pos
	halfMoveClock uint32
	fullMoveClock uint32

	// cache
	kingPos [2]position.Pos
	inCheck checkStatus
	hash    uint64

	// history, always the same length
	moves []Move
	undos []undoRecord
}

type boardConfig struct {
	fen string
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

// NewBoard returns the starting position unless WithFEN is given. On error no
// Board is returned.
func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{}
	if err := UnmarshalFEN(cfg.fen, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Start returns the standard opening position.
func Start() *Board {
	b, err := NewBoard()
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Board) PieceAt(pos position.Pos) Piece {
	return b.cells.Get(pos)
}

// Pieces yields a snapshot of the occupied squares taken when it is called.
func (b *Board) Pieces() iter.Seq2[position.Pos, Piece] {
	snapshot := b.cells
	return snapshot.Enumerate()
}

func (b *Board) Turn() Side {
	return b.turn
}

func (b *Board) CastleRights() CastleRights {
	return b.castleRights
}

// EnPassant returns position.NoPos when no en passant capture is available.
func (b *Board) EnPassant() position.Pos {
	return b.enPassant
}

func (b *Board) HalfMoveClock() uint32 {
	return b.halfMoveClock
}

func (b *Board) FullMoveClock() uint32 {
	return b.fullMoveClock
}

// KingPos returns position.NoPos if side s has no king on the board.
func (b *Board) KingPos(s Side) position.Pos {
	return b.kingPos[s]
}

func (b *Board) Hash() uint64 {
	return b.hash
}

// Ply returns the number of moves that can still be unmade.
func (b *Board) Ply() int {
	return len(b.moves)
}

// History returns a copy of the moves made so far, oldest first.
func (b *Board) History() []Move {
	return append([]Move(nil), b.moves...)
}

func (b *Board) Clone() *Board {
	bb := *b
	bb.moves = append(make([]Move, 0, cap(b.moves)), b.moves...)
	bb.undos = append(make([]undoRecord, 0, cap(b.undos)), b.undos...)
	return &bb
}

func (b *Board) FEN() string {
	fen, _ := MarshalFEN(b)
	return fen
}

// computeHash derives the Zobrist key from scratch.
func (b *Board) computeHash() uint64 {
	var h uint64
	for pos, p := range b.cells.Enumerate() {
		h ^= zobristConstantPiece[p][pos]
	}
	h ^= zobristConstantCastleRights[b.castleRights]
	if b.enPassant.Valid() {
		h ^= zobristConstantEnPassant[b.enPassant]
	}
	if b.turn == SideBlack {
		h ^= zobristConstantSideBlack
	}
	return h
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := position.Pos(0); x < Width; x++ {
			sym := b.cells.Get(position.NewPos(x, y)).SymbolFEN()
			if sym == "" {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentX()))
	}
	return builder.String()
}

var (
	drawLabel     = color.New(color.Bold)
	drawDarkCell  = color.New(color.FgBlack, color.BgGreen)
	drawLightCell = color.New(color.FgBlack, color.BgHiWhite)
)

// Draw renders the board with terminal colours. Colour output follows
// color.NoColor.
func (b *Board) Draw() string {
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		_, _ = builder.WriteString(drawLabel.Sprintf(" %d ", y+1))
		for x := position.Pos(0); x < Width; x++ {
			sym := b.cells.Get(position.NewPos(x, y)).SymbolUnicode()
			if sym == "" {
				sym = " "
			}
			cell := drawLightCell
			if x%2^y%2 == 0 {
				cell = drawDarkCell
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(drawLabel.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}

func (b *Board) DebugString() string {
	return fmt.Sprintf("turn: %s\ncast: %04b\nenps: %s\nhalf: %4d\nfull: %4d\nhash: %016x",
		b.turn, b.castleRights, b.enPassant, b.halfMoveClock, b.fullMoveClock, b.hash)
}
