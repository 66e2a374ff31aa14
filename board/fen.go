package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/daystram/chesscore/position"
)

var (
	ErrInvalidFEN = errors.New("invalid fen")
)

// UnmarshalFEN loads fen into b. The fields are fully validated before b is
// touched, so b keeps its previous state on error.
func UnmarshalFEN(fen string, b *Board) error {
	if b == nil {
		return fmt.Errorf("invalid board")
	}
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	var cs cells
	kingPos := [2]position.Pos{position.NoPos, position.NoPos}
	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	for i, row := range rows {
		y := Height - 1 - position.Pos(i)
		x := position.Pos(0)
		for _, cell := range row {
			if '1' <= cell && cell <= '8' {
				x += position.Pos(cell - '0')
				if x > Width {
					return fmt.Errorf("%w: rank %d overflows", ErrInvalidFEN, y+1)
				}
				continue
			}
			p, ok := pieceFromSymbol(cell)
			if !ok {
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			if x >= Width {
				return fmt.Errorf("%w: rank %d overflows", ErrInvalidFEN, y+1)
			}
			pos := position.NewPos(x, y)
			if p.Type() == PieceTypePawn && (y == position.Rank1 || y == position.Rank8) {
				return fmt.Errorf("%w: pawn on %s", ErrInvalidFEN, pos)
			}
			if p.Type() == PieceTypeKing {
				if kingPos[p.Side()].Valid() {
					return fmt.Errorf("%w: multiple %s kings", ErrInvalidFEN, p.Side())
				}
				kingPos[p.Side()] = pos
			}
			cs.Set(pos, p)
			x++
		}
		if x != Width {
			return fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, y+1, x)
		}
	}

	var turn Side
	switch segments[1] {
	case "w":
		turn = SideWhite
	case "b":
		turn = SideBlack
	default:
		return fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	castleRights, err := parseCastleRights(segments[2])
	if err != nil {
		return err
	}

	enPassant := position.NoPos
	if segments[3] != "-" {
		enPassant, err = position.NewPosFromNotation(segments[3])
		if err != nil {
			return fmt.Errorf("%w: invalid enpassant position: %v", ErrInvalidFEN, err)
		}
	}

	halfMoveClock, err := strconv.ParseUint(segments[4], 10, 32)
	if err != nil {
		return fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}

	fullMoveClock, err := strconv.ParseUint(segments[5], 10, 32)
	if err != nil || fullMoveClock < 1 {
		return fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
	}

	*b = Board{
		cells:         cs,
		turn:          turn,
		castleRights:  castleRights,
		enPassant:     enPassant,
		halfMoveClock: uint32(halfMoveClock),
		fullMoveClock: uint32(fullMoveClock),
		kingPos:       kingPos,
	}
	b.hash = b.computeHash()
	return nil
}

func parseCastleRights(s string) (CastleRights, error) {
	var castleRights CastleRights
	if s == "-" {
		return castleRights, nil
	}
	if s == "" || len(s) > 4 {
		return castleRights, fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
	for _, e := range s {
		var d CastleDirection
		switch e {
		case 'K':
			d = CastleDirectionWhiteRight
		case 'Q':
			d = CastleDirectionWhiteLeft
		case 'k':
			d = CastleDirectionBlackRight
		case 'q':
			d = CastleDirectionBlackLeft
		default:
			return castleRights, fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
		}
		// stricter than most readers, which ignore a repeated letter
		if castleRights.IsAllowed(d) {
			return castleRights, fmt.Errorf("%w: repeated castling right '%s'", ErrInvalidFEN, string(e))
		}
		castleRights.Set(d, true)
	}
	return castleRights, nil
}

func MarshalFEN(b *Board) (string, error) {
	if b == nil {
		return "", fmt.Errorf("invalid board")
	}
	builder := strings.Builder{}
	var skip uint8
	for y := Height - 1; y >= 0; y-- {
		for x := position.Pos(0); x < Width; x++ {
			for skip = 0; x < Width && b.cells.Get(position.NewPos(x, y)).IsEmpty(); x++ {
				skip++
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
			}
			if x < Width {
				_, _ = builder.WriteString(b.cells.Get(position.NewPos(x, y)).SymbolFEN())
			}
		}
		if y > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	if b.turn == SideWhite {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}

	_, _ = builder.WriteString(b.castleRights.String())
	_, _ = builder.WriteRune(' ')

	if !b.enPassant.Valid() {
		_, _ = builder.WriteRune('-')
	} else {
		_, _ = builder.WriteString(b.enPassant.Notation())
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", b.halfMoveClock, b.fullMoveClock))

	return builder.String(), nil
}
