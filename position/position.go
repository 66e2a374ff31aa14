package position

import (
	"errors"
	"fmt"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar Pos = 8

	// TotalCells is the number of squares on the board.
	TotalCells = int(MaxComponentScalar) * int(MaxComponentScalar)

	// NoPos marks the absence of a square, e.g. no en passant target.
	NoPos Pos = -1
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos is a square index in little-endian rank-file order: a1=0, h1=7, a8=56, h8=63.
type Pos int8

func NewPos(x, y Pos) Pos {
	return y*MaxComponentScalar + x
}

func NewPosFromNotation(n string) (Pos, error) {
	x, y, err := notationToXY(n)
	if err != nil {
		return NoPos, fmt.Errorf("%w: %q", err, n)
	}
	return NewPos(x, y), nil
}

func (p Pos) String() string {
	if !p.Valid() {
		return "-"
	}
	return p.Notation()
}

func (p Pos) Notation() string {
	if !p.Valid() {
		return ""
	}
	return string(rune('a'+p.X())) + string(rune('1'+p.Y()))
}

// Valid reports whether p addresses a square on the board.
func (p Pos) Valid() bool {
	return 0 <= p && int(p) < TotalCells
}

func (p Pos) X() Pos {
	return p % MaxComponentScalar
}

func (p Pos) Y() Pos {
	return p / MaxComponentScalar
}

// InBounds reports whether the file/rank pair lies on the board.
func InBounds(x, y Pos) bool {
	return 0 <= x && x < MaxComponentScalar && 0 <= y && y < MaxComponentScalar
}

func notationToXY(n string) (Pos, Pos, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	pX, err := notationToX(n[0])
	if err != nil {
		return 0, 0, err
	}
	pY, err := notationToY(n[1])
	if err != nil {
		return 0, 0, err
	}
	return pX, pY, nil
}

func notationToX(x byte) (Pos, error) {
	if x < 'a' || x > 'h' {
		return 0, ErrInvalidNotation
	}
	return Pos(x - 'a'), nil
}

func notationToY(y byte) (Pos, error) {
	if y < '1' || y > '8' {
		return 0, ErrInvalidNotation
	}
	return Pos(y - '1'), nil
}

func (p Pos) NotationComponentX() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('a' + p))
}
