package board

// PieceType is the colourless kind of a piece.
type PieceType uint8

const (
	PieceTypeNone PieceType = iota
	PieceTypePawn
	PieceTypeKnight
	PieceTypeBishop
	PieceTypeRook
	PieceTypeQueen
	PieceTypeKing
)

// Piece packs a PieceType into bits 0-2 and its Side into bit 3. The zero
// value is the empty square.
type Piece uint8

const (
	PieceNone Piece = 0

	pieceTypeMask  Piece = 0b0111
	pieceSideMask  Piece = 0b1000
	pieceSideShift       = 3
)

// PawnPromoteCandidates represents the candidates for pawn promotion.
var PawnPromoteCandidates = []PieceType{PieceTypeQueen, PieceTypeKnight, PieceTypeBishop, PieceTypeRook}

func NewPiece(t PieceType, s Side) Piece {
	if t == PieceTypeNone {
		return PieceNone
	}
	return Piece(t)&pieceTypeMask | Piece(s)<<pieceSideShift
}

func (p Piece) Type() PieceType {
	return PieceType(p & pieceTypeMask)
}

// Side is meaningless for PieceNone.
func (p Piece) Side() Side {
	return Side((p & pieceSideMask) >> pieceSideShift)
}

func (p Piece) IsEmpty() bool {
	return p.Type() == PieceTypeNone
}

func (p Piece) IsSide(s Side) bool {
	return !p.IsEmpty() && p.Side() == s
}

func (p Piece) IsSlider() bool {
	return p.IsOrthogonalSlider() || p.IsDiagonalSlider()
}

func (p Piece) IsOrthogonalSlider() bool {
	t := p.Type()
	return t == PieceTypeRook || t == PieceTypeQueen
}

func (p Piece) IsDiagonalSlider() bool {
	t := p.Type()
	return t == PieceTypeBishop || t == PieceTypeQueen
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return ""
	}
	return p.Side().String() + " " + p.Type().Name()
}

func (p Piece) SymbolFEN() string {
	return p.Type().SymbolFEN(p.Side())
}

func (p Piece) SymbolUnicode() string {
	return p.Type().SymbolUnicode(p.Side())
}

func pieceFromSymbol(sym rune) (Piece, bool) {
	s := SideWhite
	if sym >= 'a' && sym <= 'z' {
		s = SideBlack
		sym &^= 0x20
	}
	var t PieceType
	switch sym {
	case 'P':
		t = PieceTypePawn
	case 'N':
		t = PieceTypeKnight
	case 'B':
		t = PieceTypeBishop
	case 'R':
		t = PieceTypeRook
	case 'Q':
		t = PieceTypeQueen
	case 'K':
		t = PieceTypeKing
	default:
		return PieceNone, false
	}
	return NewPiece(t, s), true
}

func (t PieceType) String() string {
	return t.Name()
}

func (t PieceType) Name() string {
	switch t {
	case PieceTypePawn:
		return "Pawn"
	case PieceTypeKnight:
		return "Knight"
	case PieceTypeBishop:
		return "Bishop"
	case PieceTypeRook:
		return "Rook"
	case PieceTypeQueen:
		return "Queen"
	case PieceTypeKing:
		return "King"
	default:
		return ""
	}
}

func (t PieceType) SymbolFEN(s Side) string {
	var sym rune
	switch t {
	case PieceTypePawn:
		sym = 'P'
	case PieceTypeKnight:
		sym = 'N'
	case PieceTypeBishop:
		sym = 'B'
	case PieceTypeRook:
		sym = 'R'
	case PieceTypeQueen:
		sym = 'Q'
	case PieceTypeKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (t PieceType) SymbolUnicode(s Side) string {
	switch s {
	case SideWhite:
		switch t {
		case PieceTypePawn:
			return "♙"
		case PieceTypeKnight:
			return "♘"
		case PieceTypeBishop:
			return "♗"
		case PieceTypeRook:
			return "♖"
		case PieceTypeQueen:
			return "♕"
		case PieceTypeKing:
			return "♔"
		}
	case SideBlack:
		switch t {
		case PieceTypePawn:
			return "♟"
		case PieceTypeKnight:
			return "♞"
		case PieceTypeBishop:
			return "♝"
		case PieceTypeRook:
			return "♜"
		case PieceTypeQueen:
			return "♛"
		case PieceTypeKing:
			return "♚"
		}
	}
	return ""
}
