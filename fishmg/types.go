package fishmg

import "fmt"

// Color is the side a piece belongs to. It doubles as the first index of the board arrays.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PieceType indexes the per-color bitboard array. All is the aggregate slot.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	All

	NoPieceType PieceType = 0xFF
)

var pieceLetters = [6]byte{'p', 'n', 'b', 'r', 'q', 'k'}

// Letter returns the FEN letter for the piece, upper case for White.
func (pt PieceType) Letter(c Color) byte {
	if pt >= All {
		return '?'
	}
	l := pieceLetters[pt]
	if c == White {
		l -= 'a' - 'A'
	}
	return l
}

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	case All:
		return "all"
	}
	return "none"
}

// Square represents a board position (0-63), a1 = 0, h8 = 63.
type Square int8

const NoSquare Square = -1

// Named squares used by castling and tests.
const (
	A1 Square = 0
	B1 Square = 1
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	A8 Square = 56
	B8 Square = 57
	C8 Square = 58
	D8 Square = 59
	E8 Square = 60
	F8 Square = 61
	G8 Square = 62
	H8 Square = 63
)

// File returns the file index, 0 for the a-file.
func (sq Square) File() int { return int(sq) & 7 }

// Rank returns the rank index, 0 for the first rank.
func (sq Square) Rank() int { return int(sq) >> 3 }

// Bitboard returns the single-bit mask for sq. NoSquare maps to the empty set.
func (sq Square) Bitboard() Bitboard {
	if sq < 0 || sq > 63 {
		return 0
	}
	return Bitboard(1) << uint(sq)
}

func (sq Square) String() string {
	if sq < 0 || sq > 63 {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// ParseSquare converts algebraic notation such as "e4" into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("bad square %q", s)
	}
	return Square(int(s[1]-'1')*8 + int(s[0]-'a')), nil
}

// Castling rights bit flags
type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

// Has reports whether every flag in r is set.
func (cr CastlingRights) Has(r CastlingRights) bool { return cr&r == r }

func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	var out []byte
	if cr.Has(WhiteKingSide) {
		out = append(out, 'K')
	}
	if cr.Has(WhiteQueenSide) {
		out = append(out, 'Q')
	}
	if cr.Has(BlackKingSide) {
		out = append(out, 'k')
	}
	if cr.Has(BlackQueenSide) {
		out = append(out, 'q')
	}
	return string(out)
}

// rightsOf returns both castling flags belonging to c.
func rightsOf(c Color) CastlingRights {
	if c == White {
		return WhiteKingSide | WhiteQueenSide
	}
	return BlackKingSide | BlackQueenSide
}

// cornerRights maps a rook home square to the castling right tied to it.
func cornerRights(sq Square) CastlingRights {
	switch sq {
	case H1:
		return WhiteKingSide
	case A1:
		return WhiteQueenSide
	case H8:
		return BlackKingSide
	case A8:
		return BlackQueenSide
	}
	return NoCastling
}

// GameState is the non-placement part of a position.
type GameState struct {
	ActiveColor    Color
	Castling       CastlingRights
	EnPassant      Square
	HalfMoveClock  int
	FullMoveNumber int
}
