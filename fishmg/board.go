package fishmg

import (
	"fmt"
	"strings"
)

// Board holds piece placement as one bitboard per (color, piece type) plus a
// per-color aggregate in slot All.
type Board struct {
	bb [2][7]Bitboard
}

// Pieces returns the bitboard of c's pieces of type pt. All gives the aggregate.
func (b *Board) Pieces(c Color, pt PieceType) Bitboard { return b.bb[c][pt] }

// Occupancy returns the aggregate of c.
func (b *Board) Occupancy(c Color) Bitboard { return b.bb[c][All] }

// AllOccupancy returns the union of both colors.
func (b *Board) AllOccupancy() Bitboard { return b.bb[White][All] | b.bb[Black][All] }

// King returns the square of c's king, or NoSquare if there is none.
func (b *Board) King(c Color) Square { return SquareOf(b.bb[c][King]) }

func (b *Board) addPiece(c Color, pt PieceType, sq Square) {
	m := sq.Bitboard()
	b.bb[c][pt] |= m
	b.bb[c][All] |= m
}

func (b *Board) removePiece(c Color, pt PieceType, sq Square) {
	m := ^sq.Bitboard()
	b.bb[c][pt] &= m
	b.bb[c][All] &= m
}

func (b *Board) movePiece(c Color, pt PieceType, from, to Square) {
	m := from.Bitboard() | to.Bitboard()
	b.bb[c][pt] ^= m
	b.bb[c][All] ^= m
}

// PieceOn returns the piece occupying sq. ok is false for an empty square.
func (b *Board) PieceOn(sq Square) (pt PieceType, c Color, ok bool) {
	m := sq.Bitboard()
	for _, color := range [2]Color{White, Black} {
		if b.bb[color][All]&m == 0 {
			continue
		}
		for p := Pawn; p < All; p++ {
			if b.bb[color][p]&m != 0 {
				return p, color, true
			}
		}
		panic(fmt.Errorf("%w: %s set in %s aggregate but in no piece board", ErrInconsistentBoard, sq, color))
	}
	return NoPieceType, White, false
}

// PieceAt returns the piece occupying sq and panics if the square is empty.
// Callers use it where a piece is required by construction.
func (b *Board) PieceAt(sq Square) (PieceType, Color) {
	pt, c, ok := b.PieceOn(sq)
	if !ok {
		panic(fmt.Errorf("%w: no piece on %s", ErrInconsistentBoard, sq))
	}
	return pt, c
}

// Validate checks the aggregate and disjointness invariants.
func (b *Board) Validate() error {
	for _, c := range [2]Color{White, Black} {
		var union Bitboard
		for pt := Pawn; pt < All; pt++ {
			if union&b.bb[c][pt] != 0 {
				return fmt.Errorf("%w: %s %s overlaps another piece board", ErrInconsistentBoard, c, pt)
			}
			union |= b.bb[c][pt]
		}
		if union != b.bb[c][All] {
			return fmt.Errorf("%w: %s aggregate %#x != union %#x", ErrInconsistentBoard, c, uint64(b.bb[c][All]), uint64(union))
		}
	}
	if b.bb[White][All]&b.bb[Black][All] != 0 {
		return fmt.Errorf("%w: colors overlap", ErrInconsistentBoard)
	}
	return nil
}

// String draws the board with rank and file labels, White pieces upper case.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  +-----------------+\n")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d | ", rank+1)
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			if pt, c, ok := b.PieceOn(sq); ok {
				sb.WriteByte(pt.Letter(c))
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("  +-----------------+\n")
	sb.WriteString("    a b c d e f g h\n")
	return sb.String()
}
