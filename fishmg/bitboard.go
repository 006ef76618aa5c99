package fishmg

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares. Bit i corresponds to square i (a1 = 0, h8 = 63).
type Bitboard uint64

// File and rank masks.
const (
	FileA Bitboard = 0x0101010101010101
	FileB Bitboard = FileA << 1
	FileG Bitboard = FileA << 6
	FileH Bitboard = FileA << 7

	Rank1 Bitboard = 0x00000000000000FF
	Rank2 Bitboard = Rank1 << (8 * 1)
	Rank3 Bitboard = Rank1 << (8 * 2)
	Rank6 Bitboard = Rank1 << (8 * 5)
	Rank7 Bitboard = Rank1 << (8 * 6)
	Rank8 Bitboard = Rank1 << (8 * 7)
)

// Edge masks. Shifting east or west must be followed by one of these so that
// bits do not wrap from one side of the board to the other.
const (
	NotAFile  Bitboard = ^FileA
	NotHFile  Bitboard = ^FileH
	NotABFile Bitboard = ^(FileA | FileB)
	NotGHFile Bitboard = ^(FileG | FileH)
)

// LowestSetBit isolates the least significant set bit of b. Zero stays zero.
func LowestSetBit(b Bitboard) Bitboard {
	return b & -b
}

// CountSetBits returns the population count of b.
func CountSetBits(b Bitboard) int {
	return bits.OnesCount64(uint64(b))
}

// SquareOf returns the index of the lowest set bit of b, or NoSquare for an empty set.
func SquareOf(b Bitboard) Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// popLSB clears the lowest set bit and returns its index.
func popLSB(b *Bitboard) Square {
	sq := Square(bits.TrailingZeros64(uint64(*b)))
	*b &= *b - 1
	return sq
}

// SquareIter walks the set bits of a bitboard from least to most significant,
// yielding single-bit masks. It is consumed as it goes and cannot be restarted.
type SquareIter struct {
	rest Bitboard
}

// Squares returns an iterator over the single-square masks contained in b.
func Squares(b Bitboard) *SquareIter {
	return &SquareIter{rest: b}
}

// Next returns the next single-square mask, or false once the set is exhausted.
func (it *SquareIter) Next() (Bitboard, bool) {
	if it.rest == 0 {
		return 0, false
	}
	low := LowestSetBit(it.rest)
	it.rest ^= low
	return low, true
}

// Has reports whether sq is in b.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bitboard() != 0
}

func north(b Bitboard) Bitboard     { return b << 8 }
func south(b Bitboard) Bitboard     { return b >> 8 }
func east(b Bitboard) Bitboard      { return (b << 1) & NotAFile }
func west(b Bitboard) Bitboard      { return (b >> 1) & NotHFile }
func northEast(b Bitboard) Bitboard { return (b << 9) & NotAFile }
func northWest(b Bitboard) Bitboard { return (b << 7) & NotHFile }
func southEast(b Bitboard) Bitboard { return (b >> 7) & NotAFile }
func southWest(b Bitboard) Bitboard { return (b >> 9) & NotHFile }

// String renders b as an 8x8 grid of 0/1 with rank 8 on top.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if b.Has(Square(rank*8 + file)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
