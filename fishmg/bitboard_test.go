package fishmg

import (
	"strings"
	"testing"
)

func TestLowestSetBitAndCount(t *testing.T) {
	cases := []struct {
		in       Bitboard
		lowest   Bitboard
		popcnt   int
		squareOf Square
	}{
		{0, 0, 0, NoSquare},
		{0b1100, 0b100, 2, 2},
		{FileA, 1, 8, A1},
		{Bitboard(1) << 63, Bitboard(1) << 63, 1, H8},
		{^Bitboard(0), 1, 64, A1},
	}
	for _, tc := range cases {
		if got := LowestSetBit(tc.in); got != tc.lowest {
			t.Errorf("LowestSetBit(%#x) = %#x, want %#x", uint64(tc.in), uint64(got), uint64(tc.lowest))
		}
		if got := CountSetBits(tc.in); got != tc.popcnt {
			t.Errorf("CountSetBits(%#x) = %d, want %d", uint64(tc.in), got, tc.popcnt)
		}
		if got := SquareOf(tc.in); got != tc.squareOf {
			t.Errorf("SquareOf(%#x) = %v, want %v", uint64(tc.in), got, tc.squareOf)
		}
	}
}

func TestSquaresIterator(t *testing.T) {
	set := A1.Bitboard() | E1.Bitboard() | H8.Bitboard()
	it := Squares(set)
	var got []Bitboard
	for {
		sq, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, sq)
	}
	want := []Bitboard{A1.Bitboard(), E1.Bitboard(), H8.Bitboard()}
	if len(got) != len(want) {
		t.Fatalf("iterated %d squares, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("step %d: got %#x want %#x", i, uint64(got[i]), uint64(want[i]))
		}
	}
	if _, ok := it.Next(); ok {
		t.Fatalf("exhausted iterator yielded again")
	}
}

func TestShiftsRespectEdges(t *testing.T) {
	if east(FileH) != 0 {
		t.Errorf("east(FileH) wrapped: %#x", uint64(east(FileH)))
	}
	if west(FileA) != 0 {
		t.Errorf("west(FileA) wrapped: %#x", uint64(west(FileA)))
	}
	if northEast(FileH) != 0 || southEast(FileH) != 0 {
		t.Errorf("diagonal east shift wrapped")
	}
	if northWest(FileA) != 0 || southWest(FileA) != 0 {
		t.Errorf("diagonal west shift wrapped")
	}
	if north(Rank8) != 0 || south(Rank1) != 0 {
		t.Errorf("vertical shift kept bits off the board")
	}
}

func TestLeaperTables(t *testing.T) {
	if got, want := knightMoves[A1], Square(17).Bitboard()|Square(10).Bitboard(); got != want {
		t.Errorf("knight a1: got\n%vwant\n%v", got, want)
	}
	if got := CountSetBits(knightMoves[Square(27)]); got != 8 {
		t.Errorf("knight d4 targets = %d, want 8", got)
	}
	if got := CountSetBits(kingMoves[H8]); got != 3 {
		t.Errorf("king h8 targets = %d, want 3", got)
	}
	if got := CountSetBits(kingMoves[Square(36)]); got != 8 {
		t.Errorf("king e5 targets = %d, want 8", got)
	}
	if got := pawnAttacks[White][Square(8)]; got != Square(17).Bitboard() {
		t.Errorf("white pawn a2 attacks: got %#x", uint64(got))
	}
	if got := pawnAttacks[Black][Square(55)]; got != Square(46).Bitboard() {
		t.Errorf("black pawn h7 attacks: got %#x", uint64(got))
	}
}

func TestBitboardString(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(Rank1.String()), "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 lines, got %d", len(lines))
	}
	if lines[7] != "1 1 1 1 1 1 1 1" {
		t.Errorf("rank 1 line = %q", lines[7])
	}
	if lines[0] != "0 0 0 0 0 0 0 0" {
		t.Errorf("rank 8 line = %q", lines[0])
	}
}
