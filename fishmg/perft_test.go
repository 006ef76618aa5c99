package fishmg_test

import (
	"testing"

	"github.com/boweihan/TSFish/fishmg"
)

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		nodes []uint64 // indexed by depth-1
	}{
		{"initial", fishmg.FENStartPos, []uint64{20, 400, 8902, 197281}},
		{"promotion", fenPromotion, []uint64{47, 1412, 58478}},
		{"castling", fenCastling, []uint64{46, 1844, 82054}},
		{"kiwipete", fenKiwipete, []uint64{48, 2039, 97862}},
		{"en passant", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", []uint64{5, 19}},
		{"promotion race", "1n5k/P7/8/8/8/8/8/7K w - - 0 1", []uint64{11}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := mustParse(t, tc.fen)
			for i, want := range tc.nodes {
				depth := i + 1
				if testing.Short() && want > 10000 {
					t.Skipf("skipping depth %d in short mode", depth)
				}
				if got := p.Perft(depth); got != want {
					t.Fatalf("perft depth%d: got %d want %d", depth, got, want)
				}
			}
			if got := p.FEN(); got != tc.fen {
				t.Fatalf("perft left the position changed: %s", got)
			}
		})
	}
}

func TestPerftDepthZeroAndOne(t *testing.T) {
	p := mustParse(t, fenKiwipete)
	if got := p.Perft(0); got != 1 {
		t.Fatalf("perft(0) = %d, want 1", got)
	}
	if got, want := p.Perft(1), uint64(len(p.GenerateLegalMoves())); got != want {
		t.Fatalf("perft(1) = %d, want %d", got, want)
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	p := mustParse(t, fenCastling)
	div := p.PerftDivide(2)
	if len(div) != 46 {
		t.Fatalf("divide has %d root moves, want 46", len(div))
	}
	var total uint64
	for _, n := range div {
		total += n
	}
	if total != 1844 {
		t.Fatalf("divide total %d, want 1844", total)
	}
	if got := len(p.PerftDivide(0)); got != 0 {
		t.Fatalf("divide(0) has %d entries", got)
	}
}

func TestProfilerCountsHotPaths(t *testing.T) {
	p := fishmg.NewPosition()
	prof := fishmg.NewProfiler()
	p.SetProfiler(prof)
	p.Perft(2)

	calls := map[fishmg.Op]uint64{}
	for _, e := range prof.Report() {
		calls[e.Op] = e.Calls
	}
	if calls[fishmg.OpGenerate] != 21 {
		t.Errorf("generate calls = %d, want 21", calls[fishmg.OpGenerate])
	}
	if calls[fishmg.OpMake] != calls[fishmg.OpUndo] {
		t.Errorf("make %d != undo %d", calls[fishmg.OpMake], calls[fishmg.OpUndo])
	}
	if calls[fishmg.OpMake] < 20 {
		t.Errorf("make calls = %d, want at least 20", calls[fishmg.OpMake])
	}

	prof.Reset()
	if len(prof.Report()) != 0 {
		t.Fatalf("report not empty after reset")
	}
	p.SetProfiler(nil)
	p.Perft(1)
	if len(prof.Report()) != 0 {
		t.Fatalf("detached profiler still counting")
	}
}
