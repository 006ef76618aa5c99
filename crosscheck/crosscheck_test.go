package crosscheck

import (
	"testing"

	gm "github.com/boweihan/TSFish/fishmg"
)

func TestDivideAgrees(t *testing.T) {
	tests := []struct {
		fen   string
		depth int
		total uint64
	}{
		{gm.FENStartPos, 3, 8902},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2, 2039},
		{"rnbq1bnr/ppppP1pp/5k2/8/8/2K5/PPP1pPPP/RNBQ1BNR w - - 0 8", 2, 1412},
		{"r3k2r/4pp1p/1pnq1n1b/pBPp2p1/4P1b1/N1PQBP2/PP2N1PP/1R2K2R w Kkq a6 0 12", 2, 1844},
	}
	for _, tc := range tests {
		rep, err := Divide(tc.fen, tc.depth)
		if err != nil {
			t.Fatalf("Divide(%s): %v", tc.fen, err)
		}
		if !rep.OK() {
			t.Fatalf("%s: generators disagree: %v", tc.fen, rep.Mismatches)
		}
		if rep.FishmgTotal != tc.total {
			t.Fatalf("%s: total %d, want %d", tc.fen, rep.FishmgTotal, tc.total)
		}
		if rep.DragontoothTotal != tc.total || rep.GooseTotal != tc.total {
			t.Fatalf("%s: reference totals dragontooth=%d goosemg=%d, want %d",
				tc.fen, rep.DragontoothTotal, rep.GooseTotal, tc.total)
		}
	}
}

func TestDivideRejectsBadInput(t *testing.T) {
	if _, err := Divide(gm.FENStartPos, 0); err == nil {
		t.Fatalf("depth 0 accepted")
	}
	if _, err := Divide("not a fen", 1); err == nil {
		t.Fatalf("bad FEN accepted")
	}
}

func TestMismatchString(t *testing.T) {
	m := Mismatch{Move: "e2e4", Fishmg: 20, Dragontooth: -1, Goose: 20}
	if got, want := m.String(), "e2e4: fishmg=20 dragontooth=-1 goosemg=20"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestReportOKNeedsAllTotals(t *testing.T) {
	rep := Report{FishmgTotal: 20, DragontoothTotal: 20, GooseTotal: 19}
	if rep.OK() {
		t.Fatalf("report with a diverging goosemg total is OK")
	}
	rep.GooseTotal = 20
	if !rep.OK() {
		t.Fatalf("agreeing report is not OK")
	}
}
