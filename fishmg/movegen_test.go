package fishmg_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/boweihan/TSFish/fishmg"
)

func mustParse(t testing.TB, fen string) *fishmg.Position {
	t.Helper()
	p, err := fishmg.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return p
}

func sq(t testing.TB, s string) fishmg.Square {
	t.Helper()
	v, err := fishmg.ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", s, err)
	}
	return v
}

func moveStrings(moves []fishmg.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

func hasMove(moves []fishmg.Move, uci string) bool {
	for _, m := range moves {
		if m.String() == uci {
			return true
		}
	}
	return false
}

func findMove(moves []fishmg.Move, uci string) (fishmg.Move, bool) {
	for _, m := range moves {
		if m.String() == uci {
			return m, true
		}
	}
	return fishmg.NullMove, false
}

func TestPieceGeneratorsStartPosition(t *testing.T) {
	p := fishmg.NewPosition()

	knight := p.GenerateKnightMoves(sq(t, "b1"), fishmg.White)
	if diff := cmp.Diff([]string{"b1a3", "b1c3"}, moveStrings(knight)); diff != "" {
		t.Errorf("knight b1 mismatch (-want +got):\n%s", diff)
	}

	pawn := p.GeneratePawnMoves(sq(t, "e2"), fishmg.White)
	if len(pawn) != 2 {
		t.Fatalf("pawn e2 pushes = %v", moveStrings(pawn))
	}
	if m, _ := findMove(pawn, "e2e4"); m.Kind() != fishmg.DoublePawnPush {
		t.Errorf("e2e4 kind = %v, want double push", m.Kind())
	}
	if m, _ := findMove(pawn, "e2e3"); m.Kind() != fishmg.Quiet {
		t.Errorf("e2e3 kind = %v, want quiet", m.Kind())
	}
	if got := p.GeneratePawnAttacks(sq(t, "e2"), fishmg.White); len(got) != 0 {
		t.Errorf("pawn e2 attacks = %v", moveStrings(got))
	}

	if got := p.GenerateKingMoves(sq(t, "e1"), fishmg.White, true); len(got) != 0 {
		t.Errorf("king e1 moves = %v", moveStrings(got))
	}
	for _, gen := range []func(fishmg.Square, fishmg.Color) []fishmg.Move{
		p.GenerateBishopMoves, p.GenerateRookMoves, p.GenerateQueenMoves,
	} {
		if got := gen(sq(t, "d1"), fishmg.White); len(got) != 0 {
			t.Errorf("boxed-in slider produced %v", moveStrings(got))
		}
	}
}

func TestSliderRaysStopAtBlockers(t *testing.T) {
	p := mustParse(t, "4k3/8/8/3p4/8/8/3R1P2/4K3 w - - 0 1")
	got := moveStrings(p.GenerateRookMoves(sq(t, "d2"), fishmg.White))
	want := []string{"d2a2", "d2b2", "d2c2", "d2d1", "d2d3", "d2d4", "d2d5", "d2e2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rook d2 mismatch (-want +got):\n%s", diff)
	}
	moves := p.GenerateRookMoves(sq(t, "d2"), fishmg.White)
	if m, _ := findMove(moves, "d2d5"); m.Kind() != fishmg.Capture {
		t.Fatalf("d2d5 kind = %v, want capture", m.Kind())
	}
}

func TestPawnCapturesAndPromotions(t *testing.T) {
	p := mustParse(t, "1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	pushes := p.GeneratePawnMoves(sq(t, "a7"), fishmg.White)
	if diff := cmp.Diff([]string{"a7a8b", "a7a8n", "a7a8q", "a7a8r"}, moveStrings(pushes)); diff != "" {
		t.Fatalf("promotions mismatch (-want +got):\n%s", diff)
	}
	attacks := p.GeneratePawnAttacks(sq(t, "a7"), fishmg.White)
	if diff := cmp.Diff([]string{"a7b8b", "a7b8n", "a7b8q", "a7b8r"}, moveStrings(attacks)); diff != "" {
		t.Fatalf("promo captures mismatch (-want +got):\n%s", diff)
	}
	for _, m := range attacks {
		if !m.Kind().IsCapture() || !m.Kind().IsPromotion() {
			t.Fatalf("%v has kind %v", m, m.Kind())
		}
	}
	if got := len(p.GenerateLegalMoves()); got != 11 {
		t.Fatalf("legal moves = %d, want 11", got)
	}
}

func TestEnPassantGeneration(t *testing.T) {
	p := mustParse(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	attacks := p.GeneratePawnAttacks(sq(t, "e5"), fishmg.White)
	if len(attacks) != 1 || attacks[0].String() != "e5d6" || attacks[0].Kind() != fishmg.EnPassant {
		t.Fatalf("expected single en passant capture, got %v", moveStrings(attacks))
	}
	if got := len(p.GenerateLegalMoves()); got != 5 {
		t.Fatalf("legal moves = %d, want 5", got)
	}
}

func TestEnPassantExposingKingOnRank(t *testing.T) {
	p := mustParse(t, "8/8/8/K2pP2r/8/8/8/7k w - d6 0 1")
	legal := p.GenerateLegalMoves()
	if hasMove(legal, "e5d6") {
		t.Fatalf("en passant leaving the king on an open rank was accepted")
	}
	if !hasMove(legal, "e5e6") {
		t.Fatalf("e5e6 missing from %v", moveStrings(legal))
	}
}

func TestCastlingGating(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		kingSide  bool
		queenSide bool
	}{
		{"both available", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", true, true},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1", false, false},
		{"transit attacked", "r3kr2/8/8/8/8/8/8/R3K2R w KQq - 0 1", false, true},
		{"destination attacked", "r3k1r1/8/8/8/8/8/8/R3K2R w KQq - 0 1", false, true},
		{"b-file attack allowed", "1r2k3/8/8/8/8/8/8/R3K3 w Q - 0 1", false, true},
		{"path blocked", "4k3/8/8/8/8/8/8/RN2K2R w KQ - 0 1", true, false},
		{"in check", "4k3/8/8/8/8/8/4r3/R3K2R w KQ - 0 1", false, false},
		{"rook missing", "4k3/8/8/8/8/8/8/4K2R w KQ - 0 1", true, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := mustParse(t, tc.fen)
			legal := p.GenerateLegalMoves()
			if got := hasMove(legal, "e1g1"); got != tc.kingSide {
				t.Errorf("king side castle = %v, want %v", got, tc.kingSide)
			}
			if got := hasMove(legal, "e1c1"); got != tc.queenSide {
				t.Errorf("queen side castle = %v, want %v", got, tc.queenSide)
			}
			if m, ok := findMove(legal, "e1g1"); ok && m.Kind() != fishmg.KingCastle {
				t.Errorf("e1g1 kind = %v", m.Kind())
			}
		})
	}
}

func TestKingWithoutCastlingFlag(t *testing.T) {
	p := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if got := p.GenerateKingMoves(sq(t, "e1"), fishmg.White, false); hasMove(got, "e1g1") || hasMove(got, "e1c1") {
		t.Fatalf("castling generated with castling suppressed: %v", moveStrings(got))
	}
	if got := p.GenerateKingMoves(sq(t, "e1"), fishmg.White, true); !hasMove(got, "e1g1") || !hasMove(got, "e1c1") {
		t.Fatalf("castling missing: %v", moveStrings(got))
	}
}

func TestLegalFilteringInCheck(t *testing.T) {
	p := mustParse(t, "4k3/8/8/8/8/8/8/4K2r w - - 0 1")
	if !p.InCheck() {
		t.Fatalf("expected white to be in check")
	}
	got := moveStrings(p.GenerateLegalMoves())
	if diff := cmp.Diff([]string{"e1d2", "e1e2", "e1f2"}, got); diff != "" {
		t.Fatalf("evasions mismatch (-want +got):\n%s", diff)
	}
}

func TestLegalMovesNeverLeaveKingInCheck(t *testing.T) {
	for _, fen := range []string{fishmg.FENStartPos, fenKiwipete, fenCastling, fenPromotion, fenPins} {
		p := mustParse(t, fen)
		us := p.SideToMove()
		for _, m := range p.GenerateLegalMoves() {
			p.MakeMove(m)
			if p.IsCheck(us) {
				t.Errorf("%s: %v leaves the mover in check", fen, m)
			}
			p.UndoMove()
		}
	}
}

func TestPinnedPiecesCannotLeaveLine(t *testing.T) {
	p := mustParse(t, fenPins)
	for _, m := range p.GenerateLegalMoves() {
		if m.From() == sq(t, "c3") {
			t.Fatalf("pinned knight moved: %v", m)
		}
	}
}

func TestMoveCountMatchesList(t *testing.T) {
	for _, fen := range []string{fishmg.FENStartPos, fenKiwipete, fenCastling} {
		p := mustParse(t, fen)
		if got, want := p.MoveCount(), len(p.GenerateLegalMoves()); got != want {
			t.Errorf("%s: MoveCount = %d, list = %d", fen, got, want)
		}
	}
}

func TestCheckmateAndStalemate(t *testing.T) {
	mate := mustParse(t, "R5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 1 1")
	if !mate.IsCheckmate() || mate.IsStalemate() {
		t.Fatalf("back rank mate not detected")
	}
	stale := mustParse(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if !stale.IsStalemate() || stale.IsCheckmate() {
		t.Fatalf("stalemate not detected")
	}
	if fishmg.NewPosition().IsCheckmate() {
		t.Fatalf("start position reported as mate")
	}
}
