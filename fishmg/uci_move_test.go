package fishmg_test

import (
	"errors"
	"testing"

	"github.com/boweihan/TSFish/fishmg"
)

func TestParseUCIMoveInfersKind(t *testing.T) {
	tests := []struct {
		fen  string
		move string
		kind fishmg.MoveKind
	}{
		{fishmg.FENStartPos, "g1f3", fishmg.Quiet},
		{fishmg.FENStartPos, "e2e3", fishmg.Quiet},
		{fishmg.FENStartPos, "e2e4", fishmg.DoublePawnPush},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", fishmg.KingCastle},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", fishmg.QueenCastle},
		{"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8g8", fishmg.KingCastle},
		{"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8c8", fishmg.QueenCastle},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "a1a8", fishmg.Capture},
		{"k7/8/8/3pP3/8/8/8/7K w - d6 0 2", "e5d6", fishmg.EnPassant},
		{"k7/8/8/3pP3/8/8/8/7K w - d6 0 2", "e5e6", fishmg.Quiet},
		{"1n5k/P7/8/8/8/8/8/7K w - - 0 1", "a7a8q", fishmg.QueenPromotion},
		{"1n5k/P7/8/8/8/8/8/7K w - - 0 1", "a7a8n", fishmg.KnightPromotion},
		{"1n5k/P7/8/8/8/8/8/7K w - - 0 1", "a7b8r", fishmg.RookPromoCapture},
		{"1n5k/P7/8/8/8/8/8/7K w - - 0 1", "a7b8b", fishmg.BishopPromoCapture},
		// A rook travelling e1-g1 is not a castle.
		{"4k3/8/8/8/8/8/8/K3R3 w - - 0 1", "e1g1", fishmg.Quiet},
	}
	for _, tc := range tests {
		p := mustParse(t, tc.fen)
		m, err := p.ParseUCIMove(tc.move)
		if err != nil {
			t.Fatalf("%s %s: %v", tc.fen, tc.move, err)
		}
		if m.Kind() != tc.kind {
			t.Errorf("%s %s: kind %v, want %v", tc.fen, tc.move, m.Kind(), tc.kind)
		}
		if m.String() != tc.move {
			t.Errorf("String() = %s, want %s", m.String(), tc.move)
		}
	}
}

func TestParsedMovesMatchGenerator(t *testing.T) {
	for _, fen := range []string{fishmg.FENStartPos, fenKiwipete, fenCastling, fenPromotion} {
		p := mustParse(t, fen)
		for _, want := range p.GenerateLegalMoves() {
			got, err := p.ParseUCIMove(want.String())
			if err != nil {
				t.Fatalf("%s: parse %v: %v", fen, want, err)
			}
			if got != want {
				t.Errorf("%s: parsed %v as kind %v, generator says %v", fen, want, got.Kind(), want.Kind())
			}
		}
	}
}

func TestParseUCIMoveErrors(t *testing.T) {
	p := fishmg.NewPosition()
	for _, s := range []string{"", "e2", "e2e4e5", "z9e4", "e2z9", "e3e4", "e7e5", "e1e2", "g1f3q", "e2e4x"} {
		_, err := p.ParseUCIMove(s)
		if err == nil {
			t.Errorf("%q: expected error", s)
			continue
		}
		if !errors.Is(err, fishmg.ErrInvalidMove) {
			t.Errorf("%q: %v does not wrap ErrInvalidMove", s, err)
		}
	}
}

func TestFindLegalMoveRejectsIllegal(t *testing.T) {
	p := mustParse(t, fenPins)
	if _, err := p.FindLegalMove("c3b5"); !errors.Is(err, fishmg.ErrInvalidMove) {
		t.Fatalf("pinned knight move accepted: %v", err)
	}
	if _, err := p.FindLegalMove("f4c7"); err != nil {
		t.Fatalf("f4c7: %v", err)
	}
}
