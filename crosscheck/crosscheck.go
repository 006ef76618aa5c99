// Package crosscheck compares fishmg perft counts against two independent move generators,
// dragontoothmg and GooseEngineMG's goosemg, one root move at a time, to locate move
// generation bugs.
package crosscheck

import (
	"fmt"
	"strings"

	goose "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	gm "github.com/boweihan/TSFish/fishmg"
)

// Mismatch is a root move whose subtree counts disagree. A count of -1 means the
// generator did not produce the move at all.
type Mismatch struct {
	Move        string
	Fishmg      int64
	Dragontooth int64
	Goose       int64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: fishmg=%d dragontooth=%d goosemg=%d", m.Move, m.Fishmg, m.Dragontooth, m.Goose)
}

// Report is the outcome of Divide.
type Report struct {
	FEN              string
	Depth            int
	FishmgTotal      uint64
	DragontoothTotal uint64
	GooseTotal       uint64
	Mismatches       []Mismatch
}

// OK reports whether all three generators agree on every root move.
func (r Report) OK() bool {
	return len(r.Mismatches) == 0 &&
		r.FishmgTotal == r.DragontoothTotal && r.FishmgTotal == r.GooseTotal
}

// Divide runs a perft divide of fen to depth with fishmg and both reference generators.
func Divide(fen string, depth int) (Report, error) {
	if depth < 1 {
		return Report{}, fmt.Errorf("crosscheck: depth %d must be at least 1", depth)
	}
	p, err := gm.ParseFEN(fen)
	if err != nil {
		return Report{}, err
	}
	ours := make(map[string]uint64)
	for m, n := range p.PerftDivide(depth) {
		ours[m.String()] = n
	}
	canonical := p.FEN()
	dragon := dragontoothDivide(canonical, depth)
	gdiv, err := gooseDivide(canonical, depth)
	if err != nil {
		return Report{}, err
	}

	rep := Report{FEN: canonical, Depth: depth}
	seen := make(map[string]struct{}, len(ours))
	for _, m := range []map[string]uint64{ours, dragon, gdiv} {
		for k := range m {
			seen[k] = struct{}{}
		}
	}
	keys := maps.Keys(seen)
	slices.Sort(keys)
	for _, k := range keys {
		a, okA := ours[k]
		b, okB := dragon[k]
		g, okG := gdiv[k]
		rep.FishmgTotal += a
		rep.DragontoothTotal += b
		rep.GooseTotal += g
		if okA && okB && okG && a == b && a == g {
			continue
		}
		rep.Mismatches = append(rep.Mismatches, Mismatch{
			Move:        k,
			Fishmg:      count(a, okA),
			Dragontooth: count(b, okB),
			Goose:       count(g, okG),
		})
	}
	return rep, nil
}

func count(n uint64, ok bool) int64 {
	if !ok {
		return -1
	}
	return int64(n)
}

func gooseDivide(fen string, depth int) (map[string]uint64, error) {
	b, err := goose.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("crosscheck: goosemg rejected %q: %w", fen, err)
	}
	out := make(map[string]uint64)
	for m, n := range goose.PerftDivide(b, depth) {
		out[strings.ToLower(m.String())] = n
	}
	return out, nil
}

func dragontoothDivide(fen string, depth int) map[string]uint64 {
	board := dragontoothmg.ParseFen(fen)
	out := make(map[string]uint64)
	for _, m := range board.GenerateLegalMoves() {
		undo := board.Apply(m)
		out[strings.ToLower(m.String())] = dragontoothPerft(&board, depth-1)
		undo()
	}
	return out
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		undo()
	}
	return nodes
}
