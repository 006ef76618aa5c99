// Command benchrun checks the move generator against the known perft counts, cross-checks the
// same positions against the reference generators and times a fixed-depth search.
// It exits with status 1 if any count disagrees.
//
// Usage: go run ./cmd/benchrun [-max-depth 4] [-crosscheck-depth 2]
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/boweihan/TSFish/crosscheck"
	"github.com/boweihan/TSFish/engine"
	gm "github.com/boweihan/TSFish/fishmg"
)

type oracle struct {
	label string
	fen   string
	nodes []uint64 // indexed by depth-1
}

var oracles = []oracle{
	{"Initial", gm.FENStartPos, []uint64{20, 400, 8902, 197281}},
	{"Promotion", "rnbq1bnr/ppppP1pp/5k2/8/8/2K5/PPP1pPPP/RNBQ1BNR w - - 0 8", []uint64{47, 1412, 58478}},
	{"Castling", "r3k2r/4pp1p/1pnq1n1b/pBPp2p1/4P1b1/N1PQBP2/PP2N1PP/1R2K2R w Kkq a6 0 12", []uint64{46, 1844, 82054}},
}

func main() {
	maxDepth := flag.Int("max-depth", 4, "deepest perft depth to run per position")
	ccDepth := flag.Int("crosscheck-depth", 2, "divide depth for the reference cross-check (0 disables)")
	searchDepth := flag.Int("search-depth", engine.DefaultDepth, "depth of the timed search (0 disables)")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	failed := 0
	fmt.Println("Perft:")
	fmt.Println("TEST \t\tDepth \tNodes \t\tTime \t\tNPS \tResult")
	for _, o := range oracles {
		p, err := gm.ParseFEN(o.fen)
		if err != nil {
			log.Fatal().Err(err).Str("label", o.label).Msg("parse FEN")
		}
		for i, want := range o.nodes {
			depth := i + 1
			if depth > *maxDepth {
				break
			}
			start := time.Now()
			got := p.Perft(depth)
			elapsed := time.Since(start)
			result := "ok"
			if got != want {
				result = fmt.Sprintf("FAIL want %d", want)
				failed++
			}
			fmt.Printf("%s \t%d \t%d \t\t%s \t%.0f \t%s\n",
				o.label, depth, got, elapsed, float64(got)/elapsed.Seconds(), result)
		}
	}

	if *ccDepth > 0 {
		fmt.Println("\nCrosscheck:")
		for _, o := range oracles {
			rep, err := crosscheck.Divide(o.fen, *ccDepth)
			if err != nil {
				log.Error().Err(err).Str("label", o.label).Msg("crosscheck")
				failed++
				continue
			}
			status := "ok"
			if !rep.OK() {
				status = "FAIL"
				failed++
			}
			fmt.Printf("%s \tdepth %d \tfishmg=%d dragontooth=%d goosemg=%d \t%s\n",
				o.label, rep.Depth, rep.FishmgTotal, rep.DragontoothTotal, rep.GooseTotal, status)
			for _, mm := range rep.Mismatches {
				fmt.Printf("  %s\n", mm)
			}
		}
	}

	if *searchDepth > 0 {
		fmt.Println("\nSearch:")
		s := engine.NewSearcher(engine.Config{Depth: *searchDepth})
		for _, o := range oracles {
			p, err := gm.ParseFEN(o.fen)
			if err != nil {
				log.Fatal().Err(err).Str("label", o.label).Msg("parse FEN")
			}
			res, err := s.Search(p)
			if err != nil {
				log.Error().Err(err).Str("label", o.label).Msg("search")
				continue
			}
			fmt.Printf("%s \tbestmove %s \tscore %d \tnodes %d \t%s\n",
				o.label, res.Move, res.Score, res.Nodes, res.Elapsed)
		}
	}

	if failed > 0 {
		log.Error().Int("failures", failed).Msg("benchrun found disagreements")
		os.Exit(1)
	}
}
