package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/boweihan/TSFish/crosscheck"
	gm "github.com/boweihan/TSFish/fishmg"
)

func main() {
	fen := flag.String("fen", gm.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	check := flag.Bool("crosscheck", false, "Compare per-move counts against dragontoothmg and goosemg")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	profile := flag.Bool("profile", false, "Print per-operation timings of the move generator")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if *depth <= 0 {
		log.Fatal().Int("depth", *depth).Msg("-depth must be > 0")
	}

	p, err := gm.ParseFEN(*fen)
	if err != nil {
		log.Fatal().Err(err).Msg("parse FEN")
	}

	if *check {
		rep, err := crosscheck.Divide(*fen, *depth)
		if err != nil {
			log.Fatal().Err(err).Msg("crosscheck")
		}
		for _, mm := range rep.Mismatches {
			fmt.Println(mm)
		}
		fmt.Printf("fishmg: %d dragontooth: %d goosemg: %d\n", rep.FishmgTotal, rep.DragontoothTotal, rep.GooseTotal)
		if !rep.OK() {
			os.Exit(1)
		}
		return
	}

	if *divide {
		div := p.PerftDivide(*depth)
		byName := make(map[string]uint64, len(div))
		var sum uint64
		for m, n := range div {
			byName[m.String()] = n
			sum += n
		}
		names := maps.Keys(byName)
		slices.Sort(names)
		for _, name := range names {
			fmt.Printf("%s: %d\n", name, byName[name])
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.Fatal().Err(err).Msg("creating cpuprofile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("start cpu profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var prof *gm.Profiler
	if *profile {
		prof = gm.NewProfiler()
		p.SetProfiler(prof)
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += p.Perft(*depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Label Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if prof != nil {
		if _, err := prof.WriteTo(os.Stdout); err != nil {
			log.Error().Err(err).Msg("write profile")
		}
	}

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			log.Fatal().Err(err).Msg("creating memprofile")
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal().Err(err).Msg("write heap profile")
		}
		_ = f.Close()
	}
}
