package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"

	"github.com/boweihan/TSFish/engine"
	gm "github.com/boweihan/TSFish/fishmg"
)

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", engine.DefaultDepth, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	legacy := flag.Bool("legacy-mobility", false, "score only the side to move's mobility")
	stats := flag.Bool("stats", false, "print node and cutoff counters after each search")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := engine.Config{Depth: *depthFlag, LegacyMobility: *legacy}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	// --- Optional CPU profiling setup ---
	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	fen := gm.FENStartPos
	if *fenFlag != "" {
		fen = *fenFlag
	}
	fmt.Printf("searchbench: fen=%q depth=%d repeat=%d\n", fen, cfg.Depth, *repeatFlag)

	searcher := engine.NewSearcher(cfg)
	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		// Fresh position for each run
		p, err := gm.ParseFEN(fen)
		if err != nil {
			log.Fatal().Err(err).Msg("parse FEN")
		}
		res, err := searcher.Search(p)
		if err != nil {
			log.Fatal().Err(err).Str("fen", fen).Msg("search")
		}
		fmt.Printf("iteration %d: bestmove %v score=%d nodes=%d time=%v\n", i+1, res.Move, res.Score, res.Nodes, res.Elapsed)
		if *stats {
			searcher.Stats().WriteInfo(os.Stdout)
		}
	}
	fmt.Printf("total time: %v\n", time.Since(startAll))

	// --- Optional heap profile at the end ---
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create memory profile")
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not write memory profile")
		}
	}
}
