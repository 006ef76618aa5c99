package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/boweihan/TSFish/engine"
	gm "github.com/boweihan/TSFish/fishmg"
	"github.com/boweihan/TSFish/uci"
)

func main() {
	depth := flag.Int("depth", engine.DefaultDepth, "fixed search depth in plies")
	legacy := flag.Bool("legacy-mobility", false, "score only the side to move's mobility")
	level := flag.String("log-level", "warn", "log level for stderr diagnostics (debug, info, warn, error)")
	profile := flag.Bool("profile", false, "collect move generator timings, reported after go/perft with 'debug on'")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()

	cfg := engine.Config{Depth: *depth, LegacyMobility: *legacy}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	var opts []uci.Option
	if *profile {
		opts = append(opts, uci.WithProfiler(gm.NewProfiler()))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := uci.NewController(cfg, log, os.Stdout, opts...)
	if err := c.Run(ctx, os.Stdin); err != nil && err != context.Canceled {
		log.Error().Err(err).Msg("uci loop")
	}
}
