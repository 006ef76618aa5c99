package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	gm "github.com/boweihan/TSFish/fishmg"
	"github.com/boweihan/TSFish/render"
)

func main() {
	fen := flag.String("fen", gm.FENStartPos, "position to draw")
	out := flag.String("o", "", "output file (default stdout)")
	size := flag.Int("size", 48, "square size in pixels")
	flip := flag.Bool("flip", false, "draw from Black's side")
	coords := flag.Bool("coords", true, "draw file and rank labels")
	move := flag.String("move", "", "UCI move to highlight, e.g. e2e4")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	p, err := gm.ParseFEN(*fen)
	if err != nil {
		log.Fatal().Err(err).Msg("parse FEN")
	}
	opts := render.Options{SquareSize: *size, Flip: *flip, Coordinates: *coords}
	if *move != "" {
		m, err := p.FindLegalMove(*move)
		if err != nil {
			log.Fatal().Err(err).Msg("highlight move")
		}
		opts.Highlight = m
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal().Err(err).Str("file", *out).Msg("create output")
		}
		defer f.Close()
		w = f
	}
	if err := render.SVG(w, p, opts); err != nil {
		log.Fatal().Err(err).Msg("render")
	}
}
