// Package uci implements the line-oriented protocol front end. Lines are read on the caller's
// goroutine and handed to a single worker that owns the position and the searcher, so engine
// state is never touched concurrently.
package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/boweihan/TSFish/engine"
	gm "github.com/boweihan/TSFish/fishmg"
)

const (
	EngineName   = "TSFish"
	EngineAuthor = "Bowei Han"
)

type command struct {
	line   string
	tokens []string
}

// Controller dispatches protocol commands to the engine worker.
type Controller struct {
	log      zerolog.Logger
	out      io.Writer
	queue    int
	prof     *gm.Profiler
	pos      *gm.Position
	searcher *engine.Searcher
	debug    bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithQueueSize sets how many commands may wait for the worker.
func WithQueueSize(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.queue = n
		}
	}
}

// WithProfiler attaches a profiler whose report is printed after go and perft in debug mode.
func WithProfiler(p *gm.Profiler) Option {
	return func(c *Controller) { c.prof = p }
}

// NewController returns a controller writing protocol output to out and diagnostics to log.
func NewController(cfg engine.Config, log zerolog.Logger, out io.Writer, opts ...Option) *Controller {
	c := &Controller{
		log:      log,
		out:      out,
		queue:    64,
		pos:      gm.NewPosition(),
		searcher: engine.NewSearcher(cfg),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run reads commands from in until quit, EOF or ctx is cancelled. Commands already queued are
// processed before Run returns.
func (c *Controller) Run(ctx context.Context, in io.Reader) error {
	cmds := make(chan command, c.queue)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for cmd := range cmds {
			c.handle(cmd)
		}
	}()

	err := c.read(ctx, in, cmds)
	close(cmds)
	<-done
	return err
}

func (c *Controller) read(ctx context.Context, in io.Reader, cmds chan<- command) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if strings.ToLower(tokens[0]) == "quit" {
			c.log.Debug().Msg("quit received")
			return nil
		}
		select {
		case cmds <- command{line: line, tokens: tokens}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return scanner.Err()
}

func (c *Controller) send(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

func (c *Controller) handle(cmd command) {
	name := strings.ToLower(cmd.tokens[0])
	args := cmd.tokens[1:]
	c.log.Debug().Str("cmd", name).Strs("args", args).Msg("command")

	switch name {
	case "uci":
		c.send("id name %s", EngineName)
		c.send("id author %s", EngineAuthor)
		cfg := c.searcher.Config()
		c.send("option name Depth type spin default %d min 1 max %d", cfg.Depth, engine.MaxDepth)
		c.send("option name LegacyMobility type check default %t", cfg.LegacyMobility)
		c.send("uciok")
	case "isready":
		c.send("readyok")
	case "debug":
		c.debug = len(args) > 0 && strings.ToLower(args[0]) == "on"
		if c.debug && c.prof != nil {
			c.pos.SetProfiler(c.prof)
		} else {
			c.pos.SetProfiler(nil)
		}
	case "setoption":
		c.handleSetOption(args)
	case "register":
		c.log.Info().Msg("registration not required")
	case "ucinewgame":
		c.setPosition(gm.NewPosition())
	case "position":
		c.handlePosition(args)
	case "go":
		c.handleGo(args)
	case "perft":
		c.handlePerft(args)
	case "d":
		c.handleDisplay()
	case "stop", "ponderhit":
		c.log.Info().Str("cmd", name).Msg("search is not interruptible; ignored")
	default:
		c.log.Warn().Str("cmd", name).Msg("unknown command")
		c.send("info string Unknown command: %s", cmd.line)
	}
}

// setPosition replaces the current position, keeping the profiler attachment.
func (c *Controller) setPosition(p *gm.Position) {
	if c.debug && c.prof != nil {
		p.SetProfiler(c.prof)
	}
	c.pos = p
}
