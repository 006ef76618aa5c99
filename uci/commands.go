package uci

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/boweihan/TSFish/engine"
	gm "github.com/boweihan/TSFish/fishmg"
)

// parsePosition builds the position described by the arguments of a position command.
// Nothing is returned unless every move applies, so a bad command leaves the current
// position untouched.
func parsePosition(args []string) (*gm.Position, error) {
	if len(args) == 0 {
		return nil, errors.New("malformed position command")
	}
	var (
		p    *gm.Position
		err  error
		rest []string
	)
	switch strings.ToLower(args[0]) {
	case "startpos":
		p = gm.NewPosition()
		rest = args[1:]
	case "fen":
		i := 1
		for i < len(args) && strings.ToLower(args[i]) != "moves" {
			i++
		}
		if i == 1 {
			return nil, errors.New("missing FEN")
		}
		p, err = gm.ParseFEN(strings.Join(args[1:i], " "))
		if err != nil {
			return nil, err
		}
		rest = args[i:]
	default:
		return nil, fmt.Errorf("invalid position subcommand %q", args[0])
	}

	if len(rest) == 0 {
		return p, nil
	}
	if strings.ToLower(rest[0]) != "moves" {
		return nil, fmt.Errorf("unexpected token %q", rest[0])
	}
	for _, s := range rest[1:] {
		m, err := p.FindLegalMove(strings.ToLower(s))
		if err != nil {
			return nil, fmt.Errorf("%w (position %s)", err, p.FEN())
		}
		p.MakeMove(m)
	}
	return p, nil
}

func (c *Controller) handlePosition(args []string) {
	p, err := parsePosition(args)
	if err != nil {
		c.log.Error().Err(err).Strs("args", args).Msg("position")
		c.send("info string %v", err)
		return
	}
	c.setPosition(p)
	c.log.Debug().Str("fen", p.FEN()).Msg("position set")
}

// goParams holds the go arguments this engine honours. Clock arguments are accepted and
// ignored since every search runs to a fixed depth.
type goParams struct {
	depth int
}

func parseGo(args []string) (goParams, []string) {
	var gp goParams
	var ignored []string
	for i := 0; i < len(args); i++ {
		tok := strings.ToLower(args[i])
		switch tok {
		case "depth":
			if i+1 < len(args) {
				if d, err := strconv.Atoi(args[i+1]); err == nil {
					gp.depth = d
				} else {
					ignored = append(ignored, tok+" "+args[i+1])
				}
				i++
			}
		case "wtime", "btime", "winc", "binc", "movestogo", "movetime", "nodes", "mate":
			if i+1 < len(args) {
				ignored = append(ignored, tok+" "+args[i+1])
				i++
			}
		default:
			ignored = append(ignored, tok)
		}
	}
	return gp, ignored
}

func (c *Controller) handleGo(args []string) {
	gp, ignored := parseGo(args)
	if len(ignored) > 0 {
		c.log.Debug().Strs("ignored", ignored).Msg("go arguments without effect")
	}

	searcher := c.searcher
	if gp.depth > 0 {
		cfg := c.searcher.Config()
		cfg.Depth = gp.depth
		if err := cfg.Validate(); err != nil {
			c.send("info string %v", err)
			c.log.Warn().Err(err).Msg("go depth")
		} else {
			searcher = engine.NewSearcher(cfg)
		}
	}
	if c.prof != nil {
		c.prof.Reset()
	}

	res, err := searcher.Search(c.pos)
	if err != nil {
		c.log.Info().Err(err).Str("fen", c.pos.FEN()).Msg("no move to play")
		c.send("info string %v", err)
		c.send("bestmove %s", gm.NullMove)
		return
	}
	c.send("info depth %d score %s nodes %d time %d pv %s",
		res.Depth, formatScore(res.Score), res.Nodes, res.Elapsed.Milliseconds(), res.Move)
	if c.debug {
		searcher.Stats().WriteInfo(c.out)
		c.writeProfile()
	}
	c.log.Debug().Str("move", res.Move.String()).Int32("score", res.Score).Uint64("nodes", res.Nodes).Msg("search done")
	c.send("bestmove %s", res.Move)
}

// formatScore renders centipawns, or moves to mate for mate scores.
func formatScore(score int32) string {
	const window = 1000
	switch {
	case score > engine.Checkmate-window:
		plies := engine.Checkmate - score
		return fmt.Sprintf("mate %d", (plies+1)/2)
	case score < -engine.Checkmate+window:
		plies := engine.Checkmate + score
		return fmt.Sprintf("mate -%d", (plies+1)/2)
	}
	return fmt.Sprintf("cp %d", score)
}

func (c *Controller) handlePerft(args []string) {
	if len(args) == 0 {
		c.send("info string perft requires a depth")
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 0 {
		c.send("info string invalid perft depth %q", args[0])
		return
	}
	if c.prof != nil {
		c.prof.Reset()
	}
	start := time.Now()
	nodes := c.pos.Perft(depth)
	elapsed := time.Since(start)
	c.log.Debug().Int("depth", depth).Uint64("nodes", nodes).Dur("elapsed", elapsed).Msg("perft")
	c.send("Depth: %d | Nodes: %d | Time: %dms", depth, nodes, elapsed.Milliseconds())
	if c.debug {
		c.writeProfile()
	}
}

func (c *Controller) handleDisplay() {
	fmt.Fprint(c.out, c.pos.Board().String())
	c.send("Fen: %s", c.pos.FEN())
	var checkers []string
	for cb := c.pos.Checkers(); cb != 0; cb &= cb - 1 {
		checkers = append(checkers, gm.SquareOf(cb).String())
	}
	c.send("Checkers: %s", strings.Join(checkers, " "))
}

func (c *Controller) writeProfile() {
	if c.prof == nil {
		return
	}
	for _, e := range c.prof.Report() {
		c.send("info string profile %s calls %d total %v avg %v", e.Op, e.Calls, e.Total, e.Average())
	}
}
