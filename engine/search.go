package engine

import (
	"errors"
	"time"

	gm "github.com/boweihan/TSFish/fishmg"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MaxScore  int32 = 2000000
	Checkmate int32 = 1000000
	DrawScore int32 = 0
)

// ErrNoLegalMoves is returned when the root position has no legal moves.
var ErrNoLegalMoves = errors.New("no legal moves")

// Result is the outcome of a search.
type Result struct {
	Move    gm.Move
	Score   int32
	Depth   int
	Nodes   uint64
	Elapsed time.Duration
}

// Searcher runs fixed-depth negamax with alpha-beta pruning. It is not safe for concurrent use;
// the UCI layer drives one Searcher from a single worker.
type Searcher struct {
	cfg   Config
	stats SearchStats
	now   func() time.Time
}

// NewSearcher returns a Searcher for cfg. Invalid depths fall back to DefaultDepth.
func NewSearcher(cfg Config) *Searcher {
	if cfg.Validate() != nil {
		cfg.Depth = DefaultDepth
	}
	return &Searcher{cfg: cfg, now: time.Now}
}

func (s *Searcher) Config() Config { return s.cfg }

// SetConfig replaces the configuration after validating it.
func (s *Searcher) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg
	return nil
}

// Stats returns the counters of the last search.
func (s *Searcher) Stats() SearchStats { return s.stats }

// BestMove searches p and returns the chosen move in UCI notation.
func (s *Searcher) BestMove(p *gm.Position) (string, error) {
	res, err := s.Search(p)
	if err != nil {
		return "", err
	}
	return res.Move.String(), nil
}

// Search picks a move for the side to move. Every root move is searched with a full window;
// on equal scores the move searched later wins. p is restored before returning.
func (s *Searcher) Search(p *gm.Position) (Result, error) {
	start := s.now()
	s.stats = SearchStats{}
	depth := s.cfg.Depth

	moves := p.GenerateLegalMoves()
	if len(moves) == 0 {
		return Result{}, ErrNoLegalMoves
	}

	best := moves[0]
	bestScore := -MaxScore
	for _, m := range moves {
		p.MakeMove(m)
		score := -s.alphabeta(p, -MaxScore, MaxScore, depth-1, 1)
		p.UndoMove()
		if score >= bestScore {
			bestScore = score
			best = m
		}
	}
	s.stats.Nodes++

	return Result{
		Move:    best,
		Score:   bestScore,
		Depth:   depth,
		Nodes:   s.stats.Nodes,
		Elapsed: s.now().Sub(start),
	}, nil
}

// alphabeta is a fail-hard negamax search. Mates are scored relative to the root so that
// shorter mates rank higher.
func (s *Searcher) alphabeta(p *gm.Position, alpha, beta int32, depth, ply int) int32 {
	s.stats.Nodes++
	if depth <= 0 {
		s.stats.LeafEvaluations++
		return Evaluate(p, s.cfg.LegacyMobility)
	}

	moves := p.GenerateLegalMoves()
	if len(moves) == 0 {
		s.stats.TerminalNodes++
		if p.InCheck() {
			return -Checkmate + int32(ply)
		}
		return DrawScore
	}

	for _, m := range moves {
		p.MakeMove(m)
		score := -s.alphabeta(p, -beta, -alpha, depth-1, ply+1)
		p.UndoMove()
		if score >= beta {
			s.stats.BetaCutoffs++
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
