package fishmg

import "fmt"

// Position is a board plus game state and the undo log of every move made on it.
// A Position is not safe for concurrent use.
type Position struct {
	board   Board
	state   GameState
	history []undoRecord

	scratch []Move
	prof    *Profiler
}

// NewPosition returns the standard initial position.
func NewPosition() *Position {
	p, err := ParseFEN(FENStartPos)
	if err != nil {
		panic(err)
	}
	return p
}

// Board exposes piece placement. The returned pointer is owned by the position.
func (p *Position) Board() *Board { return &p.board }

// State returns a copy of the game state.
func (p *Position) State() GameState { return p.state }

// SideToMove returns the active color.
func (p *Position) SideToMove() Color { return p.state.ActiveColor }

// History returns the number of moves that can be undone.
func (p *Position) History() int { return len(p.history) }

// SetProfiler attaches a profiler to the hot paths. nil disables profiling.
func (p *Position) SetProfiler(prof *Profiler) { p.prof = prof }

// Clone returns an independent copy with the same undo log. The profiler is shared.
func (p *Position) Clone() *Position {
	q := *p
	q.history = append([]undoRecord(nil), p.history...)
	q.scratch = nil
	return &q
}

// IsCheck reports whether c's king is attacked.
func (p *Position) IsCheck(c Color) bool {
	if p.prof != nil {
		defer p.prof.track(OpCheck)()
	}
	ksq := p.board.King(c)
	if ksq == NoSquare {
		return false
	}
	return p.board.IsAttacked(ksq, c)
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool { return p.IsCheck(p.state.ActiveColor) }

// Checkers returns the opposing pieces giving check to the side to move.
func (p *Position) Checkers() Bitboard {
	c := p.state.ActiveColor
	ksq := p.board.King(c)
	if ksq == NoSquare {
		return 0
	}
	return p.board.AttacksOnSquare(ksq, c)
}

// IsCheckmate reports whether the side to move is in check with no legal moves.
func (p *Position) IsCheckmate() bool { return p.InCheck() && p.MoveCount() == 0 }

// IsStalemate reports whether the side to move is not in check and has no legal moves.
func (p *Position) IsStalemate() bool { return !p.InCheck() && p.MoveCount() == 0 }

// Snapshot is a comparable copy of the board and state.
type Snapshot struct {
	Bitboards [2][7]Bitboard
	State     GameState
}

func (p *Position) Snapshot() Snapshot {
	return Snapshot{Bitboards: p.board.bb, State: p.state}
}

// ParseUCIMove decodes long algebraic notation ("e2e4", "e7e8q") against the current board,
// inferring the move kind from the pieces involved. The result is not checked for legality.
func (p *Position) ParseUCIMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NullMove, &MoveError{Move: s, Reason: "expected 4 or 5 characters"}
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NullMove, &MoveError{Move: s, Reason: err.Error()}
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NullMove, &MoveError{Move: s, Reason: err.Error()}
	}
	us := p.state.ActiveColor
	pt, c, ok := p.board.PieceOn(from)
	if !ok {
		return NullMove, &MoveError{Move: s, Reason: fmt.Sprintf("no piece on %s", from)}
	}
	if c != us {
		return NullMove, &MoveError{Move: s, Reason: fmt.Sprintf("piece on %s belongs to %s", from, c)}
	}
	if p.board.bb[us][All].Has(to) {
		return NullMove, &MoveError{Move: s, Reason: fmt.Sprintf("%s is occupied by own piece", to)}
	}
	capture := p.board.bb[us.Other()][All].Has(to)

	if len(s) == 5 {
		if pt != Pawn {
			return NullMove, &MoveError{Move: s, Reason: "promotion by a non-pawn"}
		}
		kinds := &quietPromotions
		if capture {
			kinds = &capturePromotions
		}
		switch s[4] {
		case 'q':
			return NewMove(from, to, kinds[0]), nil
		case 'r':
			return NewMove(from, to, kinds[1]), nil
		case 'b':
			return NewMove(from, to, kinds[2]), nil
		case 'n':
			return NewMove(from, to, kinds[3]), nil
		}
		return NullMove, &MoveError{Move: s, Reason: "unknown promotion piece"}
	}

	switch {
	case pt == King && (s == "e1g1" || s == "e8g8"):
		return NewMove(from, to, KingCastle), nil
	case pt == King && (s == "e1c1" || s == "e8c8"):
		return NewMove(from, to, QueenCastle), nil
	case capture:
		return NewMove(from, to, Capture), nil
	case pt == Pawn && to == p.state.EnPassant && from.File() != to.File():
		return NewMove(from, to, EnPassant), nil
	case pt == Pawn && (int(to)-int(from) == 16 || int(from)-int(to) == 16):
		return NewMove(from, to, DoublePawnPush), nil
	}
	return NewMove(from, to, Quiet), nil
}

// FindLegalMove parses s and returns the matching legal move.
func (p *Position) FindLegalMove(s string) (Move, error) {
	m, err := p.ParseUCIMove(s)
	if err != nil {
		return NullMove, err
	}
	for _, lm := range p.GenerateLegalMoves() {
		if lm == m {
			return m, nil
		}
	}
	return NullMove, &MoveError{Move: s, Reason: "not legal in this position"}
}

// String renders the board followed by the FEN.
func (p *Position) String() string {
	return p.board.String() + "FEN: " + p.FEN() + "\n"
}
