package fishmg

// undoRecord holds the minimal state needed to take a move back.
type undoRecord struct {
	move     Move
	moved    PieceType
	captured PieceType
	prev     GameState
}

// castleRookSquares returns the rook's origin and destination for a castling move landing on kingTo.
func castleRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case G1:
		return H1, F1
	case C1:
		return A1, D1
	case G8:
		return H8, F8
	default:
		return A8, D8
	}
}

// epVictim returns the square of the pawn removed by an en passant capture landing on to.
func epVictim(to Square, mover Color) Square {
	if mover == White {
		return to - 8
	}
	return to + 8
}

// MakeMove applies m to the position. m must be pseudo-legal for the side to move; moves that
// leave the mover in check are applied as well and are rejected by the legal generator.
func (p *Position) MakeMove(m Move) {
	if p.prof != nil {
		defer p.prof.track(OpMake)()
	}
	us := p.state.ActiveColor
	them := us.Other()
	from, to, kind := m.From(), m.To(), m.Kind()
	moved, _ := p.board.PieceAt(from)

	rec := undoRecord{move: m, moved: moved, captured: NoPieceType, prev: p.state}
	st := &p.state
	st.EnPassant = NoSquare

	switch kind {
	case Quiet, DoublePawnPush:
		p.board.movePiece(us, moved, from, to)
		if moved == Pawn {
			st.HalfMoveClock = 0
		} else {
			st.HalfMoveClock++
		}
		if kind == DoublePawnPush {
			st.EnPassant = Square((int(from) + int(to)) / 2)
		}

	case KingCastle, QueenCastle:
		rookFrom, rookTo := castleRookSquares(to)
		p.board.movePiece(us, King, from, to)
		p.board.movePiece(us, Rook, rookFrom, rookTo)
		st.Castling &^= rightsOf(us)
		st.HalfMoveClock++

	case Capture:
		victim, _ := p.board.PieceAt(to)
		rec.captured = victim
		p.board.removePiece(them, victim, to)
		p.board.movePiece(us, moved, from, to)
		st.HalfMoveClock = 0

	case EnPassant:
		rec.captured = Pawn
		p.board.removePiece(them, Pawn, epVictim(to, us))
		p.board.movePiece(us, Pawn, from, to)
		st.HalfMoveClock = 0

	case KnightPromotion, BishopPromotion, RookPromotion, QueenPromotion,
		KnightPromoCapture, BishopPromoCapture, RookPromoCapture, QueenPromoCapture:
		if kind.IsCapture() {
			victim, _ := p.board.PieceAt(to)
			rec.captured = victim
			p.board.removePiece(them, victim, to)
		}
		p.board.removePiece(us, Pawn, from)
		p.board.addPiece(us, kind.PromotionPiece(), to)
		st.HalfMoveClock = 0
	}

	switch moved {
	case King:
		st.Castling &^= rightsOf(us)
	case Rook:
		st.Castling &^= cornerRights(from)
	}
	if rec.captured == Rook {
		st.Castling &^= cornerRights(to)
	}

	if us == Black {
		st.FullMoveNumber++
	}
	st.ActiveColor = them
	p.history = append(p.history, rec)
}

// UndoMove takes back the most recent MakeMove, restoring board and state exactly.
// It panics when there is nothing to undo.
func (p *Position) UndoMove() {
	if p.prof != nil {
		defer p.prof.track(OpUndo)()
	}
	n := len(p.history)
	if n == 0 {
		panic(ErrEmptyHistory)
	}
	rec := p.history[n-1]
	p.history = p.history[:n-1]

	us := rec.prev.ActiveColor
	them := us.Other()
	from, to, kind := rec.move.From(), rec.move.To(), rec.move.Kind()

	switch kind {
	case Quiet, DoublePawnPush:
		p.board.movePiece(us, rec.moved, to, from)

	case KingCastle, QueenCastle:
		rookFrom, rookTo := castleRookSquares(to)
		p.board.movePiece(us, King, to, from)
		p.board.movePiece(us, Rook, rookTo, rookFrom)

	case Capture:
		p.board.movePiece(us, rec.moved, to, from)
		p.board.addPiece(them, rec.captured, to)

	case EnPassant:
		p.board.movePiece(us, Pawn, to, from)
		p.board.addPiece(them, Pawn, epVictim(to, us))

	case KnightPromotion, BishopPromotion, RookPromotion, QueenPromotion,
		KnightPromoCapture, BishopPromoCapture, RookPromoCapture, QueenPromoCapture:
		p.board.removePiece(us, kind.PromotionPiece(), to)
		p.board.addPiece(us, Pawn, from)
		if kind.IsCapture() {
			p.board.addPiece(them, rec.captured, to)
		}
	}

	p.state = rec.prev
}
