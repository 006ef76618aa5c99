package fishmg

// appendTargets converts a destination set into moves, tagging landings on opposing pieces as captures.
func appendTargets(dst []Move, from Square, targets, enemies Bitboard) []Move {
	for targets != 0 {
		to := popLSB(&targets)
		if enemies.Has(to) {
			dst = append(dst, NewMove(from, to, Capture))
		} else {
			dst = append(dst, NewMove(from, to, Quiet))
		}
	}
	return dst
}

func appendPromotions(dst []Move, from, to Square, capture bool) []Move {
	kinds := &quietPromotions
	if capture {
		kinds = &capturePromotions
	}
	for _, k := range kinds {
		dst = append(dst, NewMove(from, to, k))
	}
	return dst
}

// appendPawnPushes adds single and double pushes, expanding last-rank landings into promotions.
func (p *Position) appendPawnPushes(dst []Move, from Square, c Color) []Move {
	empty := ^p.board.AllOccupancy()
	b := from.Bitboard()
	var single, double Bitboard
	var lastRank Bitboard
	if c == White {
		single = north(b) & empty
		double = north(single&Rank3) & empty
		lastRank = Rank8
	} else {
		single = south(b) & empty
		double = south(single&Rank6) & empty
		lastRank = Rank1
	}
	if single != 0 {
		to := SquareOf(single)
		if single&lastRank != 0 {
			dst = appendPromotions(dst, from, to, false)
		} else {
			dst = append(dst, NewMove(from, to, Quiet))
		}
	}
	if double != 0 {
		dst = append(dst, NewMove(from, SquareOf(double), DoublePawnPush))
	}
	return dst
}

// appendPawnCaptures adds diagonal captures, en passant and capture-promotions.
func (p *Position) appendPawnCaptures(dst []Move, from Square, c Color) []Move {
	enemies := p.board.bb[c.Other()][All]
	attacks := pawnAttacks[c][from]
	lastRank := Rank8
	if c == Black {
		lastRank = Rank1
	}
	targets := attacks & enemies
	for targets != 0 {
		to := popLSB(&targets)
		if lastRank.Has(to) {
			dst = appendPromotions(dst, from, to, true)
		} else {
			dst = append(dst, NewMove(from, to, Capture))
		}
	}
	if ep := p.state.EnPassant; ep != NoSquare && attacks.Has(ep) &&
		p.board.bb[c.Other()][Pawn].Has(epVictim(ep, c)) {
		dst = append(dst, NewMove(from, ep, EnPassant))
	}
	return dst
}

// appendCastles adds the castling moves available to c from its home square.
func (p *Position) appendCastles(dst []Move, c Color) []Move {
	home, rookK, rookQ := E1, H1, A1
	kingSide, queenSide := WhiteKingSide, WhiteQueenSide
	if c == Black {
		home, rookK, rookQ = E8, H8, A8
		kingSide, queenSide = BlackKingSide, BlackQueenSide
	}
	cr := p.state.Castling
	if !cr.Has(kingSide) && !cr.Has(queenSide) {
		return dst
	}
	if p.board.King(c) != home || p.board.IsAttacked(home, c) {
		return dst
	}
	occ := p.board.AllOccupancy()
	rooks := p.board.bb[c][Rook]
	if cr.Has(kingSide) && rooks.Has(rookK) &&
		occ&((home+1).Bitboard()|(home+2).Bitboard()) == 0 &&
		!p.board.IsAttacked(home+1, c) && !p.board.IsAttacked(home+2, c) {
		dst = append(dst, NewMove(home, home+2, KingCastle))
	}
	if cr.Has(queenSide) && rooks.Has(rookQ) &&
		occ&((home-1).Bitboard()|(home-2).Bitboard()|(home-3).Bitboard()) == 0 &&
		!p.board.IsAttacked(home-1, c) && !p.board.IsAttacked(home-2, c) {
		dst = append(dst, NewMove(home, home-2, QueenCastle))
	}
	return dst
}

// appendPieceMoves dispatches on the piece type standing on from.
func (p *Position) appendPieceMoves(dst []Move, pt PieceType, from Square, c Color, withCastling bool) []Move {
	own := p.board.bb[c][All]
	enemies := p.board.bb[c.Other()][All]
	occ := own | enemies
	switch pt {
	case Pawn:
		dst = p.appendPawnPushes(dst, from, c)
		return p.appendPawnCaptures(dst, from, c)
	case Knight:
		return appendTargets(dst, from, knightMoves[from]&^own, enemies)
	case Bishop:
		return appendTargets(dst, from, bishopAttacks(from, occ)&^own, enemies)
	case Rook:
		return appendTargets(dst, from, rookAttacks(from, occ)&^own, enemies)
	case Queen:
		return appendTargets(dst, from, (rookAttacks(from, occ)|bishopAttacks(from, occ))&^own, enemies)
	case King:
		dst = appendTargets(dst, from, kingMoves[from]&^own, enemies)
		if withCastling {
			dst = p.appendCastles(dst, c)
		}
		return dst
	}
	return dst
}

// GeneratePawnMoves returns the pseudo-legal pushes of a c pawn on from.
func (p *Position) GeneratePawnMoves(from Square, c Color) []Move {
	return p.appendPawnPushes(nil, from, c)
}

// GeneratePawnAttacks returns the pseudo-legal captures (including en passant) of a c pawn on from.
func (p *Position) GeneratePawnAttacks(from Square, c Color) []Move {
	return p.appendPawnCaptures(nil, from, c)
}

func (p *Position) GenerateKnightMoves(from Square, c Color) []Move {
	return p.appendPieceMoves(nil, Knight, from, c, false)
}

func (p *Position) GenerateBishopMoves(from Square, c Color) []Move {
	return p.appendPieceMoves(nil, Bishop, from, c, false)
}

func (p *Position) GenerateRookMoves(from Square, c Color) []Move {
	return p.appendPieceMoves(nil, Rook, from, c, false)
}

func (p *Position) GenerateQueenMoves(from Square, c Color) []Move {
	return p.appendPieceMoves(nil, Queen, from, c, false)
}

// GenerateKingMoves returns the king's steps and, if withCastling is set, the castling moves.
func (p *Position) GenerateKingMoves(from Square, c Color, withCastling bool) []Move {
	return p.appendPieceMoves(nil, King, from, c, withCastling)
}

// GeneratePseudoMovesInto appends every pseudo-legal move of the side to move to dst.
func (p *Position) GeneratePseudoMovesInto(dst []Move) []Move {
	c := p.state.ActiveColor
	for pt := Pawn; pt < All; pt++ {
		pieces := p.board.bb[c][pt]
		for pieces != 0 {
			from := popLSB(&pieces)
			dst = p.appendPieceMoves(dst, pt, from, c, true)
		}
	}
	return dst
}

// GenerateLegalMovesInto appends the legal moves of the side to move to dst.
//
// Castling is already fully checked by the generator. Any other move is accepted without
// verification unless the king is in check, the mover is pinned, the mover is the king or the
// move is en passant; those are played, tested and taken back.
func (p *Position) GenerateLegalMovesInto(dst []Move) []Move {
	if p.prof != nil {
		defer p.prof.track(OpGenerate)()
	}
	start := len(dst)
	dst = p.GeneratePseudoMovesInto(dst)

	c := p.state.ActiveColor
	inCheck := p.IsCheck(c)
	pinned := p.board.PinnedPieces(c)
	king := p.board.King(c)

	legal := dst[:start]
	for _, m := range dst[start:] {
		kind := m.Kind()
		switch {
		case kind.IsCastle():
		case inCheck || pinned.Has(m.From()) || m.From() == king || kind == EnPassant:
			if !p.leavesKingSafe(m) {
				continue
			}
		}
		legal = append(legal, m)
	}
	return legal
}

// GenerateLegalMoves returns the legal moves of the side to move.
func (p *Position) GenerateLegalMoves() []Move {
	return p.GenerateLegalMovesInto(make([]Move, 0, 64))
}

// MoveCount returns the number of legal moves of the side to move.
func (p *Position) MoveCount() int {
	buf := p.scratch[:0]
	buf = p.GenerateLegalMovesInto(buf)
	p.scratch = buf
	return len(buf)
}

func (p *Position) leavesKingSafe(m Move) bool {
	if p.prof != nil {
		defer p.prof.track(OpLegality)()
	}
	c := p.state.ActiveColor
	p.MakeMove(m)
	safe := !p.IsCheck(c)
	p.UndoMove()
	return safe
}

// MoveCountFor returns the number of legal moves c would have if it were c's turn.
// The en passant target only belongs to the side to move and is ignored for the other side.
func (p *Position) MoveCountFor(c Color) int {
	if c == p.state.ActiveColor {
		return p.MoveCount()
	}
	saved := p.state
	p.state.ActiveColor = c
	p.state.EnPassant = NoSquare
	n := p.MoveCount()
	p.state = saved
	return n
}
