package fishmg

// Perft counts leaf nodes (move sequences) from the position for a given depth.
// Depth 0 counts the position itself. Per-depth move buffers are reused.
func (p *Position) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return p.perftRec(depth, &pc)
}

type perftCtx struct {
	bufs [][]Move
}

func (pc *perftCtx) bufFor(depth int) []Move {
	buf := pc.bufs[depth]
	if buf == nil {
		buf = make([]Move, 0, 256)
		pc.bufs[depth] = buf
	}
	return buf[:0]
}

func (p *Position) perftRec(depth int, pc *perftCtx) uint64 {
	moves := p.GenerateLegalMovesInto(pc.bufFor(depth))
	pc.bufs[depth] = moves
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		p.MakeMove(m)
		nodes += p.perftRec(depth-1, pc)
		p.UndoMove()
	}
	return nodes
}

// PerftDivide returns a map from each legal root move to the number of leaf nodes
// reachable from that move at the given depth. Useful for debugging.
func (p *Position) PerftDivide(depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range p.GenerateLegalMoves() {
		p.MakeMove(m)
		result[m] = p.Perft(depth - 1)
		p.UndoMove()
	}
	return result
}
