package engine

import gm "github.com/boweihan/TSFish/fishmg"

// Piece values in centipawns, indexed by fishmg.PieceType.
var PieceValues = [6]int32{
	gm.Pawn:   100,
	gm.Knight: 320,
	gm.Bishop: 330,
	gm.Rook:   500,
	gm.Queen:  900,
	gm.King:   20000,
}

// MobilityWeight is the score of one legal move.
const MobilityWeight int32 = 10

// Material sums the piece values of c.
func Material(p *gm.Position, c gm.Color) int32 {
	b := p.Board()
	var score int32
	for pt := gm.Pawn; pt < gm.All; pt++ {
		score += PieceValues[pt] * int32(gm.CountSetBits(b.Pieces(c, pt)))
	}
	return score
}

// Evaluate scores the position from the side to move's point of view.
//
// Material is own minus opponent. With legacy mobility the side to move's legal move count is
// added once; otherwise the difference between both sides' counts is used so that the score is
// antisymmetric under a change of side to move.
func Evaluate(p *gm.Position, legacyMobility bool) int32 {
	us := p.SideToMove()
	them := us.Other()
	score := Material(p, us) - Material(p, them)

	own := int32(p.MoveCount())
	if legacyMobility {
		return score + MobilityWeight*own
	}
	return score + MobilityWeight*(own-int32(p.MoveCountFor(them)))
}
