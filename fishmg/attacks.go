package fishmg

import "math/bits"

// Precomputed attack masks for knights and kings from each square.
var knightMoves [64]Bitboard
var kingMoves [64]Bitboard

// pawnAttacks[color][sq] is the set of squares a pawn of color attacks from sq.
var pawnAttacks [2][64]Bitboard

// Ray directions. The first four step towards higher indices.
const (
	dirN = iota
	dirE
	dirNE
	dirNW
	dirS
	dirW
	dirSE
	dirSW
)

var rayStep = [8]func(Bitboard) Bitboard{north, east, northEast, northWest, south, west, southEast, southWest}

// rays[sq][dir] holds every square from sq (exclusive) to the edge of the board.
var rays [64][8]Bitboard

func init() {
	initAttackTables()
	initRays()
}

// initAttackTables builds the leaper tables from masked shifts.
func initAttackTables() {
	for sq := Square(0); sq < 64; sq++ {
		b := sq.Bitboard()

		knightMoves[sq] = ((b << 17) & NotAFile) | ((b << 15) & NotHFile) |
			((b << 10) & NotABFile) | ((b << 6) & NotGHFile) |
			((b >> 17) & NotHFile) | ((b >> 15) & NotAFile) |
			((b >> 10) & NotGHFile) | ((b >> 6) & NotABFile)

		kingMoves[sq] = north(b) | south(b) | east(b) | west(b) |
			northEast(b) | northWest(b) | southEast(b) | southWest(b)

		pawnAttacks[White][sq] = northEast(b) | northWest(b)
		pawnAttacks[Black][sq] = southEast(b) | southWest(b)
	}
}

// initRays precomputes directional rays for sliders, stepping one square at a time.
func initRays() {
	for sq := Square(0); sq < 64; sq++ {
		for dir, step := range rayStep {
			var ray Bitboard
			for cur := step(sq.Bitboard()); cur != 0; cur = step(cur) {
				ray |= cur
			}
			rays[sq][dir] = ray
		}
	}
}

// firstBlocker returns the nearest occupied square along rays[sq][dir].
func firstBlocker(dir int, blockers Bitboard) Square {
	if dir < dirS {
		return Square(bits.TrailingZeros64(uint64(blockers)))
	}
	return Square(63 - bits.LeadingZeros64(uint64(blockers)))
}

// rayAttacks returns the squares reached along one ray, up to and including the first occupied square.
func rayAttacks(sq Square, dir int, occ Bitboard) Bitboard {
	ray := rays[sq][dir]
	if blockers := ray & occ; blockers != 0 {
		ray &^= rays[firstBlocker(dir, blockers)][dir]
	}
	return ray
}

func rookAttacks(sq Square, occ Bitboard) Bitboard {
	return rayAttacks(sq, dirN, occ) | rayAttacks(sq, dirS, occ) |
		rayAttacks(sq, dirE, occ) | rayAttacks(sq, dirW, occ)
}

func bishopAttacks(sq Square, occ Bitboard) Bitboard {
	return rayAttacks(sq, dirNE, occ) | rayAttacks(sq, dirNW, occ) |
		rayAttacks(sq, dirSE, occ) | rayAttacks(sq, dirSW, occ)
}

// AttacksOnSquare returns the opposing pieces that attack sq, computed from c's point of view:
// each piece pattern is generated from sq as if it held a piece of c and intersected with the
// opponent's pieces of the same type.
func (b *Board) AttacksOnSquare(sq Square, c Color) Bitboard {
	return b.attackersWithOcc(sq, c, b.AllOccupancy())
}

func (b *Board) attackersWithOcc(sq Square, c Color, occ Bitboard) Bitboard {
	them := &b.bb[c.Other()]
	attackers := pawnAttacks[c][sq] & them[Pawn]
	attackers |= knightMoves[sq] & them[Knight]
	attackers |= kingMoves[sq] & them[King]
	attackers |= rookAttacks(sq, occ) & (them[Rook] | them[Queen])
	attackers |= bishopAttacks(sq, occ) & (them[Bishop] | them[Queen])
	return attackers
}

// IsAttacked reports whether an opponent of c attacks sq.
func (b *Board) IsAttacked(sq Square, c Color) bool {
	return b.attackersWithOcc(sq, c, b.AllOccupancy()) != 0
}

// PinnedPieces returns c's pieces that are pinned to c's king. From the king, each of the
// eight rays is walked; the first own piece is pinned when the next piece beyond it is an
// opposing slider moving along that ray.
func (b *Board) PinnedPieces(c Color) Bitboard {
	ksq := b.King(c)
	if ksq == NoSquare {
		return 0
	}
	own := b.bb[c][All]
	occ := b.AllOccupancy()
	them := &b.bb[c.Other()]
	orth := them[Rook] | them[Queen]
	diag := them[Bishop] | them[Queen]

	var pinned Bitboard
	for dir := 0; dir < 8; dir++ {
		blockers := rays[ksq][dir] & occ
		if blockers == 0 {
			continue
		}
		first := firstBlocker(dir, blockers)
		if !own.Has(first) {
			continue
		}
		beyond := rays[first][dir] & occ
		if beyond == 0 {
			continue
		}
		second := firstBlocker(dir, beyond)
		sliders := diag
		if dir == dirN || dir == dirS || dir == dirE || dir == dirW {
			sliders = orth
		}
		if sliders.Has(second) {
			pinned |= first.Bitboard()
		}
	}
	return pinned
}
