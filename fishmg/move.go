package fishmg

// MoveKind is the closed set of move variants. Every kind-specific switch in the
// package handles all of them.
type MoveKind uint8

const (
	Quiet MoveKind = iota
	DoublePawnPush
	KingCastle
	QueenCastle
	Capture
	EnPassant
	KnightPromotion
	BishopPromotion
	RookPromotion
	QueenPromotion
	KnightPromoCapture
	BishopPromoCapture
	RookPromoCapture
	QueenPromoCapture
)

var kindNames = [...]string{
	"quiet", "double-push", "king-castle", "queen-castle", "capture", "en-passant",
	"n-promo", "b-promo", "r-promo", "q-promo",
	"n-promo-capture", "b-promo-capture", "r-promo-capture", "q-promo-capture",
}

func (k MoveKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// IsCapture reports whether the move removes an opposing piece.
func (k MoveKind) IsCapture() bool {
	return k == Capture || k == EnPassant || k >= KnightPromoCapture
}

func (k MoveKind) IsPromotion() bool { return k >= KnightPromotion }

func (k MoveKind) IsCastle() bool { return k == KingCastle || k == QueenCastle }

// PromotionPiece returns the piece a promotion produces, or NoPieceType.
func (k MoveKind) PromotionPiece() PieceType {
	switch k {
	case KnightPromotion, KnightPromoCapture:
		return Knight
	case BishopPromotion, BishopPromoCapture:
		return Bishop
	case RookPromotion, RookPromoCapture:
		return Rook
	case QueenPromotion, QueenPromoCapture:
		return Queen
	}
	return NoPieceType
}

var (
	quietPromotions   = [4]MoveKind{QueenPromotion, RookPromotion, BishopPromotion, KnightPromotion}
	capturePromotions = [4]MoveKind{QueenPromoCapture, RookPromoCapture, BishopPromoCapture, KnightPromoCapture}
)

// Move packs origin, destination and kind into 16 bits:
// bits 0-5 from, bits 6-11 to, bits 12-15 kind.
type Move uint16

// NullMove is the zero value. It is never produced by the generators for a legal position
// because a1a1 is not a move.
const NullMove Move = 0

// NewMove builds a Move.
func NewMove(from, to Square, kind MoveKind) Move {
	return Move(uint16(from)&0x3F | (uint16(to)&0x3F)<<6 | uint16(kind)<<12)
}

func (m Move) From() Square   { return Square(m & 0x3F) }
func (m Move) To() Square     { return Square((m >> 6) & 0x3F) }
func (m Move) Kind() MoveKind { return MoveKind(m >> 12) }

// String returns the move in UCI long algebraic notation, e.g. e2e4, e7e8q.
func (m Move) String() string {
	if m == NullMove {
		return "0000"
	}
	from := m.From().String()
	to := m.To().String()
	switch m.Kind().PromotionPiece() {
	case Queen:
		return from + to + "q"
	case Rook:
		return from + to + "r"
	case Bishop:
		return from + to + "b"
	case Knight:
		return from + to + "n"
	}
	return from + to
}
