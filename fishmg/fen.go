package fishmg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// StartPosToken is accepted by ParseFEN in place of FENStartPos.
const StartPosToken = "startpos"

// pieceFromChar converts a FEN character to a piece type and color.
func pieceFromChar(ch byte) (PieceType, Color, bool) {
	c := White
	if ch >= 'a' && ch <= 'z' {
		c = Black
		ch -= 'a' - 'A'
	}
	switch ch {
	case 'P':
		return Pawn, c, true
	case 'N':
		return Knight, c, true
	case 'B':
		return Bishop, c, true
	case 'R':
		return Rook, c, true
	case 'Q':
		return Queen, c, true
	case 'K':
		return King, c, true
	}
	return NoPieceType, White, false
}

// ParseFEN parses a FEN string (or "startpos") into a new Position.
// The half-move clock and full-move number may be omitted and default to 0 and 1.
func ParseFEN(fen string) (*Position, error) {
	fen = strings.TrimSpace(fen)
	if fen == StartPosToken {
		fen = FENStartPos
	}
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return nil, fenError(fen, "field count", errors.New("expected 4 to 6 fields"))
	}

	p := &Position{}
	if err := parsePlacement(&p.board, fields[0]); err != nil {
		return nil, fenError(fen, "placement", err)
	}

	switch fields[1] {
	case "w":
		p.state.ActiveColor = White
	case "b":
		p.state.ActiveColor = Black
	default:
		return nil, fenError(fen, "active color", nil)
	}

	cr, ok := parseCastling(fields[2])
	if !ok {
		return nil, fenError(fen, "castling", nil)
	}
	p.state.Castling = cr

	p.state.EnPassant = NoSquare
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fenError(fen, "en passant", err)
		}
		if err := checkEnPassant(&p.board, p.state.ActiveColor, sq); err != nil {
			return nil, fenError(fen, "en passant", err)
		}
		p.state.EnPassant = sq
	}

	p.state.HalfMoveClock = 0
	p.state.FullMoveNumber = 1
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fenError(fen, "half-move clock", err)
		}
		p.state.HalfMoveClock = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 0 {
			return nil, fenError(fen, "full-move number", err)
		}
		p.state.FullMoveNumber = n
	}
	return p, nil
}

func parsePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return errors.New("expected 8 ranks")
	}
	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(row); j++ {
			ch := row[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pt, c, ok := pieceFromChar(ch)
			if !ok {
				return errors.New("unknown piece " + strconv.QuoteRune(rune(ch)))
			}
			if file > 7 {
				return errors.New("rank " + strconv.Itoa(rank+1) + " overflows")
			}
			b.addPiece(c, pt, Square(rank*8+file))
			file++
		}
		if file != 8 {
			return errors.New("rank " + strconv.Itoa(rank+1) + " does not cover 8 files")
		}
	}
	for _, c := range [2]Color{White, Black} {
		if CountSetBits(b.bb[c][King]) != 1 {
			return errors.New(c.String() + " must have exactly one king")
		}
	}
	return nil
}

// checkEnPassant verifies that ep is a target the side to move could capture on: the square
// behind a pawn of the other side that just made a double push.
func checkEnPassant(b *Board, stm Color, ep Square) error {
	wantRank := 5
	if stm == Black {
		wantRank = 2
	}
	if ep.Rank() != wantRank {
		return fmt.Errorf("target %s must be on rank %d with %s to move", ep, wantRank+1, stm)
	}
	if b.AllOccupancy().Has(ep) {
		return fmt.Errorf("target %s is occupied", ep)
	}
	victim := epVictim(ep, stm)
	if !b.bb[stm.Other()][Pawn].Has(victim) {
		return fmt.Errorf("no capturable pawn on %s", victim)
	}
	return nil
}

// parseCastling accepts "-" or a non-empty subset of KQkq in that order, each letter once.
func parseCastling(s string) (CastlingRights, bool) {
	if s == "-" {
		return NoCastling, true
	}
	var cr CastlingRights
	last := -1
	for i := 0; i < len(s); i++ {
		idx := strings.IndexByte("KQkq", s[i])
		if idx <= last {
			return NoCastling, false
		}
		last = idx
		cr |= CastlingRights(1) << uint(idx)
	}
	return cr, s != ""
}

// FEN serializes the position. It is the inverse of ParseFEN for canonical input.
func (p *Position) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pt, c, ok := p.board.PieceOn(Square(rank*8 + file))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pt.Letter(c))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.state.ActiveColor.String())
	sb.WriteByte(' ')
	sb.WriteString(p.state.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.state.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.state.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.state.FullMoveNumber))
	return sb.String()
}
