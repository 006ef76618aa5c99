// Package render draws positions as SVG diagrams.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	gm "github.com/boweihan/TSFish/fishmg"
)

// Options controls the diagram.
type Options struct {
	// SquareSize is the edge length of one square in pixels. Zero means 48.
	SquareSize int
	// Flip draws the board from Black's side.
	Flip bool
	// Highlight marks the origin and destination of a move. NullMove disables it.
	Highlight gm.Move
	// Coordinates adds file letters and rank numbers around the board.
	Coordinates bool
}

const (
	lightSquare = "fill:#f0d9b5"
	darkSquare  = "fill:#b58863"
	highlight   = "fill:#cdd26a"
)

var glyphs = [2][6]string{
	gm.White: {"♙", "♘", "♗", "♖", "♕", "♔"},
	gm.Black: {"♟", "♞", "♝", "♜", "♛", "♚"},
}

// errWriter remembers the first write error; the svg canvas does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// SVG writes a diagram of p to w.
func SVG(w io.Writer, p *gm.Position, opts Options) error {
	size := opts.SquareSize
	if size <= 0 {
		size = 48
	}
	margin := 0
	if opts.Coordinates {
		margin = size / 2
	}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(8*size+2*margin, 8*size+2*margin)
	canvas.Title(p.FEN())

	var marked gm.Bitboard
	if opts.Highlight != gm.NullMove {
		marked = opts.Highlight.From().Bitboard() | opts.Highlight.To().Bitboard()
	}

	b := p.Board()
	fontSize := size * 4 / 5
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := gm.Square(rank*8 + file)
			col, row := file, 7-rank
			if opts.Flip {
				col, row = 7-file, rank
			}
			x, y := margin+col*size, margin+row*size

			style := lightSquare
			if (rank+file)%2 == 0 {
				style = darkSquare
			}
			if marked.Has(sq) {
				style = highlight
			}
			canvas.Rect(x, y, size, size, style)

			if pt, c, ok := b.PieceOn(sq); ok {
				canvas.Text(x+size/2, y+size*4/5, glyphs[c][pt],
					fmt.Sprintf("text-anchor:middle;font-size:%dpx", fontSize))
			}
		}
	}

	if opts.Coordinates {
		labelStyle := fmt.Sprintf("text-anchor:middle;font-size:%dpx;fill:#555", size/3)
		for i := 0; i < 8; i++ {
			file, rank := i, 7-i
			if opts.Flip {
				file, rank = 7-i, i
			}
			canvas.Text(margin+i*size+size/2, 8*size+margin+margin*2/3, string(rune('a'+file)), labelStyle)
			canvas.Text(margin/2, margin+i*size+size/2+size/8, string(rune('1'+rank)), labelStyle)
		}
	}
	canvas.End()
	return ew.err
}
