package engine

import (
	"fmt"
	"io"
)

// SearchStats collects node and cutoff counts for one search.
type SearchStats struct {
	Nodes           uint64
	LeafEvaluations uint64
	BetaCutoffs     uint64
	TerminalNodes   uint64
}

// WriteInfo prints the counters as UCI "info string" lines.
func (s SearchStats) WriteInfo(w io.Writer) {
	fmt.Fprintln(w, "info string Search statistics:")
	fmt.Fprintf(w, "info string   Nodes: %d\n", s.Nodes)
	fmt.Fprintf(w, "info string   Leaf evaluations: %d\n", s.LeafEvaluations)
	fmt.Fprintf(w, "info string   Beta cutoffs: %d\n", s.BetaCutoffs)
	fmt.Fprintf(w, "info string   Mates and stalemates: %d\n", s.TerminalNodes)
}
