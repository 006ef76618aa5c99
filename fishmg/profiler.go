package fishmg

import (
	"fmt"
	"io"
	"time"
)

// Op identifies a profiled operation.
type Op uint8

const (
	OpGenerate Op = iota
	OpMake
	OpUndo
	OpLegality
	OpCheck
	numOps
)

var opNames = [numOps]string{"generate", "make", "undo", "legality", "check"}

func (o Op) String() string {
	if o < numOps {
		return opNames[o]
	}
	return "unknown"
}

// Profiler accumulates call counts and wall time for the position's hot paths.
// Attach one with Position.SetProfiler. Nested operations are counted in both.
type Profiler struct {
	calls [numOps]uint64
	spent [numOps]time.Duration
	now   func() time.Time
}

// NewProfiler returns an empty profiler using the wall clock.
func NewProfiler() *Profiler {
	return &Profiler{now: time.Now}
}

func (pr *Profiler) track(op Op) func() {
	start := pr.now()
	return func() {
		pr.calls[op]++
		pr.spent[op] += pr.now().Sub(start)
	}
}

// ProfileEntry is one line of a profiler report.
type ProfileEntry struct {
	Op    Op
	Calls uint64
	Total time.Duration
}

// Average returns the mean time per call.
func (e ProfileEntry) Average() time.Duration {
	if e.Calls == 0 {
		return 0
	}
	return e.Total / time.Duration(e.Calls)
}

// Report returns the counters for every operation that was called at least once.
func (pr *Profiler) Report() []ProfileEntry {
	var out []ProfileEntry
	for op := Op(0); op < numOps; op++ {
		if pr.calls[op] == 0 {
			continue
		}
		out = append(out, ProfileEntry{Op: op, Calls: pr.calls[op], Total: pr.spent[op]})
	}
	return out
}

// Reset zeroes all counters.
func (pr *Profiler) Reset() {
	pr.calls = [numOps]uint64{}
	pr.spent = [numOps]time.Duration{}
}

// WriteTo prints the report in a fixed-width table.
func (pr *Profiler) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, e := range pr.Report() {
		n, err := fmt.Fprintf(w, "%-10s calls=%-12d total=%-14v avg=%v\n", e.Op, e.Calls, e.Total, e.Average())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
