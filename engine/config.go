package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid search config")

const (
	DefaultDepth = 3
	MaxDepth     = 8
)

// Config controls a Searcher.
type Config struct {
	// Depth is the fixed search depth in plies.
	Depth int
	// LegacyMobility adds only the side to move's mobility in Evaluate.
	LegacyMobility bool
}

// DefaultConfig returns a depth 3 search with symmetric mobility.
func DefaultConfig() Config {
	return Config{Depth: DefaultDepth}
}

func (c Config) Validate() error {
	if c.Depth < 1 || c.Depth > MaxDepth {
		return fmt.Errorf("%w: depth %d outside [1, %d]", ErrInvalidConfig, c.Depth, MaxDepth)
	}
	return nil
}
