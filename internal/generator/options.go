package generator

import (
	"time"
)

// Options configures puzzle generation behavior.
type Options struct {
	Rows       int           // Board grid rows
	Cols       int           // Board grid columns
	PieceCount int           // Number of pentominoes per puzzle
	Timeout    time.Duration // Timeout limits generation time
	Seed       int64         // Seed for reproducible puzzles (0 = random)
}

// DefaultOptions returns standard generator options.
func DefaultOptions(pieceCount int) *Options {
	pieceCount = min(max(pieceCount, MinPieceCount), MaxPieceCount)
	return &Options{
		Rows:       8,
		Cols:       8,
		PieceCount: pieceCount,
		Timeout:    10 * time.Second,
		Seed:       0,
	}
}
