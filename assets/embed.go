package assets

import (
	_ "embed"
)

// Default puzzle pool, shipped so the server runs without any configured
// PUZZLES_FILE. Every entry is solver-verified at load time by the puzzle
// package.
//
//go:embed puzzles.json
var defaultPool []byte

// DefaultPool returns the embedded pool JSON.
func DefaultPool() []byte {
	return defaultPool
}
