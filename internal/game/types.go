// internal/game/types.go
//
// Core type definitions for the tessera game engine.
// Defines:
//   - Game: state for a single in-progress or finished puzzle session.
//
// The geometry itself (pieces, board cells) lives in internal/pentomino and
// internal/board; this package only tracks one player's session over them.

package game

import (
	"github.com/emriedel/grid-games-sub002/internal/board"
	"github.com/emriedel/grid-games-sub002/internal/pentomino"
	"github.com/emriedel/grid-games-sub002/internal/solver"
)

// Game holds the state of a single tessera puzzle session.
type Game struct {
	ID         string             // Unique game identifier (random hex string).
	PuzzleID   string             // Pool puzzle this session was built from.
	Pieces     []pentomino.ID     // Pieces the puzzle hands the player.
	Placements []solver.Placement // Placements currently on the board.
	Finished   bool               // True once the board is exactly tiled.

	board *board.Board // Session-owned board, mutated by Apply/Unplace.
}

// Board exposes the session board for handlers and tests.
func (g *Game) Board() *board.Board { return g.board }
