// internal/game/engine.go
//
// Core game engine for a single tessera session.
// Responsibilities:
//   - Create new sessions from a pool puzzle (shape + piece list).
//   - Validate and apply player placements with the same board.CanPlace
//     primitive the solver searches with.
//   - Support take-backs (Unplace) as the exact inverse of Apply.
//   - Track state transitions: playing → won.
//
// Notes:
//   - A session cannot be "lost": the player keeps rearranging pieces until
//     the board is exactly tiled.
//   - randomID() is a compact hex identifier for correlating server state.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/emriedel/grid-games-sub002/internal/board"
	"github.com/emriedel/grid-games-sub002/internal/generator"
	"github.com/emriedel/grid-games-sub002/internal/pentomino"
	"github.com/emriedel/grid-games-sub002/internal/solver"
)

// New constructs a session for the given puzzle shape and piece list.
func New(puzzleID string, shape []string, pieces []pentomino.ID) (*Game, error) {
	mask, err := generator.ParseShape(shape)
	if err != nil {
		return nil, fmt.Errorf("game: bad puzzle shape: %w", err)
	}
	return &Game{
		ID:       randomID(),
		PuzzleID: puzzleID,
		Pieces:   append([]pentomino.ID(nil), pieces...),
		board:    board.New(mask),
	}, nil
}

// Apply validates and applies a placement, mutating the session state.
// Returns the new state string ("playing"/"won") or an error.
//
// Validation rules:
//   - Game must not be finished.
//   - The piece must belong to the puzzle and not already be on the board.
//   - The five covered cells must be in-bounds and empty (board.CanPlace).
func (g *Game) Apply(p solver.Placement) (string, error) {
	if g.Finished {
		return g.state(), errors.New("game finished")
	}
	if !g.pieceAvailable(p.Piece) {
		return g.state(), fmt.Errorf("piece %s not available", p.Piece)
	}
	anchor := board.Position{Row: p.Row, Col: p.Col}
	if !g.board.CanPlace(p.Piece, anchor, p.Rotation) {
		return g.state(), errors.New("placement does not fit")
	}

	g.board.Place(p.Piece, anchor, p.Rotation)
	g.Placements = append(g.Placements, p)

	if g.board.EmptyCount() == 0 && len(g.Placements) == len(g.Pieces) {
		g.Finished = true
	}
	return g.state(), nil
}

// Unplace removes a previously placed piece from the board, the inverse of
// Apply. Finished games are locked.
func (g *Game) Unplace(id pentomino.ID) (string, error) {
	if g.Finished {
		return g.state(), errors.New("game finished")
	}
	for i, p := range g.Placements {
		if p.Piece == id {
			g.board.Remove(p.Piece, board.Position{Row: p.Row, Col: p.Col}, p.Rotation)
			g.Placements = append(g.Placements[:i], g.Placements[i+1:]...)
			return g.state(), nil
		}
	}
	return g.state(), fmt.Errorf("piece %s is not on the board", id)
}

// state reports a coarse string representation of the current game state.
func (g *Game) state() string {
	if g.Finished {
		return "won"
	}
	return "playing"
}

// State is the exported form of state, used by handlers.
func (g *Game) State() string { return g.state() }

// pieceAvailable reports whether id is part of the puzzle and not yet placed.
// Duplicate pieces are counted, not just matched.
func (g *Game) pieceAvailable(id pentomino.ID) bool {
	have := 0
	for _, p := range g.Pieces {
		if p == id {
			have++
		}
	}
	for _, p := range g.Placements {
		if p.Piece == id {
			have--
		}
	}
	return have > 0
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
