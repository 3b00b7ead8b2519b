// internal/solver/solver.go
//
// Backtracking solver for pentomino packing puzzles.
// Responsibilities:
//   - Exactly tile a masked board with a multiset of pentominoes.
//   - Prune aggressively: area arithmetic, 4-connected region
//     divisibility, and most-constrained-piece ordering.
//   - Verify solver output independently before puzzles are shipped.
//
// Notes:
//   - The board is mutated in place and restored on backtrack; no per-branch
//     cloning. Place/Remove being exact inverses is load-bearing here.
//   - Each Solve call owns its board. Concurrent Solve calls are safe: the
//     only shared state is the read-only pentomino rotation table.
//   - There is no internal deadline. Callers wanting a time bound (the
//     generator does) impose it from outside.

package solver

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/emriedel/grid-games-sub002/internal/board"
	"github.com/emriedel/grid-games-sub002/internal/pentomino"
)

// Placement pins one piece to the board: anchor position plus rotation.
type Placement struct {
	Piece    pentomino.ID       `json:"piece"`
	Row      int                `json:"row"`
	Col      int                `json:"col"`
	Rotation pentomino.Rotation `json:"rotation"`
}

// Result is the outcome of a solve call. Solution is nil iff Solvable is
// false; otherwise it holds one placement per input piece.
type Result struct {
	Solvable   bool          `json:"solvable"`
	Solution   []Placement   `json:"solution"`
	SearchTime time.Duration `json:"-"`
}

// Solve searches for a placement of pieces that exactly tiles the playable
// cells of mask. A piece-area/board-area mismatch is rejected before any
// search; an exhausted search reports the same unsolvable result.
func Solve(mask [][]bool, pieces []pentomino.ID) Result {
	start := time.Now()
	b := board.New(mask)

	if b.EmptyCount() != len(pieces)*pentomino.Size {
		log.Debug().
			Int("playableCells", b.EmptyCount()).
			Int("pieceCells", len(pieces)*pentomino.Size).
			Msg("solver: area mismatch, skipping search")
		return Result{Solvable: false, SearchTime: time.Since(start)}
	}

	s := &search{board: b}
	remaining := append([]pentomino.ID(nil), pieces...)
	if !s.run(remaining) {
		return Result{Solvable: false, SearchTime: time.Since(start)}
	}
	return Result{Solvable: true, Solution: s.solution, SearchTime: time.Since(start)}
}

// search carries the mutable state of one in-flight solve.
type search struct {
	board    *board.Board
	solution []Placement
}

// run recursively places the remaining pieces. On success the winning
// placements are left in s.solution; on failure the board is restored to
// the state it had on entry.
func (s *search) run(remaining []pentomino.ID) bool {
	if len(remaining) == 0 {
		return s.board.EmptyCount() == 0
	}
	// O(1) arithmetic prune: the remaining pieces must exactly cover the
	// remaining empty area.
	if s.board.EmptyCount() != len(remaining)*pentomino.Size {
		return false
	}
	// Region prune: pentominoes cannot cover an island whose size is not a
	// multiple of 5. Necessary but deliberately not sufficient.
	for _, size := range s.board.Regions() {
		if size%pentomino.Size != 0 {
			return false
		}
	}

	// Most-constrained piece: recompute legal placements for every
	// remaining piece and branch on the one with the fewest.
	pick := -1
	var candidates []Placement
	for i, id := range remaining {
		moves := s.legalPlacements(id)
		if len(moves) == 0 {
			// Unplaceable now; no other piece order rescues this state.
			return false
		}
		if pick < 0 || len(moves) < len(candidates) {
			pick, candidates = i, moves
		}
	}

	rest := make([]pentomino.ID, 0, len(remaining)-1)
	rest = append(rest, remaining[:pick]...)
	rest = append(rest, remaining[pick+1:]...)

	for _, move := range candidates {
		anchor := board.Position{Row: move.Row, Col: move.Col}
		s.board.Place(move.Piece, anchor, move.Rotation)
		s.solution = append(s.solution, move)
		if s.run(rest) {
			return true
		}
		s.solution = s.solution[:len(s.solution)-1]
		s.board.Remove(move.Piece, anchor, move.Rotation)
	}
	return false
}

// legalPlacements enumerates every (anchor, rotation) where id currently
// fits, over all board positions and deduplicated rotations.
func (s *search) legalPlacements(id pentomino.ID) []Placement {
	var out []Placement
	for _, rot := range pentomino.Rotations(id) {
		for r := 0; r < s.board.Rows(); r++ {
			for c := 0; c < s.board.Cols(); c++ {
				if s.board.CanPlace(id, board.Position{Row: r, Col: c}, rot) {
					out = append(out, Placement{Piece: id, Row: r, Col: c, Rotation: rot})
				}
			}
		}
	}
	return out
}

// Verify replays placements onto a fresh board built from mask using the
// same CanPlace/Place primitives and reports whether they exactly tile it.
// It exists to catch solver bugs at generation time: a puzzle that fails
// verification must never be shipped.
func Verify(mask [][]bool, placements []Placement) bool {
	b := board.New(mask)
	for _, p := range placements {
		anchor := board.Position{Row: p.Row, Col: p.Col}
		if !b.CanPlace(p.Piece, anchor, p.Rotation) {
			return false
		}
		b.Place(p.Piece, anchor, p.Rotation)
	}
	return b.EmptyCount() == 0
}
