package game

import (
	"testing"

	"github.com/emriedel/grid-games-sub002/internal/pentomino"
	"github.com/emriedel/grid-games-sub002/internal/solver"
)

// A 5x6 rectangle and one known tiling of it, used as the session fixture.
var (
	fixtureShape  = []string{"xxxxxx", "xxxxxx", "xxxxxx", "xxxxxx", "xxxxxx"}
	fixturePieces = []pentomino.ID{pentomino.F, pentomino.I, pentomino.L, pentomino.P, pentomino.T, pentomino.V}
	fixtureTiling = []solver.Placement{
		{Piece: pentomino.I, Row: 0, Col: 0, Rotation: 1},
		{Piece: pentomino.L, Row: 3, Col: 2, Rotation: 3},
		{Piece: pentomino.V, Row: 1, Col: 0, Rotation: 1},
		{Piece: pentomino.F, Row: 2, Col: 0, Rotation: 2},
		{Piece: pentomino.T, Row: 0, Col: 3, Rotation: 1},
		{Piece: pentomino.P, Row: 2, Col: 2, Rotation: 1},
	}
)

func newFixture(t *testing.T) *Game {
	t.Helper()
	g, err := New("p-test", fixtureShape, fixturePieces)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestApplyFullTilingWins(t *testing.T) {
	g := newFixture(t)
	for i, p := range fixtureTiling {
		state, err := g.Apply(p)
		if err != nil {
			t.Fatalf("Apply %v: %v", p, err)
		}
		last := i == len(fixtureTiling)-1
		if last && state != "won" {
			t.Fatalf("final placement: state = %q, want won", state)
		}
		if !last && state != "playing" {
			t.Fatalf("placement %d: state = %q, want playing", i, state)
		}
	}
	if _, err := g.Apply(fixtureTiling[0]); err == nil {
		t.Fatal("Apply on a finished game should fail")
	}
}

func TestApplyRejections(t *testing.T) {
	g := newFixture(t)

	// Piece outside the puzzle's list.
	if _, err := g.Apply(solver.Placement{Piece: pentomino.X, Row: 0, Col: 0}); err == nil {
		t.Fatal("accepted a piece the puzzle does not include")
	}
	// Out of bounds.
	if _, err := g.Apply(solver.Placement{Piece: pentomino.I, Row: 1, Col: 0}); err == nil {
		t.Fatal("accepted a vertical I running off a 5-row board")
	}
	// Same piece twice.
	if _, err := g.Apply(fixtureTiling[0]); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if _, err := g.Apply(solver.Placement{Piece: pentomino.I, Row: 1, Col: 0, Rotation: 1}); err == nil {
		t.Fatal("accepted the same piece twice")
	}
	// Overlap.
	if _, err := g.Apply(solver.Placement{Piece: pentomino.L, Row: 0, Col: 0}); err == nil {
		t.Fatal("accepted an overlapping placement")
	}
}

func TestUnplaceRestoresBoard(t *testing.T) {
	g := newFixture(t)
	before := g.Board().EmptyCount()

	if _, err := g.Apply(fixtureTiling[0]); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if _, err := g.Unplace(pentomino.I); err != nil {
		t.Fatalf("Unplace: %v", err)
	}
	if got := g.Board().EmptyCount(); got != before {
		t.Fatalf("EmptyCount after Unplace = %d, want %d", got, before)
	}
	if len(g.Placements) != 0 {
		t.Fatalf("placements not cleared: %v", g.Placements)
	}
	// The piece is available again.
	if _, err := g.Apply(fixtureTiling[0]); err != nil {
		t.Fatalf("re-Apply after Unplace: %v", err)
	}
	// Unplacing a piece that is not on the board fails.
	if _, err := g.Unplace(pentomino.V); err == nil {
		t.Fatal("Unplace accepted a piece that was never placed")
	}
}

func TestNewRejectsBadShape(t *testing.T) {
	if _, err := New("p", []string{"xx?x"}, fixturePieces); err == nil {
		t.Fatal("New accepted an invalid shape row")
	}
}
