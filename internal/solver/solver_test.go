package solver

import (
	"testing"
	"time"

	"github.com/emriedel/grid-games-sub002/internal/board"
	"github.com/emriedel/grid-games-sub002/internal/pentomino"
)

func rectMask(rows, cols int) [][]bool {
	mask := make([][]bool, rows)
	for r := range mask {
		mask[r] = make([]bool, cols)
		for c := range mask[r] {
			mask[r][c] = true
		}
	}
	return mask
}

func TestSolve5x6Rectangle(t *testing.T) {
	mask := rectMask(5, 6)
	pieces := []pentomino.ID{pentomino.F, pentomino.I, pentomino.L, pentomino.P, pentomino.T, pentomino.V}

	res := Solve(mask, pieces)
	if !res.Solvable {
		t.Fatal("5x6 rectangle with F,I,L,P,T,V should be solvable")
	}
	if len(res.Solution) != len(pieces) {
		t.Fatalf("solution has %d placements, want %d", len(res.Solution), len(pieces))
	}
	if !Verify(mask, res.Solution) {
		t.Fatalf("solver solution fails verification: %v", res.Solution)
	}

	// Render onto a scratch board: every cell covered exactly once.
	b := board.New(mask)
	for _, p := range res.Solution {
		anchor := board.Position{Row: p.Row, Col: p.Col}
		if !b.CanPlace(p.Piece, anchor, p.Rotation) {
			t.Fatalf("placement %v overlaps or leaves the board", p)
		}
		b.Place(p.Piece, anchor, p.Rotation)
	}
	if b.EmptyCount() != 0 {
		t.Fatalf("%d cells left uncovered:\n%s", b.EmptyCount(), b)
	}
}

func TestSolve5x6Unsolvable(t *testing.T) {
	// Swapping V for U makes the same rectangle untileable under
	// rotations-only orientation rules.
	mask := rectMask(5, 6)
	pieces := []pentomino.ID{pentomino.F, pentomino.I, pentomino.L, pentomino.P, pentomino.T, pentomino.U}

	res := Solve(mask, pieces)
	if res.Solvable {
		t.Fatalf("expected unsolvable, got solution %v", res.Solution)
	}
	if res.Solution != nil {
		t.Fatal("unsolvable result must carry a nil solution")
	}
}

func TestSolveAreaMismatchFailsFast(t *testing.T) {
	// 25 playable cells vs 6 pieces (30 cells): rejected before search.
	mask := rectMask(5, 5)
	pieces := []pentomino.ID{pentomino.F, pentomino.I, pentomino.L, pentomino.P, pentomino.T, pentomino.V}

	res := Solve(mask, pieces)
	if res.Solvable {
		t.Fatal("area-mismatched input reported solvable")
	}
	if res.SearchTime > 50*time.Millisecond {
		t.Fatalf("area mismatch took %v, should be rejected without search", res.SearchTime)
	}
}

func TestSolveRegionPrune(t *testing.T) {
	// Left 3x4 island (12 cells) and right 3-cell pocket: 15 cells for 3
	// pieces passes the area check, but no island size is a multiple of 5.
	mask := [][]bool{
		{true, true, true, true, false, true},
		{true, true, true, true, false, true},
		{true, true, true, true, false, true},
	}
	pieces := []pentomino.ID{pentomino.L, pentomino.P, pentomino.V}

	res := Solve(mask, pieces)
	if res.Solvable {
		t.Fatal("board with a 3-cell pocket reported solvable")
	}
	if res.SearchTime > 50*time.Millisecond {
		t.Fatalf("region prune took %v, expected immediate rejection", res.SearchTime)
	}
}

func TestSolveDuplicatePieces(t *testing.T) {
	// Two L pieces tile a 2x5 strip.
	mask := rectMask(2, 5)
	res := Solve(mask, []pentomino.ID{pentomino.L, pentomino.L})
	if !res.Solvable {
		t.Fatal("2x5 strip with L,L should be solvable")
	}
	if !Verify(mask, res.Solution) {
		t.Fatalf("L,L solution fails verification: %v", res.Solution)
	}
}

func TestSolveNoPieces(t *testing.T) {
	// Zero pieces only succeed on a board with zero playable cells.
	empty := [][]bool{{false, false}, {false, false}}
	if res := Solve(empty, nil); !res.Solvable {
		t.Fatal("empty piece list on an all-dead board should be solvable")
	}
	if res := Solve(rectMask(1, 5), nil); res.Solvable {
		t.Fatal("empty piece list cannot tile a board with playable cells")
	}
}

func TestSolveIrregularShape(t *testing.T) {
	// 15-cell shape built as the union of one P, V, and W placement, so it
	// is solvable by construction.
	mask := [][]bool{
		{true, true, true, true, true},
		{true, true, false, false, true},
		{true, true, false, false, true},
		{false, true, true, false, false},
		{false, false, true, true, false},
	}
	res := Solve(mask, []pentomino.ID{pentomino.P, pentomino.V, pentomino.W})
	if !res.Solvable {
		t.Fatal("irregular P+V+W union should be solvable")
	}
	if !Verify(mask, res.Solution) {
		t.Fatalf("solution fails verification: %v", res.Solution)
	}
}

func TestVerifyRejectsBadPlacements(t *testing.T) {
	mask := rectMask(5, 6)
	pieces := []pentomino.ID{pentomino.F, pentomino.I, pentomino.L, pentomino.P, pentomino.T, pentomino.V}
	res := Solve(mask, pieces)
	if !res.Solvable {
		t.Fatal("fixture should be solvable")
	}

	// Incomplete cover.
	if Verify(mask, res.Solution[:len(res.Solution)-1]) {
		t.Fatal("Verify accepted a partial cover")
	}
	// Overlapping placement.
	dup := append(append([]Placement(nil), res.Solution...), res.Solution[0])
	if Verify(mask, dup) {
		t.Fatal("Verify accepted an overlapping placement")
	}
	// Shifted placement runs into occupied or dead cells.
	bad := append([]Placement(nil), res.Solution...)
	bad[0].Row++
	if Verify(mask, bad) {
		t.Fatal("Verify accepted a shifted placement")
	}
}
