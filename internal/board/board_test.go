package board

import (
	"testing"

	"github.com/emriedel/grid-games-sub002/internal/pentomino"
)

func fullMask(rows, cols int) [][]bool {
	mask := make([][]bool, rows)
	for r := range mask {
		mask[r] = make([]bool, cols)
		for c := range mask[r] {
			mask[r][c] = true
		}
	}
	return mask
}

func TestNewCountsPlayableCells(t *testing.T) {
	mask := fullMask(3, 4)
	mask[0][0] = false
	mask[2][3] = false
	b := New(mask)
	if got := b.EmptyCount(); got != 10 {
		t.Fatalf("EmptyCount = %d, want 10", got)
	}
	if b.At(0, 0) != Dead || b.At(2, 3) != Dead {
		t.Fatal("masked-out cells should be Dead")
	}
	if b.At(1, 1) != Empty {
		t.Fatal("playable cell should start Empty")
	}
}

func TestCanPlaceBoundsAndOccupancy(t *testing.T) {
	b := New(fullMask(5, 5))

	if !b.CanPlace(pentomino.I, Position{0, 0}, 0) {
		t.Fatal("vertical I at origin should fit a 5x5 board")
	}
	// One row past the bottom edge.
	if b.CanPlace(pentomino.I, Position{1, 0}, 0) {
		t.Fatal("vertical I at row 1 should run off a 5-row board")
	}
	// Negative anchor.
	if b.CanPlace(pentomino.P, Position{-1, 0}, 0) {
		t.Fatal("negative anchor should be rejected")
	}

	b.Place(pentomino.I, Position{0, 0}, 0)
	// Overlap with the placed I in column 0.
	if b.CanPlace(pentomino.L, Position{0, 0}, 0) {
		t.Fatal("placement overlapping a filled cell should be rejected")
	}
	// Dead cell underneath.
	mask := fullMask(5, 5)
	mask[2][2] = false
	db := New(mask)
	if db.CanPlace(pentomino.I, Position{0, 2}, 0) {
		t.Fatal("placement over a dead cell should be rejected")
	}
}

func TestPlaceRemoveInverse(t *testing.T) {
	b := New(fullMask(5, 6))
	before := b.String()
	n := b.EmptyCount()

	anchor := Position{1, 2}
	b.Place(pentomino.W, anchor, 1)
	if got := b.EmptyCount(); got != n-5 {
		t.Fatalf("EmptyCount after Place = %d, want %d", got, n-5)
	}
	b.Remove(pentomino.W, anchor, 1)
	if got := b.EmptyCount(); got != n {
		t.Fatalf("EmptyCount after Remove = %d, want %d", got, n)
	}
	if after := b.String(); after != before {
		t.Fatalf("Remove did not restore board:\nbefore:\n%safter:\n%s", before, after)
	}
}

func TestEmptyCountMatchesCellStates(t *testing.T) {
	b := New(fullMask(5, 6))
	placements := []struct {
		id     pentomino.ID
		anchor Position
		rot    pentomino.Rotation
	}{
		{pentomino.I, Position{0, 0}, 1},
		{pentomino.L, Position{3, 2}, 3},
		{pentomino.V, Position{1, 0}, 1},
	}
	check := func() {
		count := 0
		for r := 0; r < b.Rows(); r++ {
			for c := 0; c < b.Cols(); c++ {
				if b.At(r, c) == Empty {
					count++
				}
			}
		}
		if count != b.EmptyCount() {
			t.Fatalf("EmptyCount = %d but %d cells are Empty\n%s", b.EmptyCount(), count, b)
		}
	}
	for _, p := range placements {
		if !b.CanPlace(p.id, p.anchor, p.rot) {
			t.Fatalf("fixture placement %v does not fit", p)
		}
		b.Place(p.id, p.anchor, p.rot)
		check()
	}
	for i := len(placements) - 1; i >= 0; i-- {
		p := placements[i]
		b.Remove(p.id, p.anchor, p.rot)
		check()
	}
}

func TestRegions(t *testing.T) {
	// Two empty islands split by a dead column: sizes 12 and 3.
	mask := [][]bool{
		{true, true, true, true, false, true},
		{true, true, true, true, false, true},
		{true, true, true, true, false, true},
	}
	b := New(mask)
	sizes := b.Regions()
	if len(sizes) != 2 {
		t.Fatalf("Regions = %v, want 2 components", sizes)
	}
	if !(sizes[0] == 12 && sizes[1] == 3) && !(sizes[0] == 3 && sizes[1] == 12) {
		t.Fatalf("Regions = %v, want sizes 12 and 3", sizes)
	}

	// Filling cells splits the remaining space.
	fb := New(fullMask(5, 5))
	fb.Place(pentomino.I, Position{0, 2}, 0)
	sizes = fb.Regions()
	if len(sizes) != 2 || sizes[0]+sizes[1] != 20 {
		t.Fatalf("Regions after vertical I = %v, want two components totaling 20", sizes)
	}
}
