package generator

import (
	"testing"
	"time"

	"github.com/emriedel/grid-games-sub002/internal/pentomino"
	"github.com/emriedel/grid-games-sub002/internal/solver"
)

func TestGenerateSmallPuzzle(t *testing.T) {
	g := New(&Options{
		Rows:       5,
		Cols:       5,
		PieceCount: 2,
		Timeout:    10 * time.Second,
		Seed:       12345,
	})

	p, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(p.Pieces) != 2 {
		t.Fatalf("got %d pieces, want 2", len(p.Pieces))
	}
	playable := 0
	for _, row := range p.Mask {
		for _, ok := range row {
			if ok {
				playable++
			}
		}
	}
	if playable != 2*pentomino.Size {
		t.Fatalf("shape has %d playable cells, want %d", playable, 2*pentomino.Size)
	}
	if !solver.Verify(p.Mask, p.Solution) {
		t.Fatalf("generated puzzle does not verify: %+v", p)
	}
}

func TestGenerateReproducibleWithSeed(t *testing.T) {
	opts := &Options{Rows: 5, Cols: 5, PieceCount: 2, Timeout: 10 * time.Second, Seed: 99}
	a, err := New(opts).Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := New(opts).Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i := range a.Shape {
		if a.Shape[i] != b.Shape[i] {
			t.Fatalf("same seed produced different shapes:\n%v\n%v", a.Shape, b.Shape)
		}
	}
}

func TestGenerateRejectsBadOptions(t *testing.T) {
	if _, err := New(&Options{Rows: 8, Cols: 8, PieceCount: 1, Timeout: time.Second}).Generate(); err != ErrInvalidPieceCount {
		t.Fatalf("piece count 1: got %v, want ErrInvalidPieceCount", err)
	}
	if _, err := New(&Options{Rows: 3, Cols: 3, PieceCount: 4, Timeout: time.Second}).Generate(); err != ErrShapeTooLarge {
		t.Fatalf("20 cells on 3x3: got %v, want ErrShapeTooLarge", err)
	}
}

func TestShapeRoundTrip(t *testing.T) {
	rows := []string{"xx..x", ".xxx.", "x...x"}
	mask, err := ParseShape(rows)
	if err != nil {
		t.Fatalf("ParseShape: %v", err)
	}
	got := RenderShape(mask)
	for i := range rows {
		if got[i] != rows[i] {
			t.Fatalf("round trip: got %v, want %v", got, rows)
		}
	}
	if _, err := ParseShape([]string{"xo"}); err == nil {
		t.Fatal("ParseShape accepted an invalid cell character")
	}
}
