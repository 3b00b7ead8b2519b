package pentomino

import "testing"

func TestCellsNormalized(t *testing.T) {
	for _, id := range IDs {
		for rot := Rotation(0); rot < 4; rot++ {
			cells := Cells(id, rot)
			if len(cells) != Size {
				t.Fatalf("%s rot %d: got %d cells, want %d", id, rot, len(cells), Size)
			}
			minR, minC := cells[0].Row, cells[0].Col
			for _, c := range cells {
				if c.Row < minR {
					minR = c.Row
				}
				if c.Col < minC {
					minC = c.Col
				}
			}
			if minR != 0 || minC != 0 {
				t.Errorf("%s rot %d: bounding box not at origin (minR=%d minC=%d)", id, rot, minR, minC)
			}
		}
	}
}

func TestFourRotationsCloseCycle(t *testing.T) {
	// Rotating four times must land back on the base shape.
	for _, id := range IDs {
		cur := Cells(id, 0)
		for i := 0; i < 4; i++ {
			cur = normalize(rotateCW(cur))
		}
		if signature(cur) != signature(Cells(id, 0)) {
			t.Errorf("%s: 4x90° rotation does not reproduce base shape", id)
		}
	}
}

func TestDistinctRotationCounts(t *testing.T) {
	want := map[ID]int{
		F: 4, I: 2, L: 4, N: 4, P: 4, T: 4,
		U: 4, V: 4, W: 4, X: 1, Y: 4, Z: 2,
	}
	for id, n := range want {
		if got := len(Rotations(id)); got != n {
			t.Errorf("%s: %d distinct rotations, want %d", id, got, n)
		}
	}
}

func TestRotationsAreDistinctShapes(t *testing.T) {
	for _, id := range IDs {
		seen := map[string]Rotation{}
		for _, rot := range Rotations(id) {
			sig := signature(Cells(id, rot))
			if prev, dup := seen[sig]; dup {
				t.Errorf("%s: rotations %d and %d share shape %s", id, prev, rot, sig)
			}
			seen[sig] = rot
		}
	}
}

func TestParse(t *testing.T) {
	ids, err := Parse("f, I,l")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(ids) != 3 || ids[0] != F || ids[1] != I || ids[2] != L {
		t.Fatalf("Parse: got %v", ids)
	}
	if _, err := Parse("F,Q"); err == nil {
		t.Fatal("Parse accepted unknown piece Q")
	}
	if ids, err := Parse("  "); err != nil || ids != nil {
		t.Fatalf("Parse blank: got %v, %v", ids, err)
	}
}
