// internal/pentomino/pentomino.go
//
// Piece geometry for the tessera pentomino games.
// Responsibilities:
//   - Define the 12 pentomino shapes as normalized cell offsets.
//   - Precompute all four 90° clockwise rotations of every piece at init.
//   - Deduplicate symmetric rotations so the solver never branches on
//     two orientations that produce the same cell set.
//
// Notes:
//   - Offsets are (row, col) relative to the piece's local origin, with the
//     bounding box touching (0,0) after normalization.
//   - Mirrored orientations are NOT supported: pieces are one-sided, with at
//     most 4 distinct rotation states.
//   - The rotation table is built once and is read-only afterwards. Callers
//     receive the cached slices and must not mutate them.

package pentomino

import (
	"fmt"
	"sort"
	"strings"
)

// ID identifies one of the 12 pentominoes by its conventional letter.
type ID string

const (
	F ID = "F"
	I ID = "I"
	L ID = "L"
	N ID = "N"
	P ID = "P"
	T ID = "T"
	U ID = "U"
	V ID = "V"
	W ID = "W"
	X ID = "X"
	Y ID = "Y"
	Z ID = "Z"
)

// IDs lists every pentomino in canonical order.
var IDs = []ID{F, I, L, N, P, T, U, V, W, X, Y, Z}

// Size is the number of cells in a pentomino.
const Size = 5

// Rotation is a discrete orientation: 0..3 quarter turns clockwise.
type Rotation int

// Offset is a (row, col) cell position relative to a piece's local origin.
type Offset struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// baseShapes holds the hand-authored canonical shape of every piece,
// already normalized (min row = min col = 0).
var baseShapes = map[ID][]Offset{
	F: {{0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 1}},
	I: {{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}},
	L: {{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}},
	N: {{0, 1}, {1, 1}, {2, 0}, {2, 1}, {3, 0}},
	P: {{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}},
	T: {{0, 0}, {0, 1}, {0, 2}, {1, 1}, {2, 1}},
	U: {{0, 0}, {0, 2}, {1, 0}, {1, 1}, {1, 2}},
	V: {{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}},
	W: {{0, 0}, {1, 0}, {1, 1}, {2, 1}, {2, 2}},
	X: {{0, 1}, {1, 0}, {1, 1}, {1, 2}, {2, 1}},
	Y: {{0, 1}, {1, 0}, {1, 1}, {2, 1}, {3, 1}},
	Z: {{0, 0}, {0, 1}, {1, 1}, {2, 1}, {2, 2}},
}

var (
	// rotationTable[id][rot] is the normalized cell set of id after rot
	// quarter turns clockwise. Built once in init, never mutated.
	rotationTable map[ID][4][]Offset

	// distinctRotations[id] lists the rotation states that produce distinct
	// shapes (e.g. X → [0], I → [0,1], F → [0,1,2,3]).
	distinctRotations map[ID][]Rotation
)

func init() {
	rotationTable = make(map[ID][4][]Offset, len(IDs))
	distinctRotations = make(map[ID][]Rotation, len(IDs))

	for _, id := range IDs {
		var rots [4][]Offset
		cur := normalize(baseShapes[id])
		seen := map[string]bool{}
		var distinct []Rotation
		for r := 0; r < 4; r++ {
			rots[r] = cur
			if sig := signature(cur); !seen[sig] {
				seen[sig] = true
				distinct = append(distinct, Rotation(r))
			}
			cur = normalize(rotateCW(cur))
		}
		rotationTable[id] = rots
		distinctRotations[id] = distinct
	}
}

// rotateCW applies the 90° clockwise transform (r,c) → (c,-r) to every offset.
func rotateCW(cells []Offset) []Offset {
	out := make([]Offset, len(cells))
	for i, c := range cells {
		out[i] = Offset{Row: c.Col, Col: -c.Row}
	}
	return out
}

// normalize shifts cells so the bounding box touches the origin and sorts
// them row-major, giving every congruent shape a single representation.
func normalize(cells []Offset) []Offset {
	minR, minC := cells[0].Row, cells[0].Col
	for _, c := range cells[1:] {
		if c.Row < minR {
			minR = c.Row
		}
		if c.Col < minC {
			minC = c.Col
		}
	}
	out := make([]Offset, len(cells))
	for i, c := range cells {
		out[i] = Offset{Row: c.Row - minR, Col: c.Col - minC}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// signature renders a cell set as a comparable string for deduplication.
func signature(cells []Offset) string {
	var sb strings.Builder
	for _, c := range cells {
		fmt.Fprintf(&sb, "%d,%d;", c.Row, c.Col)
	}
	return sb.String()
}

// Cells returns the five normalized offsets of id at the given rotation.
// The returned slice is shared and read-only.
func Cells(id ID, rot Rotation) []Offset {
	return rotationTable[id][rot&3]
}

// Rotations returns the rotation states of id that yield distinct shapes.
// The returned slice is shared and read-only.
func Rotations(id ID) []Rotation {
	return distinctRotations[id]
}

// Valid reports whether id names one of the 12 pentominoes.
func Valid(id ID) bool {
	_, ok := baseShapes[id]
	return ok
}

// Parse converts a comma-separated letter list ("F,I,L") into piece IDs.
// Letters are case-insensitive; unknown letters are rejected.
func Parse(s string) ([]ID, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]ID, 0, len(parts))
	for _, p := range parts {
		id := ID(strings.ToUpper(strings.TrimSpace(p)))
		if !Valid(id) {
			return nil, fmt.Errorf("unknown pentomino: %q", p)
		}
		out = append(out, id)
	}
	return out, nil
}
