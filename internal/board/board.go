// internal/board/board.go
//
// Mutable board model shared by the solver and the game engine.
// Responsibilities:
//   - Represent a rows×cols grid of cells (dead / empty / filled).
//   - Answer placement queries (CanPlace) without mutating.
//   - Apply and undo placements (Place/Remove are exact inverses).
//   - Maintain the running empty-cell count the solver prunes on.
//   - Enumerate 4-connected empty regions for the divisibility prune.
//
// Notes:
//   - Place and Remove do no validation: the caller must check CanPlace
//     first and must Remove with the same (piece, anchor, rotation) it
//     placed. This keeps the search hot path branch-free.
//   - A Board is owned by a single solve or game session and is never
//     shared across goroutines.

package board

import (
	"strings"

	"github.com/emriedel/grid-games-sub002/internal/pentomino"
)

// Cell is the state of one board cell.
type Cell uint8

const (
	// Dead cells are outside the target shape and can never be covered.
	Dead Cell = iota
	// Empty cells are playable and currently uncovered.
	Empty
	// Filled cells are covered by a placed piece.
	Filled
)

// Position is an absolute (row, col) board address.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is a rectangular grid of cells plus a running empty-cell count.
type Board struct {
	rows  int
	cols  int
	cells [][]Cell
	empty int
}

// New builds a board from a playable-cell mask (true = playable).
// Every playable cell starts Empty; the rest are Dead.
func New(mask [][]bool) *Board {
	rows := len(mask)
	cols := 0
	if rows > 0 {
		cols = len(mask[0])
	}
	b := &Board{rows: rows, cols: cols, cells: make([][]Cell, rows)}
	for r := 0; r < rows; r++ {
		b.cells[r] = make([]Cell, cols)
		for c := 0; c < cols; c++ {
			if c < len(mask[r]) && mask[r][c] {
				b.cells[r][c] = Empty
				b.empty++
			}
		}
	}
	return b
}

// Rows returns the number of grid rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of grid columns.
func (b *Board) Cols() int { return b.cols }

// EmptyCount returns the number of cells currently in the Empty state.
func (b *Board) EmptyCount() int { return b.empty }

// At returns the state of the cell at (r, c); out-of-bounds cells are Dead.
func (b *Board) At(r, c int) Cell {
	if r < 0 || r >= b.rows || c < 0 || c >= b.cols {
		return Dead
	}
	return b.cells[r][c]
}

// CanPlace reports whether piece id at the given anchor and rotation covers
// five in-bounds, currently-empty cells. It never mutates the board.
func (b *Board) CanPlace(id pentomino.ID, anchor Position, rot pentomino.Rotation) bool {
	for _, off := range pentomino.Cells(id, rot) {
		r, c := anchor.Row+off.Row, anchor.Col+off.Col
		if r < 0 || r >= b.rows || c < 0 || c >= b.cols || b.cells[r][c] != Empty {
			return false
		}
	}
	return true
}

// Place marks the piece's five cells Filled and decrements the empty count.
// The caller must have verified CanPlace.
func (b *Board) Place(id pentomino.ID, anchor Position, rot pentomino.Rotation) {
	for _, off := range pentomino.Cells(id, rot) {
		b.cells[anchor.Row+off.Row][anchor.Col+off.Col] = Filled
	}
	b.empty -= pentomino.Size
}

// Remove is the exact inverse of Place: it marks the same five cells Empty
// and increments the empty count. It must be called with the (anchor,
// rotation) used to place, or the empty-count invariant breaks.
func (b *Board) Remove(id pentomino.ID, anchor Position, rot pentomino.Rotation) {
	for _, off := range pentomino.Cells(id, rot) {
		b.cells[anchor.Row+off.Row][anchor.Col+off.Col] = Empty
	}
	b.empty += pentomino.Size
}

// Regions returns the sizes of the 4-connected components formed by the
// current Empty cells, via iterative flood fill.
func (b *Board) Regions() []int {
	seen := make([][]bool, b.rows)
	for r := range seen {
		seen[r] = make([]bool, b.cols)
	}
	var sizes []int
	var stack []Position
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.cells[r][c] != Empty || seen[r][c] {
				continue
			}
			size := 0
			seen[r][c] = true
			stack = append(stack[:0], Position{r, c})
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				size++
				for _, d := range [4]Position{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
					nr, nc := p.Row+d.Row, p.Col+d.Col
					if nr >= 0 && nr < b.rows && nc >= 0 && nc < b.cols &&
						b.cells[nr][nc] == Empty && !seen[nr][nc] {
						seen[nr][nc] = true
						stack = append(stack, Position{nr, nc})
					}
				}
			}
			sizes = append(sizes, size)
		}
	}
	return sizes
}

// String renders the board for logs and test failures:
// '.' dead, 'o' empty, '#' filled.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			switch b.cells[r][c] {
			case Empty:
				sb.WriteByte('o')
			case Filled:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
