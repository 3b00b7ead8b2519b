// internal/generator/generator.go
//
// Offline puzzle generation for the tessera daily game.
// Responsibilities:
//   - Carve a random connected playable shape out of a rectangular grid.
//   - Pick a random piece subset and prove the combination solvable.
//   - Verify every emitted puzzle against a fresh board before returning.
//
// Notes:
//   - Generation is retry-driven: an unsolvable shape/piece combination is
//     discarded and a new one drawn, until the timeout expires.
//   - Verification failing on a solver-produced solution means a solver bug,
//     not a bad draw, and is returned as a hard error: a broken puzzle must
//     never reach the pool.

package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/emriedel/grid-games-sub002/internal/pentomino"
	"github.com/emriedel/grid-games-sub002/internal/solver"
)

const (
	MinPieceCount = 2
	MaxPieceCount = 12
)

var (
	ErrGenerationFailed  = errors.New("failed to generate solvable puzzle")
	ErrInvalidPieceCount = errors.New("piece count must be between 2 and 12")
	ErrShapeTooLarge     = errors.New("shape does not fit the grid")
)

// Puzzle is one generated, solver-proven puzzle.
type Puzzle struct {
	Rows     int                `json:"rows"`
	Cols     int                `json:"cols"`
	Mask     [][]bool           `json:"-"`
	Shape    []string           `json:"shape"` // row strings, 'x' playable / '.' dead
	Pieces   []pentomino.ID     `json:"pieces"`
	Solution []solver.Placement `json:"solution"`
}

// Generator creates pentomino puzzles.
type Generator struct {
	options *Options
	rng     *rand.Rand
}

// New creates a puzzle generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions(6)
	}
	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate draws random shape/piece combinations until one solves, then
// verifies and returns it. Fails with ErrGenerationFailed on timeout.
func (g *Generator) Generate() (*Puzzle, error) {
	n := g.options.PieceCount
	if n < MinPieceCount || n > MaxPieceCount {
		return nil, ErrInvalidPieceCount
	}
	if n*pentomino.Size > g.options.Rows*g.options.Cols {
		return nil, ErrShapeTooLarge
	}

	start := time.Now()
	attempts := 0
	for {
		if time.Since(start) >= g.options.Timeout {
			log.Warn().Int("attempts", attempts).Msg("generator: timed out")
			return nil, ErrGenerationFailed
		}
		attempts++

		mask := g.carveShape(n * pentomino.Size)
		pieces := g.pickPieces(n)
		res := solver.Solve(mask, pieces)
		if !res.Solvable {
			continue
		}
		if !solver.Verify(mask, res.Solution) {
			return nil, fmt.Errorf("generated solution failed verification (solver bug): pieces %v", pieces)
		}

		log.Debug().
			Int("attempts", attempts).
			Dur("searchTime", res.SearchTime).
			Msg("generator: puzzle found")
		return &Puzzle{
			Rows:     g.options.Rows,
			Cols:     g.options.Cols,
			Mask:     mask,
			Shape:    RenderShape(mask),
			Pieces:   pieces,
			Solution: res.Solution,
		}, nil
	}
}

// carveShape grows a random 4-connected region of exactly size cells from a
// random seed cell, frontier-by-frontier.
func (g *Generator) carveShape(size int) [][]bool {
	rows, cols := g.options.Rows, g.options.Cols
	mask := make([][]bool, rows)
	for r := range mask {
		mask[r] = make([]bool, cols)
	}

	type cell struct{ r, c int }
	start := cell{g.rng.Intn(rows), g.rng.Intn(cols)}
	mask[start.r][start.c] = true
	frontier := []cell{}
	addFrontier := func(p cell) {
		for _, d := range [4]cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nr, nc := p.r+d.r, p.c+d.c
			if nr >= 0 && nr < rows && nc >= 0 && nc < cols && !mask[nr][nc] {
				frontier = append(frontier, cell{nr, nc})
			}
		}
	}
	addFrontier(start)

	carved := 1
	for carved < size && len(frontier) > 0 {
		i := g.rng.Intn(len(frontier))
		p := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if mask[p.r][p.c] {
			continue
		}
		mask[p.r][p.c] = true
		carved++
		addFrontier(p)
	}
	return mask
}

// pickPieces draws n distinct pentominoes in random order.
func (g *Generator) pickPieces(n int) []pentomino.ID {
	perm := g.rng.Perm(len(pentomino.IDs))
	out := make([]pentomino.ID, n)
	for i := 0; i < n; i++ {
		out[i] = pentomino.IDs[perm[i]]
	}
	return out
}

// RenderShape serializes a mask into row strings ('x' playable, '.' dead),
// the pool-file format.
func RenderShape(mask [][]bool) []string {
	out := make([]string, len(mask))
	for r, row := range mask {
		b := make([]byte, len(row))
		for c, ok := range row {
			if ok {
				b[c] = 'x'
			} else {
				b[c] = '.'
			}
		}
		out[r] = string(b)
	}
	return out
}

// ParseShape is the inverse of RenderShape.
func ParseShape(rows []string) ([][]bool, error) {
	mask := make([][]bool, len(rows))
	for r, row := range rows {
		mask[r] = make([]bool, len(row))
		for c := 0; c < len(row); c++ {
			switch row[c] {
			case 'x', 'X':
				mask[r][c] = true
			case '.':
			default:
				return nil, fmt.Errorf("shape row %d: invalid cell %q", r, row[c])
			}
		}
	}
	return mask, nil
}
