// internal/puzzle/puzzle.go
//
// Puzzle pool management for the tessera server.
//
// Responsibilities:
//   - Load the pre-generated puzzle pool from an environment-provided JSON
//     file or fall back to the embedded default pool.
//   - Re-verify every pool entry with the solver before serving it: a
//     malformed puzzle cannot be corrected after publication.
//   - Supply lookups by index and by id, plus the pool size.
//
// Initialization behavior (Init):
//   1. If PUZZLES_FILE is set, load the pool from that path.
//   2. Otherwise fall back to the embedded default pool in assets.
//
// Environment variables:
//   PUZZLES_FILE=/path/to/pool.json
//
// Constraints:
//   • Every entry must carry a shape, a piece list, and a solution that
//     verifies against the shape. A single bad entry fails initialization.
//   • Initialization is run once (sync.Once).

package puzzle

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/emriedel/grid-games-sub002/assets"
	"github.com/emriedel/grid-games-sub002/internal/generator"
	"github.com/emriedel/grid-games-sub002/internal/pentomino"
	"github.com/emriedel/grid-games-sub002/internal/solver"
)

// Puzzle is one pool entry: a solver-proven shape/piece combination.
type Puzzle struct {
	ID       string             `json:"id"`
	Rows     int                `json:"rows"`
	Cols     int                `json:"cols"`
	Shape    []string           `json:"shape"` // 'x' playable, '.' dead
	Pieces   []pentomino.ID     `json:"pieces"`
	Solution []solver.Placement `json:"solution"`
}

// Mask parses the puzzle's shape rows into a playable-cell mask.
func (p *Puzzle) Mask() ([][]bool, error) {
	return generator.ParseShape(p.Shape)
}

var (
	initOnce   sync.Once
	pool       []Puzzle
	byID       map[string]*Puzzle
	initialErr error
)

// Init loads and verifies the puzzle pool exactly once.
func Init() error {
	initOnce.Do(func() {
		var raw []byte
		if path := os.Getenv("PUZZLES_FILE"); path != "" {
			b, err := os.ReadFile(path)
			if err != nil {
				initialErr = fmt.Errorf("puzzle: read pool: %w", err)
				return
			}
			raw = b
		} else {
			raw = assets.DefaultPool()
		}

		entries, err := ParsePool(raw)
		if err != nil {
			initialErr = err
			return
		}
		if len(entries) == 0 {
			initialErr = errors.New("puzzle: pool is empty")
			return
		}

		pool = entries
		byID = make(map[string]*Puzzle, len(pool))
		for i := range pool {
			byID[pool[i].ID] = &pool[i]
		}
	})
	return initialErr
}

// ParsePool decodes a pool JSON document and verifies every entry.
func ParsePool(raw []byte) ([]Puzzle, error) {
	var entries []Puzzle
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("puzzle: decode pool: %w", err)
	}
	for i := range entries {
		if err := verifyEntry(&entries[i]); err != nil {
			return nil, fmt.Errorf("puzzle %q: %w", entries[i].ID, err)
		}
	}
	return entries, nil
}

// verifyEntry replays the stored solution against the stored shape.
// Shipping an unverified puzzle is the one unforgivable failure mode here.
func verifyEntry(p *Puzzle) error {
	if p.ID == "" {
		return errors.New("missing id")
	}
	mask, err := p.Mask()
	if err != nil {
		return err
	}
	for _, id := range p.Pieces {
		if !pentomino.Valid(id) {
			return fmt.Errorf("unknown piece %q", id)
		}
	}
	if len(p.Solution) != len(p.Pieces) {
		return fmt.Errorf("solution has %d placements for %d pieces", len(p.Solution), len(p.Pieces))
	}
	if !solver.Verify(mask, p.Solution) {
		return errors.New("solution does not verify against shape")
	}
	return nil
}

// Count returns the pool size.
func Count() int { return len(pool) }

// ByIndex returns pool entry i (callers derive i from the daily index).
func ByIndex(i int) (*Puzzle, error) {
	if i < 0 || i >= len(pool) {
		return nil, fmt.Errorf("puzzle: index %d out of range (pool size %d)", i, len(pool))
	}
	return &pool[i], nil
}

// ByID returns the pool entry with the given id.
func ByID(id string) (*Puzzle, error) {
	if p, ok := byID[id]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("puzzle: unknown id %q", id)
}
