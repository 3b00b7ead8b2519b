// cmd/tessera-gen/main.go
//
// Offline puzzle pool generator for the tessera server.
// Produces a JSON pool file the server loads via PUZZLES_FILE; every entry
// is solver-proven and verified before it is written.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/emriedel/grid-games-sub002/internal/generator"
	"github.com/emriedel/grid-games-sub002/internal/puzzle"
)

var (
	numPuzzles int
	boardRows  int
	boardCols  int
	pieceCount int
	timeout    time.Duration
	seed       int64
	outputFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tessera-gen",
		Short: "tessera puzzle tooling",
	}

	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate tessera puzzles",
		Long: `Generate one or more solver-verified pentomino puzzles.

Examples:
  tessera-gen gen --pieces 6
  tessera-gen gen -n 50 --rows 8 --cols 8 --pieces 6 -o pool.json
  tessera-gen gen --pieces 4 --seed 42 --timeout 30s`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&numPuzzles, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().IntVar(&boardRows, "rows", 8, "Board grid rows")
	genCmd.Flags().IntVar(&boardCols, "cols", 8, "Board grid columns")
	genCmd.Flags().IntVar(&pieceCount, "pieces", 6, "Pentominoes per puzzle (2-12)")
	genCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Generation timeout per puzzle")
	genCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for reproducible puzzles (0 = random)")
	genCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output pool file (e.g., pool.json); default prints to stdout")

	rootCmd.AddCommand(genCmd)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGen(cmd *cobra.Command, args []string) error {
	if pieceCount < generator.MinPieceCount || pieceCount > generator.MaxPieceCount {
		return fmt.Errorf("pieces (%d) must be between %d and %d",
			pieceCount, generator.MinPieceCount, generator.MaxPieceCount)
	}

	opts := &generator.Options{
		Rows:       boardRows,
		Cols:       boardCols,
		PieceCount: pieceCount,
		Timeout:    timeout,
		Seed:       seed,
	}
	gen := generator.New(opts)

	pool := make([]puzzle.Puzzle, 0, numPuzzles)
	for i := 0; i < numPuzzles; i++ {
		start := time.Now()
		p, err := gen.Generate()
		if err != nil {
			return fmt.Errorf("generation failed on puzzle %d: %w", i+1, err)
		}
		entry := puzzle.Puzzle{
			ID:       fmt.Sprintf("gen-%dx%d-%03d", boardRows, boardCols, i+1),
			Rows:     p.Rows,
			Cols:     p.Cols,
			Shape:    p.Shape,
			Pieces:   p.Pieces,
			Solution: p.Solution,
		}
		pool = append(pool, entry)
		log.Info().
			Str("id", entry.ID).
			Any("pieces", entry.Pieces).
			Dur("took", time.Since(start)).
			Msg("generated puzzle")
	}

	out, err := json.MarshalIndent(pool, "", "  ")
	if err != nil {
		return err
	}
	// Re-verify the encoded pool exactly as the server will read it.
	if _, err := puzzle.ParsePool(out); err != nil {
		return fmt.Errorf("pool failed post-encode verification: %w", err)
	}

	if outputFile == "" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.WriteFile(outputFile, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write pool file: %w", err)
	}
	fmt.Printf("Generated %d puzzle(s) in %s\n", numPuzzles, outputFile)
	return nil
}
