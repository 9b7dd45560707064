// Command generator produces Sudoku configurations or puzzles and prints
// them to stdout, colorizing clues vs. empty cells when writing to a
// terminal.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nwillc/sudokuforge"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

func main() {
	var clues, amount, timeoutMs int
	var symmetrical, normalize bool

	root := &cobra.Command{
		Use:   "generator",
		Short: "Generate Sudoku configurations or puzzles",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			outcomes, err := sudoku.Generate(sudoku.Options{
				NumClues:    clues,
				Amount:      amount,
				TimeOutMs:   timeoutMs,
				Symmetrical: symmetrical,
				Normalize:   normalize,
			})
			if err != nil {
				return err
			}
			log.Info().
				Int("requested", amount).
				Int("produced", len(outcomes)).
				Dur("elapsed", time.Since(start)).
				Msg("generation complete")

			for i, o := range outcomes {
				if o.Board == nil {
					log.Warn().Int("attempt", i).Int("pops", o.Pops).Int("resets", o.Resets).Msg("attempt infeasible within time budget")
					continue
				}
				fmt.Println(render(o.Board))
			}
			return nil
		},
	}
	root.Flags().IntVar(&clues, "clues", 81, "clue count (81 = full configuration)")
	root.Flags().IntVar(&amount, "amount", 1, "number of outputs to produce")
	root.Flags().IntVar(&timeoutMs, "timeout-ms", 0, "overall time budget in milliseconds (0 = none)")
	root.Flags().BoolVar(&symmetrical, "sym", false, "generate a point-symmetric puzzle")
	root.Flags().BoolVar(&normalize, "normalize", false, "relabel digits so row 0 reads 1..9")

	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("generation failed")
	}
}

// render draws board as a boxed grid, coloring clues green and leaving
// empty cells dim, kpitt/sudoku-style terminal coloring.
func render(board *sudoku.Board) string {
	var out string
	for ci := 0; ci < 81; ci++ {
		d := board.Get(ci)
		if d == 0 {
			out += color.HiBlackString(" .")
		} else {
			out += color.HiGreenString(" %d", d)
		}
		col := ci % 9
		if col == 2 || col == 5 {
			out += " |"
		}
		if col == 8 {
			out += "\n"
		}
		if ci == 26 || ci == 53 {
			out += "------+-------+------\n"
		}
	}
	return out
}
