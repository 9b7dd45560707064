// Command solver reads one board per line from stdin (ignoring blank lines
// and lines starting with '#') and solves each with the core search,
// reporting timing and, with --stats, solver iteration counts.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nwillc/sudokuforge"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

func main() {
	var statsFlag bool
	var timeoutMs int

	root := &cobra.Command{
		Use:   "solver",
		Short: "Solve Sudoku boards read one-per-line from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolver(statsFlag, timeoutMs)
		},
	}
	root.Flags().BoolVar(&statsFlag, "stats", false, "log solver iteration stats")
	root.Flags().IntVar(&timeoutMs, "timeout-ms", 0, "per-board solve timeout in milliseconds (0 = none)")

	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("solver failed")
	}
}

func runSolver(statsFlag bool, timeoutMs int) error {
	if statsFlag {
		sudoku.EnableStats = true
	}

	var totalDuration, maxDuration time.Duration
	var totalIterations, maxIterations uint64
	numBoards, numSolved := 0, 0

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		numBoards++

		tStart := time.Now()
		board, err := sudoku.NewBoard(line)
		if err != nil {
			return err
		}
		sol, result := sudoku.FirstSolution(board, nil, timeoutMs)
		elapsed := time.Since(tStart)

		totalDuration += elapsed
		if elapsed > maxDuration {
			maxDuration = elapsed
		}
		if sol != nil && sol.IsSolved() {
			numSolved++
		}

		if statsFlag {
			totalIterations += uint64(result.Iterations)
			if uint64(result.Iterations) > maxIterations {
				maxIterations = uint64(result.Iterations)
			}
			log.Debug().
				Int("board", numBoards).
				Int("iterations", result.Iterations).
				Bool("solved", sol != nil).
				Dur("elapsed", elapsed).
				Msg("solved board")
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	fmt.Printf("Solved %v/%v boards\n", numSolved, numBoards)
	if numBoards > 0 {
		fmt.Printf("Duration average=%-15v max=%v\n", totalDuration/time.Duration(numBoards), maxDuration)
		if statsFlag {
			fmt.Printf("Iterations average=%-15.2f max=%v\n", float64(totalIterations)/float64(numBoards), maxIterations)
		}
	}
	return nil
}
