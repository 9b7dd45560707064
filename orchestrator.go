package sudoku

import (
	"fmt"
	"time"
)

// Options configures Generate, the top-level entry point dispatching
// "generate a full configuration" vs "generate a puzzle with N clues".
type Options struct {
	// NumClues: 81 (the default) generates a full configuration; any value
	// in [17,81) generates a puzzle with that many clues.
	NumClues int
	// Amount is how many outputs to produce, 1..1000 (default 1).
	Amount int
	// TimeOutMs bounds the wall-clock budget shared across every output;
	// 0 (the default) means no limit.
	TimeOutMs int
	// Config, if non-nil, is the solved configuration puzzles are dug from;
	// ignored in config mode (NumClues==81). If nil in puzzle mode, a fresh
	// configuration is generated for each output.
	Config *Board
	// Normalize relabels digits so the top row reads 1..9 (see Normalize).
	Normalize bool
	// Symmetrical requests point-symmetric clue removal (see
	// GenerateOptions.Symmetrical); only meaningful in puzzle mode.
	Symmetrical bool
	// UseSieve enables sieve-guided generation.
	UseSieve bool
	// Sieve supplies unavoidable-set masks directly. If UseSieve is true and
	// Sieve is nil, SieveProducer is consulted instead.
	Sieve Sieve
	// SieveProducer builds a Sieve for a freshly generated or supplied
	// config, standing in for the external sieve-producer collaborator
	// (populateSieve/searchForSieve2) that this package does not implement.
	SieveProducer func(config *Board) Sieve
	// Callback, if non-nil, is invoked once per generated output's board.
	Callback func(board *Board)
	// Rng drives every random choice; nil uses an auto-seeded one. Fixing
	// Rng's seed makes Generate's output reproducible.
	Rng *Rng
}

// Outcome is one of Generate's per-output results.
type Outcome struct {
	// Board is the generated output: the full configuration in config mode,
	// or the dug puzzle in puzzle mode. Nil if this attempt was Infeasible
	// within the time budget.
	Board *Board
	// Solutions holds the known solution (length 1) backing Board.
	Solutions []*Board
	CellsKept []Index
	Pops      int
	Resets    int
	TimeMs    int64
}

// Generate dispatches to full-configuration or puzzle generation per
// options, producing options.Amount outputs (fewer if the global time
// budget runs out first -- that's a partial result, not an error). Only
// malformed options or an unsolved options.Config raise an error.
func Generate(options Options) ([]Outcome, error) {
	numClues := options.NumClues
	if numClues == 0 {
		numClues = 81
	}
	if numClues < 17 || numClues > 81 {
		return nil, fmt.Errorf("%w: numClues %d out of range [17,81]", ErrBadInput, numClues)
	}

	amount := options.Amount
	if amount == 0 {
		amount = 1
	}
	if amount < 1 || amount > 1000 {
		return nil, fmt.Errorf("%w: amount %d out of range [1,1000]", ErrBadInput, amount)
	}

	if options.TimeOutMs < 0 {
		return nil, fmt.Errorf("%w: timeOutMs must be non-negative", ErrBadInput)
	}

	if options.Config != nil && !options.Config.IsSolved() {
		return nil, fmt.Errorf("%w: Config must be a solved board", ErrBadInput)
	}

	if options.UseSieve && options.Sieve == nil && options.SieveProducer == nil {
		return nil, fmt.Errorf("%w: UseSieve requires Sieve or SieveProducer", ErrBadInput)
	}

	rng := options.Rng
	if rng == nil {
		rng = newAutoRng()
	}

	startTime := time.Now()
	outcomes := make([]Outcome, 0, amount)

	for i := 0; i < amount; i++ {
		remaining := remainingBudgetMs(options.TimeOutMs, startTime)
		if options.TimeOutMs > 0 && remaining <= 0 {
			break
		}

		var config *Board
		if options.Config != nil && numClues != 81 {
			config = options.Config.Clone()
		} else {
			var err error
			config, err = GenerateConfig(rng, remaining)
			if err != nil {
				return outcomes, err
			}
			if config == nil {
				// Timed out producing a config; stop, returning whatever
				// outputs we already have.
				break
			}
		}
		if options.Normalize {
			Normalize(config)
		}

		if numClues == 81 {
			outcome := Outcome{Board: config, Solutions: []*Board{config}}
			outcomes = append(outcomes, outcome)
			if options.Callback != nil {
				options.Callback(config)
			}
			continue
		}

		var sieve Sieve
		if options.UseSieve {
			sieve = options.Sieve
			if sieve == nil {
				sieve = options.SieveProducer(config)
			}
		}

		pr, err := GeneratePuzzle(config, GenerateOptions{
			NumClues:    numClues,
			Sieve:       sieve,
			Symmetrical: options.Symmetrical,
			Rng:         rng,
			TimeOutMs:   remainingBudgetMs(options.TimeOutMs, startTime),
		})
		if err != nil {
			return outcomes, err
		}

		outcome := Outcome{
			CellsKept: pr.CellsKept,
			Pops:      pr.Pops,
			Resets:    pr.Resets,
			TimeMs:    pr.TimeMs,
		}
		if pr.Puzzle != nil {
			outcome.Board = pr.Puzzle
			outcome.Solutions = []*Board{config}
		}
		outcomes = append(outcomes, outcome)
		if options.Callback != nil && outcome.Board != nil {
			options.Callback(outcome.Board)
		}
	}

	return outcomes, nil
}

// GenerateConfig produces a fresh, randomly-filled solved configuration by
// running the solver from an empty board. Returns (nil, nil) if the time
// budget expires first -- an empty board is always solvable, so this only
// happens under an aggressively small timeOutMs.
func GenerateConfig(rng *Rng, timeOutMs int) (*Board, error) {
	empty, err := NewBoard(make([]int, 81))
	if err != nil {
		return nil, err
	}
	sol, result := FirstSolution(empty, rng, timeOutMs)
	if sol == nil && result.TimedOut {
		return nil, nil
	}
	return sol, nil
}

func remainingBudgetMs(totalMs int, start time.Time) int {
	if totalMs <= 0 {
		return 0
	}
	elapsed := time.Since(start).Milliseconds()
	remaining := int64(totalMs) - elapsed
	if remaining < 0 {
		remaining = 0
	}
	return int(remaining)
}
