package sudoku

import (
	"fmt"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// popsUntilReset is how many pops since the last restart trigger a restart
// back to the search root; periodic restarts empirically bound worst-case
// latency in the removal-order graph at modest cost to average time.
const popsUntilReset = 100

// GenerateOptions configures GeneratePuzzle.
type GenerateOptions struct {
	// NumClues is the target clue count, 17..81.
	NumClues int
	// Sieve, if non-nil, supplies unavoidable-set masks; the cells returned
	// by cellsToKeepFromSieve(config, Sieve) may never be cleared.
	Sieve Sieve
	// Symmetrical requests point-symmetric clue removal: clearing cell ci
	// also clears its 180-degree partner (80-ci) when possible.
	Symmetrical bool
	// Rng drives every random choice; nil uses an auto-seeded one.
	Rng *Rng
	// TimeOutMs bounds this attempt's wall-clock budget; 0 means no limit.
	TimeOutMs int
}

// PuzzleResult is the outcome of one GeneratePuzzle attempt.
type PuzzleResult struct {
	// Puzzle is the generated puzzle, or nil if generation failed within the
	// time budget (Infeasible, never an error).
	Puzzle    *Board
	CellsKept []Index
	Pops      int
	Resets    int
	TimeMs    int64
}

// searchNode is one frame of the subtractive generator's stack: a board and
// its lazily-built, already-shuffled list of filled cells still eligible for
// removal on this path.
type searchNode struct {
	board     *Board
	visited   bool
	neighbors []Index
}

// GeneratePuzzle reduces config into a puzzle with opts.NumClues clues that
// still has a unique solution, via subtractive backtracking search. Under
// symmetric removal the last step may clear a pair of cells, leaving one
// clue fewer than opts.NumClues. config must be a solved board.
func GeneratePuzzle(config *Board, opts GenerateOptions) (PuzzleResult, error) {
	if !config.IsSolved() {
		return PuzzleResult{}, fmt.Errorf("%w: GeneratePuzzle requires a solved config", ErrBadInput)
	}
	if opts.NumClues < 17 || opts.NumClues > 81 {
		return PuzzleResult{}, fmt.Errorf("%w: numClues %d out of range [17,81]", ErrBadInput, opts.NumClues)
	}
	if opts.NumClues == 81 {
		return PuzzleResult{Puzzle: config.Clone()}, nil
	}

	rng := opts.Rng
	if rng == nil {
		rng = newAutoRng()
	}

	keep := make(map[Index]bool)
	if opts.Sieve != nil {
		for _, ci := range cellsToKeepFromSieve(config, opts.Sieve, rng) {
			keep[ci] = true
		}
	}
	// Report CellsKept in ascending cell order regardless of the greedy
	// cover's pick order, so two runs over the same sieve produce directly
	// comparable results.
	cellsToKeep := maps.Keys(keep)
	slices.Sort(cellsToKeep)

	startTime := time.Now()
	root := &searchNode{board: config.Clone()}
	stack := []*searchNode{root}
	pops, resets, localPops := 0, 0, 0

	popAndMaybeReset := func() {
		stack = stack[:len(stack)-1]
		pops++
		localPops++
		if localPops == popsUntilReset {
			stack = []*searchNode{root}
			localPops = 0
			resets++
		}
	}

	for {
		if opts.TimeOutMs > 0 && time.Since(startTime) > time.Duration(opts.TimeOutMs)*time.Millisecond {
			return PuzzleResult{Pops: pops, Resets: resets, TimeMs: time.Since(startTime).Milliseconds()}, nil
		}
		if len(stack) == 0 {
			return PuzzleResult{Pops: pops, Resets: resets, TimeMs: time.Since(startTime).Milliseconds()}, nil
		}

		top := stack[len(stack)-1]
		top.visited = true

		if SolutionsFlag(top.board, rng, 0) != 1 {
			popAndMaybeReset()
			continue
		}

		if top.board.NumEmpty() >= 81-opts.NumClues {
			return PuzzleResult{
				Puzzle:    top.board.Clone(),
				CellsKept: cellsToKeep,
				Pops:      pops,
				Resets:    resets,
				TimeMs:    time.Since(startTime).Milliseconds(),
			}, nil
		}

		if top.neighbors == nil {
			top.neighbors = buildRemovalNeighbors(top.board, keep)
			Shuffle(rng, top.neighbors)
		}
		if len(top.neighbors) == 0 {
			popAndMaybeReset()
			continue
		}

		ci := popLastIndex(&top.neighbors)
		child := top.board.Clone()
		child.Set(ci, 0)
		if opts.Symmetrical {
			partner := 80 - ci
			if partner != ci && child.Get(partner) != 0 && !keep[partner] {
				child.Set(partner, 0)
			}
		}
		stack = append(stack, &searchNode{board: child})
	}
}

func buildRemovalNeighbors(b *Board, keep map[Index]bool) []Index {
	var out []Index
	for ci := 0; ci < 81; ci++ {
		if b.Get(ci) != 0 && !keep[ci] {
			out = append(out, ci)
		}
	}
	return out
}

func popLastIndex(s *[]Index) Index {
	last := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return last
}
