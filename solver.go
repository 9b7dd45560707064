package sudoku

import (
	"time"

	"golang.org/x/exp/slices"
)

// SolveOptions configures Search.
type SolveOptions struct {
	// TimeOutMs bounds the search's wall-clock budget; 0 means no limit.
	TimeOutMs int
	// OnSolution is called with each solution as it's found and the count of
	// solutions found so far (including this one). Returning false stops the
	// search early (TerminatedByCallback). If nil, the search always
	// continues.
	OnSolution func(solution *Board, numFoundSoFar int) bool
	// ConcurrentBranches bounds how many logical DFS frontiers run
	// interleaved at once; <= 0 defaults to 9. This is cooperative
	// round-robin scheduling within one goroutine, never OS parallelism.
	ConcurrentBranches int
	// Rng drives every random choice in the search. If nil, an
	// auto-seeded one is used.
	Rng *Rng
}

// SearchResult summarizes one Search call.
type SearchResult struct {
	Solutions             []*Board
	Iterations            int
	Branches              int
	TimeElapsedMs         int64
	Complete              bool
	TimedOut              bool
	TerminatedByCallback  bool
}

// searchFrame is one DFS stack frame: a board and its lazily-built,
// already-shuffled list of pending children. Frames take ownership of their
// children by popping from the tail; nothing else indexes into it.
type searchFrame struct {
	board    *Board
	children []*Board
}

// Search runs a randomized multi-stack backtracking search, expanding the
// stacks round-robin one step at a time. The caller's board is cloned (with its empty
// cells reset to all-candidates) before the search begins; board itself is
// never mutated.
func Search(board *Board, opts SolveOptions) *SearchResult {
	concurrency := opts.ConcurrentBranches
	if concurrency <= 0 {
		concurrency = 9
	}
	rng := opts.Rng
	if rng == nil {
		rng = newAutoRng()
	}
	onSolution := opts.OnSolution
	if onSolution == nil {
		onSolution = func(*Board, int) bool { return true }
	}

	start := board.Clone()
	start.ResetEmptyCells()

	stacks := [][]*searchFrame{{{board: start}}}
	result := &SearchResult{}
	startTime := time.Now()
	idx := 0

loop:
	for {
		filtered := stacks[:0]
		for _, s := range stacks {
			if len(s) > 0 {
				filtered = append(filtered, s)
			}
		}
		stacks = filtered
		if len(stacks) == 0 {
			break
		}

		if opts.TimeOutMs > 0 && time.Since(startTime) > time.Duration(opts.TimeOutMs)*time.Millisecond {
			result.TimedOut = true
			break
		}

		result.Iterations++
		idx = idx % len(stacks)
		stack := stacks[idx]
		frame := stack[len(stack)-1]

		frame.board.Reduce()

		switch {
		case frame.board.IsSolved():
			sol := frame.board.Clone()
			result.Solutions = append(result.Solutions, sol)
			stacks[idx] = stack[:len(stack)-1]
			if !onSolution(sol, len(result.Solutions)) {
				result.TerminatedByCallback = true
				break loop
			}

		case frame.board.HasDeadCell() || !frame.board.IsValid():
			stacks[idx] = stack[:len(stack)-1]

		case frame.children == nil:
			ci := frame.board.PickEmptyCell(rng)
			if ci == -1 {
				stacks[idx] = stack[:len(stack)-1]
				break
			}
			var children []*Board
			for _, d := range frame.board.Candidates(ci) {
				child := frame.board.Clone()
				child.Set(ci, d)
				children = append(children, child)
			}
			Shuffle(rng, children)
			frame.children = children

		case len(frame.children) > 0:
			child := popLast(&frame.children)
			stacks[idx] = append(stack, &searchFrame{board: child})
			result.Branches++

			for len(stacks) < concurrency && len(frame.children) > 0 {
				next := popLast(&frame.children)
				stacks = append(stacks, []*searchFrame{{board: next}})
				result.Branches++
			}

		default:
			stacks[idx] = stack[:len(stack)-1]
		}

		idx++
	}

	result.Complete = !result.TimedOut && !result.TerminatedByCallback
	result.TimeElapsedMs = time.Since(startTime).Milliseconds()
	recordStats(result)
	return result
}

func popLast(s *[]*Board) *Board {
	last := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return last
}

// FirstSolution runs a single-stack search and returns the first solution
// found, or nil if none exists within the time budget.
func FirstSolution(board *Board, rng *Rng, timeOutMs int) (*Board, *SearchResult) {
	result := Search(board, SolveOptions{
		TimeOutMs:          timeOutMs,
		ConcurrentBranches: 1,
		Rng:                rng,
		OnSolution:         func(*Board, int) bool { return false },
	})
	if len(result.Solutions) == 0 {
		return nil, result
	}
	return result.Solutions[0], result
}

// SolutionsFlag reports 0, 1, or 2 ("two or more") solutions for board,
// short-circuiting the 17-clue floor: a board with more than 64 empty cells
// (fewer than 17 clues) cannot have a unique solution.
func SolutionsFlag(board *Board, rng *Rng, timeOutMs int) int {
	if board.NumEmpty() > 81-17 {
		return 2
	}
	result := Search(board, SolveOptions{
		TimeOutMs: timeOutMs,
		Rng:       rng,
		OnSolution: func(_ *Board, n int) bool {
			return n < 2
		},
	})
	return len(result.Solutions)
}

// AllSolutions accumulates every distinct solution to board.
func AllSolutions(board *Board, rng *Rng, timeOutMs int) ([]*Board, *SearchResult) {
	var distinct []*Board
	result := Search(board, SolveOptions{
		TimeOutMs: timeOutMs,
		Rng:       rng,
		OnSolution: func(sol *Board, _ int) bool {
			if !slices.ContainsFunc(distinct, func(d *Board) bool { return d.Equals(sol) }) {
				distinct = append(distinct, sol)
			}
			return true
		},
	})
	result.Solutions = distinct
	return distinct, result
}
