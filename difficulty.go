package sudoku

import "fmt"

// difficultySamples is how many randomized solves EvaluateDifficulty
// averages its search-node count over.
const difficultySamples = 20

// EvaluateDifficulty scores how hard board is to solve by hand, combining
// clue density with how much work the randomized backtracking search
// actually does. Higher is harder. board need not be fully reduced; it must
// have at least one solution.
//
// The heuristic mirrors the teacher's difficulty.go: pre-reduction hint
// count, the lower bound on hints across any single row or column, and the
// average solver iteration count over several randomized solves -- adapted
// from that file's package-level Values/Solve/Stats to this package's
// Board/Search.
func EvaluateDifficulty(board *Board, rng *Rng) (float64, error) {
	if rng == nil {
		rng = newAutoRng()
	}

	preHints := countHints(board)
	minHints := minHouseHints(board)

	reduced := board.Clone()
	reduced.Reduce()
	if reduced.HasDeadCell() || !reduced.IsValid() {
		return 0, fmt.Errorf("%w: board has no solution", ErrBadInput)
	}

	var totalIterations uint64
	for i := 0; i < difficultySamples; i++ {
		result := Search(board, SolveOptions{
			Rng:                rng,
			ConcurrentBranches: 1,
			OnSolution:         func(*Board, int) bool { return false },
		})
		if len(result.Solutions) == 0 {
			return 0, fmt.Errorf("%w: board has no solution", ErrBadInput)
		}
		totalIterations += uint64(result.Iterations)
	}
	avgIterations := float64(totalIterations) / float64(difficultySamples)

	return float64(81-preHints) + float64(9-minHints) + avgIterations/10.0, nil
}

func countHints(board *Board) int {
	n := 0
	for ci := 0; ci < 81; ci++ {
		if board.Get(ci) != 0 {
			n++
		}
	}
	return n
}

// minHouseHints returns the fewest filled cells found in any single row or
// column.
func minHouseHints(board *Board) int {
	min := 9
	for row := 0; row < 9; row++ {
		n := 0
		for col := 0; col < 9; col++ {
			if board.Get(row*9+col) != 0 {
				n++
			}
		}
		if n < min {
			min = n
		}
	}
	for col := 0; col < 9; col++ {
		n := 0
		for row := 0; row < 9; row++ {
			if board.Get(row*9+col) != 0 {
				n++
			}
		}
		if n < min {
			min = n
		}
	}
	return min
}
