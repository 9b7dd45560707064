package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePuzzleFullCluesReturnsConfig(t *testing.T) {
	config, err := NewBoard(solvedBoard1)
	if err != nil {
		t.Fatal(err)
	}
	pr, err := GeneratePuzzle(config, GenerateOptions{NumClues: 81, Rng: NewRng(1)})
	if err != nil {
		t.Fatal(err)
	}
	if !pr.Puzzle.Equals(config) {
		t.Errorf("NumClues=81 should return the config unchanged")
	}
}

func TestGeneratePuzzleRejectsUnsolvedConfig(t *testing.T) {
	config, err := NewBoard(make([]int, 81))
	if err != nil {
		t.Fatal(err)
	}
	_, err = GeneratePuzzle(config, GenerateOptions{NumClues: 30, Rng: NewRng(1)})
	if err == nil {
		t.Fatal("expected an error for an unsolved config")
	}
}

func TestGeneratePuzzleRejectsOutOfRangeClues(t *testing.T) {
	config, err := NewBoard(solvedBoard1)
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range []int{16, 82} {
		if _, err := GeneratePuzzle(config, GenerateOptions{NumClues: n}); err == nil {
			t.Errorf("expected an error for NumClues=%v", n)
		}
	}
}

func TestGeneratePuzzleProducesUniqueSolution(t *testing.T) {
	config, err := NewBoard(solvedBoard1)
	if err != nil {
		t.Fatal(err)
	}
	pr, err := GeneratePuzzle(config, GenerateOptions{NumClues: 40, Rng: NewRng(42), TimeOutMs: 5000})
	if err != nil {
		t.Fatal(err)
	}
	if pr.Puzzle == nil {
		t.Skip("generation did not complete within the test time budget")
	}
	if got := SolutionsFlag(pr.Puzzle, NewRng(1), 0); got != 1 {
		t.Errorf("generated puzzle must have a unique solution, got SolutionsFlag=%v", got)
	}
	if got := pr.Puzzle.NumEmpty(); got != 81-40 {
		t.Errorf("got NumEmpty=%v, want %v", got, 81-40)
	}
	sol, _ := FirstSolution(pr.Puzzle, NewRng(1), 0)
	if sol == nil || !sol.Equals(config) {
		t.Errorf("puzzle's unique solution should equal the original config")
	}
}

func TestGeneratePuzzleSymmetricalRemoval(t *testing.T) {
	config, err := NewBoard(solvedBoard1)
	if err != nil {
		t.Fatal(err)
	}
	pr, err := GeneratePuzzle(config, GenerateOptions{
		NumClues:    50,
		Symmetrical: true,
		Rng:         NewRng(7),
		TimeOutMs:   5000,
	})
	if err != nil {
		t.Fatal(err)
	}
	if pr.Puzzle == nil {
		t.Skip("generation did not complete within the test time budget")
	}
	for ci := 0; ci < 81; ci++ {
		filled := pr.Puzzle.Get(ci) != 0
		partnerFilled := pr.Puzzle.Get(80-ci) != 0
		if filled != partnerFilled {
			t.Errorf("cell %v and its partner %v should be equally filled under symmetrical removal", ci, 80-ci)
		}
	}
}

func TestGeneratePuzzleKeepsSieveCells(t *testing.T) {
	config, err := NewBoard(solvedBoard1)
	if err != nil {
		t.Fatal(err)
	}
	keepCell := 0
	sieve := NewBasicSieve(config, MaskFromCells(keepCell))

	pr, err := GeneratePuzzle(config, GenerateOptions{
		NumClues:  60,
		Sieve:     sieve,
		Rng:       NewRng(11),
		TimeOutMs: 5000,
	})
	if err != nil {
		t.Fatal(err)
	}
	if pr.Puzzle == nil {
		t.Skip("generation did not complete within the test time budget")
	}
	if pr.Puzzle.Get(keepCell) == 0 {
		t.Errorf("cell %v is in the sieve's cells-to-keep set and must never be cleared", keepCell)
	}
	assert.Contains(t, pr.CellsKept, keepCell)
}
