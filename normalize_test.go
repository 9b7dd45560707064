package sudoku

import "testing"

func TestNormalizeMakesTopRowIdentity(t *testing.T) {
	b, err := NewBoard(solvedBoard1)
	if err != nil {
		t.Fatal(err)
	}
	Normalize(b)
	for ci := 0; ci < 9; ci++ {
		if got := b.Get(ci); got != ci+1 {
			t.Errorf("cell %v: got %v, want %v", ci, got, ci+1)
		}
	}
	if !b.IsSolved() || !b.IsValid() {
		t.Errorf("Normalize must preserve solvedness and validity")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	b, err := NewBoard(solvedBoard1)
	if err != nil {
		t.Fatal(err)
	}
	Normalize(b)
	once := b.Clone()
	Normalize(b)
	if !b.Equals(once) {
		t.Errorf("a second Normalize call should be a no-op")
	}
}

func TestNormalizePreservesDigitPermutationStructure(t *testing.T) {
	b, err := NewBoard(solvedBoard1)
	if err != nil {
		t.Fatal(err)
	}
	before := make(map[[2]int]bool)
	for ci := 0; ci < 81; ci++ {
		for cj := ci + 1; cj < 81; cj++ {
			if b.Get(ci) == b.Get(cj) {
				before[[2]int{ci, cj}] = true
			}
		}
	}
	Normalize(b)
	for pair := range before {
		if b.Get(pair[0]) != b.Get(pair[1]) {
			t.Errorf("Normalize must be a pure relabeling: cells %v should still match", pair)
		}
	}
}
