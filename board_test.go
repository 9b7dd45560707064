package sudoku

import (
	"testing"
)

// solvedBoard1 is the S1 scenario board: a fully solved, valid grid.
const solvedBoard1 = "218574639573896124469123578721459386354681792986237415147962853695318247832745961"

func TestNewBoardFromString(t *testing.T) {
	b, err := NewBoard(solvedBoard1)
	if err != nil {
		t.Fatal(err)
	}
	if !b.IsSolved() {
		t.Errorf("expected solved board")
	}
	if !b.IsValid() {
		t.Errorf("expected valid board")
	}
}

func TestNewBoardBadLength(t *testing.T) {
	_, err := NewBoard("123")
	if err == nil {
		t.Fatal("expected error for short board string")
	}
}

func TestNewBoardDashExpansion(t *testing.T) {
	// A lone '-' expands to nine zeros; pad the rest of the board with dots.
	s := "-" + stringsRepeat(".", 72)
	b, err := NewBoard(s)
	if err != nil {
		t.Fatal(err)
	}
	if b.NumEmpty() != 81 {
		t.Errorf("got NumEmpty=%v, want 81", b.NumEmpty())
	}
}

func stringsRepeat(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}

func TestRoundTripStringForm(t *testing.T) {
	b, err := NewBoard(solvedBoard1)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := NewBoard(b.String())
	if err != nil {
		t.Fatal(err)
	}
	if !b.Equals(b2) {
		t.Errorf("round-trip mismatch: %v vs %v", b, b2)
	}
}

func TestSetGetLaw(t *testing.T) {
	b, err := NewBoard(make([]int, 81))
	if err != nil {
		t.Fatal(err)
	}
	b.Set(20, 5)
	if got := b.Get(20); got != 5 {
		t.Errorf("got Get(20)=%v, want 5", got)
	}
	// Set only updates the cell itself and its houses' used masks; peers'
	// candidate masks are tightened against those masks by Reduce.
	b.Reduce()
	for _, p := range cellPeers[20] {
		for _, c := range b.Candidates(p) {
			if c == 5 {
				t.Errorf("peer %v of cell 20 still lists 5 as a candidate", p)
			}
		}
	}
	if b.NumEmpty() != 80 {
		t.Errorf("got NumEmpty=%v, want 80", b.NumEmpty())
	}
	if !b.IsValid() {
		t.Errorf("expected board to remain valid")
	}
}

func TestSetDuplicateMakesHouseInvalid(t *testing.T) {
	b, err := NewBoard(make([]int, 81))
	if err != nil {
		t.Fatal(err)
	}
	b.Set(0, 5) // row 0
	b.Set(1, 5) // same row: duplicate
	if b.IsValid() {
		t.Errorf("expected board to be invalid after duplicate digit in a row")
	}

	// Clearing the duplicate should restore validity via recalcUsed.
	b.Set(1, 0)
	if !b.IsValid() {
		t.Errorf("expected board to become valid again after clearing the duplicate")
	}
}

func TestSetNoOpWhenUnchanged(t *testing.T) {
	b, err := NewBoard(solvedBoard1)
	if err != nil {
		t.Fatal(err)
	}
	before := b.Clone()
	b.Set(0, b.Get(0))
	if !b.Equals(before) {
		t.Errorf("Set with the same digit should be a no-op")
	}
}

func TestCloneIndependence(t *testing.T) {
	b, err := NewBoard(solvedBoard1)
	if err != nil {
		t.Fatal(err)
	}
	clone := b.Clone()
	clone.Set(0, 0)
	if b.Get(0) == 0 {
		t.Errorf("mutating a clone should not affect the original")
	}
}

func TestResetRestoresInitial(t *testing.T) {
	b, err := NewBoard(solvedBoard1)
	if err != nil {
		t.Fatal(err)
	}
	orig := b.Clone()
	b.Set(0, 0)
	b.Reset()
	if !b.Equals(orig) {
		t.Errorf("Reset should restore the board's initial digits")
	}
}

func TestPickEmptyCellNoneWhenSolved(t *testing.T) {
	b, err := NewBoard(solvedBoard1)
	if err != nil {
		t.Fatal(err)
	}
	rng := NewRng(1)
	if ci := b.PickEmptyCell(rng); ci != -1 {
		t.Errorf("got PickEmptyCell=%v on a solved board, want -1", ci)
	}
}

func TestMaskRoundTrip(t *testing.T) {
	b, err := NewBoard(solvedBoard1)
	if err != nil {
		t.Fatal(err)
	}
	m := b.Mask()
	for ci := 0; ci < 81; ci++ {
		want := b.Get(ci) != 0
		if got := m.Test(80 - ci); got != want {
			t.Errorf("cell %v: mask bit=%v, want %v", ci, got, want)
		}
	}
	empty := b.EmptyMask()
	if !m.And(empty).IsZero() {
		t.Errorf("Mask and EmptyMask should never overlap")
	}
}
