package sudoku

// Normalize canonicalizes board under the equivalence "relabel digits" so
// that its top row reads 1,2,...,9: for each d in 1..9, if the digit
// currently at cell (d-1) isn't d, every occurrence of d and of that digit
// is swapped throughout the board (both the current digits and the
// construction-time initial values). board must have row 0 fully filled.
func Normalize(board *Board) {
	for d := 1; d <= 9; d++ {
		got := board.Get(d - 1)
		if got == d {
			continue
		}
		swapDigits(board, d, got)
	}
}

func swapDigits(board *Board, a, b int) {
	for ci := 0; ci < 81; ci++ {
		switch board.digits[ci] {
		case uint8(a):
			board.digits[ci] = uint8(b)
		case uint8(b):
			board.digits[ci] = uint8(a)
		}
		switch board.initial[ci] {
		case uint8(a):
			board.initial[ci] = uint8(b)
		case uint8(b):
			board.initial[ci] = uint8(a)
		}
	}
	// digits/initial were mutated directly; houses, cand and valid must be
	// rebuilt to stay consistent with the new labeling.
	rebuildDerivedState(board)
}

// rebuildDerivedState recomputes cand/used/valid/numEmpty from digits, the
// way the constructor does, without touching initial.
func rebuildDerivedState(board *Board) {
	digits := board.digits
	fresh, err := newBoardFromDigits(intSlice(digits[:]))
	if err != nil {
		panic(err)
	}
	initial := board.initial
	*board = *fresh
	board.initial = initial
}
