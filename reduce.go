package sudoku

// Reduce applies naked-single and hidden-single deduction to a fixed point:
// it repeats full passes over the board until a pass makes no change, and
// reports whether any cell was solved (numEmpty decreased) since entry. The
// per-cell step is reduceCell.
func (b *Board) Reduce() bool {
	before := b.numEmpty
	for {
		changedThisPass := false
		for ci := 0; ci < 81; ci++ {
			if b.digits[ci] != 0 {
				continue
			}
			oldCand := b.cand[ci]
			oldEmpty := b.numEmpty
			reduceCell(b, ci)
			if b.numEmpty != oldEmpty || b.cand[ci] != oldCand {
				changedThisPass = true
			}
		}
		if !changedThisPass {
			break
		}
	}
	return b.numEmpty < before
}

// reduceCell closes cell ci as far as naked/hidden singles allow, then
// recurses into its peers whenever ci's candidate set narrowed or ci was
// solved, independent of the outer pass order in Reduce.
func reduceCell(b *Board, ci int) {
	if b.digits[ci] != 0 || isSingleBit(b.cand[ci]) {
		return
	}

	row, col, reg := cellRow[ci], cellCol[ci], cellReg[ci]
	used := b.rowUsed[row] | b.colUsed[col] | b.regUsed[reg]
	cprime := b.cand[ci] &^ used

	if cprime == 0 {
		// Dead cell: no legal digit remains. Leave digits[ci] at 0 (still
		// "empty") with an empty candidate set; the enclosing solver/generator
		// step detects this via HasDeadCell and prunes the branch.
		b.cand[ci] = 0
		return
	}

	if isSingleBit(cprime) {
		b.Set(ci, decodeSingle(cprime))
		propagate(b, ci)
		return
	}

	if hiddenDigit, ok := hiddenSingle(b, ci, cprime, row, col, reg); ok {
		b.Set(ci, hiddenDigit)
		propagate(b, ci)
		return
	}

	if cprime != b.cand[ci] {
		b.cand[ci] = cprime
		propagate(b, ci)
	}
}

func propagate(b *Board, ci int) {
	for _, peer := range cellPeers[ci] {
		reduceCell(b, peer)
	}
}

// hiddenSingle looks for a candidate bit of cprime that appears in no other
// cell of ci's row, column or region, i.e. a digit with only one possible
// location in some house containing ci.
func hiddenSingle(b *Board, ci int, cprime CandidateMask, row, col, reg int) (int, bool) {
	houses := [3]struct {
		kind houseKind
		idx  int
	}{
		{houseRow, row},
		{houseCol, col},
		{houseReg, reg},
	}

	for _, bit := range bitsOf(cprime) {
		for _, h := range houses {
			if onlyCellWithBit(b, ci, bit, h.kind, h.idx) {
				return decodeSingle(bit), true
			}
		}
	}
	return 0, false
}

func onlyCellWithBit(b *Board, ci int, bit CandidateMask, kind houseKind, idx int) bool {
	for _, nj := range houseCells[kind][idx] {
		if nj == ci {
			continue
		}
		if b.cand[nj]&bit != 0 {
			return false
		}
	}
	return true
}
