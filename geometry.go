package sudoku

// Index identifies a square on the board: a number in [0, 80] standing for
// row*9+col.
//
//  0  1  2 |  3  4  5 |  6  7  8
//  9 10 11 | 12 13 14 | 15 16 17
// 18 19 20 | 21 22 23 | 24 25 26
// ---------+----------+---------
// 27 28 29 | 30 31 32 | 33 34 35
// 36 37 38 | 39 40 41 | 42 43 44
// 45 46 47 | 48 49 50 | 51 52 53
// ---------+----------+---------
// 54 55 56 | 57 58 59 | 60 61 62
// 63 64 65 | 66 67 68 | 69 70 71
// 72 73 74 | 75 76 77 | 78 79 80
type Index = int

// houseKind distinguishes the three house families a cell belongs to.
type houseKind int

const (
	houseRow houseKind = iota
	houseCol
	houseReg
	numHouseKinds
)

// cellRow, cellCol and cellReg map a cell index to the index of its row,
// column and 3x3 region (0..8 each).
var (
	cellRow [81]int
	cellCol [81]int
	cellReg [81]int
)

// houseCells[kind][i] lists the 9 cell indices belonging to house i of the
// given kind, in row-major order within the house.
var houseCells [numHouseKinds][9][9]Index

// cellHouse[kind][ci] is the index of the house of that kind containing ci.
var cellHouse [numHouseKinds][81]int

// cellPeers[ci] is the union of ci's row, column and region peers, excluding
// ci itself and without duplicates.
var cellPeers [81][]Index

func init() {
	for ci := 0; ci < 81; ci++ {
		row, col := ci/9, ci%9
		reg := (row/3)*3 + col/3
		cellRow[ci] = row
		cellCol[ci] = col
		cellReg[ci] = reg
	}

	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			ci := row*9 + col
			houseCells[houseRow][row][col] = ci
			cellHouse[houseRow][ci] = row
		}
	}
	for col := 0; col < 9; col++ {
		for row := 0; row < 9; row++ {
			ci := row*9 + col
			houseCells[houseCol][col][row] = ci
			cellHouse[houseCol][ci] = col
		}
	}
	for regRow := 0; regRow < 3; regRow++ {
		for regCol := 0; regCol < 3; regCol++ {
			reg := regRow*3 + regCol
			k := 0
			for r := 0; r < 3; r++ {
				for c := 0; c < 3; c++ {
					ci := (regRow*3+r)*9 + regCol*3 + c
					houseCells[houseReg][reg][k] = ci
					cellHouse[houseReg][ci] = reg
					k++
				}
			}
		}
	}

	for ci := 0; ci < 81; ci++ {
		seen := make(map[Index]bool, 20)
		add := func(kind houseKind) {
			for _, nj := range houseCells[kind][cellHouse[kind][ci]] {
				if nj != ci && !seen[nj] {
					seen[nj] = true
					cellPeers[ci] = append(cellPeers[ci], nj)
				}
			}
		}
		add(houseRow)
		add(houseCol)
		add(houseReg)
	}
}
