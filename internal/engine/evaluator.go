package engine

import "github.com/rocketscienceinc/partyboard/internal/entity"

// row, column, main diagonal, anti-diagonal
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// CheckWin reports whether playerID owns winLength contiguous cells on any line
// through (row, col).
func CheckWin(board entity.Board, row, col, playerID, winLength int, scope entity.DiagonalScope) bool {
	if !board.InBounds(row, col) || winLength <= 0 {
		return false
	}

	for _, dir := range directions {
		if scope == entity.DiagonalCorner && !onCornerDiagonal(board.Size(), row, col, dir) {
			continue
		}

		if hasRun(lineThrough(board, row, col, dir), playerID, winLength) {
			return true
		}
	}

	return false
}

// lineThrough collects the whole line through (row, col) along dir, edge to edge.
func lineThrough(board entity.Board, row, col int, dir [2]int) []int {
	for board.InBounds(row-dir[0], col-dir[1]) {
		row -= dir[0]
		col -= dir[1]
	}

	line := make([]int, 0, board.Size())
	for ; board.InBounds(row, col); row, col = row+dir[0], col+dir[1] {
		line = append(line, board[row][col])
	}

	return line
}

func hasRun(line []int, playerID, winLength int) bool {
	if len(line) < winLength {
		return false
	}

	run := 0
	for _, cell := range line {
		if cell != playerID {
			run = 0
			continue
		}

		run++
		if run >= winLength {
			return true
		}
	}

	return false
}

// onCornerDiagonal is true for rows and columns, and for the two diagonals that
// run corner to corner.
func onCornerDiagonal(size, row, col int, dir [2]int) bool {
	switch dir {
	case [2]int{1, 1}:
		return row == col
	case [2]int{1, -1}:
		return row+col == size-1
	default:
		return true
	}
}
