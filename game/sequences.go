package game

import "iter"

// Sequences yields every row, column, and diagonal of the board whose
// length is at least toWin, each as a slice of cells ordered along the
// line. Lines shorter than toWin can never hold a winning run and are
// skipped. Diagonals of one orientation share a constant row+col, the
// other a constant row-col, clipped to the board.
//
// Row slices are views into the board; columns and diagonals are built
// per iteration. The sequence is restartable: ranging again re-derives
// the lines from the current board contents.
func (b *Board) Sequences(toWin int) iter.Seq[[]Cell] {
	return func(yield func([]Cell) bool) {
		if b.Cols >= toWin {
			for _, row := range b.grid {
				if !yield(row) {
					return
				}
			}
		}

		if b.Rows >= toWin {
			for col := 0; col < b.Cols; col++ {
				column := make([]Cell, b.Rows)
				for row := 0; row < b.Rows; row++ {
					column[row] = b.grid[row][col]
				}
				if !yield(column) {
					return
				}
			}
		}

		// Diagonals running down-left: row+col is constant.
		for sum := toWin - 1; sum <= b.Rows+b.Cols-1-toWin; sum++ {
			var diag []Cell
			for col := 0; col < b.Cols; col++ {
				if row := sum - col; row >= 0 && row < b.Rows {
					diag = append(diag, b.grid[row][col])
				}
			}
			if len(diag) >= toWin && !yield(diag) {
				return
			}
		}

		// Diagonals running down-right: row-col is constant.
		for diff := toWin - b.Cols; diff <= b.Rows-toWin; diff++ {
			var diag []Cell
			for col := 0; col < b.Cols; col++ {
				if row := diff + col; row >= 0 && row < b.Rows {
					diag = append(diag, b.grid[row][col])
				}
			}
			if len(diag) >= toWin && !yield(diag) {
				return
			}
		}
	}
}
