package game

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is the content of one board position. A non-Empty cell doubles as
// the identity of the side that played it.
type Cell uint8

const (
	Empty Cell = iota
	Yellow
	Red
)

func (c Cell) String() string {
	switch c {
	case Yellow:
		return "o"
	case Red:
		return "x"
	default:
		return "."
	}
}

var (
	ErrInvalidColumn = errors.New("invalid column")
	ErrColumnFull    = errors.New("column is full")
	ErrDuplicateSide = errors.New("both players have the same side")
)

// Board is a Rows x Cols grid with gravity: Insert always fills the
// lowest empty cell of a column. Row 0 is the top row.
type Board struct {
	Rows int
	Cols int
	grid [][]Cell
}

func NewBoard(rows, cols int) *Board {
	grid := make([][]Cell, rows)
	for r := range grid {
		grid[r] = make([]Cell, cols)
	}
	return &Board{Rows: rows, Cols: cols, grid: grid}
}

// Clone returns an independent copy of the board. Anything exploring
// moves concurrently with other readers must work on its own clone
// rather than share the undo-in-place grid.
func (b *Board) Clone() *Board {
	clone := NewBoard(b.Rows, b.Cols)
	for r := range b.grid {
		copy(clone.grid[r], b.grid[r])
	}
	return clone
}

// At returns the content of the cell at (row, col).
func (b *Board) At(row, col int) Cell {
	return b.grid[row][col]
}

// Insert drops a piece into the given column and returns the row it
// landed in. The row is what Remove needs to take the move back.
func (b *Board) Insert(col int, side Cell) (int, error) {
	if col < 0 || col >= b.Cols {
		return 0, fmt.Errorf("%w: %d", ErrInvalidColumn, col)
	}
	for row := b.Rows - 1; row >= 0; row-- {
		if b.grid[row][col] == Empty {
			b.grid[row][col] = side
			return row, nil
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrColumnFull, col)
}

// Remove empties the cell at (row, col). It exists so the searcher can
// take back a speculative Insert. The caller must pass the exact row the
// matching Insert returned; removing any other cell corrupts the board.
func (b *Board) Remove(row, col int) {
	b.grid[row][col] = Empty
}

// IsFree reports whether the column can take another piece.
func (b *Board) IsFree(col int) bool {
	return b.grid[0][col] == Empty
}

// FreeColumns returns the playable columns in ascending order. This is
// the canonical move order for the searcher.
func (b *Board) FreeColumns() []int {
	free := make([]int, 0, b.Cols)
	for col := 0; col < b.Cols; col++ {
		if b.IsFree(col) {
			free = append(free, col)
		}
	}
	return free
}

// IsFull reports whether no column can take another piece.
func (b *Board) IsFull() bool {
	for col := 0; col < b.Cols; col++ {
		if b.IsFree(col) {
			return false
		}
	}
	return true
}

func (b *Board) String() string {
	var sb strings.Builder
	for col := 0; col < b.Cols; col++ {
		fmt.Fprintf(&sb, "%-2d ", col+1)
	}
	sb.WriteByte('\n')
	for _, row := range b.grid {
		glyphs := make([]string, len(row))
		for i, c := range row {
			glyphs[i] = c.String()
		}
		sb.WriteString(strings.Join(glyphs, "  "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
