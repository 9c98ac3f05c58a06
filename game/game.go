package game

import "fmt"

// Game holds one match: the board, the number of aligned pieces needed
// to win, and whose turn it is.
type Game struct {
	Board  *Board
	ToWin  int
	sides  [2]Cell
	turn   int
	moves  int
	winner Cell
}

// NewGame starts a match on an empty rows x cols board. The first side
// moves first. The two sides must differ.
func NewGame(rows, cols, toWin int, first, second Cell) (*Game, error) {
	if first == second {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateSide, first)
	}
	return &Game{
		Board: NewBoard(rows, cols),
		ToWin: toWin,
		sides: [2]Cell{first, second},
	}, nil
}

// Turn returns the side to move.
func (g *Game) Turn() Cell {
	return g.sides[g.turn]
}

// Opponent returns the side not on move.
func (g *Game) Opponent() Cell {
	return g.sides[1-g.turn]
}

// Moves returns how many pieces have been played so far.
func (g *Game) Moves() int {
	return g.moves
}

// Play drops the side to move's piece into col, re-checks the winner and
// passes the turn. The board is untouched when Insert fails.
func (g *Game) Play(col int) (int, error) {
	row, err := g.Board.Insert(col, g.Turn())
	if err != nil {
		return 0, err
	}
	g.winner = Winner(g.Board, g.ToWin)
	g.turn = 1 - g.turn
	g.moves++
	return row, nil
}

// Winner returns the winning side, or Empty while the game is open.
func (g *Game) Winner() Cell {
	return g.winner
}

// Over reports whether the game has ended by a win or a full board.
func (g *Game) Over() bool {
	return g.winner != Empty || g.Board.IsFull()
}
