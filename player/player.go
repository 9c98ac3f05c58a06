package player

import (
	"fmt"

	"github.com/NicolasHug/connect4/game"
)

// Player is a source of moves: given the current board, pick a column.
// Implementations must only return a free column; the engine does not
// re-validate beyond what Board.Insert itself checks.
type Player interface {
	ChooseColumn(b *game.Board) (int, error)
	// Side returns the marker this player drops.
	Side() game.Cell
	fmt.Stringer
}
