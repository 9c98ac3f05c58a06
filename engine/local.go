// Package engine runs a game between two move sources. Presentation is
// not its business: callers hook a Renderer to show the board.
package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/NicolasHug/connect4/game"
	"github.com/NicolasHug/connect4/player"
)

// Renderer shows the board between moves. A nil Renderer renders
// nothing.
type Renderer func(b *game.Board)

// Engine alternates two players on one game until a side wins or the
// board fills up.
type Engine struct {
	Game    *game.Game
	Players [2]player.Player
	Render  Renderer
}

// New wires a match for the two players. The first player moves first;
// the players must be on different sides.
func New(first, second player.Player, rows, cols, toWin int) (*Engine, error) {
	g, err := game.NewGame(rows, cols, toWin, first.Side(), second.Side())
	if err != nil {
		return nil, err
	}
	return &Engine{Game: g, Players: [2]player.Player{first, second}}, nil
}

// Run plays the game out and returns the winning side, or Empty on a
// draw. The error is non-nil only when a player fails to produce a move
// or produces an unplayable one.
func (e *Engine) Run() (game.Cell, error) {
	log.Info().
		Stringer("side", e.Game.Turn()).
		Int("rows", e.Game.Board.Rows).
		Int("cols", e.Game.Board.Cols).
		Int("toWin", e.Game.ToWin).
		Msg("game started")

	for !e.Game.Over() {
		if e.Render != nil {
			e.Render(e.Game.Board)
		}

		current := e.Players[0]
		if e.Players[1].Side() == e.Game.Turn() {
			current = e.Players[1]
		}

		col, err := current.ChooseColumn(e.Game.Board)
		if err != nil {
			return game.Empty, fmt.Errorf("player %s: %w", current, err)
		}
		if _, err := e.Game.Play(col); err != nil {
			return game.Empty, fmt.Errorf("player %s column %d: %w", current, col+1, err)
		}
		log.Info().
			Stringer("side", current.Side()).
			Int("column", col+1).
			Int("move", e.Game.Moves()).
			Msg("move played")
	}

	if e.Render != nil {
		e.Render(e.Game.Board)
	}

	winner := e.Game.Winner()
	if winner == game.Empty {
		log.Info().Int("moves", e.Game.Moves()).Msg("game drawn")
	} else {
		log.Info().Stringer("side", winner).Int("moves", e.Game.Moves()).Msg("game won")
	}
	return winner, nil
}
