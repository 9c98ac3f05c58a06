package player

import (
	"github.com/rs/zerolog/log"

	"github.com/NicolasHug/connect4/game"
	"github.com/NicolasHug/connect4/searcher"
)

// Minimax plays the column picked by a depth-bounded alpha-beta search.
type Minimax struct {
	side   game.Cell
	engine *searcher.Minimax
	last   searcher.Result
}

func NewMinimax(side, opponent game.Cell, toWin int, options ...searcher.Option) *Minimax {
	return &Minimax{
		side:   side,
		engine: searcher.NewMinimax(side, opponent, toWin, options...),
	}
}

func (p *Minimax) ChooseColumn(b *game.Board) (int, error) {
	p.last = p.engine.ChooseMove(b)
	log.Debug().
		Stringer("side", p.side).
		Int("column", p.last.Column+1).
		Float64("score", p.last.Score).
		Int64("nodes", p.last.Metrics.Nodes).
		Msg("search finished")
	return p.last.Column, nil
}

// LastResult returns the outcome of the most recent search, for
// diagnostics.
func (p *Minimax) LastResult() searcher.Result {
	return p.last
}

func (p *Minimax) Side() game.Cell {
	return p.side
}

func (p *Minimax) String() string {
	return p.side.String()
}
