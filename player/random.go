package player

import (
	"golang.org/x/exp/rand"

	"github.com/NicolasHug/connect4/game"
)

// Random plays a uniformly random free column.
type Random struct {
	side game.Cell
	rng  *rand.Rand
}

func NewRandom(side game.Cell, seed uint64) *Random {
	return &Random{side: side, rng: rand.New(rand.NewSource(seed))}
}

func (p *Random) ChooseColumn(b *game.Board) (int, error) {
	free := b.FreeColumns()
	if len(free) == 0 {
		panic("player: no free column to play")
	}
	return free[p.rng.Intn(len(free))], nil
}

func (p *Random) Side() game.Cell {
	return p.side
}

func (p *Random) String() string {
	return p.side.String()
}
