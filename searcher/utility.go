package searcher

import (
	"math"

	"github.com/NicolasHug/connect4/game"
)

// Utility scores the board from side's perspective against opponent.
//
// A run of at least toWin decides the position: +Inf if it belongs to
// side, -Inf if it belongs to opponent. Otherwise every shorter run
// contributes extendable * length^2, added for side and subtracted for
// opponent, where extendable counts the ends (0 to 2) whose adjacent
// empty run is long enough to complete the line to toWin. The sum is
// always finite for an undecided board; the infinities are reserved for
// decided ones.
func Utility(b *game.Board, side, opponent game.Cell, toWin int) float64 {
	var score float64
	for seq := range b.Sequences(toWin) {
		runs := game.Runs(seq)
		for i, r := range runs {
			if r.Value == game.Empty {
				continue
			}
			if r.Length >= toWin {
				if r.Value == side {
					return math.Inf(1)
				}
				return math.Inf(-1)
			}

			extendable := 0
			if i > 0 && runs[i-1].Value == game.Empty && r.Length+runs[i-1].Length >= toWin {
				extendable++
			}
			if i < len(runs)-1 && runs[i+1].Value == game.Empty && r.Length+runs[i+1].Length >= toWin {
				extendable++
			}

			gain := float64(extendable * r.Length * r.Length)
			if r.Value == side {
				score += gain
			} else {
				score -= gain
			}
		}
	}
	return score
}
