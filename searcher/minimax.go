package searcher

import (
	"math"

	"github.com/NicolasHug/connect4/game"
)

const DefaultDepth = 5

type Option func(*Minimax)

// WithDepth bounds the search to depth plies.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithCenterBias adds weight per own piece low in the center column, a
// deliberate tie-break toward central play when run scores are equal.
func WithCenterBias(weight float64) Option {
	return func(m *Minimax) {
		m.centerBias = weight
	}
}

// WithPruningDisabled turns alpha-beta pruning off. The chosen move and
// score do not change, the search just visits every node within the
// depth bound. Intended for tests and benchmarks.
func WithPruningDisabled() Option {
	return func(m *Minimax) {
		m.prune = false
	}
}

// WithMetrics collects per-search node counts and timings.
func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = NewMetricsCollector()
	}
}

// Minimax picks moves by depth-bounded minimax search with alpha-beta
// pruning, scoring leaves with Utility from side's perspective.
type Minimax struct {
	side       game.Cell
	opponent   game.Cell
	toWin      int
	depth      int
	centerBias float64
	prune      bool
	metrics    MetricsCollector
}

func NewMinimax(side, opponent game.Cell, toWin int, options ...Option) *Minimax {
	m := &Minimax{
		side:     side,
		opponent: opponent,
		toWin:    toWin,
		depth:    DefaultDepth,
		prune:    true,
		metrics:  NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Side returns the marker this searcher plays.
func (m *Minimax) Side() game.Cell {
	return m.side
}

// Result is the outcome of one search: the column to play and the score
// backed up to the root, plus search metrics when enabled.
type Result struct {
	Column  int
	Score   float64
	Metrics SearchMetrics
}

// ChooseMove searches from the current position and returns the best
// column for the searcher's side. The board is borrowed for the duration
// of the call: every speculative insert is undone, so it is returned in
// exactly its pre-call state. Asking for a move on a full board is a
// caller contract violation.
func (m *Minimax) ChooseMove(b *game.Board) Result {
	if b.IsFull() {
		panic("searcher: no free column to play")
	}

	m.metrics.Start()
	col, score := m.search(b, m.side, m.depth, math.Inf(-1), math.Inf(1))
	return Result{Column: col, Score: score, Metrics: m.metrics.Complete()}
}

// search is one minimax node: toMove is about to play and the position
// is explored depth plies further. Scores are always from the searcher's
// own perspective, so nodes where the searcher moves maximize and the
// opponent's nodes minimize, with no sign flipping. It returns the best
// column for toMove (-1 at a cutoff) and the backed-up score. Ties go to
// the lowest column.
func (m *Minimax) search(b *game.Board, toMove game.Cell, depth int, alpha, beta float64) (int, float64) {
	m.metrics.AddNode()

	score := m.utility(b)
	if depth == 0 || math.IsInf(score, 0) || b.IsFull() {
		m.metrics.AddLeaf()
		return -1, score
	}

	maximizing := toMove == m.side
	next := m.opponent
	if !maximizing {
		next = m.side
	}

	bestCol := -1
	bestScore := math.Inf(1)
	if maximizing {
		bestScore = math.Inf(-1)
	}

	for _, col := range b.FreeColumns() {
		row, err := b.Insert(col, toMove)
		if err != nil {
			// FreeColumns just said the column is playable.
			panic(err)
		}
		_, childScore := m.search(b, next, depth-1, alpha, beta)
		b.Remove(row, col)

		if maximizing {
			if bestCol < 0 || childScore > bestScore {
				bestCol, bestScore = col, childScore
			}
			alpha = math.Max(alpha, bestScore)
		} else {
			if bestCol < 0 || childScore < bestScore {
				bestCol, bestScore = col, childScore
			}
			beta = math.Min(beta, bestScore)
		}

		if m.prune && beta <= alpha {
			m.metrics.AddPrune()
			break
		}
	}

	return bestCol, bestScore
}

func (m *Minimax) utility(b *game.Board) float64 {
	score := Utility(b, m.side, m.opponent, m.toWin)
	if m.centerBias == 0 || math.IsInf(score, 0) {
		return score
	}

	// Own pieces low in the center column nudge otherwise equal scores.
	mid := b.Cols / 2
	for i := 1; i < b.Rows/2; i++ {
		if b.At(b.Rows-i, mid) == m.side {
			score += m.centerBias
		}
	}
	return score
}
