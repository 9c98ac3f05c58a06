package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NicolasHug/connect4/game"
)

func snapshot(b *game.Board) [][]game.Cell {
	cells := make([][]game.Cell, b.Rows)
	for r := range cells {
		cells[r] = make([]game.Cell, b.Cols)
		for c := range cells[r] {
			cells[r][c] = b.At(r, c)
		}
	}
	return cells
}

func midgameBoard(t *testing.T) *game.Board {
	t.Helper()
	return boardFrom(t,
		".......",
		".......",
		"...x...",
		"...o...",
		"..xo...",
		".oxox..",
	)
}

func TestMinimaxChooseMove(t *testing.T) {
	t.Run("completes a run of three", func(t *testing.T) {
		b := boardFrom(t,
			".......",
			".......",
			".......",
			".......",
			".......",
			"..ooo..",
		)
		m := NewMinimax(game.Yellow, game.Red, 4, WithDepth(1))

		result := m.ChooseMove(b)

		// Columns 1 and 5 both win; ties go to the lowest column.
		require.Equal(t, 1, result.Column)
		require.True(t, math.IsInf(result.Score, 1))
	})

	t.Run("blocks the opponent's only winning column", func(t *testing.T) {
		b := boardFrom(t,
			".......",
			".......",
			".......",
			".......",
			".......",
			"xxx....",
		)
		m := NewMinimax(game.Yellow, game.Red, 4, WithDepth(2))

		result := m.ChooseMove(b)

		require.Equal(t, 3, result.Column)
		require.False(t, math.IsInf(result.Score, 0))
	})

	t.Run("prefers its own win over blocking", func(t *testing.T) {
		b := boardFrom(t,
			".......",
			".......",
			".......",
			".......",
			".......",
			"ooo.xxx",
		)
		m := NewMinimax(game.Yellow, game.Red, 4, WithDepth(2))

		result := m.ChooseMove(b)

		require.Equal(t, 3, result.Column)
		require.True(t, math.IsInf(result.Score, 1))
	})

	t.Run("is deterministic", func(t *testing.T) {
		b := midgameBoard(t)
		m := NewMinimax(game.Yellow, game.Red, 4, WithDepth(4))

		first := m.ChooseMove(b)
		second := m.ChooseMove(b)
		other := NewMinimax(game.Yellow, game.Red, 4, WithDepth(4)).ChooseMove(b)

		require.Equal(t, first.Column, second.Column)
		require.Equal(t, first.Score, second.Score)
		require.Equal(t, first.Column, other.Column)
		require.Equal(t, first.Score, other.Score)
	})

	t.Run("leaves the board untouched", func(t *testing.T) {
		b := midgameBoard(t)
		before := snapshot(b)

		NewMinimax(game.Red, game.Yellow, 4, WithDepth(4)).ChooseMove(b)

		require.Equal(t, before, snapshot(b))
	})

	t.Run("panics on a full board", func(t *testing.T) {
		b := boardFrom(t,
			"ox",
			"xo",
		)
		m := NewMinimax(game.Yellow, game.Red, 2)

		require.Panics(t, func() { m.ChooseMove(b) })
	})
}

func TestMinimaxPruningEquivalence(t *testing.T) {
	boards := map[string]func(*testing.T) *game.Board{
		"empty":   func(t *testing.T) *game.Board { return game.NewBoard(6, 7) },
		"midgame": midgameBoard,
		"tactical": func(t *testing.T) *game.Board {
			return boardFrom(t,
				".......",
				".......",
				".......",
				".......",
				"...o...",
				".xxxo..",
			)
		},
	}

	for name, build := range boards {
		t.Run(name, func(t *testing.T) {
			b := build(t)
			pruned := NewMinimax(game.Yellow, game.Red, 4,
				WithDepth(4), WithMetrics())
			full := NewMinimax(game.Yellow, game.Red, 4,
				WithDepth(4), WithMetrics(), WithPruningDisabled())

			got := pruned.ChooseMove(b)
			want := full.ChooseMove(b)

			require.Equal(t, want.Column, got.Column,
				"pruning must not change the chosen move")
			require.Equal(t, want.Score, got.Score,
				"pruning must not change the score")
			require.Positive(t, got.Metrics.Nodes)
			require.LessOrEqual(t, got.Metrics.Nodes, want.Metrics.Nodes)
			require.Zero(t, want.Metrics.Pruned)
		})
	}
}

func TestMinimaxMetrics(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		m := NewMinimax(game.Yellow, game.Red, 4, WithDepth(2))

		result := m.ChooseMove(game.NewBoard(6, 7))

		require.Zero(t, result.Metrics.Nodes)
	})

	t.Run("counts nodes and leaves", func(t *testing.T) {
		m := NewMinimax(game.Yellow, game.Red, 4,
			WithDepth(1), WithMetrics(), WithPruningDisabled())

		result := m.ChooseMove(game.NewBoard(6, 7))

		// Depth 1 on an empty 7-column board: the root and its children.
		require.Equal(t, int64(8), result.Metrics.Nodes)
		require.Equal(t, int64(7), result.Metrics.Leaves)
		require.Zero(t, result.Metrics.Pruned)
	})
}
