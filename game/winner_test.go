package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRuns(t *testing.T) {
	seq := []Cell{Empty, Empty, Yellow, Yellow, Yellow, Red, Empty}

	require.Equal(t, []Run{
		{Value: Empty, Length: 2},
		{Value: Yellow, Length: 3},
		{Value: Red, Length: 1},
		{Value: Empty, Length: 1},
	}, Runs(seq))

	require.Nil(t, Runs(nil))
}

func TestWinner(t *testing.T) {
	t.Run("horizontal", func(t *testing.T) {
		b := boardFrom(t,
			".......",
			".......",
			".......",
			".......",
			"..xxx..",
			".oooo..",
		)

		require.Equal(t, Yellow, Winner(b, 4))
	})

	t.Run("vertical", func(t *testing.T) {
		b := boardFrom(t,
			".......",
			".......",
			"....x..",
			"..o.x..",
			"..o.x..",
			"..o.x..",
		)

		require.Equal(t, Red, Winner(b, 4))
	})

	t.Run("diagonal down-right", func(t *testing.T) {
		b := boardFrom(t,
			".......",
			".......",
			".o.....",
			".xo....",
			".oxo...",
			"xxoxo..",
		)

		require.Equal(t, Yellow, Winner(b, 4))
	})

	t.Run("diagonal down-left", func(t *testing.T) {
		b := boardFrom(t,
			".......",
			".......",
			"....x..",
			"...xo..",
			"..xoo..",
			".xooxo.",
		)

		require.Equal(t, Red, Winner(b, 4))
	})

	t.Run("a run one short of toWin does not win", func(t *testing.T) {
		b := boardFrom(t,
			".......",
			".......",
			".......",
			"..o....",
			"..o.x..",
			"..oxx..",
		)

		require.Equal(t, Empty, Winner(b, 4))
	})

	t.Run("full board with no winner is a draw", func(t *testing.T) {
		b := boardFrom(t,
			"oxoxoxo",
			"oxoxoxo",
			"xoxoxox",
			"oxoxoxo",
			"oxoxoxo",
			"xoxoxox",
		)

		require.True(t, b.IsFull())
		require.Equal(t, Empty, Winner(b, 4))
	})

	t.Run("longer runs than toWin still win", func(t *testing.T) {
		b := boardFrom(t,
			".......",
			".......",
			".......",
			".......",
			"..xxx..",
			"ooooo..",
		)

		require.Equal(t, Yellow, Winner(b, 4))
	})
}
