package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/NicolasHug/connect4/searcher"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "depth_to_strength")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
		{ID: 0, Kind: "random", Seed: 42},
		{ID: 1, Kind: "minimax", Depth: 3},
	}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{
		{ID: 1, Agent1: 0, Agent2: 1, Winner: "agent2", Moves: 17, Duration: 30 * time.Millisecond},
	}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{
		{Game: 1, Step: 1, Agent: 1, Column: 3, Score: 12,
			SearchMetrics: searcher.SearchMetrics{Nodes: 100, Leaves: 80, Pruned: 5}},
	}))

	configs := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Len(t, configs, 3)
	require.Equal(t, []string{"id", "kind", "depth", "center_bias", "pruning", "seed"}, configs[0])
	require.Equal(t, []string{"1", "minimax", "3", "0", "true", "0"}, configs[2])

	games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, games, 2)
	require.Equal(t, []string{"1", "0", "1", "agent2", "17", "30"}, games[1])

	moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, moves, 2)
	require.Equal(t, "100", moves[1][5])
}
