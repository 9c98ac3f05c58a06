// Package experiments pits agent configurations against each other over
// many games and records per-game and per-move metrics as CSV.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/NicolasHug/connect4/experiments/metrics"
	"github.com/NicolasHug/connect4/game"
	"github.com/NicolasHug/connect4/searcher"
)

const (
	NumGames = 30 // Per matchup

	Rows  = 6
	Cols  = 7
	ToWin = 4
)

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: "minimax", Depth: 1},
	{ID: 2, Kind: "minimax", Depth: 2},
	{ID: 3, Kind: "minimax", Depth: 3},
	{ID: 4, Kind: "minimax", Depth: 4},
	{ID: 5, Kind: "minimax", Depth: 5},
}

// RunDepthToStrength pairs minimax agents of increasing depth against a
// random baseline.
func RunDepthToStrength(root string) error {
	baseline := metrics.AgentConfig{ID: 0, Kind: "random", Seed: 1}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return runExperiment(root, "depth_to_strength",
		append([]metrics.AgentConfig{baseline}, depthConfigs...), matchUps)
}

// RunPruningToThroughput pairs each depth against itself with pruning on
// and off; the move records then show the node-count difference while
// the game records show identical outcomes.
func RunPruningToThroughput(root string) error {
	configs := []metrics.AgentConfig{}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		unpruned := config
		unpruned.ID = config.ID + len(depthConfigs)
		unpruned.NoPruning = true
		configs = append(configs, config, unpruned)
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, unpruned})
	}

	return runExperiment(root, "pruning_to_throughput", configs, matchUps)
}

func runExperiment(root, name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) error {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return err
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	for _, matchUp := range matchUps {
		log.Info().
			Int("agent1", matchUp[0].ID).
			Int("agent2", matchUp[1].ID).
			Int("games", NumGames).
			Msg("matchup started")
		for i := 0; i < NumGames; i++ {
			count++
			gameRecord, moves, err := playGame(count, matchUp[0], matchUp[1])
			if err != nil {
				return err
			}
			gameRecords = append(gameRecords, gameRecord)
			moveRecords = append(moveRecords, moves...)
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Int("games", count).Msg("experiment finished")
	return nil
}

// mover is the minimal move-producing surface the runner needs; unlike
// player.Player it surfaces the search result for the move records.
type mover interface {
	findMove(b *game.Board) (int, float64, searcher.SearchMetrics)
}

type searchMover struct {
	engine *searcher.Minimax
}

func (m searchMover) findMove(b *game.Board) (int, float64, searcher.SearchMetrics) {
	result := m.engine.ChooseMove(b)
	return result.Column, result.Score, result.Metrics
}

type randomMover struct {
	rng *rand.Rand
}

func (m randomMover) findMove(b *game.Board) (int, float64, searcher.SearchMetrics) {
	free := b.FreeColumns()
	return free[m.rng.Intn(len(free))], 0, searcher.SearchMetrics{}
}

func newMover(config metrics.AgentConfig, side, opponent game.Cell, gameID int) (mover, error) {
	switch config.Kind {
	case "minimax":
		options := []searcher.Option{searcher.WithDepth(config.Depth), searcher.WithMetrics()}
		if config.CenterBias != 0 {
			options = append(options, searcher.WithCenterBias(config.CenterBias))
		}
		if config.NoPruning {
			options = append(options, searcher.WithPruningDisabled())
		}
		return searchMover{engine: searcher.NewMinimax(side, opponent, ToWin, options...)}, nil
	case "random":
		// Offset the seed per game so a matchup is not 30 identical games.
		return randomMover{rng: rand.New(rand.NewSource(config.Seed + uint64(gameID)))}, nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}

func playGame(id int, config1, config2 metrics.AgentConfig) (metrics.GameRecord, []metrics.MoveRecord, error) {
	g, err := game.NewGame(Rows, Cols, ToWin, game.Yellow, game.Red)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	mover1, err := newMover(config1, game.Yellow, game.Red, id)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	mover2, err := newMover(config2, game.Red, game.Yellow, id)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	movers := map[game.Cell]mover{game.Yellow: mover1, game.Red: mover2}
	agentIDs := map[game.Cell]int{game.Yellow: config1.ID, game.Red: config2.ID}

	start := time.Now()
	moveRecords := []metrics.MoveRecord{}
	for !g.Over() {
		side := g.Turn()
		col, score, searchMetrics := movers[side].findMove(g.Board)
		if _, err := g.Play(col); err != nil {
			return metrics.GameRecord{}, nil, err
		}
		moveRecords = append(moveRecords, metrics.MoveRecord{
			Game:          id,
			Step:          g.Moves(),
			Agent:         agentIDs[side],
			Column:        col,
			Score:         score,
			SearchMetrics: searchMetrics,
		})
	}

	winner := "draw"
	switch g.Winner() {
	case game.Yellow:
		winner = "agent1"
	case game.Red:
		winner = "agent2"
	}

	return metrics.GameRecord{
		ID:       id,
		Agent1:   config1.ID,
		Agent2:   config2.ID,
		Winner:   winner,
		Moves:    g.Moves(),
		Duration: time.Since(start),
	}, moveRecords, nil
}
