package metrics

import (
	"time"

	"github.com/NicolasHug/connect4/searcher"
)

// AgentConfig identifies one agent variant in an experiment.
type AgentConfig struct {
	ID         int
	Kind       string // "minimax" or "random"
	Depth      int
	CenterBias float64
	NoPruning  bool
	Seed       uint64
}

// MoveRecord is one move by one agent within a game.
type MoveRecord struct {
	Game   int
	Step   int
	Agent  int // AgentConfig.ID
	Column int
	Score  float64
	searcher.SearchMetrics
}

// GameRecord summarizes one finished game.
type GameRecord struct {
	ID       int
	Agent1   int // AgentConfig.ID, moves first
	Agent2   int
	Winner   string // "agent1", "agent2" or "draw"
	Moves    int
	Duration time.Duration
}
