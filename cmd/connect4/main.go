// Command connect4 plays a console game between any two of: a human
// reading from stdin, a random player, and the minimax player.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/NicolasHug/connect4/engine"
	"github.com/NicolasHug/connect4/game"
	"github.com/NicolasHug/connect4/player"
	"github.com/NicolasHug/connect4/searcher"
)

func main() {
	rows := flag.Int("rows", 6, "Number of board rows")
	cols := flag.Int("cols", 7, "Number of board columns")
	toWin := flag.Int("towin", 4, "Number of aligned pieces needed to win")
	depth := flag.Int("depth", searcher.DefaultDepth, "Minimax search depth")
	centerBias := flag.Float64("centerbias", 0, "Tie-break weight for central play (0 disables)")
	p1 := flag.String("p1", "human", "First player: human, random or minimax")
	p2 := flag.String("p2", "minimax", "Second player: human, random or minimax")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for random players")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	first, err := newPlayer(*p1, game.Yellow, game.Red, *toWin, *depth, *centerBias, *seed)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid first player")
	}
	second, err := newPlayer(*p2, game.Red, game.Yellow, *toWin, *depth, *centerBias, *seed+1)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid second player")
	}

	e, err := engine.New(first, second, *rows, *cols, *toWin)
	if err != nil {
		log.Fatal().Err(err).Msg("could not set up the game")
	}
	e.Render = func(b *game.Board) { fmt.Println(b) }

	winner, err := e.Run()
	if err != nil {
		if errors.Is(err, io.EOF) {
			// The human walked away.
			return
		}
		log.Fatal().Err(err).Msg("game aborted")
	}

	if winner == game.Empty {
		fmt.Println("There's no winner. You're both losers.")
	} else {
		fmt.Printf("Player %s won the game!\n", winner)
	}
}

func newPlayer(kind string, side, opponent game.Cell, toWin, depth int, centerBias float64, seed uint64) (player.Player, error) {
	switch kind {
	case "human":
		return player.NewHuman(side, os.Stdin, os.Stdout), nil
	case "random":
		return player.NewRandom(side, seed), nil
	case "minimax":
		options := []searcher.Option{searcher.WithDepth(depth), searcher.WithMetrics()}
		if centerBias != 0 {
			options = append(options, searcher.WithCenterBias(centerBias))
		}
		return player.NewMinimax(side, opponent, toWin, options...), nil
	default:
		return nil, fmt.Errorf("unknown player kind %q", kind)
	}
}
