// Command connect4-bench runs the agent experiments and writes their
// CSV records under -out.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/NicolasHug/connect4/experiments"
)

func main() {
	out := flag.String("out", "results", "Root directory for experiment records")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := experiments.RunDepthToStrength(*out); err != nil {
		log.Fatal().Err(err).Msg("depth experiment failed")
	}
	if err := experiments.RunPruningToThroughput(*out); err != nil {
		log.Fatal().Err(err).Msg("pruning experiment failed")
	}
}
