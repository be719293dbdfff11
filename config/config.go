// Package config loads runtime settings from command-line flags or
// uppercase environment variables of the same name.
package config

import (
	"github.com/namsral/flag"

	"mancala/searcher"
)

type Config struct {
	Debug      bool
	Depth      int
	Color      string
	Seed       uint64
	Games      int
	Experiment string
	Results    string
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("mancala", flag.ContinueOnError)

	fs.BoolVar(&c.Debug, "debug", false, "debug logging on?")
	fs.IntVar(&c.Depth, "depth", searcher.DefaultDepth, "engine lookahead in compound turns")
	fs.StringVar(&c.Color, "color", "white", "side the human plays in the shell")
	fs.Uint64Var(&c.Seed, "seed", 1, "seed for random agents in experiments")
	fs.IntVar(&c.Games, "games", 30, "games per matchup in experiments")
	fs.StringVar(&c.Experiment, "experiment", "", "run an experiment instead of the shell (depth, throughput)")
	fs.StringVar(&c.Results, "results", "results", "directory for experiment output")

	err := fs.Parse(args)
	return err
}
