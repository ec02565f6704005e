package main

import (
	"capture/agent"
	"capture/config"
	"capture/experiments"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML match configuration")
	layout := flag.String("layout", "", "Layout file, the built-in board if empty")
	red := flag.String("red", "", "Red agents, two comma separated names of: "+strings.Join(agent.Names(), ", "))
	blue := flag.String("blue", "", "Blue agents, two comma separated names")
	games := flag.Int("games", 0, "Number of games to play")
	seed := flag.Uint64("seed", 0, "Random seed, 0 seeds from the clock")
	output := flag.String("output", "", "Directory to store game and move records in")
	verbose := flag.Bool("verbose", false, "Log every agent decision")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}

	// Flags given on the command line override the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "layout":
			cfg.Match.Layout = *layout
		case "red":
			cfg.Match.Red = splitNames(*red)
		case "blue":
			cfg.Match.Blue = splitNames(*blue)
		case "games":
			cfg.Match.Games = *games
		case "seed":
			cfg.Match.Seed = *seed
		case "output":
			cfg.Match.Output = *output
		}
	})

	results, err := experiments.Run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to run games")
	}
	for _, r := range results {
		fmt.Printf("%s\t%s\tscore %.0f\tmoves %d\n", r.ID, r.Winner, r.Score, r.Moves)
	}
}

func splitNames(names string) []string {
	var out []string
	for _, name := range strings.Split(names, ",") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}
