package experiments

import (
	"capture/agent"
	"capture/config"
	"capture/engine"
	"capture/experiments/metrics"
	"capture/game"
	"capture/searcher"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Run plays the configured number of games between the red and blue teams.
// Records are written under cfg.Match.Output when it is set.
func Run(cfg config.Config) ([]metrics.GameMetric, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	layout, err := loadLayout(cfg.Match.Layout)
	if err != nil {
		return nil, err
	}
	seed := cfg.Match.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	red, blue := strings.Join(cfg.Match.Red, ","), strings.Join(cfg.Match.Blue, ",")
	log.Info().Msgf("starting %d games of %s against %s...", cfg.Match.Games, red, blue)

	gameRecords := []metrics.GameMetric{}
	moveRecords := []metrics.MoveRecord{}
	wins := map[string]int{}
	for i := 0; i < cfg.Match.Games; i++ {
		log.Info().Msgf("starting game %d of %d...", i+1, cfg.Match.Games)

		gameMetric, moveMetrics, err := runGame(cfg, layout, seed+uint64(i))
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", i+1, err)
		}
		gameMetric.Red, gameMetric.Blue = red, blue
		gameRecords = append(gameRecords, gameMetric)
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       gameMetric.ID,
				MoveMetric: mm,
			})
		}
		wins[gameMetric.Winner]++

		log.Info().Msgf("completed game %d of %d with winner: %s (score %.0f)", i+1, cfg.Match.Games, gameMetric.Winner, gameMetric.Score)
	}
	log.Info().Msgf("completed %d games: red %d, blue %d, ties %d", cfg.Match.Games, wins[engine.Red], wins[engine.Blue], wins[engine.Tie])

	if cfg.Match.Output != "" {
		err = store(cfg, seed, gameRecords, moveRecords)
		if err != nil {
			return gameRecords, err
		}
	}
	return gameRecords, nil
}

func loadLayout(path string) (*game.Layout, error) {
	if path == "" {
		return game.DefaultLayout(), nil
	}
	return game.LoadLayout(path)
}

// runGame plays a single game and returns its metrics
func runGame(cfg config.Config, layout *game.Layout, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	options := agentOptions(cfg.Search, seed)
	red, err := agent.CreateTeam(0, 2, true, cfg.Match.Red[0], cfg.Match.Red[1], options...)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	blue, err := agent.CreateTeam(1, 3, false, cfg.Match.Blue[0], cfg.Match.Blue[1], options...)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	e, err := engine.LocalEngine(layout, append(red, blue...),
		engine.WithMaxMoves(cfg.Match.MaxMoves),
		engine.WithTurnBudget(cfg.Match.TurnBudget),
		engine.WithMaxWarnings(cfg.Match.MaxWarnings),
	)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	start := time.Now()
	result, moveMetrics := e.Run()
	end := time.Now()

	return metrics.GameMetric{
		ID:        uuid.NewString(),
		Winner:    result.Winner,
		Score:     result.Score,
		Forfeit:   result.Forfeit,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
		Moves:     result.Moves,
	}, moveMetrics, nil
}

func agentOptions(search config.Search, seed uint64) []agent.Option {
	return []agent.Option{
		agent.WithSeed(seed),
		agent.WithSearch(
			searcher.WithRollouts(search.Rollouts),
			searcher.WithDepth(search.Depth),
			searcher.WithGoroutines(search.Goroutines),
		),
		agent.WithDeadEndDepth(search.DeadEndDepth),
		agent.WithIdleThreshold(search.IdleThreshold),
		agent.WithGreedyRadius(search.GreedyRadius),
	}
}

func store(cfg config.Config, seed uint64, games []metrics.GameMetric, moves []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(cfg.Match.Output)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	setup := struct {
		config.Config
		Seed uint64 `json:"seed"`
	}{cfg, seed}
	err = writer.WriteSetup(setup)
	if err != nil {
		return fmt.Errorf("failed to store setup: %w", err)
	}
	log.Info().Msg("stored setup")

	err = writer.WriteGameRecords(games)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moves)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}
