package config

import (
	"capture/meta"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config describes a series of matches and how the agents search.
type Config struct {
	Match  Match  `yaml:"match" json:"match"`
	Search Search `yaml:"search" json:"search"`
}

type Match struct {
	Layout      string        `yaml:"layout" json:"layout"` // Path to a layout file, empty for the built-in board
	Games       int           `yaml:"games" json:"games"`
	MaxMoves    int           `yaml:"maxMoves" json:"maxMoves"`
	TurnBudget  time.Duration `yaml:"turnBudget" json:"turnBudget"`
	MaxWarnings int           `yaml:"maxWarnings" json:"maxWarnings"`
	Red         []string      `yaml:"red" json:"red"`
	Blue        []string      `yaml:"blue" json:"blue"`
	Seed        uint64        `yaml:"seed" json:"seed"`     // 0 seeds from the clock
	Output      string        `yaml:"output" json:"output"` // Records are only written when set
}

type Search struct {
	Rollouts      int `yaml:"rollouts" json:"rollouts"`
	Depth         int `yaml:"depth" json:"depth"`
	DeadEndDepth  int `yaml:"deadEndDepth" json:"deadEndDepth"`
	Goroutines    int `yaml:"goroutines" json:"goroutines"`
	IdleThreshold int `yaml:"idleThreshold" json:"idleThreshold"`
	GreedyRadius  int `yaml:"greedyRadius" json:"greedyRadius"`
}

func Default() Config {
	return Config{
		Match: Match{
			Games:       1,
			MaxMoves:    meta.MAX_MOVES,
			TurnBudget:  meta.TURN_BUDGET,
			MaxWarnings: meta.MAX_WARNINGS,
			Red:         []string{"offense", "sentinel"},
			Blue:        []string{"offense", "sentinel"},
		},
		Search: Search{
			Rollouts:      meta.ROLLOUTS,
			Depth:         meta.ROLLOUT_DEPTH,
			DeadEndDepth:  meta.DEAD_END_DEPTH,
			Goroutines:    meta.GO_ROUTINES,
			IdleThreshold: meta.IDLE_THRESHOLD,
			GreedyRadius:  meta.GREEDY_RADIUS,
		},
	}
}

// Load reads a YAML file over the defaults, so omitted fields keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	positive := []struct {
		name  string
		value int
	}{
		{"match.games", c.Match.Games},
		{"match.maxMoves", c.Match.MaxMoves},
		{"search.rollouts", c.Search.Rollouts},
		{"search.depth", c.Search.Depth},
		{"search.goroutines", c.Search.Goroutines},
		{"search.idleThreshold", c.Search.IdleThreshold},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", p.name, p.value))
		}
	}
	if c.Match.TurnBudget < 0 {
		errs = append(errs, fmt.Errorf("match.turnBudget must not be negative, got %s", c.Match.TurnBudget))
	}
	if c.Match.MaxWarnings < 0 {
		errs = append(errs, fmt.Errorf("match.maxWarnings must not be negative, got %d", c.Match.MaxWarnings))
	}
	if c.Search.DeadEndDepth < 0 {
		errs = append(errs, fmt.Errorf("search.deadEndDepth must not be negative, got %d", c.Search.DeadEndDepth))
	}
	if c.Search.GreedyRadius < 0 {
		errs = append(errs, fmt.Errorf("search.greedyRadius must not be negative, got %d", c.Search.GreedyRadius))
	}
	if len(c.Match.Red) != 2 {
		errs = append(errs, fmt.Errorf("match.red needs 2 agents, got %d", len(c.Match.Red)))
	}
	if len(c.Match.Blue) != 2 {
		errs = append(errs, fmt.Errorf("match.blue needs 2 agents, got %d", len(c.Match.Blue)))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
