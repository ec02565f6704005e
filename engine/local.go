package engine

import (
	"capture/agent"
	"capture/experiments/metrics"
	"capture/game"
	"capture/meta"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *Local)

func WithMaxMoves(moves int) Option {
	return func(e *Local) {
		if moves > 0 {
			e.maxMoves = moves
		}
	}
}

// WithTurnBudget sets the wall clock allowed per move. Zero disables the check.
func WithTurnBudget(budget time.Duration) Option {
	return func(e *Local) {
		if budget >= 0 {
			e.turnBudget = budget
		}
	}
}

func WithMaxWarnings(warnings int) Option {
	return func(e *Local) {
		if warnings >= 0 {
			e.maxWarnings = warnings
		}
	}
}

func WithStateOptions(options ...game.Option) Option {
	return func(e *Local) {
		e.stateOptions = append(e.stateOptions, options...)
	}
}

// Local runs a match in process, handing each agent its own partial view of the board.
type Local struct {
	State        *game.GameState
	layout       *game.Layout
	agents       []agent.Agent
	maxMoves     int
	turnBudget   time.Duration
	maxWarnings  int
	stateOptions []game.Option
}

func LocalEngine(layout *game.Layout, agents []agent.Agent, options ...Option) (*Local, error) {
	if len(agents) != len(layout.Starts) {
		return nil, fmt.Errorf("layout has %d agent starts but %d agents were given", len(layout.Starts), len(agents))
	}
	if len(agents) < 2 {
		return nil, fmt.Errorf("need at least two agents")
	}
	agents = slices.Clone(agents)
	slices.SortFunc(agents, func(a, b agent.Agent) int { return a.Index() - b.Index() })
	for i, a := range agents {
		if a.Index() != i {
			return nil, fmt.Errorf("no agent plays index %d", i)
		}
	}

	e := &Local{ // Default values
		layout:      layout,
		agents:      agents,
		maxMoves:    meta.MAX_MOVES,
		turnBudget:  meta.TURN_BUDGET,
		maxWarnings: meta.MAX_WARNINGS,
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Run executes the entire game loop until the board is over or out of moves.
func (e *Local) Run() (Result, []metrics.MoveMetric) {
	e.State = game.NewGameState(e.layout, e.stateOptions...)
	for _, a := range e.agents {
		a.RegisterInitialState(e.State.Observe(a.Index()))
	}

	log.Info().Msgf("starting a %d agent match on a %dx%d board", len(e.agents), e.layout.Width, e.layout.Height)

	warnings := map[bool]int{}
	var moveMetrics []metrics.MoveMetric
	result := Result{}
	for step := 1; !e.State.Over() && e.State.Moves() < e.maxMoves; step++ {
		a := e.agents[(step-1)%len(e.agents)]
		index := a.Index()
		red := e.State.IsRed(index)

		start := time.Now()
		action := a.ChooseAction(e.State.Observe(index))
		elapsed := time.Since(start)

		legal := e.State.LegalActions(index)
		if !slices.Contains(legal, action) {
			log.Warn().Msgf("agent %d chose illegal action %s, stopping instead", index, action)
			action = legal[len(legal)-1] // Stop on a grid cell
		}

		metric := metrics.MoveMetric{Step: step, Agent: index, Action: action.String(), Duration: elapsed}
		if r, ok := a.(agent.Reporter); ok {
			metric.DecisionMetric = r.LastDecision()
		}
		moveMetrics = append(moveMetrics, metric)

		e.State = e.State.GenerateSuccessor(index, action).(*game.GameState)

		if e.turnBudget > 0 && elapsed > e.turnBudget {
			warnings[red]++
			log.Warn().Msgf("agent %d took %s, over the %s budget (warning %d of %d)", index, elapsed, e.turnBudget, warnings[red], e.maxWarnings)
			if warnings[red] > e.maxWarnings {
				result.Forfeit = true
				result.Winner = team(!red)
				log.Warn().Msgf("%s team forfeits after too many slow moves", team(red))
				break
			}
		}
	}

	result.Score = e.State.Score()
	result.Moves = e.State.Moves()
	if !result.Forfeit {
		switch {
		case result.Score > 0:
			result.Winner = Red
		case result.Score < 0:
			result.Winner = Blue
		default:
			result.Winner = Tie
		}
	}

	log.Info().Msgf("match over after %d moves: %s (score %.0f)", result.Moves, result.Winner, result.Score)
	return result, moveMetrics
}

func team(red bool) string {
	if red {
		return Red
	}
	return Blue
}

var _ Engine = (*Local)(nil)
