package agent

import (
	"capture/experiments/metrics"
	"capture/game"
	"capture/meta"
	"capture/utils"
	"slices"
)

// Sentinel guards the home side. It keeps a single target, the prey: the
// closest visible invader, else the spot where food just vanished, else one of
// the last few defended items, else a patrol point drawn from the field.
type Sentinel struct {
	Base
	patrol []game.Position
	field  *ProbabilityField

	prevFood []game.Position
	hasPrev  bool
	prey     game.Position
	hasPrey  bool
	last     metrics.DecisionMetric
}

func NewSentinel(index int, options ...Option) *Sentinel {
	return &Sentinel{Base: newBase(index, "sentinel", newSettings(options))}
}

func (s *Sentinel) RegisterInitialState(state game.State) {
	s.Base.RegisterInitialState(state)
	s.patrol = patrolPoints(state, s.red)
	s.field = NewProbabilityField(s.patrol)
	s.field.Rebuild(s.FoodDefending(state), s.distancer)
	s.prevFood, s.hasPrev = nil, false
	s.hasPrey = false
}

// patrolPoints lists the open cells of the home column next to the center
// line, trimmed evenly from both ends to at most half the interior height.
// Trimming never goes below two points, so on short boards the set can
// exceed that bound rather than end up empty.
func patrolPoints(state game.State, red bool) []game.Position {
	x := (state.Width() - 2) / 2
	if !red {
		x++
	}
	var points []game.Position
	for y := 1; y < state.Height()-1; y++ {
		if !state.HasWall(x, y) {
			points = append(points, game.Position{X: x, Y: y})
		}
	}
	for len(points) > (state.Height()-2)/2 && len(points) > 2 {
		points = points[1 : len(points)-1]
	}
	return points
}

func (s *Sentinel) Patrol() []game.Position              { return s.patrol }
func (s *Sentinel) Field() *ProbabilityField             { return s.field }
func (s *Sentinel) LastDecision() metrics.DecisionMetric { return s.last }

// Prey returns the current target, or false if there is none.
func (s *Sentinel) Prey() (game.Position, bool) {
	return s.prey, s.hasPrey
}

func (s *Sentinel) ChooseAction(state game.State) game.Action {
	food := s.FoodDefending(state)
	if s.hasPrev && len(food) < len(s.prevFood) {
		s.field.Rebuild(food, s.distancer)
	}

	pos := s.position(state)
	if s.hasPrey && pos == s.prey {
		s.hasPrey = false
	}

	if invaders := s.visible(state, true); len(invaders) > 0 {
		closest, _ := s.nearest(pos, positions(invaders))
		s.setPrey(closest[0])
	} else if s.hasPrev {
		for _, item := range s.prevFood {
			if !slices.Contains(food, item) {
				s.setPrey(item)
				break
			}
		}
	}
	s.prevFood, s.hasPrev = food, true

	if !s.hasPrey && len(food) <= meta.GUARD_FOOD {
		if assets := append(slices.Clone(food), s.CapsulesDefending(state)...); len(assets) > 0 {
			s.setPrey(utils.Choice(s.rng, assets))
		}
	}
	if !s.hasPrey {
		if p, ok := s.field.Sample(s.rng); ok {
			s.setPrey(p)
		}
	}

	action := s.approach(state)
	s.last = metrics.DecisionMetric{Target: s.prey.String()}
	s.logger.Debug().Str("action", action.String()).Str("prey", s.prey.String()).Msg("sentinel step")
	return action
}

func (s *Sentinel) setPrey(p game.Position) {
	s.prey, s.hasPrey = p, true
}

// approach moves toward the prey without stopping or crossing into enemy
// territory. If every move would do either, all legal actions are considered.
func (s *Sentinel) approach(state game.State) game.Action {
	legal := state.LegalActions(s.index)
	if !s.hasPrey {
		return utils.Choice(s.rng, legal)
	}

	var actions []game.Action
	var values []float64
	for _, action := range legal {
		if action == game.Stop {
			continue
		}
		successor := game.Successor(state, s.index, action)
		if successor.AgentState(s.index).IsPacman {
			continue
		}
		actions = append(actions, action)
		values = append(values, s.closeness(successor))
	}
	if len(actions) == 0 {
		for _, action := range legal {
			actions = append(actions, action)
			values = append(values, s.closeness(game.Successor(state, s.index, action)))
		}
	}
	return utils.Choice(s.rng, best(actions, values))
}

// closeness is the negated maze distance from the agent to the prey.
func (s *Sentinel) closeness(state game.State) float64 {
	return -float64(s.MazeDistance(s.position(state), s.prey))
}
