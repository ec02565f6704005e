package agent

import (
	"capture/eval"
	"capture/experiments/metrics"
	"capture/game"
	"capture/searcher"
	"capture/utils"
	"math"
)

// Offense collects food. Food within a short, ghost-free reach is taken
// greedily; otherwise every candidate move is scored by random rollouts after
// dropping moves into food-less dead ends.
type Offense struct {
	Base
	simulator     *searcher.Simulator
	deadEndDepth  int
	idleThreshold int
	greedyRadius  int

	idleTime  int // Turns since the food count last changed
	foodCount int
	last      metrics.DecisionMetric
}

func NewOffense(index int, options ...Option) *Offense {
	s := newSettings(options)
	search := append([]searcher.Option{searcher.WithMetrics()}, s.search...)
	return &Offense{
		Base:          newBase(index, "offense", s),
		simulator:     searcher.NewSimulator(search...),
		deadEndDepth:  s.deadEndDepth,
		idleThreshold: s.idleThreshold,
		greedyRadius:  s.greedyRadius,
		foodCount:     math.MaxInt,
	}
}

func (o *Offense) RegisterInitialState(state game.State) {
	o.Base.RegisterInitialState(state)
	o.idleTime = 0
	o.foodCount = math.MaxInt
}

func (o *Offense) LastDecision() metrics.DecisionMetric { return o.last }

func (o *Offense) ChooseAction(state game.State) game.Action {
	pos := o.position(state)
	legal := state.LegalActions(o.index)
	food := o.Food(state)
	decision := metrics.DecisionMetric{IdleTime: o.idleTime}

	if len(food) > 0 {
		closest, dist := o.nearest(pos, food)
		target := utils.Choice(o.rng, closest)
		decision.Target = target.String()

		if dist <= o.greedyRadius && len(o.visible(state, false)) == 0 {
			for _, action := range legal {
				next, _ := game.Successor(state, o.index, action).AgentPosition(o.index)
				if o.MazeDistance(next, target) < dist {
					decision.Greedy = true
					o.last = decision
					o.logger.Debug().Str("action", action.String()).Str("target", decision.Target).Msg("greedy step")
					return action
				}
			}
		}
	}

	if len(food) != o.foodCount {
		o.foodCount = len(food)
		o.idleTime = 0
	} else {
		o.idleTime++
	}
	if pos == state.InitialAgentPosition(o.index) {
		o.idleTime = 0
	}
	decision.IdleTime = o.idleTime

	candidates := utils.Without(legal, game.Stop)
	if len(candidates) == 0 {
		candidates = legal
	}
	survivors := searcher.FilterDeadEnds(state, o.index, candidates, o.deadEndDepth, o.Score)
	decision.Pruned = len(candidates) - len(survivors)

	sums, search := o.simulator.Simulate(state, o.index, survivors, o.rng, func(s game.State) float64 {
		return o.evaluate(s, game.Stop)
	})
	decision.SearchMetric = search
	o.last = decision

	action := utils.Choice(o.rng, best(survivors, sums))
	o.logger.Debug().
		Str("action", action.String()).
		Int("idle", o.idleTime).
		Int("pruned", decision.Pruned).
		Msg("rollout step")
	return action
}

func (o *Offense) evaluate(state game.State, action game.Action) float64 {
	return eval.Evaluate(state, action, o.features, o.weights)
}

func (o *Offense) features(state game.State, action game.Action) eval.Features {
	successor := game.Successor(state, o.index, action)
	me := successor.AgentState(o.index)
	pos, _ := me.Position()

	features := eval.Features{"successorScore": o.Score(successor), "isPacman": 0}
	if food := o.Food(successor); len(food) > 0 {
		_, dist := o.nearest(pos, food)
		features["distanceToFood"] = float64(dist)
	}
	if ghosts := o.visible(successor, false); len(ghosts) > 0 {
		_, dist := o.nearest(pos, positions(ghosts))
		features["distanceToGhost"] = float64(dist)
	}
	if me.IsPacman {
		features["isPacman"] = 1
	}
	return features
}

func (o *Offense) weights(state game.State, action game.Action) eval.Weights {
	if o.idleTime > o.idleThreshold {
		return eval.Weights{"successorScore": 200, "distanceToFood": -5, "distanceToGhost": 2, "isPacman": 1000}
	}
	successor := game.Successor(state, o.index, action)
	if o.nearestGhostScared(successor) {
		return eval.Weights{"successorScore": 200, "distanceToFood": -5, "distanceToGhost": 0, "isPacman": 0}
	}
	return eval.Weights{"successorScore": 200, "distanceToFood": -5, "distanceToGhost": 2, "isPacman": 0}
}

// nearestGhostScared reports whether any visible ghost at the minimum distance is scared.
func (o *Offense) nearestGhostScared(state game.State) bool {
	ghosts := o.visible(state, false)
	if len(ghosts) == 0 {
		return false
	}
	pos := o.position(state)
	_, dist := o.nearest(pos, positions(ghosts))
	for _, ghost := range ghosts {
		p, _ := ghost.Position()
		if o.MazeDistance(pos, p) == dist && ghost.ScaredTimer > 0 {
			return true
		}
	}
	return false
}
