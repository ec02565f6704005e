package agent

import (
	"capture/eval"
	"capture/game"
	"capture/meta"
	"capture/utils"
)

// Reflex picks the legal action whose successor evaluates best, switching to a
// race home once little food is left to collect.
type Reflex struct {
	Base
	features eval.FeatureFunc
	weights  eval.WeightFunc
}

func newReflex(index int, role string, options []Option) *Reflex {
	return &Reflex{Base: newBase(index, role, newSettings(options))}
}

// NewReflex returns the baseline reflex agent, which only values the score.
func NewReflex(index int, options ...Option) *Reflex {
	r := newReflex(index, "reflex", options)
	r.features = r.scoreFeatures
	r.weights = func(game.State, game.Action) eval.Weights {
		return eval.Weights{"successorScore": 1}
	}
	return r
}

func (r *Reflex) ChooseAction(state game.State) game.Action {
	actions := state.LegalActions(r.index)

	if len(r.Food(state)) <= meta.ENDGAME_FOOD {
		action := r.homeward(state, actions)
		r.logger.Debug().Str("action", action.String()).Msg("racing home")
		return action
	}

	values := make([]float64, len(actions))
	for i, action := range actions {
		values[i] = eval.Evaluate(state, action, r.features, r.weights)
	}
	action := utils.Choice(r.rng, best(actions, values))
	r.logger.Debug().Str("action", action.String()).Msg("reflex")
	return action
}

// homeward returns the first action whose successor is closest to the start.
func (r *Reflex) homeward(state game.State, actions []game.Action) game.Action {
	bestAction, bestDist := actions[0], game.Unreachable+1
	for _, action := range actions {
		pos, _ := game.Successor(state, r.index, action).AgentPosition(r.index)
		if dist := r.MazeDistance(r.start, pos); dist < bestDist {
			bestAction, bestDist = action, dist
		}
	}
	return bestAction
}

func (r *Reflex) scoreFeatures(state game.State, action game.Action) eval.Features {
	successor := game.Successor(state, r.index, action)
	return eval.Features{"successorScore": r.Score(successor)}
}

// NewDefensive returns a reflex agent that stays home and closes on visible invaders.
func NewDefensive(index int, options ...Option) *Reflex {
	r := newReflex(index, "defense", options)
	r.features = r.defensiveFeatures
	r.weights = func(game.State, game.Action) eval.Weights {
		return eval.Weights{
			"numInvaders":     -1000,
			"onDefense":       100,
			"invaderDistance": -10,
			"stop":            -100,
			"reverse":         -2,
		}
	}
	return r
}

func (r *Reflex) defensiveFeatures(state game.State, action game.Action) eval.Features {
	successor := game.Successor(state, r.index, action)
	me := successor.AgentState(r.index)
	pos, _ := me.Position()

	features := eval.Features{"onDefense": 1}
	if me.IsPacman {
		features["onDefense"] = 0
	}

	invaders := r.visible(successor, true)
	features["numInvaders"] = float64(len(invaders))
	if len(invaders) > 0 {
		_, dist := r.nearest(pos, positions(invaders))
		features["invaderDistance"] = float64(dist)
	}

	if action == game.Stop {
		features["stop"] = 1
	}
	if reverse, ok := state.AgentState(r.index).Direction().Reverse(); ok && action == reverse {
		features["reverse"] = 1
	}
	return features
}
