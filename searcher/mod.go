package searcher

import (
	"capture/game"
	"capture/utils"
)

// Evaluate scores a state from the rolling agent's perspective.
type Evaluate func(state game.State) float64

// rolloutActions are the moves a rollout may take: never Stop, and never an
// immediate reverse unless reversing is the only way out.
func rolloutActions(state game.State, agent int) []game.Action {
	actions := utils.Without(state.LegalActions(agent), game.Stop)
	if reverse, ok := state.AgentState(agent).Direction().Reverse(); ok && len(actions) > 1 {
		actions = utils.Without(actions, reverse)
	}
	return actions
}

// forwardActions are the continuations a dead-end check explores: never Stop
// and never the immediate reverse.
func forwardActions(state game.State, agent int) []game.Action {
	actions := utils.Without(state.LegalActions(agent), game.Stop)
	if reverse, ok := state.AgentState(agent).Direction().Reverse(); ok {
		actions = utils.Without(actions, reverse)
	}
	return actions
}
