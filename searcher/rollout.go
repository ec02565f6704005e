package searcher

import (
	"capture/game"

	"golang.org/x/exp/rand"
)

// Rollout plays depth random moves for agent from state and evaluates where it ends up.
func Rollout(state game.State, agent int, depth int, rng *rand.Rand, evaluate Evaluate) float64 {
	for ; depth > 0; depth-- {
		actions := rolloutActions(state, agent)
		if len(actions) == 0 { // Boxed in
			break
		}
		move := actions[rng.Intn(len(actions))] // Random rollout policy
		state = game.Successor(state, agent, move)
	}
	return evaluate(state)
}
