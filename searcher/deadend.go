package searcher

import "capture/game"

// IsDeadEnd reports whether taking action leads only into branches that end
// with nowhere to go before the score improves. Branches still open after
// depth moves are not dead ends.
func IsDeadEnd(state game.State, agent int, action game.Action, depth int, score Evaluate) bool {
	if depth == 0 {
		return false
	}
	successor := game.Successor(state, agent, action)
	if score(state) < score(successor) {
		return false
	}

	actions := forwardActions(successor, agent)
	if len(actions) == 0 {
		return true
	}
	for _, a := range actions {
		if !IsDeadEnd(successor, agent, a, depth-1, score) {
			return false
		}
	}
	return true
}

// FilterDeadEnds drops dead-end candidates. If every candidate is a dead end
// the candidates are returned unfiltered, so the result is never empty.
func FilterDeadEnds(state game.State, agent int, candidates []game.Action, depth int, score Evaluate) []game.Action {
	kept := make([]game.Action, 0, len(candidates))
	for _, a := range candidates {
		if !IsDeadEnd(state, agent, a, depth, score) {
			kept = append(kept, a)
		}
	}
	if len(kept) == 0 {
		return candidates
	}
	return kept
}
