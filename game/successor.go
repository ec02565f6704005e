package game

// Successor applies action for agent and, if the agent lands between grid cells,
// applies it once more so the result always has the agent on a full cell.
func Successor(state State, agent int, action Action) State {
	next := state.GenerateSuccessor(agent, action)
	if config := next.AgentState(agent).Config; config != nil && !config.Pos.OnGrid() {
		return next.GenerateSuccessor(agent, action)
	}
	return next
}
