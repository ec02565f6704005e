package game

// Distancer answers shortest-path queries between open board cells.
type Distancer interface {
	Distance(a, b Position) int
}

// State is the read-only view of a board that agents decide on.
// Implementations are immutable: GenerateSuccessor always returns a new State.
type State interface {
	NumAgents() int
	IsRed(agent int) bool
	RedTeam() []int
	BlueTeam() []int

	// LegalActions lists the actions available to agent, always ending with Stop on a full grid cell.
	LegalActions(agent int) []Action
	// GenerateSuccessor applies one engine transition. It panics if action is not legal for agent.
	GenerateSuccessor(agent int, action Action) State

	AgentState(agent int) AgentState
	// AgentPosition returns the agent's nearest grid cell, or false if the agent is not observed.
	AgentPosition(agent int) (Position, bool)
	InitialAgentPosition(agent int) Position

	// Score is signed from red's perspective.
	Score() float64

	RedFood() []Position
	BlueFood() []Position
	RedCapsules() []Position
	BlueCapsules() []Position

	Width() int
	Height() int
	HasWall(x, y int) bool
	Distancer() Distancer
}
