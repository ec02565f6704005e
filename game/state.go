package game

import (
	"fmt"
	"slices"
)

// Engine rules constants.
const (
	SightRange         = 5   // Opponents farther than this from every teammate are not observed
	ScaredTime         = 40  // Moves a ghost stays scared after a capsule is eaten
	CollisionTolerance = 0.7 // Agents closer than this collide
	MinFood            = 2   // The game ends once a side has this little food left
)

// Configuration is an agent's continuous position and heading.
type Configuration struct {
	Pos Vector
	Dir Action
}

// successor moves the configuration. Stopping keeps the previous heading.
func (c Configuration) successor(action Action, speed float64) Configuration {
	next := Configuration{
		Pos: c.Pos.Add(action.Vector().Scale(speed)),
		Dir: action,
	}
	if action == Stop {
		next.Dir = c.Dir
	}
	return next
}

// AgentState is the engine's record of one agent.
type AgentState struct {
	Start       Configuration
	Config      *Configuration // nil when the agent is not observed
	IsPacman    bool           // On the opponent's side, able to eat and be eaten
	ScaredTimer int
	Speed       float64
}

// Position returns the nearest grid cell, or false if the agent is not observed.
func (a AgentState) Position() (Position, bool) {
	if a.Config == nil {
		return Position{}, false
	}
	return a.Config.Pos.Nearest(), true
}

// Direction is the agent's current heading, Stop if unknown.
func (a AgentState) Direction() Action {
	if a.Config == nil {
		return Stop
	}
	return a.Config.Dir
}

type Option func(gs *GameState)

// WithAgentSpeed sets how far an agent moves per transition. Speeds below 1
// produce half-step positions between grid cells.
func WithAgentSpeed(agent int, speed float64) Option {
	return func(gs *GameState) {
		if agent >= 0 && agent < len(gs.agents) && speed > 0 {
			gs.agents[agent].Speed = speed
		}
	}
}

// GameState is an immutable board snapshot. Successors share unchanged data
// with their parent and copy only what they modify.
type GameState struct {
	layout    *Layout
	distancer *MazeDistancer
	agents    []AgentState
	food      []bool // Indexed like layout walls, copied on write
	capsules  []Position
	score     float64
	moves     int
}

// NewGameState builds the initial state of a layout.
func NewGameState(l *Layout, options ...Option) *GameState {
	gs := &GameState{
		layout:    l,
		distancer: NewDistancer(l),
		agents:    make([]AgentState, len(l.Starts)),
		food:      make([]bool, l.Width*l.Height),
		capsules:  slices.Clone(l.Capsules),
	}
	for i, p := range l.Starts {
		start := Configuration{Pos: p.Vector(), Dir: Stop}
		config := start
		gs.agents[i] = AgentState{Start: start, Config: &config, Speed: 1}
	}
	for _, p := range l.Food {
		gs.food[l.index(p)] = true
	}
	for _, option := range options {
		option(gs)
	}
	return gs
}

func (gs *GameState) copy() *GameState {
	next := *gs
	next.agents = slices.Clone(gs.agents)
	return &next
}

func (gs *GameState) Layout() *Layout             { return gs.layout }
func (gs *GameState) Distancer() Distancer        { return gs.distancer }
func (gs *GameState) NumAgents() int              { return len(gs.agents) }
func (gs *GameState) Width() int                  { return gs.layout.Width }
func (gs *GameState) Height() int                 { return gs.layout.Height }
func (gs *GameState) HasWall(x, y int) bool       { return gs.layout.HasWall(x, y) }
func (gs *GameState) Score() float64              { return gs.score }
func (gs *GameState) Moves() int                  { return gs.moves }
func (gs *GameState) IsRed(agent int) bool        { return agent%2 == 0 }
func (gs *GameState) AgentState(i int) AgentState { return gs.agents[i] }

func (gs *GameState) RedTeam() []int  { return gs.team(true) }
func (gs *GameState) BlueTeam() []int { return gs.team(false) }

func (gs *GameState) team(red bool) []int {
	var team []int
	for i := range gs.agents {
		if gs.IsRed(i) == red {
			team = append(team, i)
		}
	}
	return team
}

func (gs *GameState) AgentPosition(agent int) (Position, bool) {
	return gs.agents[agent].Position()
}

func (gs *GameState) InitialAgentPosition(agent int) Position {
	return gs.agents[agent].Start.Pos.Nearest()
}

// RedFood is the food on the red side, which red defends and blue eats.
func (gs *GameState) RedFood() []Position  { return gs.foodOn(true) }
func (gs *GameState) BlueFood() []Position { return gs.foodOn(false) }

func (gs *GameState) foodOn(red bool) []Position {
	var food []Position
	for x := 0; x < gs.layout.Width; x++ {
		for y := 0; y < gs.layout.Height; y++ {
			p := Position{X: x, Y: y}
			if gs.food[gs.layout.index(p)] && gs.layout.IsRedSide(p) == red {
				food = append(food, p)
			}
		}
	}
	return food
}

func (gs *GameState) RedCapsules() []Position  { return gs.capsulesOn(true) }
func (gs *GameState) BlueCapsules() []Position { return gs.capsulesOn(false) }

func (gs *GameState) capsulesOn(red bool) []Position {
	var capsules []Position
	for _, p := range gs.capsules {
		if gs.layout.IsRedSide(p) == red {
			capsules = append(capsules, p)
		}
	}
	return capsules
}

// Over reports whether either side is down to MinFood.
func (gs *GameState) Over() bool {
	return len(gs.RedFood()) <= MinFood || len(gs.BlueFood()) <= MinFood
}

// LegalActions lists the moves available to agent. Between grid cells an agent
// can only keep going the way it is heading.
func (gs *GameState) LegalActions(agent int) []Action {
	config := gs.agents[agent].Config
	if config == nil {
		return []Action{Stop}
	}
	if !config.Pos.OnGrid() {
		return []Action{config.Dir}
	}
	p := config.Pos.Nearest()
	actions := make([]Action, 0, len(Directions)+1)
	for _, dir := range Directions {
		v := dir.Vector()
		if !gs.layout.HasWall(p.X+int(v.X), p.Y+int(v.Y)) {
			actions = append(actions, dir)
		}
	}
	return append(actions, Stop)
}

func (gs *GameState) GenerateSuccessor(agent int, action Action) State {
	if !slices.Contains(gs.LegalActions(agent), action) {
		panic(fmt.Sprintf("illegal action %s for agent %d", action, agent))
	}

	next := gs.copy()
	next.moves++
	me := &next.agents[agent]
	config := me.Config.successor(action, me.Speed)
	me.Config = &config

	if config.Pos.OnGrid() {
		p := config.Pos.Nearest()
		me.IsPacman = gs.layout.IsRedSide(p) != gs.IsRed(agent)
		if me.IsPacman {
			next.consume(agent, p)
		}
	}
	next.resolveCollisions(agent)

	if me.ScaredTimer > 0 {
		me.ScaredTimer--
	}
	return next
}

// consume eats food or a capsule on the opponent's side at p.
func (gs *GameState) consume(agent int, p Position) {
	i := gs.layout.index(p)
	if gs.food[i] {
		gs.food = slices.Clone(gs.food)
		gs.food[i] = false
		if gs.IsRed(agent) {
			gs.score++
		} else {
			gs.score--
		}
	}

	if at := slices.Index(gs.capsules, p); at >= 0 {
		gs.capsules = slices.Delete(slices.Clone(gs.capsules), at, at+1)
		for other := range gs.agents {
			if gs.IsRed(other) != gs.IsRed(agent) {
				gs.agents[other].ScaredTimer = ScaredTime
			}
		}
	}
}

// resolveCollisions settles contacts between agent and observed opponents.
// A ghost eats a pacman unless the ghost is scared, in which case the ghost is eaten.
func (gs *GameState) resolveCollisions(agent int) {
	me := gs.agents[agent]
	if me.Config == nil {
		return
	}
	for other := range gs.agents {
		them := gs.agents[other]
		if gs.IsRed(other) == gs.IsRed(agent) || them.Config == nil {
			continue
		}
		if manhattan(me.Config.Pos, them.Config.Pos) > CollisionTolerance {
			continue
		}
		switch {
		case me.IsPacman && !them.IsPacman:
			if them.ScaredTimer > 0 {
				gs.respawn(other)
			} else {
				gs.respawn(agent)
				return
			}
		case !me.IsPacman && them.IsPacman:
			if me.ScaredTimer > 0 {
				gs.respawn(agent)
				return
			}
			gs.respawn(other)
		}
	}
}

func (gs *GameState) respawn(agent int) {
	a := &gs.agents[agent]
	start := a.Start
	a.Config = &start
	a.IsPacman = false
	a.ScaredTimer = 0
}

// Observe returns the state as seen by agent's team: opponents farther than
// SightRange from every teammate lose their configuration.
func (gs *GameState) Observe(agent int) *GameState {
	obs := gs.copy()
	for other := range obs.agents {
		if gs.IsRed(other) == gs.IsRed(agent) || obs.agents[other].Config == nil {
			continue
		}
		theirs, _ := obs.agents[other].Position()
		seen := false
		for _, mate := range gs.team(gs.IsRed(agent)) {
			if ours, ok := gs.agents[mate].Position(); ok && Manhattan(ours, theirs) <= SightRange {
				seen = true
				break
			}
		}
		if !seen {
			obs.agents[other].Config = nil
		}
	}
	return obs
}

func manhattan(a, b Vector) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
