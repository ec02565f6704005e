package agent

import (
	"capture/experiments/metrics"
	"capture/game"
	"capture/meta"
	"capture/searcher"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Agent interface {
	Index() int
	Role() string
	// RegisterInitialState is called once, before the first ChooseAction, with the agent's view of the initial board.
	RegisterInitialState(state game.State)
	// ChooseAction returns one of state.LegalActions(Index()).
	ChooseAction(state game.State) game.Action
}

// Reporter is implemented by agents that can describe their last decision.
type Reporter interface {
	LastDecision() metrics.DecisionMetric
}

type settings struct {
	seed          uint64
	logger        *zerolog.Logger
	search        []searcher.Option
	deadEndDepth  int
	idleThreshold int
	greedyRadius  int
}

type Option func(s *settings)

// WithSeed fixes the agent's random source. Agents of one team derive
// distinct streams from the same seed through their index.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = &logger
	}
}

func WithSearch(options ...searcher.Option) Option {
	return func(s *settings) {
		s.search = append(s.search, options...)
	}
}

func WithDeadEndDepth(depth int) Option {
	return func(s *settings) {
		if depth >= 0 {
			s.deadEndDepth = depth
		}
	}
}

func WithIdleThreshold(turns int) Option {
	return func(s *settings) {
		if turns > 0 {
			s.idleThreshold = turns
		}
	}
}

func WithGreedyRadius(radius int) Option {
	return func(s *settings) {
		if radius >= 0 {
			s.greedyRadius = radius
		}
	}
}

func newSettings(options []Option) settings {
	s := settings{ // Default values
		seed:          uint64(time.Now().UnixNano()),
		deadEndDepth:  meta.DEAD_END_DEPTH,
		idleThreshold: meta.IDLE_THRESHOLD,
		greedyRadius:  meta.GREEDY_RADIUS,
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

// Base holds what every agent knows about itself and the board, and the
// team-relative queries built on it.
type Base struct {
	index     int
	role      string
	red       bool
	start     game.Position
	distancer game.Distancer
	rng       *rand.Rand
	logger    zerolog.Logger
}

func newBase(index int, role string, s settings) Base {
	logger := log.Logger
	if s.logger != nil {
		logger = *s.logger
	}
	return Base{
		index:  index,
		role:   role,
		red:    index%2 == 0,
		rng:    rand.New(rand.NewSource(s.seed + uint64(index))),
		logger: logger.With().Int("agent", index).Str("role", role).Logger(),
	}
}

func (b *Base) Index() int   { return b.index }
func (b *Base) Role() string { return b.role }

func (b *Base) RegisterInitialState(state game.State) {
	b.red = state.IsRed(b.index)
	b.start = state.InitialAgentPosition(b.index)
	b.distancer = state.Distancer()
}

// Food is the food this agent's team is collecting.
func (b *Base) Food(state game.State) []game.Position {
	if b.red {
		return state.BlueFood()
	}
	return state.RedFood()
}

func (b *Base) FoodDefending(state game.State) []game.Position {
	if b.red {
		return state.RedFood()
	}
	return state.BlueFood()
}

func (b *Base) CapsulesDefending(state game.State) []game.Position {
	if b.red {
		return state.RedCapsules()
	}
	return state.BlueCapsules()
}

func (b *Base) Opponents(state game.State) []int {
	if b.red {
		return state.BlueTeam()
	}
	return state.RedTeam()
}

// Score is the game score from this agent's team's point of view.
func (b *Base) Score(state game.State) float64 {
	if b.red {
		return state.Score()
	}
	return -state.Score()
}

func (b *Base) MazeDistance(from, to game.Position) int {
	return b.distancer.Distance(from, to)
}

func (b *Base) position(state game.State) game.Position {
	pos, _ := state.AgentPosition(b.index)
	return pos
}

// visible lists the observed opponents that are (pacman) or are not (ghosts) invading.
func (b *Base) visible(state game.State, pacman bool) []game.AgentState {
	var agents []game.AgentState
	for _, i := range b.Opponents(state) {
		s := state.AgentState(i)
		if s.Config != nil && s.IsPacman == pacman {
			agents = append(agents, s)
		}
	}
	return agents
}

// nearest returns the positions at minimum maze distance from pos, in input
// order, and that distance.
func (b *Base) nearest(pos game.Position, targets []game.Position) ([]game.Position, int) {
	best := game.Unreachable
	var closest []game.Position
	for _, t := range targets {
		d := b.MazeDistance(pos, t)
		if d < best {
			best = d
			closest = closest[:0]
		}
		if d == best {
			closest = append(closest, t)
		}
	}
	return closest, best
}

func positions(agents []game.AgentState) []game.Position {
	ps := make([]game.Position, 0, len(agents))
	for _, a := range agents {
		p, _ := a.Position()
		ps = append(ps, p)
	}
	return ps
}

// best returns the actions scoring the maximum value, in input order.
func best(actions []game.Action, values []float64) []game.Action {
	var top []game.Action
	high := 0.0
	for i, action := range actions {
		switch {
		case len(top) == 0 || values[i] > high:
			high = values[i]
			top = append(top[:0], action)
		case values[i] == high:
			top = append(top, action)
		}
	}
	return top
}
