package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes one batch of rollouts.
type SearchMetric struct {
	Goroutines int
	Rollouts   int // Configured rollouts per candidate
	Depth      int
	Candidates int
	Playouts   int // Rollouts actually completed
	Duration   time.Duration
}

// DecisionMetric describes how an agent arrived at one action.
type DecisionMetric struct {
	Greedy   bool
	Pruned   int // Candidates dropped as dead ends
	IdleTime int
	Target   string
	SearchMetric
}

type MoveMetric struct {
	Step     int
	Agent    int
	Action   string
	Duration time.Duration // Wall clock the agent took to decide
	DecisionMetric
}

type GameMetric struct {
	ID        string
	Red       string // Agent names
	Blue      string
	Winner    string
	Score     float64
	Forfeit   bool
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Moves     int
}

type Collector interface {
	Start(goroutines, rollouts, depth, candidates int)
	AddPlayout()
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	rollouts   int
	depth      int
	candidates int
	startTime  time.Time
	playouts   atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, rollouts, depth, candidates int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.rollouts = rollouts
	m.depth = depth
	m.candidates = candidates
	m.playouts.Store(0)
}

func (m *collector) AddPlayout() {
	m.playouts.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Rollouts:   m.rollouts,
		Depth:      m.depth,
		Candidates: m.candidates,
		Playouts:   int(m.playouts.Load()),
		Duration:   time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, rollouts, depth, candidates int) {}
func (m *dummyCollector) AddPlayout()                                       {}
func (m *dummyCollector) Complete() SearchMetric                            { return SearchMetric{} }
