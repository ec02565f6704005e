package searcher

import (
	"capture/experiments/metrics"
	"capture/game"
	"capture/meta"
	"sync"

	"golang.org/x/exp/rand"
)

type Option func(s *Simulator)

// Simulator estimates candidate actions by summing independent random rollouts.
type Simulator struct {
	goroutines int
	rollouts   int
	depth      int
	metrics    metrics.Collector
}

func WithGoroutines(goroutines int) Option {
	return func(s *Simulator) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

func WithRollouts(rollouts int) Option {
	return func(s *Simulator) {
		if rollouts > 0 {
			s.rollouts = rollouts
		}
	}
}

func WithDepth(depth int) Option {
	return func(s *Simulator) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithMetrics() Option {
	return func(s *Simulator) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSimulator(options ...Option) *Simulator {
	s := &Simulator{ // Default values
		goroutines: meta.GO_ROUTINES,
		rollouts:   meta.ROLLOUTS,
		depth:      meta.ROLLOUT_DEPTH,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Simulator) Rollouts() int { return s.rollouts }
func (s *Simulator) Depth() int    { return s.depth }

type task struct {
	candidate int
	rollout   int
	seed      uint64
}

// Simulate returns, per candidate, the sum of its rollout evaluations. Each
// rollout starts from the successor of taking the candidate. Rollout seeds are
// drawn from rng up front and sums are reduced in a fixed order, so the result
// depends only on rng and not on the number of goroutines.
func (s *Simulator) Simulate(state game.State, agent int, candidates []game.Action, rng *rand.Rand, evaluate Evaluate) ([]float64, metrics.SearchMetric) {
	s.metrics.Start(s.goroutines, s.rollouts, s.depth, len(candidates))

	starts := make([]game.State, len(candidates))
	scores := make([][]float64, len(candidates))
	tasks := make(chan task, len(candidates)*s.rollouts)
	for i, action := range candidates {
		starts[i] = game.Successor(state, agent, action)
		scores[i] = make([]float64, s.rollouts)
		for j := 0; j < s.rollouts; j++ {
			tasks <- task{candidate: i, rollout: j, seed: rng.Uint64()}
		}
	}
	close(tasks)

	var wg sync.WaitGroup
	for i := 0; i < s.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for t := range tasks {
				r := rand.New(rand.NewSource(t.seed))
				scores[t.candidate][t.rollout] = Rollout(starts[t.candidate], agent, s.depth, r, evaluate)
				s.metrics.AddPlayout()
			}
		}()
	}
	wg.Wait()

	sums := make([]float64, len(candidates))
	for i, rollouts := range scores {
		for _, score := range rollouts {
			sums[i] += score
		}
	}
	return sums, s.metrics.Complete()
}
