package searcher

import (
	"testing"

	"capture/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewSimulator(t *testing.T) {
	t.Run("using defaults", func(t *testing.T) {
		s := NewSimulator()
		require.Equal(t, 30, s.Rollouts())
		require.Equal(t, 10, s.Depth())
	})

	t.Run("ignoring non-positive options", func(t *testing.T) {
		s := NewSimulator(WithRollouts(0), WithDepth(-1), WithGoroutines(0))
		require.Equal(t, 30, s.Rollouts())
		require.Equal(t, 10, s.Depth())
		require.Positive(t, s.goroutines)
	})
}

func TestSimulate(t *testing.T) {
	t.Run("independent of goroutine count", func(t *testing.T) {
		state := game.NewGameState(game.DefaultLayout())
		candidates := []game.Action{game.East}
		evaluate := func(s game.State) float64 {
			pos, _ := s.AgentPosition(0)
			return float64(pos.X*10+pos.Y) / 7
		}

		sequential, _ := NewSimulator(WithGoroutines(1)).Simulate(state, 0, candidates, rand.New(rand.NewSource(99)), evaluate)
		parallel, _ := NewSimulator(WithGoroutines(4)).Simulate(state, 0, candidates, rand.New(rand.NewSource(99)), evaluate)

		require.Equal(t, sequential, parallel)
	})

	t.Run("favoring the candidate whose rollouts reach food", func(t *testing.T) {
		state := game.NewGameState(game.MustParseLayout(`
%%%%%%%%%%
%  1   .2%
%%%%%%%%%%
`))
		s := NewSimulator(WithRollouts(8), WithDepth(5))

		sums, _ := s.Simulate(state, 0, []game.Action{game.East, game.West}, rand.New(rand.NewSource(3)), redScore)

		require.Equal(t, []float64{8, 0}, sums, "Every eastward rollout eats, no westward one does")
	})

	t.Run("collecting metrics", func(t *testing.T) {
		state := game.NewGameState(game.DefaultLayout())
		s := NewSimulator(WithRollouts(5), WithDepth(3), WithGoroutines(2), WithMetrics())

		sums, metric := s.Simulate(state, 0, []game.Action{game.East, game.Stop}, rand.New(rand.NewSource(1)), xOf(0))

		require.Len(t, sums, 2)
		require.Equal(t, 10, metric.Playouts)
		require.Equal(t, 2, metric.Candidates)
		require.Equal(t, 5, metric.Rollouts)
		require.Equal(t, 3, metric.Depth)
		require.Equal(t, 2, metric.Goroutines)
	})
}
