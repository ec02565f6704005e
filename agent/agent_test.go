package agent

import (
	"testing"

	"capture/game"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var quiet = WithLogger(zerolog.Nop())

func step(state *game.GameState, agent int, actions ...game.Action) *game.GameState {
	for _, action := range actions {
		state = game.Successor(state, agent, action).(*game.GameState)
	}
	return state
}

func TestBase(t *testing.T) {
	state := game.NewGameState(game.DefaultLayout())

	red := newBase(0, "test", newSettings([]Option{quiet}))
	red.RegisterInitialState(state)
	blue := newBase(1, "test", newSettings([]Option{quiet}))
	blue.RegisterInitialState(state)

	t.Run("splitting food by side", func(t *testing.T) {
		require.Equal(t, state.BlueFood(), red.Food(state))
		require.Equal(t, state.RedFood(), red.FoodDefending(state))
		require.Equal(t, state.RedFood(), blue.Food(state))
		require.Equal(t, state.BlueCapsules(), blue.CapsulesDefending(state))
	})

	t.Run("listing opponents", func(t *testing.T) {
		require.Equal(t, []int{1, 3}, red.Opponents(state))
		require.Equal(t, []int{0, 2}, blue.Opponents(state))
	})

	t.Run("scoring from the team's point of view", func(t *testing.T) {
		ate := step(game.NewGameState(game.MustParseLayout(`
%%%%%%%%%%
%1   .  2%
%%%%%%%%%%
`)), 0, game.East, game.East, game.East, game.East)
		require.Equal(t, 1.0, red.Score(ate))
		require.Equal(t, -1.0, blue.Score(ate))
	})

	t.Run("finding every nearest target", func(t *testing.T) {
		from := game.Position{X: 1, Y: 1}
		closest, dist := red.nearest(from, []game.Position{{X: 2, Y: 2}, {X: 1, Y: 3}, {X: 3, Y: 1}})
		require.Equal(t, 2, dist)
		require.Equal(t, []game.Position{{X: 2, Y: 2}, {X: 3, Y: 1}}, closest)
	})
}

func TestBest(t *testing.T) {
	actions := []game.Action{game.North, game.South, game.East, game.Stop}

	require.Equal(t, []game.Action{game.South, game.Stop}, best(actions, []float64{-3, 2, 1, 2}))
	require.Equal(t, actions, best(actions, []float64{-1, -1, -1, -1}))
}
