package agent

import (
	"testing"

	"capture/game"

	"github.com/stretchr/testify/require"
)

func TestPatrolPoints(t *testing.T) {
	state := game.NewGameState(game.DefaultLayout())

	t.Run("trimming the red boundary column", func(t *testing.T) {
		s := NewSentinel(0, quiet)
		s.RegisterInitialState(state.Observe(0))
		require.Equal(t, []game.Position{{X: 9, Y: 3}, {X: 9, Y: 4}, {X: 9, Y: 5}}, s.Patrol())
	})

	t.Run("trimming the blue boundary column", func(t *testing.T) {
		s := NewSentinel(1, quiet)
		s.RegisterInitialState(state.Observe(1))
		require.Equal(t, []game.Position{{X: 10, Y: 3}, {X: 10, Y: 4}, {X: 10, Y: 5}}, s.Patrol())
	})

	t.Run("skipping walls", func(t *testing.T) {
		walled := game.NewGameState(game.MustParseLayout(`
%%%%%%%%%%
%1  %   2%
%   %    %
%        %
%%%%%%%%%%
`))
		require.Equal(t, []game.Position{{X: 4, Y: 1}}, patrolPoints(walled, true))
	})
}

func TestSentinelEatenFood(t *testing.T) {
	state := game.NewGameState(game.MustParseLayout(`
%%%%%%%%%%%%%%%%%%%%%%%%
%.2.....               %
%          1           %
%                      %
%%%%%%%%%%%%%%%%%%%%%%%%
`))
	s := NewSentinel(0, WithSeed(3), quiet)
	s.RegisterInitialState(state.Observe(0))
	require.Equal(t, []game.Position{{X: 11, Y: 2}}, s.Patrol())

	action := s.ChooseAction(state.Observe(0))
	prey, ok := s.Prey()
	require.True(t, ok)
	require.Equal(t, game.Position{X: 11, Y: 2}, prey, "With plenty of food the sentinel patrols")
	require.NotEqual(t, game.Stop, action)
	require.NotEqual(t, game.East, action, "East crosses into enemy territory")
	state = step(state, 0, action)

	// Agent 2 eats out of sight
	state = step(state, 1, game.East)
	require.Len(t, state.RedFood(), 5)

	s.ChooseAction(state.Observe(0))
	prey, ok = s.Prey()
	require.True(t, ok)
	require.Equal(t, game.Position{X: 3, Y: 3}, prey)
	require.Equal(t, "(3, 3)", s.LastDecision().Target)
}

func TestSentinelInvader(t *testing.T) {
	state := game.NewGameState(game.MustParseLayout(`
%%%%%%%%%%%%%%%%%%%%%%%%
%......                %
%       2  1           %
%                      %
%%%%%%%%%%%%%%%%%%%%%%%%
`))
	s := NewSentinel(0, WithSeed(3), quiet)
	s.RegisterInitialState(state.Observe(0))

	state = step(state, 1, game.West)
	action := s.ChooseAction(state.Observe(0))

	prey, ok := s.Prey()
	require.True(t, ok)
	require.Equal(t, game.Position{X: 7, Y: 2}, prey)
	require.Equal(t, game.West, action)
}

func TestSentinelGuardsLastFood(t *testing.T) {
	state := game.NewGameState(game.MustParseLayout(`
%%%%%%%%%%%%%%%%%%%%%%%%
%...                  2%
%          1           %
%                      %
%%%%%%%%%%%%%%%%%%%%%%%%
`))
	s := NewSentinel(0, WithSeed(3), quiet)
	s.RegisterInitialState(state.Observe(0))

	s.ChooseAction(state.Observe(0))

	prey, ok := s.Prey()
	require.True(t, ok)
	require.Contains(t, state.RedFood(), prey)
}

func TestSentinelClearsReachedPrey(t *testing.T) {
	state := game.NewGameState(game.MustParseLayout(`
%%%%%%%%%%%%%%%%%%%%%%%%
%......                %
%       2  1           %
%                      %
%%%%%%%%%%%%%%%%%%%%%%%%
`))
	s := NewSentinel(0, WithSeed(3), quiet)
	s.RegisterInitialState(state.Observe(0))

	s.setPrey(game.Position{X: 11, Y: 2})
	s.ChooseAction(state.Observe(0))

	// The reached target is replaced by the only patrol point, which is the same cell
	prey, ok := s.Prey()
	require.True(t, ok)
	require.Equal(t, game.Position{X: 11, Y: 2}, prey)

	s.setPrey(game.Position{X: 1, Y: 3})
	moved := step(state, 0, game.West)
	s.ChooseAction(moved.Observe(0))
	prey, _ = s.Prey()
	require.Equal(t, game.Position{X: 1, Y: 3}, prey, "An unreached target persists")
}

func TestSentinelCornered(t *testing.T) {
	// The only way out of agent 1's pocket crosses the center line
	layout := game.MustParseLayout(`
%%%%%%%%%%
%%%%1   2%
%%%%%%%%%%
`)

	t.Run("crossing when the prey lies ahead", func(t *testing.T) {
		state := game.NewGameState(layout)
		s := NewSentinel(0, WithSeed(3), quiet)
		s.RegisterInitialState(state.Observe(0))
		s.setPrey(game.Position{X: 7, Y: 1})

		view := state.Observe(0)
		action := s.ChooseAction(view)

		require.Equal(t, []game.Action{game.East, game.Stop}, view.LegalActions(0))
		require.Equal(t, game.East, action)
		prey, _ := s.Prey()
		require.Equal(t, game.Position{X: 7, Y: 1}, prey)
	})

	t.Run("stopping when standing closest to the prey", func(t *testing.T) {
		state := game.NewGameState(layout)
		s := NewSentinel(0, WithSeed(3), quiet)
		s.RegisterInitialState(state.Observe(0))
		require.Equal(t, []game.Position{{X: 4, Y: 1}}, s.Patrol())

		action := s.ChooseAction(state.Observe(0))

		prey, ok := s.Prey()
		require.True(t, ok)
		require.Equal(t, game.Position{X: 4, Y: 1}, prey, "The only patrol point is the sentinel's own cell")
		require.Equal(t, game.Stop, action)
	})
}
