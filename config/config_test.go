package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func write(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), "match.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 30, cfg.Search.Rollouts)
	require.Equal(t, 10, cfg.Search.Depth)
	require.Equal(t, 5, cfg.Search.DeadEndDepth)
	require.Equal(t, 80, cfg.Search.IdleThreshold)
}

func TestLoad(t *testing.T) {
	t.Run("keeping defaults for omitted fields", func(t *testing.T) {
		cfg, err := Load(write(t, `
match:
  games: 4
  turnBudget: 250ms
  blue: [reflex, defense]
search:
  rollouts: 12
`))
		require.NoError(t, err)
		require.Equal(t, 4, cfg.Match.Games)
		require.Equal(t, 250*time.Millisecond, cfg.Match.TurnBudget)
		require.Equal(t, []string{"reflex", "defense"}, cfg.Match.Blue)
		require.Equal(t, []string{"offense", "sentinel"}, cfg.Match.Red)
		require.Equal(t, 12, cfg.Search.Rollouts)
		require.Equal(t, Default().Search.Depth, cfg.Search.Depth)
		require.Equal(t, Default().Match.MaxMoves, cfg.Match.MaxMoves)
	})

	t.Run("failing on a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("failing on malformed yaml", func(t *testing.T) {
		_, err := Load(write(t, "match: [unclosed"))
		require.ErrorContains(t, err, "failed to parse config")
	})

	t.Run("validating loaded values", func(t *testing.T) {
		_, err := Load(write(t, "search:\n  rollouts: -1\n"))
		require.ErrorContains(t, err, "search.rollouts must be positive")
	})
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Match.Red = []string{"offense"}
	cfg.Match.TurnBudget = -time.Second
	cfg.Search.GreedyRadius = -1

	err := cfg.Validate()

	require.ErrorContains(t, err, "match.red needs 2 agents")
	require.ErrorContains(t, err, "match.turnBudget")
	require.ErrorContains(t, err, "search.greedyRadius")
}
