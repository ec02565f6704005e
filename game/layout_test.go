package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	t.Run("parsing walls, food, capsules and starts", func(t *testing.T) {
		l, err := ParseLayout(`
%%%%%%
%1.o2%
%%%%%%
`)
		require.NoError(t, err)
		require.Equal(t, 6, l.Width)
		require.Equal(t, 3, l.Height)
		require.Equal(t, []Position{{X: 2, Y: 1}}, l.Food)
		require.Equal(t, []Position{{X: 3, Y: 1}}, l.Capsules)
		require.Equal(t, []Position{{X: 1, Y: 1}, {X: 4, Y: 1}}, l.Starts)
		require.True(t, l.HasWall(0, 0))
		require.False(t, l.HasWall(2, 1))
		require.True(t, l.HasWall(-1, 1), "Off-board cells should count as walls")
	})

	t.Run("first line is the top row", func(t *testing.T) {
		l, err := ParseLayout("%%%\n%.%\n% %\n%1%\n%%%")
		require.NoError(t, err)
		require.Equal(t, []Position{{X: 1, Y: 3}}, l.Food)
		require.Equal(t, Position{X: 1, Y: 1}, l.Starts[0])
	})

	t.Run("listing food column-major", func(t *testing.T) {
		l, err := ParseLayout("%%%%\n%..%\n%..%\n%1 %\n%%%%")
		require.NoError(t, err)
		require.Equal(t, []Position{{X: 1, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 2}, {X: 2, Y: 3}}, l.Food)
	})

	t.Run("rejecting bad layouts", func(t *testing.T) {
		_, err := ParseLayout("")
		require.Error(t, err, "Empty layouts should be rejected")

		_, err = ParseLayout("%%%\n%x%\n%%%")
		require.Error(t, err, "Unknown characters should be rejected")

		_, err = ParseLayout("%%%%\n%11%\n%%%%")
		require.Error(t, err, "Duplicate agents should be rejected")

		_, err = ParseLayout("%%%%\n%12%\n%%%%%%")
		require.Error(t, err, "Ragged rows should be rejected")

		_, err = ParseLayout("%%%%\n%13%\n%%%%")
		require.Error(t, err, "Agent numbering gaps should be rejected")
	})
}

func TestLoadLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.lay")
	require.NoError(t, os.WriteFile(path, []byte("%%%%\n%12%\n%%%%\n"), 0644))

	l, err := LoadLayout(path)
	require.NoError(t, err)
	require.Len(t, l.Starts, 2)

	_, err = LoadLayout(filepath.Join(t.TempDir(), "missing.lay"))
	require.Error(t, err)
}

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()

	require.Equal(t, 20, l.Width)
	require.Equal(t, 9, l.Height)
	require.Len(t, l.Starts, 4)
	for i, p := range l.Starts {
		require.Equal(t, i%2 == 0, l.IsRedSide(p), "Agent %d should start on its own side", i)
	}

	// Point symmetric around the centre
	for x := 0; x < l.Width; x++ {
		for y := 0; y < l.Height; y++ {
			require.Equal(t, l.HasWall(x, y), l.HasWall(l.Width-1-x, l.Height-1-y), "wall at (%d, %d)", x, y)
		}
	}

	red, blue := 0, 0
	for _, p := range l.Food {
		if l.IsRedSide(p) {
			red++
		} else {
			blue++
		}
	}
	require.Equal(t, red, blue, "Both sides should start with the same food")
}
