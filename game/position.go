package game

import (
	"fmt"
	"math"
)

const gridTolerance = 1e-3

// Position is a full grid cell.
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func (p Position) Vector() Vector {
	return Vector{X: float64(p.X), Y: float64(p.Y)}
}

// Vector is a continuous board coordinate. Agents moving slower than one cell per
// move pass through half-step vectors between grid cells.
type Vector struct {
	X float64
	Y float64
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Scale(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// Nearest rounds to the closest grid cell.
func (v Vector) Nearest() Position {
	return Position{X: int(math.Floor(v.X + 0.5)), Y: int(math.Floor(v.Y + 0.5))}
}

// OnGrid reports whether the vector sits on a full grid cell.
func (v Vector) OnGrid() bool {
	n := v.Nearest()
	return math.Abs(v.X-float64(n.X))+math.Abs(v.Y-float64(n.Y)) <= gridTolerance
}

// Manhattan is the grid distance ignoring walls.
func Manhattan(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
