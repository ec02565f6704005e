package engine

import "capture/experiments/metrics"

const (
	Red  = "Red"
	Blue = "Blue"
	Tie  = "Tie"
)

type Engine interface {
	// Run plays a match till the board is over or the move limit is reached
	Run() (Result, []metrics.MoveMetric)
}

type Result struct {
	Winner  string
	Score   float64 // Red's perspective
	Moves   int
	Forfeit bool // The loser ran out of time warnings
}
