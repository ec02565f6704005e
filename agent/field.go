package agent

import (
	"capture/game"
	"slices"

	"golang.org/x/exp/rand"
)

// noFood stands in for the distance to food when there is none left.
const noFood = 999

// ProbabilityField weights patrol points by their proximity to defended food.
// Weights are non-negative and sum to 1.
type ProbabilityField struct {
	points  []game.Position
	weights []float64
}

// NewProbabilityField returns a uniform field over points.
func NewProbabilityField(points []game.Position) *ProbabilityField {
	f := &ProbabilityField{
		points:  slices.Clone(points),
		weights: make([]float64, len(points)),
	}
	for i := range f.weights {
		f.weights[i] = 1 / float64(len(points))
	}
	return f
}

// Rebuild weights every point by the inverse of its maze distance to the
// closest food, then normalizes.
func (f *ProbabilityField) Rebuild(food []game.Position, distancer game.Distancer) {
	sum := 0.0
	for i, p := range f.points {
		closest := noFood
		for _, item := range food {
			if d := distancer.Distance(p, item); d < closest {
				closest = d
			}
		}
		if closest == 0 {
			closest = 1
		}
		f.weights[i] = 1 / float64(closest)
		sum += f.weights[i]
	}
	if sum == 0 {
		sum = 1
	}
	for i := range f.weights {
		f.weights[i] /= sum
	}
}

func (f *ProbabilityField) Points() []game.Position { return f.points }

func (f *ProbabilityField) Weight(p game.Position) float64 {
	if i := slices.Index(f.points, p); i >= 0 {
		return f.weights[i]
	}
	return 0
}

// Sample draws a point according to the weights. It returns false for an empty field.
func (f *ProbabilityField) Sample(rng *rand.Rand) (game.Position, bool) {
	if len(f.points) == 0 {
		return game.Position{}, false
	}
	r := rng.Float64()
	for i, w := range f.weights {
		if r < w {
			return f.points[i], true
		}
		r -= w
	}
	return f.points[len(f.points)-1], true
}
