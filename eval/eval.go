// Package eval scores hypothetical moves as a linear combination of named
// features and weights.
package eval

import "capture/game"

// Features maps a feature name to its value for one (state, action) pair.
type Features map[string]float64

// Weights maps a feature name to its weight. Features without a weight count as zero.
type Weights map[string]float64

type FeatureFunc func(state game.State, action game.Action) Features

type WeightFunc func(state game.State, action game.Action) Weights

// Dot is the sum of feature*weight over the keys both maps share.
func Dot(features Features, weights Weights) float64 {
	total := 0.0
	for key, value := range features {
		total += value * weights[key]
	}
	return total
}

// Evaluate scores taking action in state.
func Evaluate(state game.State, action game.Action, features FeatureFunc, weights WeightFunc) float64 {
	return Dot(features(state, action), weights(state, action))
}
