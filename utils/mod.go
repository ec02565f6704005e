package utils

import "golang.org/x/exp/rand"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Without returns a copy of slice with every occurrence of items removed.
func Without[T comparable](slice []T, items ...T) []T {
	out := make([]T, 0, len(slice))
	for _, v := range slice {
		if FindIndex(items, v) < 0 {
			out = append(out, v)
		}
	}
	return out
}

// Choice picks a uniformly random element. items must not be empty.
func Choice[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}
