package utils

import "golang.org/x/exp/constraints"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// FirstMax returns the index of the first element strictly greater than floor
// and every element before it, or -1 if no element exceeds floor.
func FirstMax[T constraints.Ordered](values []T, floor T) int {
	best := -1
	for i, v := range values {
		if v > floor {
			floor = v
			best = i
		}
	}
	return best
}
