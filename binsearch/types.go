// Package binsearch defines the shared sentinel and selector types for
// its search routines.
package binsearch

// NotFound is the index returned when the key is absent from the input.
// It is a legitimate, expected outcome — a value to check for, not an
// error to unwrap. Every valid hit is in [0, len(nums)).
const NotFound = -1

// Bound selects which edge of a run of equal keys FindBound locates.
type Bound int

const (
	// First locates the smallest index holding the key.
	First Bound = iota

	// Last locates the largest index holding the key.
	Last
)
