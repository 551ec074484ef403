// Package subsetsum defines options, ordering modes, and sentinel errors
// for exhaustive subset-sum enumeration.
package subsetsum

import "errors"

// Sentinel errors for Enumerate.
var (
	// ErrTooLong is returned when the input is longer than Options.MaxLen,
	// i.e. the 2^N result would exceed the configured capacity.
	ErrTooLong = errors.New("subsetsum: sequence exceeds Options.MaxLen")

	// ErrBadMaxLen is returned when Options.MaxLen is outside (0, MaxEnumerableLen].
	ErrBadMaxLen = errors.New("subsetsum: MaxLen out of range")

	// ErrBadOrder is returned when Options.Order is not a known Order value.
	ErrBadOrder = errors.New("subsetsum: unknown Order value")
)

// Order selects how the returned sums are arranged.
//
//   - Ascending        — sort the final multiset non-decreasingly before
//     returning it. This matches the classic presentation of the problem
//     ("print all subset sums in increasing order").
//
//   - EnumerationOrder — return sums exactly as the binary recursion
//     produces them: at every index the "exclude" branch is taken before
//     the "include" branch, so the first sum is always 0 (empty subset)
//     and the last is always the full-set sum.
type Order int

const (
	// Ascending: result sorted non-decreasingly. The default.
	Ascending Order = iota

	// EnumerationOrder: raw recursion order, exclude branch before include.
	EnumerationOrder
)

const (
	// DefaultMaxLen is the default cap on input length. 2^30 results is
	// already ~8 GiB of int64 on 64-bit platforms; anything beyond is a
	// deliberate caller decision, not a default.
	DefaultMaxLen = 30

	// MaxEnumerableLen is the hard ceiling on Options.MaxLen: past 62
	// elements the result count 2^N no longer fits in an int64, so no
	// slice could ever hold the output.
	MaxEnumerableLen = 62
)

// Options configures Enumerate.
//
// Fields:
//   - Order  — Ascending (sorted result) or EnumerationOrder (raw recursion order).
//   - MaxLen — maximum accepted input length; inputs longer than this fail
//     with ErrTooLong before any work is done. Must lie in (0, MaxEnumerableLen].
type Options struct {
	Order  Order
	MaxLen int
}

// DefaultOptions returns Options with sane defaults:
//   - Order:  Ascending
//   - MaxLen: DefaultMaxLen (30)
func DefaultOptions() Options {
	return Options{
		Order:  Ascending,
		MaxLen: DefaultMaxLen,
	}
}
