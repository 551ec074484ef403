package subsetsum

import (
	"fmt"
	"sort"
)

// Enumerate — Sum of all Subsets
//
// Description:
//
//	Given a slice of N integers, Enumerate produces the sums of all 2^N
//	subsets, including the empty subset (sum 0) and the full set.
//	Duplicate sums are preserved: repeated input values, or distinct
//	subsets that happen to share a total, each contribute their own
//	entry. The result is the raw multiset of subset sums.
//
// Algorithm Outline:
//  1. Validate opts (MaxLen range, known Order) and len(nums) ≤ MaxLen.
//  2. Walk a binary decision tree over indices 0..N-1: at each index
//     branch into "exclude" (sum unchanged) then "include" (sum + nums[idx]).
//  3. A leaf is reached at idx == N; append the accumulated sum.
//     Exactly 2^N leaves are visited, one per subset.
//  4. If opts.Order == Ascending, sort the collected sums non-decreasingly.
//
// The input slice is never mutated and never retained; the returned
// slice is freshly allocated and caller-owned.
//
// Complexity:
//
//	Time   = O(2^N) (plus O(2^N·N) for the Ascending sort)
//	Memory = O(2^N) output, O(N) recursion depth
//
// Errors:
//   - ErrBadMaxLen — opts.MaxLen outside (0, MaxEnumerableLen].
//   - ErrBadOrder  — opts.Order is not Ascending or EnumerationOrder.
//   - ErrTooLong   — len(nums) > opts.MaxLen; returned before any work.
func Enumerate(nums []int, opts Options) ([]int, error) {
	if opts.MaxLen <= 0 || opts.MaxLen > MaxEnumerableLen {
		return nil, fmt.Errorf("%w: MaxLen=%d, want (0, %d]", ErrBadMaxLen, opts.MaxLen, MaxEnumerableLen)
	}
	switch opts.Order {
	case Ascending, EnumerationOrder:
	default:
		return nil, fmt.Errorf("%w: Order=%d", ErrBadOrder, opts.Order)
	}
	n := len(nums)
	if n > opts.MaxLen {
		return nil, fmt.Errorf("%w: len=%d, MaxLen=%d", ErrTooLong, n, opts.MaxLen)
	}

	// Pre-size the result to its exact final length: 2^N sums.
	e := &enumerator{
		nums: nums,
		sums: make([]int, 0, 1<<uint(n)),
	}
	e.descend(0, 0)

	if opts.Order == Ascending {
		sort.Ints(e.sums)
	}

	return e.sums, nil
}

// enumerator carries the mutable state of one enumeration run.
type enumerator struct {
	nums []int // input sequence, read-only
	sums []int // collected subset sums, one per leaf
}

// descend explores the decision subtree rooted at idx with the partial
// sum accumulated so far. Exclude branch first, include branch second;
// this order is the EnumerationOrder contract.
func (e *enumerator) descend(idx, sum int) {
	if idx == len(e.nums) {
		e.sums = append(e.sums, sum)

		return
	}

	e.descend(idx+1, sum)             // exclude nums[idx]
	e.descend(idx+1, sum+e.nums[idx]) // include nums[idx]
}
