// Package subsetsum enumerates the sums of all 2^N subsets of an
// integer slice, duplicates preserved, with a pinned result ordering.
//
// 🚀 What is subset-sum enumeration?
//
//	Every subset of a sequence (the empty set and the full set
//	included) has a sum. This package produces the raw multiset of
//	those sums — one value per subset, no deduplication. It's the
//	building block behind:
//	  • Reachable-total questions (budgets, coin piles, knapsack-style probing)
//	  • Partition and balance checks on small sets
//	  • Brute-force baselines for smarter DP solvers
//
// ✨ Key features:
//   - exact enumeration: exactly 2^N sums, empty subset (0) included
//   - duplicates preserved — equal sums from different subsets both appear
//   - two orderings via Options.Order: Ascending (default) or EnumerationOrder
//   - negative elements welcome; sums may be negative
//   - explicit capacity guard (Options.MaxLen) instead of silent truncation
//
// ⚙️ Usage:
//
//	import "arrsearch/subsetsum"
//
//	sums, err := subsetsum.Enumerate([]int{5, 2, 1}, subsetsum.DefaultOptions())
//	// sums == [0 1 2 3 5 6 7 8]
//
// Performance:
//
//   - Time:   O(2^N)
//   - Memory: O(2^N) for the result slice
//
// See examples in example_test.go for ordering contracts and the
// capacity guard in action.
package subsetsum
