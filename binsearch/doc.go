// Package binsearch provides binary-search routines over sorted and
// once-rotated integer slices: key lookup in a rotated sorted array and
// first/last-occurrence bounds in a plainly sorted array.
//
// 🚀 What is binsearch?
//
//	Two small O(log N) searches that come up constantly in practice:
//	  • SearchRotated — find a key in an ascending array that was split
//	    at an unknown pivot and had its halves swapped (ring buffers,
//	    rotated logs, wrap-around schedules)
//	  • FindBound / SearchRange — locate the first and last index of a
//	    run of equal keys in a sorted array (range queries, histogram
//	    buckets, duplicate counting)
//
// ✨ Key features:
//   - O(log N) worst case, no allocations, inputs never mutated
//   - absence is a value: the NotFound sentinel (-1), never an error
//   - pivot-aware half selection — the pivot itself is never located
//   - strict termination: the search interval shrinks every iteration
//
// ⚙️ Usage:
//
//	import "arrsearch/binsearch"
//
//	idx := binsearch.SearchRotated([]int{6, 7, 8, 9, 10, 1, 2, 3, 4, 5}, 9)
//	// idx == 3
//
//	first, last := binsearch.SearchRange([]int{1, 2, 6, 6, 6, 9}, 6)
//	// first == 2, last == 4
//
// Contracts:
//
//   - SearchRotated assumes a strictly ascending array rotated by an
//     arbitrary (possibly zero) offset; behavior on inputs with
//     duplicate values is unspecified.
//   - FindBound and SearchRange assume a plainly sorted, non-rotated
//     array; duplicates are fine and form contiguous runs.
//
// Performance:
//
//   - Time:   O(log N) per call
//   - Memory: O(1)
//
// See example_test.go for scenario walkthroughs.
package binsearch
