// Package arrsearch is a small in-memory toolbox for combinatorial and
// array search — exhaustive subset-sum enumeration on one side, binary
// search over sorted and rotated sequences on the other.
//
// 🚀 What is arrsearch?
//
//	A compact, dependency-light library that brings together:
//		• Subset sums: enumerate all 2^N subset sums of an integer slice
//		• Rotated search: O(log N) lookup in a once-rotated sorted array
//		• Bound finding: first/last index of a run of equal keys
//
// ✨ Why choose arrsearch?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable contracts – explicit options, sentinel errors, pinned ordering
//   - Pure Go – no cgo, no hidden deps
//   - Side-effect free – inputs are never mutated, results are caller-owned
//
// Under the hood, everything is organized under two subpackages:
//
//	subsetsum/ — exhaustive enumeration of all subset sums (binary recursion)
//	binsearch/ — pivot-aware rotated-array search & sorted-run bound finder
//
// Quick ASCII example:
//
//	    [6 7 8 9 10 | 1 2 3 4 5]
//	               ^ pivot
//
//	a strictly ascending array rotated at an unknown offset; binsearch
//	locates any key in O(log N) without ever finding the pivot first.
//
// Dive into each package's doc.go and example_test.go for full
// walkthroughs, contracts, and complexity notes.
//
//	go get arrsearch
package arrsearch
