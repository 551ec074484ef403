package binsearch_test

import (
	"fmt"

	"arrsearch/binsearch"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSearchRotated
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A ring of sequence numbers wrapped past its pivot:
//	  nums = [6, 7, 8, 9, 10, 1, 2, 3, 4, 5]
//	The underlying order 1..10 was rotated left by five positions.
//	Looking up 9 must land on index 3 without ever locating the pivot.
//
// Complexity: O(log N) time, O(1) memory
func ExampleSearchRotated() {
	nums := []int{6, 7, 8, 9, 10, 1, 2, 3, 4, 5}

	fmt.Println(binsearch.SearchRotated(nums, 9))
	fmt.Println(binsearch.SearchRotated(nums, 11))
	// Output:
	// 3
	// -1
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleFindBound
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A sorted array with a short run of duplicates:
//	  nums = [1, 2, 3, 4, 5, 6, 6, 7, 8, 9, 10]
//	The run of 6 spans indices 5..6; First and Last pick its two edges.
//
// Complexity: O(log N) time, O(1) memory
func ExampleFindBound() {
	nums := []int{1, 2, 3, 4, 5, 6, 6, 7, 8, 9, 10}

	fmt.Println(binsearch.FindBound(nums, 6, binsearch.First))
	fmt.Println(binsearch.FindBound(nums, 6, binsearch.Last))
	// Output:
	// 5
	// 6
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSearchRange
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Both edges of a run in one call, and the sentinel pair for a key
//	that is absent entirely.
//
// Complexity: O(log N) time, O(1) memory
func ExampleSearchRange() {
	nums := []int{1, 2, 6, 6, 6, 9}

	first, last := binsearch.SearchRange(nums, 6)
	fmt.Printf("{%d, %d}\n", first, last)

	first, last = binsearch.SearchRange(nums, 7)
	fmt.Printf("{%d, %d}\n", first, last)
	// Output:
	// {2, 4}
	// {-1, -1}
}
