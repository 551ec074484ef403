package binsearch

// FindBound — first/last occurrence in a sorted array
//
// Description:
//
//	nums is assumed plainly sorted ascending (not rotated), possibly
//	holding a contiguous run of key. FindBound returns the smallest
//	(edge == First) or largest (edge == Last) index holding key, or
//	NotFound if key is absent entirely.
//
// Algorithm Outline:
//  1. Standard binary search over the closed interval [start, end].
//  2. On a match, inspect the neighbor in the requested direction:
//     if it is out of bounds or holds a different value, mid is the
//     bound; otherwise shrink the interval toward that neighbor and
//     keep searching inside the run.
//  3. On a miss, narrow toward key as usual.
//
// Complexity:
//
//	Time   = O(log N)
//	Memory = O(1)
func FindBound(nums []int, key int, edge Bound) int {
	start, end := 0, len(nums)-1

	for start <= end {
		mid := start + (end-start)/2

		switch {
		case nums[mid] == key:
			if edge == First {
				// Lower bound: nothing equal to the left of mid.
				if mid == start || nums[mid-1] != key {
					return mid
				}
				end = mid - 1
			} else {
				// Upper bound: nothing equal to the right of mid.
				if mid == end || nums[mid+1] != key {
					return mid
				}
				start = mid + 1
			}

		case nums[mid] > key:
			end = mid - 1

		default:
			start = mid + 1
		}
	}

	return NotFound
}

// SearchRange returns both bounds of the run of key in one call:
// (first, last), each NotFound when the key is absent. When the key is
// present, first <= last and every index in [first, last] holds key.
// Complexity: O(log N) time, O(1) memory.
func SearchRange(nums []int, key int) (first, last int) {
	first = FindBound(nums, key, First)
	if first == NotFound {
		return NotFound, NotFound
	}

	return first, FindBound(nums, key, Last)
}
