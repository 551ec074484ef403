package binsearch

// SearchRotated — key lookup in a once-rotated sorted array
//
// Description:
//
//	nums is assumed to be a strictly ascending array rotated by an
//	unknown, unvalidated offset (offset 0 — no rotation — included):
//	e.g. [6,7,8,9,10,1,2,3,4,5]. SearchRotated returns the index of key,
//	or NotFound if absent. The pivot is never located explicitly.
//
// Algorithm Outline:
//  1. Maintain the closed interval [start, end], initially [0, N-1].
//  2. At each step take mid; an exact hit returns immediately.
//  3. One half of [start, end] is always sorted. nums[mid] >= nums[start]
//     means the left half start..mid is sorted; otherwise the right half
//     mid..end is. Keep the half whose value range can contain key,
//     discard the other.
//  4. The interval shrinks strictly every iteration, so the loop
//     terminates; start > end means the key is absent.
//
// Behavior on arrays containing duplicate values is unspecified: the
// sorted-half test cannot distinguish halves when boundary values tie.
//
// Complexity:
//
//	Time   = O(log N)
//	Memory = O(1)
func SearchRotated(nums []int, key int) int {
	start, end := 0, len(nums)-1

	for start <= end {
		mid := start + (end-start)/2

		switch {
		case nums[mid] == key:
			return mid

		case nums[mid] >= nums[start]:
			// Left half start..mid is sorted.
			if key >= nums[start] && key < nums[mid] {
				end = mid - 1
			} else {
				start = mid + 1
			}

		default:
			// Right half mid..end is sorted.
			if key > nums[mid] && key <= nums[end] {
				start = mid + 1
			} else {
				end = mid - 1
			}
		}
	}

	return NotFound
}
