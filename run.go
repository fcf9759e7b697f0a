package timsort

// countRunAndMakeAscending finds the longest run beginning at lo and
// returns its length, reversing the run in place first if it is
// descending. A run is either non-decreasing or strictly decreasing;
// strictness on the descending side is what makes the reversal stable,
// since no two equal elements can swap relative order.
func (s *sorter[T]) countRunAndMakeAscending(lo, hi int) int {
	runHi := lo + 1
	if runHi == hi {
		return 1
	}

	if s.less(s.a[runHi], s.a[lo]) { // descending
		runHi++
		for runHi < hi && s.less(s.a[runHi], s.a[runHi-1]) {
			runHi++
		}
		reverseRange(s.a, lo, runHi)
	} else { // ascending
		runHi++
		for runHi < hi && !s.less(s.a[runHi], s.a[runHi-1]) {
			runHi++
		}
	}

	return runHi - lo
}

// reverseRange reverses a[lo:hi] in place.
func reverseRange[T any](a []T, lo, hi int) {
	hi--
	for lo < hi {
		a[lo], a[hi] = a[hi], a[lo]
		lo++
		hi--
	}
}

// binarySort sorts a[lo:hi] assuming a[lo:start] is already sorted, by
// inserting each following element into the sorted prefix with binary
// search. O(n log n) comparisons but O(n^2) moves in the worst case, which
// is the best trade for short runs since the comparator may be expensive.
//
// The search locates the position after any elements equal to the pivot,
// so equal elements keep their original order.
func (s *sorter[T]) binarySort(lo, hi, start int) {
	if lo > start || start > hi {
		panic("timsort: assert lo <= start && start <= hi")
	}
	if start == lo {
		start++
	}
	for ; start < hi; start++ {
		pivot := s.a[start]

		// Invariants: pivot >= all in [lo, left), pivot < all in [right, start).
		left, right := lo, start
		for left < right {
			mid := int(uint(left+right) >> 1)
			if s.less(pivot, s.a[mid]) {
				right = mid
			} else {
				left = mid + 1
			}
		}

		// Shift the n elements in [left, start) one slot right. The two
		// small cases are common enough (random data) to special-case.
		n := start - left
		switch n {
		case 2:
			s.a[left+1], s.a[left+2] = s.a[left], s.a[left+1]
		case 1:
			s.a[left+1] = s.a[left]
		default:
			copy(s.a[left+1:], s.a[left:left+n])
		}
		s.a[left] = pivot
	}
}
