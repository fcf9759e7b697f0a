// Package timsort implements a stable, adaptive, hybrid sorting algorithm
// derived from Tim Peters' list sort for Python (see listsort.txt in the
// CPython sources). It detects naturally occurring monotonic runs, extends
// short runs with binary insertion sort, and merges runs under a stack
// invariant that bounds total merge work, switching to galloping mode when
// one run repeatedly wins a merge.
//
// The sort is O(n log n) in the worst case and O(n) for inputs that are
// already sorted or reversed. Equal elements keep their original relative
// order.
package timsort

import "golang.org/x/exp/constraints"

// Tuning knobs. Both are read once at the start of each sort call, so
// changing them mid-sort from another goroutine cannot affect a running
// sort. Changing them never affects correctness, only merge behavior.
var (
	// MinMerge is the smallest sequence length at which runs are merged at
	// all; shorter inputs are handled with a single binary insertion sort.
	// It also bounds the minimum run length: minrun is in [MinMerge/2, MinMerge].
	MinMerge = 32

	// MinGallop is the number of consecutive wins one run needs before a
	// merge enters galloping mode.
	MinGallop = 7
)

// initialTmpStorageLength is the starting capacity of the merge buffer for
// large inputs; it grows on demand and is never larger than n/2.
const initialTmpStorageLength = 256

// Sort sorts a in ascending order. The sort is stable.
func Sort[T constraints.Ordered](a []T) {
	SortFunc(a, func(x, y T) bool { return x < y })
}

// SortRange sorts a[lo:hi] in ascending order, leaving the rest of a
// untouched. The sort is stable.
func SortRange[T constraints.Ordered](a []T, lo, hi int) {
	if lo < hi {
		Sort(a[lo:hi])
	}
}

// SortFunc sorts a in ascending order as determined by the less function.
// The sort is stable: elements for which neither less(x, y) nor less(y, x)
// holds keep their original relative order.
//
// less must describe a strict weak ordering and must not mutate a. If it
// does not, the resulting order is unspecified, but SortFunc still
// terminates and never reads or writes outside a and its own scratch
// buffer.
func SortFunc[T any](a []T, less func(a, b T) bool) {
	newSorter(a, less).sort(0, len(a))
}

// SortKeyed sorts a in ascending order of key(element). The sort is stable.
// key is wrapped once; it may be called more than once per element.
func SortKeyed[T any, K constraints.Ordered](a []T, key func(T) K) {
	SortFunc(a, func(x, y T) bool { return key(x) < key(y) })
}

// IsSorted reports whether a is in ascending order.
func IsSorted[T constraints.Ordered](a []T) bool {
	return IsSortedFunc(a, func(x, y T) bool { return x < y })
}

// IsSortedFunc reports whether a is in ascending order per less.
func IsSortedFunc[T any](a []T, less func(a, b T) bool) bool {
	for i := len(a) - 1; i > 0; i-- {
		if less(a[i], a[i-1]) {
			return false
		}
	}
	return true
}

// sorter holds the state of one in-progress sort call: the slice, the
// comparator, the stack of pending runs and the merge scratch buffer.
// Nothing outlives the call, so sorts are reentrant and safe to run
// concurrently on distinct slices.
type sorter[T any] struct {
	a    []T
	less func(a, b T) bool

	// tmp is the merge buffer. It holds at most min(len1, len2) elements
	// of the runs being merged and grows on demand.
	tmp []T

	// Stack of pending runs. runBase[i]+runLen[i] == runBase[i+1] for all
	// i < stackSize-1: runs are adjacent, in index order, never empty.
	runBase   []int
	runLen    []int
	stackSize int

	// minGallop adapts during merges: it shrinks while galloping pays off
	// and is penalized when a gallop yields a short span. gallopBase is
	// the configured threshold it started from.
	minGallop  int
	gallopBase int
	minMerge   int
}

func newSorter[T any](a []T, less func(a, b T) bool) *sorter[T] {
	// Allocate a run stack that cannot overflow as long as the stack
	// invariant holds (run lengths then grow at least as fast as the
	// Fibonacci numbers). pushRun still grows it if a caller tunes
	// MinMerge low enough to produce more runs.
	stackLen := func(n int) int {
		switch {
		case n < 120:
			return 5
		case n < 1542:
			return 10
		case n < 119151:
			return 24
		default:
			return 49
		}
	}
	tmpLen := len(a) >> 1
	if tmpLen > initialTmpStorageLength {
		tmpLen = initialTmpStorageLength
	}
	minMerge := MinMerge
	if minMerge < 2 {
		minMerge = 2
	}
	minGallop := MinGallop
	if minGallop < 1 {
		minGallop = 1
	}
	return &sorter[T]{
		a:         a,
		less:      less,
		tmp:       make([]T, tmpLen),
		runBase:   make([]int, stackLen(len(a))),
		runLen:    make([]int, stackLen(len(a))),
		minGallop:  minGallop,
		gallopBase: minGallop,
		minMerge:   minMerge,
	}
}

// sort is the top-level driver: it repeatedly takes the next natural run,
// extends it to minrun with binary insertion sort if it is short, pushes it
// on the stack and restores the stack invariant, then force-collapses the
// stack once the input is exhausted.
func (s *sorter[T]) sort(lo, hi int) {
	if lo < 0 || lo > hi || hi > len(s.a) {
		panic("timsort: assert lo >= 0 && lo <= hi && hi <= len(a)")
	}

	nRemaining := hi - lo
	if nRemaining < 2 {
		return // 0 and 1 element slices are always sorted
	}

	// Small slices skip the whole run machinery: one run detection pass
	// plus a single binary insertion sort.
	if nRemaining < s.minMerge {
		initRunLen := s.countRunAndMakeAscending(lo, hi)
		s.binarySort(lo, hi, lo+initRunLen)
		return
	}

	minRun := minRunLength(nRemaining, s.minMerge)
	for {
		runLen := s.countRunAndMakeAscending(lo, hi)

		if runLen < minRun {
			force := minRun
			if nRemaining <= minRun {
				force = nRemaining
			}
			s.binarySort(lo, lo+force, lo+runLen)
			runLen = force
		}

		s.pushRun(lo, runLen)
		s.mergeCollapse()

		lo += runLen
		nRemaining -= runLen
		if nRemaining == 0 {
			break
		}
	}

	if lo != hi {
		panic("timsort: assert lo == hi")
	}
	s.mergeForceCollapse()
	if s.stackSize != 1 {
		panic("timsort: assert stackSize == 1")
	}
}

func (s *sorter[T]) pushRun(runBase, runLen int) {
	if s.stackSize == len(s.runLen) {
		s.runBase = append(s.runBase, 0)
		s.runLen = append(s.runLen, 0)
	}
	s.runBase[s.stackSize] = runBase
	s.runLen[s.stackSize] = runLen
	s.stackSize++
}

// minRunLength returns the minimum run length for a sequence of length n,
// n >= minMerge. The result k satisfies minMerge/2 <= k <= minMerge and is
// chosen so that n/k is a power of two or close to, but strictly less
// than, one: take the top bits of n and round up if any shifted-off bit
// was set.
func minRunLength(n, minMerge int) int {
	r := 0 // becomes 1 if any 1 bit is shifted off
	for n >= minMerge {
		r |= n & 1
		n >>= 1
	}
	return n + r
}
