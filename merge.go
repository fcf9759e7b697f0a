package timsort

// mergeCollapse examines the runs on top of the stack and merges adjacent
// runs until the stack invariant holds for every entry i:
//
//	1. runLen[i-3] > runLen[i-2] + runLen[i-1]
//	2. runLen[i-2] > runLen[i-1]
//
// Checking one extra run below the top pair is what makes the invariant
// hold for the whole stack, not just its top; with the shallower check a
// carefully crafted input can grow the stack past its logarithmic bound.
// Invoked after every pushRun, so the invariant held before the push.
func (s *sorter[T]) mergeCollapse() {
	for s.stackSize > 1 {
		n := s.stackSize - 2
		if n > 0 && s.runLen[n-1] <= s.runLen[n]+s.runLen[n+1] ||
			n > 1 && s.runLen[n-2] <= s.runLen[n-1]+s.runLen[n] {
			if s.runLen[n-1] < s.runLen[n+1] {
				n--
			}
			s.mergeAt(n)
		} else if s.runLen[n] <= s.runLen[n+1] {
			s.mergeAt(n)
		} else {
			break // invariant established
		}
	}
}

// mergeForceCollapse merges all runs on the stack until one remains; the
// input is exhausted at that point, so the survivor is the sorted result.
func (s *sorter[T]) mergeForceCollapse() {
	for s.stackSize > 1 {
		n := s.stackSize - 2
		if n > 0 && s.runLen[n-1] < s.runLen[n+1] {
			n--
		}
		s.mergeAt(n)
	}
}

// mergeAt merges the adjacent runs at stack positions i and i+1. i must be
// stackSize-2 or stackSize-3: only the top runs are ever merged, which
// keeps runs contiguous and preserves stability.
//
// Before the element-by-element merge starts, the runs are trimmed: leading
// elements of the first run smaller than everything in the second, and
// trailing elements of the second run larger than everything in the first,
// are already in place and can be ignored.
func (s *sorter[T]) mergeAt(i int) {
	if s.stackSize < 2 {
		panic("timsort: assert stackSize >= 2")
	}
	if i < 0 || i != s.stackSize-2 && i != s.stackSize-3 {
		panic("timsort: assert i == stackSize-2 || i == stackSize-3")
	}

	base1, len1 := s.runBase[i], s.runLen[i]
	base2, len2 := s.runBase[i+1], s.runLen[i+1]
	if len1 <= 0 || len2 <= 0 || base1+len1 != base2 {
		panic("timsort: assert len1 > 0 && len2 > 0 && base1+len1 == base2")
	}

	// Record the merged run's length now; if i is third from the top, slide
	// the top run down over the slot being vacated.
	s.runLen[i] = len1 + len2
	if i == s.stackSize-3 {
		s.runBase[i+1] = s.runBase[i+2]
		s.runLen[i+1] = s.runLen[i+2]
	}
	s.stackSize--

	// Find where the first element of run 2 goes in run 1; earlier elements
	// of run 1 are already in place.
	k := s.gallopRight(s.a[base2], s.a, base1, len1, 0)
	base1 += k
	len1 -= k
	if len1 == 0 {
		return
	}

	// Find where the last element of run 1 goes in run 2; later elements of
	// run 2 are already in place.
	len2 = s.gallopLeft(s.a[base1+len1-1], s.a, base2, len2, len2-1)
	if len2 == 0 {
		return
	}

	// Merge what remains, buffering whichever run is smaller.
	if len1 <= len2 {
		s.mergeLo(base1, len1, base2, len2)
	} else {
		s.mergeHi(base1, len1, base2, len2)
	}
}

// ensureTmp grows the merge buffer to hold at least n elements. It never
// shrinks; the buffer is reused across all merges of one sort call.
func (s *sorter[T]) ensureTmp(n int) []T {
	if n > len(s.tmp) {
		s.tmp = append(s.tmp, make([]T, n-len(s.tmp))...)
	}
	return s.tmp
}

// mergeLo merges two adjacent runs, in place and stably, for the case
// len1 <= len2: the first run is copied to the temporary buffer and the
// merge proceeds front to back. The merge runs in two alternating modes:
// one element at a time while neither run is winning consistently, and
// galloping (bulk copy of a span found by exponential search) once one run
// has won minGallop times in a row. A gallop that produces short spans
// pushes minGallop back up, so erratic data quickly drops back to the
// one-at-a-time mode.
//
// On entry the first element of run 2 is known to be smaller than the
// first of run 1, and the last of run 1 larger than the last of run 2
// (mergeAt trimmed the runs to make it so).
func (s *sorter[T]) mergeLo(base1, len1, base2, len2 int) {
	if len1 <= 0 || len2 <= 0 || base1+len1 != base2 {
		panic("timsort: assert len1 > 0 && len2 > 0 && base1+len1 == base2")
	}

	a := s.a
	tmp := s.ensureTmp(len1)
	copy(tmp, a[base1:base1+len1])

	cursor1 := 0     // index into tmp
	cursor2 := base2 // index into a
	dest := base1    // index into a

	// Move the first element of run 2 and handle the degenerate cases.
	a[dest] = a[cursor2]
	dest++
	cursor2++
	len2--
	if len2 == 0 {
		copy(a[dest:], tmp[cursor1:cursor1+len1])
		return
	}
	if len1 == 1 {
		copy(a[dest:], a[cursor2:cursor2+len2])
		a[dest+len2] = tmp[cursor1] // last element of run 1 ends the merge
		return
	}

	minGallop := s.minGallop
outer:
	for {
		count1 := 0 // consecutive wins for run 1
		count2 := 0 // consecutive wins for run 2

		// One element at a time until a run starts winning consistently.
		// Ties go to run 1, which keeps equal elements in input order.
		for {
			if s.less(a[cursor2], tmp[cursor1]) {
				a[dest] = a[cursor2]
				dest++
				cursor2++
				count2++
				count1 = 0
				len2--
				if len2 == 0 {
					break outer
				}
			} else {
				a[dest] = tmp[cursor1]
				dest++
				cursor1++
				count1++
				count2 = 0
				len1--
				if len1 == 1 {
					break outer
				}
			}
			if count1|count2 >= minGallop {
				break
			}
		}

		// One run is winning consistently; gallop until neither does.
		for {
			count1 = s.gallopRight(a[cursor2], tmp, cursor1, len1, 0)
			if count1 != 0 {
				copy(a[dest:], tmp[cursor1:cursor1+count1])
				dest += count1
				cursor1 += count1
				len1 -= count1
				if len1 <= 1 {
					break outer
				}
			}
			a[dest] = a[cursor2]
			dest++
			cursor2++
			len2--
			if len2 == 0 {
				break outer
			}

			count2 = s.gallopLeft(tmp[cursor1], a, cursor2, len2, 0)
			if count2 != 0 {
				copy(a[dest:], a[cursor2:cursor2+count2])
				dest += count2
				cursor2 += count2
				len2 -= count2
				if len2 == 0 {
					break outer
				}
			}
			a[dest] = tmp[cursor1]
			dest++
			cursor1++
			len1--
			if len1 == 1 {
				break outer
			}
			minGallop--
			if count1 < s.gallopBase && count2 < s.gallopBase {
				break
			}
		}
		if minGallop < 0 {
			minGallop = 0
		}
		minGallop += 2 // penalize leaving gallop mode
	}
	if minGallop < 1 {
		minGallop = 1
	}
	s.minGallop = minGallop

	switch {
	case len1 == 1:
		copy(a[dest:], a[cursor2:cursor2+len2])
		a[dest+len2] = tmp[cursor1] // last element of run 1 ends the merge
	case len1 == 0:
		// Only reachable when the comparator is not a strict weak order;
		// every element has been placed, so the merge still ends cleanly.
	default:
		copy(a[dest:], tmp[cursor1:cursor1+len1])
	}
}

// mergeHi is the mirror image of mergeLo for the case len1 > len2: the
// second run is buffered and the merge proceeds back to front, so the
// shifting cost stays proportional to the smaller run.
func (s *sorter[T]) mergeHi(base1, len1, base2, len2 int) {
	if len1 <= 0 || len2 <= 0 || base1+len1 != base2 {
		panic("timsort: assert len1 > 0 && len2 > 0 && base1+len1 == base2")
	}

	a := s.a
	tmp := s.ensureTmp(len2)
	copy(tmp, a[base2:base2+len2])

	cursor1 := base1 + len1 - 1 // index into a
	cursor2 := len2 - 1         // index into tmp
	dest := base2 + len2 - 1    // index into a

	// Move the last element of run 1 and handle the degenerate cases.
	a[dest] = a[cursor1]
	dest--
	cursor1--
	len1--
	if len1 == 0 {
		copy(a[dest-(len2-1):], tmp[:len2])
		return
	}
	if len2 == 1 {
		dest -= len1
		cursor1 -= len1
		copy(a[dest+1:], a[cursor1+1:cursor1+1+len1])
		a[dest] = tmp[cursor2] // first element of run 2 starts the merge
		return
	}

	minGallop := s.minGallop
outer:
	for {
		count1 := 0 // consecutive wins for run 1
		count2 := 0 // consecutive wins for run 2

		// One element at a time, from the back. Ties go to run 2 here,
		// which is the same stability rule seen from the right end.
		for {
			if s.less(tmp[cursor2], a[cursor1]) {
				a[dest] = a[cursor1]
				dest--
				cursor1--
				count1++
				count2 = 0
				len1--
				if len1 == 0 {
					break outer
				}
			} else {
				a[dest] = tmp[cursor2]
				dest--
				cursor2--
				count2++
				count1 = 0
				len2--
				if len2 == 1 {
					break outer
				}
			}
			if count1|count2 >= minGallop {
				break
			}
		}

		// Gallop from the back until neither run wins consistently.
		for {
			count1 = len1 - s.gallopRight(tmp[cursor2], a, base1, len1, len1-1)
			if count1 != 0 {
				dest -= count1
				cursor1 -= count1
				len1 -= count1
				copy(a[dest+1:], a[cursor1+1:cursor1+1+count1])
				if len1 == 0 {
					break outer
				}
			}
			a[dest] = tmp[cursor2]
			dest--
			cursor2--
			len2--
			if len2 == 1 {
				break outer
			}

			count2 = len2 - s.gallopLeft(a[cursor1], tmp, 0, len2, len2-1)
			if count2 != 0 {
				dest -= count2
				cursor2 -= count2
				len2 -= count2
				copy(a[dest+1:], tmp[cursor2+1:cursor2+1+count2])
				if len2 <= 1 {
					break outer
				}
			}
			a[dest] = a[cursor1]
			dest--
			cursor1--
			len1--
			if len1 == 0 {
				break outer
			}
			minGallop--
			if count1 < s.gallopBase && count2 < s.gallopBase {
				break
			}
		}
		if minGallop < 0 {
			minGallop = 0
		}
		minGallop += 2 // penalize leaving gallop mode
	}
	if minGallop < 1 {
		minGallop = 1
	}
	s.minGallop = minGallop

	switch {
	case len2 == 1:
		dest -= len1
		cursor1 -= len1
		copy(a[dest+1:], a[cursor1+1:cursor1+1+len1])
		a[dest] = tmp[cursor2] // first element of run 2 starts the merge
	case len2 == 0:
		// Only reachable when the comparator is not a strict weak order;
		// every element has been placed, so the merge still ends cleanly.
	default:
		copy(a[dest-(len2-1):], tmp[:len2])
	}
}
