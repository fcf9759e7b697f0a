package timsort

// gallopLeft locates the leftmost insertion point for key in the sorted
// range a[base:base+n]: it returns k, 0 <= k <= n, such that
// a[base+k-1] < key <= a[base+k]. If the range contains elements equal to
// key, the index of the first of them is returned.
//
// hint, 0 <= hint < n, is where to start the exponential search; the
// closer it is to the result, the fewer comparisons are spent. The search
// doubles its stride away from hint until it brackets key, then binary
// searches the bracket.
func (s *sorter[T]) gallopLeft(key T, a []T, base, n, hint int) int {
	if n <= 0 || hint < 0 || hint >= n {
		panic("timsort: assert n > 0 && hint >= 0 && hint < n")
	}

	lastOfs, ofs := 0, 1
	if s.less(a[base+hint], key) {
		// Gallop right until a[base+hint+lastOfs] < key <= a[base+hint+ofs].
		maxOfs := n - hint
		for ofs < maxOfs && s.less(a[base+hint+ofs], key) {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 { // int overflow
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs += hint
		ofs += hint
	} else {
		// key <= a[base+hint]: gallop left until
		// a[base+hint-ofs] < key <= a[base+hint-lastOfs].
		maxOfs := hint + 1
		for ofs < maxOfs && !s.less(a[base+hint-ofs], key) {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 { // int overflow
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs, ofs = hint-ofs, hint-lastOfs
	}

	// a[base+lastOfs] < key <= a[base+ofs]; binary search it, keeping the
	// invariant a[base+lastOfs-1] < key <= a[base+ofs].
	lastOfs++
	for lastOfs < ofs {
		m := lastOfs + (ofs-lastOfs)>>1
		if s.less(a[base+m], key) {
			lastOfs = m + 1
		} else {
			ofs = m
		}
	}
	return ofs
}

// gallopRight is like gallopLeft except that if the range contains
// elements equal to key it returns the index after the rightmost of them:
// the k such that a[base+k-1] <= key < a[base+k].
func (s *sorter[T]) gallopRight(key T, a []T, base, n, hint int) int {
	if n <= 0 || hint < 0 || hint >= n {
		panic("timsort: assert n > 0 && hint >= 0 && hint < n")
	}

	lastOfs, ofs := 0, 1
	if s.less(key, a[base+hint]) {
		// Gallop left until a[base+hint-ofs] <= key < a[base+hint-lastOfs].
		maxOfs := hint + 1
		for ofs < maxOfs && s.less(key, a[base+hint-ofs]) {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 { // int overflow
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs, ofs = hint-ofs, hint-lastOfs
	} else {
		// a[base+hint] <= key: gallop right until
		// a[base+hint+lastOfs] <= key < a[base+hint+ofs].
		maxOfs := n - hint
		for ofs < maxOfs && !s.less(key, a[base+hint+ofs]) {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 { // int overflow
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs += hint
		ofs += hint
	}

	// a[base+lastOfs] <= key < a[base+ofs]; binary search it.
	lastOfs++
	for lastOfs < ofs {
		m := lastOfs + (ofs-lastOfs)>>1
		if s.less(key, a[base+m]) {
			ofs = m
		} else {
			lastOfs = m + 1
		}
	}
	return ofs
}
