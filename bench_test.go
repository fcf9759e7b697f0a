package timsort

import (
	"sort"
	"testing"
)

const benchN = 1000000

func BenchmarkSortInts(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ints := makeRandomInts(benchN)
		b.StartTimer()
		sort.Ints(ints)
	}
}

func BenchmarkTimSortInts(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ints := makeRandomInts(benchN)
		b.StartTimer()
		Sort(ints)
	}
}

func BenchmarkSortSortedInts(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ints := makeSortedInts(benchN)
		b.StartTimer()
		sort.Ints(ints)
	}
}

func BenchmarkTimSortSortedInts(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ints := makeSortedInts(benchN)
		b.StartTimer()
		Sort(ints)
	}
}

func BenchmarkSortReversedInts(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ints := makeReversedInts(benchN)
		b.StartTimer()
		sort.Ints(ints)
	}
}

func BenchmarkTimSortReversedInts(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ints := makeReversedInts(benchN)
		b.StartTimer()
		Sort(ints)
	}
}

func BenchmarkSliceStableKRuns(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ints := makeKRuns(16, benchN/16)
		b.StartTimer()
		sort.SliceStable(ints, func(x, y int) bool { return ints[x] < ints[y] })
	}
}

func BenchmarkTimSortKRuns(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ints := makeKRuns(16, benchN/16)
		b.StartTimer()
		Sort(ints)
	}
}

func BenchmarkTimSortFuncStructs(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ints := makeRandomInts(benchN)
		pairs := make([]labeled, len(ints))
		for j, v := range ints {
			pairs[j] = labeled{key: v}
		}
		b.StartTimer()
		SortFunc(pairs, func(x, y labeled) bool { return x.key < y.key })
	}
}
