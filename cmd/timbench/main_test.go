package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sortkit/timsort"
)

func TestStableOrder(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, n := range []int{0, 1, 100, 10000} {
		input := make([]int, n)
		for i := range input {
			input[i] = r.Intn(10) // few distinct keys, long equal stretches
		}
		require.True(t, stableOrder(input), "n=%d", n)
	}
}

func TestGenerateShapes(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, shape := range []string{"random", "sorted", "reversed", "kruns", "fewvalues", "sawtooth"} {
		a, ok := generate(shape, 1000, r)
		require.True(t, ok, shape)
		require.Len(t, a, 1000, shape)
	}

	_, ok := generate("bogus", 10, r)
	require.False(t, ok)

	a, ok := generate("sorted", 1000, r)
	require.True(t, ok)
	require.True(t, timsort.IsSorted(a))
}
