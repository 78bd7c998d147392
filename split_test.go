package fastarr

import (
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain[T any](it *Iterator[T]) []T {
	var out []T
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestSplitAt(t *testing.T) {
	it := NewIterFromFunc(6, func(i int) int { return i })

	left, right := it.SplitAt(2)
	assert.Equal(t, 2, left.Len())
	assert.Equal(t, 4, right.Len())

	assert.Equal(t, []int{0, 1}, drain(left))
	assert.Equal(t, []int{2, 3, 4, 5}, drain(right))

	assert.Panics(t, func() { it.SplitAt(1) }, "source must be consumed by the split")
}

func TestSplitAtAfterPartialConsumption(t *testing.T) {
	it := NewIterFromFunc(6, func(i int) int { return i })
	it.Next()
	it.NextBack()

	left, right := it.SplitAt(2)
	assert.Equal(t, []int{1, 2}, drain(left))
	assert.Equal(t, []int{3, 4}, drain(right))
}

func TestSplitAtBounds(t *testing.T) {
	it := NewIterFromFunc(3, func(i int) int { return i })
	assert.Panics(t, func() { it.SplitAt(4) })

	it = NewIterFromFunc(3, func(i int) int { return i })
	left, right := it.SplitAt(3)
	assert.Equal(t, 3, left.Len())
	assert.Equal(t, 0, right.Len())
}

func TestSplitAtNested(t *testing.T) {
	it := NewIterFromFunc(8, func(i int) int { return i })

	left, right := it.SplitAt(4)
	ll, lr := left.SplitAt(2)
	rl, rr := right.SplitAt(2)

	assert.Equal(t, []int{0, 1}, drain(ll))
	assert.Equal(t, []int{2, 3}, drain(lr))
	assert.Equal(t, []int{4, 5}, drain(rl))
	assert.Equal(t, []int{6, 7}, drain(rr))
}

func TestSplitHalvesCloseIndependently(t *testing.T) {
	it := NewIterFromFunc(4, func(i int) int { return i })
	left, right := it.SplitAt(2)

	left.Close()
	assert.Equal(t, []int{2, 3}, drain(right), "closing one half must not touch the other")
	right.Close()
}

func TestForEachParallel(t *testing.T) {
	const n = 1000
	it := NewIterFromFunc(n, func(i int) int { return i })

	var mu sync.Mutex
	var seen []int
	err := ForEachParallel(it, 4, func(v int) error {
		mu.Lock()
		seen = append(seen, v)
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)

	require.Len(t, seen, n)
	sort.Ints(seen)
	for i, v := range seen {
		require.Equal(t, i, v, "every element exactly once")
	}
}

func TestForEachParallelSingleWorker(t *testing.T) {
	it := NewIterFromFunc(5, func(i int) int { return i })

	var got []int
	err := ForEachParallel(it, 1, func(v int) error {
		got = append(got, v)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got, "one worker preserves order")
}

func TestForEachParallelMoreWorkersThanElements(t *testing.T) {
	it := NewIterFromFunc(3, func(i int) int { return i + 1 })

	var mu sync.Mutex
	sum := 0
	err := ForEachParallel(it, 16, func(v int) error {
		mu.Lock()
		sum += v
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 6, sum)
}

func TestForEachParallelError(t *testing.T) {
	it := NewIterFromFunc(100, func(i int) int { return i })

	wantErr := errors.New("boom")
	err := ForEachParallel(it, 4, func(v int) error {
		if v == 57 {
			return wantErr
		}
		return nil
	})
	assert.ErrorIs(t, err, wantErr)
}
