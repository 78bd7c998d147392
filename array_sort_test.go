package fastarr

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort(t *testing.T) {
	tests := []struct {
		name string
		give []int
		want []int
	}{
		{name: "unordered", give: []int{4, 1, 3, 2}, want: []int{1, 2, 3, 4}},
		{name: "single", give: []int{7}, want: []int{7}},
		{name: "already sorted", give: []int{1, 2, 3}, want: []int{1, 2, 3}},
		{name: "reverse", give: []int{5, 4, 3, 2, 1}, want: []int{1, 2, 3, 4, 5}},
		{name: "duplicates", give: []int{2, 1, 2, 1, 2}, want: []int{1, 1, 2, 2, 2}},
		{name: "all equal", give: []int{3, 3, 3}, want: []int{3, 3, 3}},
		{name: "negatives", give: []int{0, -2, 5, -9}, want: []int{-9, -2, 0, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := FromSlice(tt.give)
			Sort(a)
			assert.Equal(t, tt.want, a.Data())
		})
	}
}

func TestSortRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for _, size := range []int{1, 2, 17, 100, 1000} {
		give := make([]int, size)
		for i := range give {
			give[i] = r.Intn(50)
		}
		want := append([]int(nil), give...)
		sort.Ints(want)

		a := FromSlice(give)
		Sort(a)
		require.Equal(t, want, a.Data(), "size %d", size)
	}
}

func TestSortStrings(t *testing.T) {
	a := FromValues("pear", "apple", "fig", "banana")
	Sort(a)
	assert.Equal(t, []string{"apple", "banana", "fig", "pear"}, a.Data())
}

func TestSortFuncDescending(t *testing.T) {
	a := FromValues(1.5, 3.25, 0.5, 2.0)
	SortFunc(a, func(x, y float64) int {
		switch {
		case x > y:
			return -1
		case x < y:
			return 1
		default:
			return 0
		}
	})
	assert.Equal(t, []float64{3.25, 2.0, 1.5, 0.5}, a.Data())
}

func TestSortFuncByField(t *testing.T) {
	type entry struct {
		key  string
		rank int
	}
	a := FromValues(
		entry{key: "c", rank: 3},
		entry{key: "a", rank: 1},
		entry{key: "b", rank: 2},
	)
	SortFunc(a, func(x, y entry) int { return x.rank - y.rank })

	assert.Equal(t, "a", a.At(0).key)
	assert.Equal(t, "b", a.At(1).key)
	assert.Equal(t, "c", a.At(2).key)
}
