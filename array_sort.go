package fastarr

import "cmp"

// Sort sorts the array in place in ascending natural order.
//
// The algorithm is quicksort with a Lomuto partition and the rightmost
// element of each sub-range as the pivot. The pivot choice is fixed on
// purpose and is part of the contract; it degrades to O(n²) on already
// sorted or adversarially ordered input. Sorting is not stable.
func Sort[T cmp.Ordered](a *Array[T]) {
	SortFunc(a, cmp.Compare[T])
}

// SortFunc sorts the array in place using cmp to order elements. cmp
// follows the standard convention: negative when x < y, zero when equal,
// positive when x > y. Elements comparing <= pivot are placed left of it.
func SortFunc[T any](a *Array[T], cmp func(x, y T) int) {
	data := a.live()
	quicksort(data, 0, len(data)-1, cmp)
}

func quicksort[T any](data []T, lo, hi int, cmp func(x, y T) int) {
	if lo >= hi {
		return
	}
	p := partition(data, lo, hi, cmp)
	quicksort(data, lo, p-1, cmp)
	quicksort(data, p+1, hi, cmp)
}

// partition is the Lomuto scheme: pivot at the rightmost slot, elements
// <= pivot moved left of the final pivot position.
func partition[T any](data []T, lo, hi int, cmp func(x, y T) int) int {
	pivot := hi
	i := lo - 1
	for j := lo; j < hi; j++ {
		if cmp(data[j], data[pivot]) <= 0 {
			i++
			data[i], data[j] = data[j], data[i]
		}
	}
	data[i+1], data[pivot] = data[pivot], data[i+1]
	return i + 1
}
