package fastarr

import "golang.org/x/sync/errgroup"

// SplitAt partitions the iterator's remaining range at index i into two
// independent iterators, with zero element copies. The left half owns the
// first i remaining elements, the right half the rest; the source iterator
// is consumed. Each half finalizes only its own portion on Close, so no
// slot ever has two owners.
//
// Panics if i > Len() or if the iterator was already consumed.
func (it *Iterator[T]) SplitAt(i int) (*Iterator[T], *Iterator[T]) {
	if it.data == nil {
		panic("fastarr: split of a consumed iterator")
	}
	remaining := it.Len()
	if i > remaining {
		panic("fastarr: split index out of bounds")
	}

	live := it.data[it.front : it.length-it.back]
	left := &Iterator[T]{data: live[:i:i], length: i}
	right := &Iterator[T]{data: live[i:], length: remaining - i}

	// The halves borrow disjoint views of the original backing; the
	// backing itself is freed once both halves drop their views.
	if it.blk != nil {
		it.blk.Discard()
	}
	it.blk, it.data = nil, nil
	it.front, it.back, it.length = 0, 0, 0

	return left, right
}

// ForEachParallel drains the iterator across workers goroutines, calling fn
// for every remaining element. The range is partitioned with SplitAt into
// contiguous chunks, one per worker, so element order is preserved within a
// chunk but not across chunks. The first error cancels nothing in flight
// but is returned after all workers finish; every chunk is finalized
// regardless.
func ForEachParallel[T any](it *Iterator[T], workers int, fn func(v T) error) error {
	if workers < 1 {
		workers = 1
	}
	total := it.Len()
	if workers > total {
		workers = total
	}

	chunks := make([]*Iterator[T], 0, workers)
	rest := it
	for w := workers; w > 1; w-- {
		var chunk *Iterator[T]
		chunk, rest = rest.SplitAt(rest.Len() / w)
		chunks = append(chunks, chunk)
	}
	chunks = append(chunks, rest)

	var g errgroup.Group
	for _, chunk := range chunks {
		g.Go(func() error {
			defer chunk.Close()
			for {
				v, ok := chunk.Next()
				if !ok {
					return nil
				}
				if err := fn(v); err != nil {
					return err
				}
			}
		})
	}
	return g.Wait()
}
