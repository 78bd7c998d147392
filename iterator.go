package fastarr

import "github.com/hupe1980/fastarr/internal/mem"

// Iterator consumes a buffer from both ends. It owns the same kind of
// aligned buffer as Array and tracks how many elements have been moved out
// of the front and the back; only the unconsumed middle range is still live.
//
// An Iterator is safe to hand to another goroutine, but a single logical
// owner must drive it: it carries no internal synchronization.
type Iterator[T any] struct {
	blk    *mem.Block[T]
	data   []T
	length int
	front  int
	back   int
}

// NewIterFromFunc creates an Iterator of length n, writing fn(i) into slot
// i in ascending order.
//
// Panics if n == 0.
func NewIterFromFunc[T any](n int, fn func(i int) T) *Iterator[T] {
	blk := mem.NewBlock[T](n)
	data := blk.Data()
	for i := range data {
		data[i] = fn(i)
	}
	return &Iterator[T]{blk: blk, data: data, length: n}
}

// NewIterFromFuncUnchecked is NewIterFromFunc without the n != 0 guard.
// Calling it with n == 0 is undefined behavior by contract.
func NewIterFromFuncUnchecked[T any](n int, fn func(i int) T) *Iterator[T] {
	blk := mem.NewBlockUnchecked[T](n)
	data := blk.Data()
	for i := range data {
		data[i] = fn(i)
	}
	return &Iterator[T]{blk: blk, data: data, length: n}
}

// AllocIter allocates an Iterator of length n without meaningful contents,
// as a builder primitive: slots hold unspecified placeholder values until
// written. Reading before writing is outside the contract.
//
// Panics if n == 0.
func AllocIter[T any](n int) *Iterator[T] {
	blk := mem.NewBlock[T](n)
	return &Iterator[T]{blk: blk, data: blk.Data(), length: n}
}

// AllocIterUnchecked is AllocIter without the n != 0 guard. Calling it with
// n == 0 is undefined behavior by contract.
func AllocIterUnchecked[T any](n int) *Iterator[T] {
	blk := mem.NewBlockUnchecked[T](n)
	return &Iterator[T]{blk: blk, data: blk.Data(), length: n}
}

// Len returns the exact number of elements remaining, letting size-aware
// consumers pre-allocate.
func (it *Iterator[T]) Len() int {
	return it.length - it.front - it.back
}

// Next moves the frontmost remaining element out of the buffer. The second
// return is false once the iterator is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.front+it.back >= it.length {
		var zero T
		return zero, false
	}
	v := it.data[it.front]
	it.front++
	return v, true
}

// NextBack moves the backmost remaining element out of the buffer. The slot
// is addressed from the logical end (length-1-back), independent of the
// front cursor. The second return is false once the iterator is exhausted.
func (it *Iterator[T]) NextBack() (T, bool) {
	if it.front+it.back >= it.length {
		var zero T
		return zero, false
	}
	v := it.data[it.length-1-it.back]
	it.back++
	return v, true
}

// IntoArray converts the iterator into an Array. When nothing has been
// consumed from either end, the buffer is reclaimed directly with zero
// element copies. Otherwise a new buffer of the remaining length is built by
// draining the iterator, at a cost proportional to what remains; the source
// buffer is finalized.
//
// Panics if the iterator is exhausted (a zero-length array cannot exist).
func (it *Iterator[T]) IntoArray() *Array[T] {
	if it.blk != nil && it.front == 0 && it.back == 0 {
		blk, data := it.blk, it.data
		it.blk, it.data = nil, nil
		it.front, it.back, it.length = 0, 0, 0
		return &Array[T]{blk: blk, data: data}
	}

	out := NewFromFunc(it.Len(), func(int) T {
		v, _ := it.Next()
		return v
	})
	it.Close()
	return out
}

// Close finalizes exactly the unconsumed middle range and drops the buffer,
// computed from the original base regardless of how far the cursors have
// advanced. Closing an already closed or converted iterator is a no-op.
func (it *Iterator[T]) Close() {
	if it.data != nil {
		clear(it.data[it.front : it.length-it.back])
	}
	if it.blk != nil {
		it.blk.Discard()
	}
	it.blk, it.data = nil, nil
	it.front, it.back, it.length = 0, 0, 0
}
