package fastarr

import (
	"fmt"
	"iter"
	"strings"
	"unsafe"

	"github.com/hupe1980/fastarr/internal/mem"
)

// Array is a flat, fixed-length array: an owned aligned buffer and a length,
// nothing else. It is created at its final size and never grows or shrinks.
type Array[T any] struct {
	blk  *mem.Block[T]
	data []T
}

// New creates an Array of length n with every slot set to fill.
//
// Panics if n == 0.
func New[T any](n int, fill T) *Array[T] {
	blk := mem.NewBlock[T](n)
	data := blk.Data()
	for i := range data {
		data[i] = fill
	}
	return &Array[T]{blk: blk, data: data}
}

// NewUnchecked is New without the n != 0 guard. Calling it with n == 0 is
// undefined behavior by contract.
func NewUnchecked[T any](n int, fill T) *Array[T] {
	blk := mem.NewBlockUnchecked[T](n)
	data := blk.Data()
	for i := range data {
		data[i] = fill
	}
	return &Array[T]{blk: blk, data: data}
}

// NewDefault creates an Array of length n filled with the zero value of T.
//
// Panics if n == 0.
func NewDefault[T any](n int) *Array[T] {
	blk := mem.NewBlock[T](n)
	return &Array[T]{blk: blk, data: blk.Data()}
}

// NewDefaultUnchecked is NewDefault without the n != 0 guard. Calling it
// with n == 0 is undefined behavior by contract.
func NewDefaultUnchecked[T any](n int) *Array[T] {
	blk := mem.NewBlockUnchecked[T](n)
	return &Array[T]{blk: blk, data: blk.Data()}
}

// NewFromFunc creates an Array of length n, writing fn(i) into slot i in
// ascending order.
//
// Panics if n == 0.
func NewFromFunc[T any](n int, fn func(i int) T) *Array[T] {
	blk := mem.NewBlock[T](n)
	data := blk.Data()
	for i := range data {
		data[i] = fn(i)
	}
	return &Array[T]{blk: blk, data: data}
}

// NewFromFuncUnchecked is NewFromFunc without the n != 0 guard. Calling it
// with n == 0 is undefined behavior by contract.
func NewFromFuncUnchecked[T any](n int, fn func(i int) T) *Array[T] {
	blk := mem.NewBlockUnchecked[T](n)
	data := blk.Data()
	for i := range data {
		data[i] = fn(i)
	}
	return &Array[T]{blk: blk, data: data}
}

// NewUninit allocates an Array of length n without meaningfully
// initializing it: slots hold unspecified placeholder values until written.
// It exists as a builder primitive for the other constructors and for
// callers who will immediately overwrite every slot; reading a slot before
// writing it is outside the container's contract.
//
// Panics if n == 0.
func NewUninit[T any](n int) *Array[T] {
	blk := mem.NewBlock[T](n)
	return &Array[T]{blk: blk, data: blk.Data()}
}

// NewUninitUnchecked is NewUninit without the n != 0 guard. Calling it with
// n == 0 is undefined behavior by contract.
func NewUninitUnchecked[T any](n int) *Array[T] {
	blk := mem.NewBlockUnchecked[T](n)
	return &Array[T]{blk: blk, data: blk.Data()}
}

// FromSlice creates an Array by copying the elements of s.
//
// Panics if s is empty.
func FromSlice[T any](s []T) *Array[T] {
	if len(s) == 0 {
		panic("fastarr: cannot build an array from an empty slice")
	}
	blk := mem.NewBlockUnchecked[T](len(s))
	copy(blk.Data(), s)
	return &Array[T]{blk: blk, data: blk.Data()}
}

// FromValues creates an Array from its arguments, the literal-builder
// counterpart to New.
//
// Panics if no values are given.
func FromValues[T any](vals ...T) *Array[T] {
	return FromSlice(vals)
}

// Len returns the length of the array.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// live returns the element view, panicking if the buffer has been moved out
// or released.
func (a *Array[T]) live() []T {
	if a.data == nil {
		panic("fastarr: array buffer moved or released")
	}
	return a.data
}

// At returns the element at index i.
//
// Panics if i is out of bounds.
func (a *Array[T]) At(i int) T {
	data := a.live()
	if uint(i) >= uint(len(data)) {
		panic(fmt.Sprintf("fastarr: index %d out of bounds for length %d", i, len(data)))
	}
	return data[i]
}

// AtUnchecked returns the element at index i with no bounds check, indexing
// through raw pointer arithmetic. The caller guarantees i < Len(); anything
// else is undefined behavior.
func (a *Array[T]) AtUnchecked(i int) T {
	return *a.PtrUnchecked(i)
}

// Set stores v at index i.
//
// Panics if i is out of bounds.
func (a *Array[T]) Set(i int, v T) {
	data := a.live()
	if uint(i) >= uint(len(data)) {
		panic(fmt.Sprintf("fastarr: index %d out of bounds for length %d", i, len(data)))
	}
	data[i] = v
}

// SetUnchecked stores v at index i with no bounds check. The caller
// guarantees i < Len(); anything else is undefined behavior.
func (a *Array[T]) SetUnchecked(i int, v T) {
	*a.PtrUnchecked(i) = v
}

// Ptr returns the address of slot i. The pointer indexes into the live
// buffer; using it after the array is consumed or released is undefined
// behavior.
//
// Panics if i is out of bounds.
func (a *Array[T]) Ptr(i int) *T {
	data := a.live()
	if uint(i) >= uint(len(data)) {
		panic(fmt.Sprintf("fastarr: index %d out of bounds for length %d", i, len(data)))
	}
	return a.PtrUnchecked(i)
}

// PtrUnchecked returns the address of slot i with no bounds check. The
// caller guarantees i < Len(); anything else is undefined behavior.
func (a *Array[T]) PtrUnchecked(i int) *T {
	var zero T
	base := unsafe.Pointer(unsafe.SliceData(a.data))
	return (*T)(unsafe.Add(base, uintptr(i)*unsafe.Sizeof(zero)))
}

// Get returns the element at index i, reporting false instead of panicking
// when i is out of bounds.
func (a *Array[T]) Get(i int) (T, bool) {
	if a.data == nil || uint(i) >= uint(len(a.data)) {
		var zero T
		return zero, false
	}
	return a.data[i], true
}

// Data returns the live element view. The slice borrows the buffer: it must
// not be used after the array is consumed or released.
func (a *Array[T]) Data() []T {
	return a.live()
}

// Swap exchanges the contents of slots i and j through their addresses,
// with no intermediate clone. Swap(i, i) is a no-op.
//
// Panics if either index is out of bounds.
func (a *Array[T]) Swap(i, j int) {
	data := a.live()
	if uint(i) >= uint(len(data)) || uint(j) >= uint(len(data)) {
		panic(fmt.Sprintf("fastarr: swap indices (%d, %d) out of bounds for length %d", i, j, len(data)))
	}
	a.SwapUnchecked(i, j)
}

// SwapUnchecked is Swap with no bounds check. The caller guarantees both
// indices are in bounds; anything else is undefined behavior.
func (a *Array[T]) SwapUnchecked(i, j int) {
	pi, pj := a.PtrUnchecked(i), a.PtrUnchecked(j)
	*pi, *pj = *pj, *pi
}

// Clone returns a new Array owning a copy of every element.
func (a *Array[T]) Clone() *Array[T] {
	data := a.live()
	blk := mem.NewBlockUnchecked[T](len(data))
	copy(blk.Data(), data)
	return &Array[T]{blk: blk, data: blk.Data()}
}

// All returns an index-ordered view of the elements for range-over-func
// iteration. It borrows the buffer and does not consume the array.
func (a *Array[T]) All() iter.Seq2[int, T] {
	data := a.live()
	return func(yield func(int, T) bool) {
		for i, v := range data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// IntoIter consumes the array into an Iterator with zero element copies.
// The array is invalidated: its buffer now belongs to the iterator.
func (a *Array[T]) IntoIter() *Iterator[T] {
	data := a.live()
	blk := a.blk
	a.blk, a.data = nil, nil
	return &Iterator[T]{blk: blk, data: data, length: len(data)}
}

// Release finalizes every live element and drops the buffer. Calling
// Release on an already released or moved-out array is a no-op.
func (a *Array[T]) Release() {
	if a.blk != nil {
		a.blk.Release()
	}
	a.blk, a.data = nil, nil
}

// String renders the array as "[e0, e1, ...]".
func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.live() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Equal reports whether two arrays have the same length and equal elements
// in the same order.
func Equal[T comparable](a, b *Array[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, v := range a.live() {
		if v != b.data[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element predicate.
func EqualFunc[T any](a, b *Array[T], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, v := range a.live() {
		if !eq(v, b.data[i]) {
			return false
		}
	}
	return true
}
