package mem

import "unsafe"

// Alignment is the byte boundary every Block targets, independent of the
// element type's natural alignment. 32 bytes fits an AVX2 register and half a
// cache line.
const Alignment = 32

// Block is an owning handle over a contiguous run of n slots of T.
//
// The raw backing slice is over-allocated so the data view can start on an
// Alignment boundary. raw is also the allocation identity: releasing a Block
// drops exactly the backing that was created for it, never a shrunken or
// shifted view.
type Block[T any] struct {
	raw []T
	off int
	n   int
}

// NewBlock allocates a Block of n slots. All slots start as the zero value
// of T.
//
// Panics if n == 0: a zero-length Block has no valid data address and every
// container constructor forbids it.
func NewBlock[T any](n int) *Block[T] {
	if n == 0 {
		panic("fastarr: length must not be 0")
	}
	return NewBlockUnchecked[T](n)
}

// NewBlockUnchecked is NewBlock without the n != 0 guard. Callers must
// guarantee n > 0; a zero-length Block is unusable and any access to it is
// undefined by contract.
func NewBlockUnchecked[T any](n int) *Block[T] {
	var zero T
	es := int(unsafe.Sizeof(zero))

	pad := 0
	if es > 0 && es < Alignment {
		pad = (Alignment + es - 1) / es
	}

	raw := make([]T, n+pad)

	off := 0
	if es > 0 {
		addr := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
		for k := 0; k <= pad; k++ {
			if (addr+uintptr(k*es))%Alignment == 0 {
				off = k
				break
			}
		}
		// If no whole-element offset hits the boundary (element sizes
		// that don't divide into 32), the natural base address stands.
	}

	return &Block[T]{raw: raw, off: off, n: n}
}

// Data returns the aligned view of the Block's n slots.
func (b *Block[T]) Data() []T {
	return b.raw[b.off : b.off+b.n : b.off+b.n]
}

// Ptr returns the address of slot 0.
func (b *Block[T]) Ptr() unsafe.Pointer {
	return unsafe.Pointer(&b.raw[b.off])
}

// Len returns the number of slots.
func (b *Block[T]) Len() int {
	return b.n
}

// Zero clears slots [lo, hi), finalizing the elements stored there. Clearing
// drops any references the elements held so the collector can reclaim them.
func (b *Block[T]) Zero(lo, hi int) {
	clear(b.raw[b.off+lo : b.off+hi])
}

// Release finalizes every slot and drops the backing. Safe to call once per
// Block; the caller's nil check is what prevents a double release.
func (b *Block[T]) Release() {
	b.Zero(0, b.n)
	b.Discard()
}

// Discard drops the backing without touching the slots. Used by owners that
// have already finalized their live range themselves.
func (b *Block[T]) Discard() {
	b.raw = nil
	b.n = 0
	b.off = 0
}

// IsAligned reports whether p sits on the given byte boundary.
func IsAligned(p unsafe.Pointer, align uintptr) bool {
	return uintptr(p)&(align-1) == 0
}
