package fastarr

import (
	"fmt"

	"github.com/hupe1980/fastarr/internal/simd"
)

// AddScalar adds k to every element of a in place, using the widest
// convenient vector width for the element type. The kernel processes a
// scalar prefix up to the vector-width boundary, then full-width chunks,
// then the remainder below one width.
func AddScalar[T Number](a *Array[T], k T) {
	simd.AddScalar(a.live(), k)
}

// AddArray adds src into dst elementwise in place, with the same
// three-phase strategy as AddScalar.
//
// Panics if the lengths differ.
func AddArray[T Number](dst, src *Array[T]) {
	d, s := dst.live(), src.live()
	if len(d) != len(s) {
		panic(fmt.Sprintf("fastarr: length mismatch: %d != %d", len(d), len(s)))
	}
	simd.AddSlices(d, s)
}
