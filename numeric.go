package fastarr

import "github.com/hupe1980/fastarr/internal/simd"

// Number constrains element types that support data-parallel arithmetic and
// the numeric matrix routines. It mirrors the kernel-level constraint so the
// capability check happens at compile time, never at run time.
type Number = simd.Number

// fromFloat converts a numeric literal to T, panicking if T cannot represent
// the value. The determinant needs concrete 1, -1 and 0 constants while
// staying generic; a type that cannot hold them (negative constants on
// unsigned types) is a fatal misuse, not a recoverable condition.
func fromFloat[T Number](v float64) T {
	t := T(v)
	if float64(t) != v {
		panic("fastarr: element type cannot represent required numeric constant")
	}
	return t
}
