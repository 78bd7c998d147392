package fastarr

import "math"

// Range creates an Array holding the half-open numeric range [start, end)
// with step 1.
//
// Panics if the range is empty.
func Range[T Number](start, end T) *Array[T] {
	return RangeStep(start, end, fromFloat[T](1.0))
}

// RangeStep creates an Array holding the half-open numeric range
// [start, end) advancing by step.
//
// Panics if step is not positive or the range is empty.
func RangeStep[T Number](start, end, step T) *Array[T] {
	if !(step > 0) {
		panic("fastarr: range step must be positive")
	}
	if end <= start {
		panic("fastarr: cannot build an array from an empty range")
	}
	n := int(math.Ceil(float64(end-start) / float64(step)))
	v := start
	return NewFromFuncUnchecked(n, func(int) T {
		r := v
		v += step
		return r
	})
}
