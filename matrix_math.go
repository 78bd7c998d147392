package fastarr

import "fmt"

// Transpose returns a new cols×rows Matrix with the axes flipped: slot
// (r, c) of the result holds slot (c, r) of m. The receiver is left intact.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	data := m.live()
	cols := m.cols
	return NewMatrixFromFuncUnchecked(m.cols, m.rows, func(r, c int) T {
		return data[c*cols+r]
	})
}

// Determinant computes the determinant of a square numeric matrix by
// Gaussian elimination with partial pivoting. The input is untouched; the
// elimination runs on a scratch clone.
//
// For integer element types the row operations truncate, so the result is
// exact only for matrices whose elimination stays integral. Use a float
// element type for general inputs.
//
// Panics if the matrix is not square, or if T cannot represent the unit
// constants (see Number).
func Determinant[T Number](m *Matrix[T]) T {
	if m.rows != m.cols {
		panic(fmt.Sprintf("fastarr: determinant of non-square %dx%d matrix", m.rows, m.cols))
	}
	one := fromFloat[T](1.0)
	negOne := fromFloat[T](-1.0)
	zero := fromFloat[T](0.0)

	n := m.rows
	w := m.Clone()
	defer w.Release()

	det := one
	sign := one
	for k := 0; k < n; k++ {
		// Pivot on the largest entry in column k at or below the diagonal.
		pivotRow := k
		for i := k + 1; i < n; i++ {
			if w.AtUnchecked(i, k) > w.AtUnchecked(pivotRow, k) {
				pivotRow = i
			}
		}
		if pivotRow != k {
			w.SwapRows(k, pivotRow)
			sign = sign * negOne
		}

		pivot := w.AtUnchecked(k, k)
		if pivot == zero {
			return zero
		}
		det = det * pivot

		for i := k + 1; i < n; i++ {
			factor := w.AtUnchecked(i, k) / pivot
			for j := k; j < n; j++ {
				w.SetUnchecked(i, j, w.AtUnchecked(i, j)-factor*w.AtUnchecked(k, j))
			}
		}
	}
	return det * sign
}
