package fastarr

import (
	"fmt"
	"strings"

	"github.com/hupe1980/fastarr/internal/mem"
)

// Matrix is a fixed-shape, row-major 2-D container: a single aligned buffer
// of rows*cols elements addressed as (row, column). The shape is immutable
// after construction.
type Matrix[T any] struct {
	blk  *mem.Block[T]
	data []T
	rows int
	cols int
}

func checkDims(rows, cols int) {
	if rows == 0 {
		panic("fastarr: matrix rows must not be 0")
	}
	if cols == 0 {
		panic("fastarr: matrix columns must not be 0")
	}
}

// NewMatrix creates a rows×cols Matrix with every slot set to fill.
//
// Panics if rows == 0 or cols == 0.
func NewMatrix[T any](rows, cols int, fill T) *Matrix[T] {
	checkDims(rows, cols)
	return NewMatrixUnchecked(rows, cols, fill)
}

// NewMatrixUnchecked is NewMatrix without the dimension guards. Calling it
// with a zero dimension is undefined behavior by contract.
func NewMatrixUnchecked[T any](rows, cols int, fill T) *Matrix[T] {
	blk := mem.NewBlockUnchecked[T](rows * cols)
	data := blk.Data()
	for i := range data {
		data[i] = fill
	}
	return &Matrix[T]{blk: blk, data: data, rows: rows, cols: cols}
}

// NewMatrixDefault creates a rows×cols Matrix filled with the zero value of
// T.
//
// Panics if rows == 0 or cols == 0.
func NewMatrixDefault[T any](rows, cols int) *Matrix[T] {
	checkDims(rows, cols)
	return NewMatrixDefaultUnchecked[T](rows, cols)
}

// NewMatrixDefaultUnchecked is NewMatrixDefault without the dimension
// guards. Calling it with a zero dimension is undefined behavior by
// contract.
func NewMatrixDefaultUnchecked[T any](rows, cols int) *Matrix[T] {
	blk := mem.NewBlockUnchecked[T](rows * cols)
	return &Matrix[T]{blk: blk, data: blk.Data(), rows: rows, cols: cols}
}

// NewMatrixFromFunc creates a rows×cols Matrix, writing fn(r, c) into slot
// (r, c) in row-major order.
//
// Panics if rows == 0 or cols == 0.
func NewMatrixFromFunc[T any](rows, cols int, fn func(r, c int) T) *Matrix[T] {
	checkDims(rows, cols)
	return NewMatrixFromFuncUnchecked(rows, cols, fn)
}

// NewMatrixFromFuncUnchecked is NewMatrixFromFunc without the dimension
// guards. Calling it with a zero dimension is undefined behavior by
// contract.
func NewMatrixFromFuncUnchecked[T any](rows, cols int, fn func(r, c int) T) *Matrix[T] {
	blk := mem.NewBlockUnchecked[T](rows * cols)
	data := blk.Data()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			data[r*cols+c] = fn(r, c)
		}
	}
	return &Matrix[T]{blk: blk, data: data, rows: rows, cols: cols}
}

// NewMatrixUninit allocates a rows×cols Matrix without meaningful contents,
// as a builder primitive: slots hold unspecified placeholder values until
// written.
//
// Panics if rows == 0 or cols == 0.
func NewMatrixUninit[T any](rows, cols int) *Matrix[T] {
	checkDims(rows, cols)
	return NewMatrixUninitUnchecked[T](rows, cols)
}

// NewMatrixUninitUnchecked is NewMatrixUninit without the dimension guards.
// Calling it with a zero dimension is undefined behavior by contract.
func NewMatrixUninitUnchecked[T any](rows, cols int) *Matrix[T] {
	blk := mem.NewBlockUnchecked[T](rows * cols)
	return &Matrix[T]{blk: blk, data: blk.Data(), rows: rows, cols: cols}
}

// MatrixFromRows creates a Matrix by copying a slice of equally sized rows.
//
// Panics if rows is empty, a row is empty, or the rows are ragged.
func MatrixFromRows[T any](rows [][]T) *Matrix[T] {
	if len(rows) == 0 {
		panic("fastarr: cannot build a matrix from zero rows")
	}
	cols := len(rows[0])
	if cols == 0 {
		panic("fastarr: matrix columns must not be 0")
	}
	for i, row := range rows {
		if len(row) != cols {
			panic(fmt.Sprintf("fastarr: ragged rows: row %d has %d columns, want %d", i, len(row), cols))
		}
	}
	m := NewMatrixUninit[T](len(rows), cols)
	for r, row := range rows {
		copy(m.data[r*cols:(r+1)*cols], row)
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Len returns the total number of elements, rows*cols.
func (m *Matrix[T]) Len() int { return len(m.data) }

func (m *Matrix[T]) live() []T {
	if m.data == nil {
		panic("fastarr: matrix buffer moved or released")
	}
	return m.data
}

func (m *Matrix[T]) checkIndex(r, c int) {
	if uint(r) >= uint(m.rows) || uint(c) >= uint(m.cols) {
		panic(fmt.Sprintf("fastarr: index (%d, %d) out of bounds for %dx%d matrix", r, c, m.rows, m.cols))
	}
}

// At returns the element at (r, c).
//
// Panics if either coordinate is out of range.
func (m *Matrix[T]) At(r, c int) T {
	data := m.live()
	m.checkIndex(r, c)
	return data[r*m.cols+c]
}

// AtUnchecked is At with no bounds check. The caller guarantees both
// coordinates are in range; anything else is undefined behavior.
func (m *Matrix[T]) AtUnchecked(r, c int) T {
	return m.data[r*m.cols+c]
}

// Set stores v at (r, c).
//
// Panics if either coordinate is out of range.
func (m *Matrix[T]) Set(r, c int, v T) {
	data := m.live()
	m.checkIndex(r, c)
	data[r*m.cols+c] = v
}

// SetUnchecked is Set with no bounds check. The caller guarantees both
// coordinates are in range; anything else is undefined behavior.
func (m *Matrix[T]) SetUnchecked(r, c int, v T) {
	m.data[r*m.cols+c] = v
}

// Swap exchanges the elements at (r1, c1) and (r2, c2).
//
// Panics if any coordinate is out of range.
func (m *Matrix[T]) Swap(r1, c1, r2, c2 int) {
	m.live()
	m.checkIndex(r1, c1)
	m.checkIndex(r2, c2)
	m.SwapUnchecked(r1, c1, r2, c2)
}

// SwapUnchecked is Swap with no bounds checks. The caller guarantees all
// coordinates are in range; anything else is undefined behavior.
func (m *Matrix[T]) SwapUnchecked(r1, c1, r2, c2 int) {
	i, j := r1*m.cols+c1, r2*m.cols+c2
	m.data[i], m.data[j] = m.data[j], m.data[i]
}

// SwapRows exchanges two whole rows, one element swap per column.
//
// Panics if either row is out of range.
func (m *Matrix[T]) SwapRows(r1, r2 int) {
	m.live()
	if uint(r1) >= uint(m.rows) || uint(r2) >= uint(m.rows) {
		panic(fmt.Sprintf("fastarr: rows (%d, %d) out of bounds for %d rows", r1, r2, m.rows))
	}
	for c := 0; c < m.cols; c++ {
		m.SwapUnchecked(r1, c, r2, c)
	}
}

// SwapCols exchanges two whole columns, one element swap per row.
//
// Panics if either column is out of range.
func (m *Matrix[T]) SwapCols(c1, c2 int) {
	m.live()
	if uint(c1) >= uint(m.cols) || uint(c2) >= uint(m.cols) {
		panic(fmt.Sprintf("fastarr: columns (%d, %d) out of bounds for %d columns", c1, c2, m.cols))
	}
	for r := 0; r < m.rows; r++ {
		m.SwapUnchecked(r, c1, r, c2)
	}
}

// Row clones row r into a new owned Array of length Cols(). The row is
// contiguous in the buffer, so this is a straight copy.
//
// Panics if r is out of range.
func (m *Matrix[T]) Row(r int) *Array[T] {
	data := m.live()
	if uint(r) >= uint(m.rows) {
		panic(fmt.Sprintf("fastarr: row %d out of bounds for %d rows", r, m.rows))
	}
	return FromSlice(data[r*m.cols : (r+1)*m.cols])
}

// Col clones column c into a new owned Array of length Rows(). Columns are
// strided, so this reads one element per row.
//
// Panics if c is out of range.
func (m *Matrix[T]) Col(c int) *Array[T] {
	data := m.live()
	if uint(c) >= uint(m.cols) {
		panic(fmt.Sprintf("fastarr: column %d out of bounds for %d columns", c, m.cols))
	}
	return NewFromFuncUnchecked(m.rows, func(r int) T {
		return data[r*m.cols+c]
	})
}

// IntoIter flattens the matrix into a consuming Iterator, rows concatenated
// in order, with zero element copies. The matrix is invalidated.
func (m *Matrix[T]) IntoIter() *Iterator[T] {
	data := m.live()
	blk := m.blk
	m.blk, m.data = nil, nil
	return &Iterator[T]{blk: blk, data: data, length: len(data)}
}

// IntoRows converts the matrix into an Array of per-row owned Arrays. Each
// row is cloned out of the buffer; the matrix is finalized.
func (m *Matrix[T]) IntoRows() *Array[*Array[T]] {
	m.live()
	out := NewFromFunc(m.rows, func(r int) *Array[T] {
		return m.Row(r)
	})
	m.Release()
	return out
}

// IntoRowIter converts the matrix into a consuming Iterator of per-row
// owned Arrays.
func (m *Matrix[T]) IntoRowIter() *Iterator[*Array[T]] {
	return m.IntoRows().IntoIter()
}

// Clone returns a new Matrix owning a copy of every element.
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := m.live()
	blk := mem.NewBlockUnchecked[T](len(data))
	copy(blk.Data(), data)
	return &Matrix[T]{blk: blk, data: blk.Data(), rows: m.rows, cols: m.cols}
}

// Release finalizes every live element and drops the buffer. Calling
// Release on an already released or moved-out matrix is a no-op.
func (m *Matrix[T]) Release() {
	if m.blk != nil {
		m.blk.Release()
	}
	m.blk, m.data = nil, nil
}

// String renders the matrix one bracketed row per line.
func (m *Matrix[T]) String() string {
	data := m.live()
	var sb strings.Builder
	sb.WriteByte('[')
	for r := 0; r < m.rows; r++ {
		if r > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString("\n    [")
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", data[r*m.cols+c])
		}
		sb.WriteByte(']')
	}
	sb.WriteString("\n]")
	return sb.String()
}

// MatrixEqual reports whether two matrices have the same shape and equal
// elements at every coordinate.
func MatrixEqual[T comparable](a, b *Matrix[T]) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	bd := b.live()
	for i, v := range a.live() {
		if v != bd[i] {
			return false
		}
	}
	return true
}
