package fastarr

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the array as a JSON array of its elements in slot
// order.
func (a *Array[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.live())
}

// UnmarshalJSON decodes a JSON array of at least one element into a freshly
// allocated buffer, replacing any previous contents. Decoding an empty JSON
// array fails with ErrEmptySequence.
func (a *Array[T]) UnmarshalJSON(b []byte) error {
	var elems []T
	if err := json.Unmarshal(b, &elems); err != nil {
		return fmt.Errorf("fastarr: decode array: %w", err)
	}
	if len(elems) == 0 {
		return fmt.Errorf("fastarr: decode array: %w", ErrEmptySequence)
	}

	fresh := FromSlice(elems)
	a.Release()
	a.blk, a.data = fresh.blk, fresh.data
	return nil
}

// MarshalJSON encodes the matrix as a JSON array of row arrays.
func (m *Matrix[T]) MarshalJSON() ([]byte, error) {
	data := m.live()
	rows := make([][]T, m.rows)
	for r := range rows {
		rows[r] = data[r*m.cols : (r+1)*m.cols]
	}
	return json.Marshal(rows)
}

// UnmarshalJSON decodes a JSON array of equally sized row arrays into a
// freshly allocated buffer, replacing any previous contents. An empty outer
// array or an empty first row fails with ErrEmptySequence; unequal row
// widths fail with ErrRaggedRows.
func (m *Matrix[T]) UnmarshalJSON(b []byte) error {
	var rows [][]T
	if err := json.Unmarshal(b, &rows); err != nil {
		return fmt.Errorf("fastarr: decode matrix: %w", err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return fmt.Errorf("fastarr: decode matrix: %w", ErrEmptySequence)
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return fmt.Errorf("fastarr: decode matrix: %w", &ErrRaggedRows{Row: i, Expected: cols, Actual: len(row)})
		}
	}

	fresh := MatrixFromRows(rows)
	m.Release()
	m.blk, m.data = fresh.blk, fresh.data
	m.rows, m.cols = fresh.rows, fresh.cols
	return nil
}
