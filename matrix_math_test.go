package fastarr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranspose(t *testing.T) {
	m := MatrixFromRows([][]int{
		{1, 2, 3},
		{4, 5, 6},
	})

	tr := m.Transpose()
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			assert.Equal(t, m.At(r, c), tr.At(c, r))
		}
	}

	assert.Equal(t, 6, m.At(1, 2), "transpose must leave the source intact")
}

func TestTransposeInvolution(t *testing.T) {
	m := NewMatrixFromFunc(4, 7, func(r, c int) int { return r*100 + c })
	assert.True(t, MatrixEqual(m, m.Transpose().Transpose()))
}

func TestDeterminant(t *testing.T) {
	tests := []struct {
		name string
		give [][]float64
		want float64
	}{
		{
			name: "2x2",
			give: [][]float64{{1, 4}, {2, 3}},
			want: -5,
		},
		{
			name: "identity",
			give: [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
			want: 1,
		},
		{
			name: "zero row",
			give: [][]float64{{1, 2}, {0, 0}},
			want: 0,
		},
		{
			name: "3x3",
			give: [][]float64{{2, 5, 3}, {1, -2, -1}, {1, 3, 4}},
			want: -20,
		},
		{
			name: "1x1",
			give: [][]float64{{9}},
			want: 9,
		},
		{
			name: "needs row swap",
			give: [][]float64{{0, 1}, {1, 0}},
			want: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MatrixFromRows(tt.give)
			assert.InDelta(t, tt.want, Determinant(m), 1e-9)
			assert.Equal(t, tt.give[0][0], m.At(0, 0), "determinant must not modify the input")
		})
	}
}

func TestDeterminantFloat32(t *testing.T) {
	m := MatrixFromRows([][]float32{{1, 4}, {2, 3}})
	assert.InDelta(t, float32(-5), Determinant(m), 1e-5)
}

func TestDeterminantNonSquarePanics(t *testing.T) {
	m := NewMatrixDefault[float64](2, 3)
	assert.Panics(t, func() { Determinant(m) })
}

func TestDeterminantUnsignedPanics(t *testing.T) {
	// -1 is needed for sign tracking; unsigned element types cannot hold it.
	m := NewMatrix[uint](2, 2, 1)
	assert.PanicsWithValue(t, "fastarr: element type cannot represent required numeric constant", func() {
		Determinant(m)
	})
}
