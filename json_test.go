package fastarr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayMarshalJSON(t *testing.T) {
	a := FromValues(1, 2, 3)
	b, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, "[1,2,3]", string(b))
}

func TestArrayUnmarshalJSON(t *testing.T) {
	var a Array[float64]
	require.NoError(t, json.Unmarshal([]byte("[1.5, 2.5, 3.5]"), &a))

	assert.Equal(t, 3, a.Len())
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, a.Data())
}

func TestArrayJSONRoundTrip(t *testing.T) {
	a := NewFromFunc(10, func(i int) int { return i * i })

	b, err := json.Marshal(a)
	require.NoError(t, err)

	var got Array[int]
	require.NoError(t, json.Unmarshal(b, &got))
	assert.True(t, Equal(a, &got))
}

func TestArrayUnmarshalEmpty(t *testing.T) {
	var a Array[int]
	err := json.Unmarshal([]byte("[]"), &a)
	assert.ErrorIs(t, err, ErrEmptySequence)
}

func TestArrayUnmarshalMalformed(t *testing.T) {
	var a Array[int]
	assert.Error(t, json.Unmarshal([]byte(`{"not": "an array"}`), &a))
}

func TestMatrixMarshalJSON(t *testing.T) {
	m := MatrixFromRows([][]int{
		{1, 2},
		{3, 4},
	})
	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, "[[1,2],[3,4]]", string(b))
}

func TestMatrixJSONRoundTrip(t *testing.T) {
	m := NewMatrixFromFunc(3, 5, func(r, c int) float32 { return float32(r) + float32(c)/10 })

	b, err := json.Marshal(m)
	require.NoError(t, err)

	var got Matrix[float32]
	require.NoError(t, json.Unmarshal(b, &got))
	assert.True(t, MatrixEqual(m, &got))
}

func TestMatrixUnmarshalInvalid(t *testing.T) {
	var m Matrix[int]

	err := json.Unmarshal([]byte("[]"), &m)
	assert.ErrorIs(t, err, ErrEmptySequence)

	err = json.Unmarshal([]byte("[[]]"), &m)
	assert.ErrorIs(t, err, ErrEmptySequence)

	err = json.Unmarshal([]byte("[[1,2],[3]]"), &m)
	var ragged *ErrRaggedRows
	require.ErrorAs(t, err, &ragged)
	assert.Equal(t, 1, ragged.Row)
	assert.Equal(t, 2, ragged.Expected)
	assert.Equal(t, 1, ragged.Actual)
}
