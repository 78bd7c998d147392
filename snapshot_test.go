package fastarr

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fastarr/codec"
)

func TestArraySnapshotRoundTrip(t *testing.T) {
	a := NewFromFunc(100, func(i int) int { return i * 3 })

	var buf bytes.Buffer
	require.NoError(t, a.WriteSnapshot(&buf))

	got, err := ReadArraySnapshot[int](&buf)
	require.NoError(t, err)
	assert.True(t, Equal(a, got))
}

func TestArraySnapshotCompression(t *testing.T) {
	tests := []struct {
		name        string
		compression codec.Compression
	}{
		{name: "none", compression: codec.CompressionNone},
		{name: "lz4", compression: codec.CompressionLZ4},
		{name: "zstd", compression: codec.CompressionZSTD},
	}

	// Repetitive contents so the compressed branches actually trigger.
	a := NewFromFunc(4096, func(i int) int { return i % 4 })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := a.WriteSnapshot(&buf, func(o *codec.SnapshotOptions) {
				o.Compression = tt.compression
			})
			require.NoError(t, err)

			got, err := ReadArraySnapshot[int](&buf)
			require.NoError(t, err)
			assert.True(t, Equal(a, got))
		})
	}
}

func TestArraySnapshotCodecSelection(t *testing.T) {
	a := FromValues(1.5, 2.5)

	var buf bytes.Buffer
	err := a.WriteSnapshot(&buf, func(o *codec.SnapshotOptions) {
		o.Codec = codec.JSON{}
	})
	require.NoError(t, err)

	// The frame names the codec, so the reader needs no configuration.
	got, err := ReadArraySnapshot[float64](&buf)
	require.NoError(t, err)
	assert.True(t, Equal(a, got))
}

func TestMatrixSnapshotRoundTrip(t *testing.T) {
	m := NewMatrixFromFunc(8, 13, func(r, c int) float64 { return float64(r*13 + c) })

	var buf bytes.Buffer
	require.NoError(t, m.WriteSnapshot(&buf, func(o *codec.SnapshotOptions) {
		o.Compression = codec.CompressionZSTD
	}))

	got, err := ReadMatrixSnapshot[float64](&buf)
	require.NoError(t, err)
	assert.True(t, MatrixEqual(m, got))
}

func TestReadSnapshotBadMagic(t *testing.T) {
	_, err := ReadArraySnapshot[int](bytes.NewReader([]byte("BOGUS DATA HERE")))
	assert.Error(t, err)
}

func TestReadSnapshotTruncated(t *testing.T) {
	a := FromValues(1, 2, 3)
	var buf bytes.Buffer
	require.NoError(t, a.WriteSnapshot(&buf))

	frame := buf.Bytes()
	_, err := ReadArraySnapshot[int](bytes.NewReader(frame[:len(frame)-2]))
	assert.Error(t, err)
}
