package fastarr

import (
	"io"

	"github.com/hupe1980/fastarr/codec"
)

// WriteSnapshot writes a self-describing snapshot of the array to w. The
// frame records the codec name, so ReadArraySnapshot can decode it without
// out-of-band knowledge.
func (a *Array[T]) WriteSnapshot(w io.Writer, optFns ...func(o *codec.SnapshotOptions)) error {
	a.live()
	return codec.Write(w, a, optFns...)
}

// ReadArraySnapshot decodes an array snapshot previously written with
// WriteSnapshot.
func ReadArraySnapshot[T any](r io.Reader) (*Array[T], error) {
	var a Array[T]
	if err := codec.Read(r, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// WriteSnapshot writes a self-describing snapshot of the matrix to w.
func (m *Matrix[T]) WriteSnapshot(w io.Writer, optFns ...func(o *codec.SnapshotOptions)) error {
	m.live()
	return codec.Write(w, m, optFns...)
}

// ReadMatrixSnapshot decodes a matrix snapshot previously written with
// WriteSnapshot.
func ReadMatrixSnapshot[T any](r io.Reader) (*Matrix[T], error) {
	var m Matrix[T]
	if err := codec.Read(r, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
