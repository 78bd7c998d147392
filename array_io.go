package fastarr

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// FillFromFile reads up to a.Len() bytes of the file at path into the
// array, starting at slot 0, and returns the number of bytes read. Unlike
// the container preconditions, file problems are environmental: they are
// returned, never fatal.
func FillFromFile(a *Array[byte], path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("fastarr: open %s: %w", path, err)
	}
	defer f.Close()

	n, err := io.ReadFull(bufio.NewReader(f), a.Data())
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("fastarr: read %s: %w", path, err)
	}
	return n, nil
}

// NewFromFile creates a byte Array sized to the file at path and fills it
// with the file's contents.
func NewFromFile(path string) (*Array[byte], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fastarr: open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("fastarr: stat %s: %w", path, err)
	}
	size := int(info.Size())
	if size == 0 {
		return nil, fmt.Errorf("fastarr: %s: %w", path, ErrEmptyFile)
	}

	a := NewUninit[byte](size)
	if _, err := io.ReadFull(bufio.NewReader(f), a.Data()); err != nil {
		a.Release()
		return nil, fmt.Errorf("fastarr: read %s: %w", path, err)
	}
	return a, nil
}
