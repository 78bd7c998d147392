package fastarr

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySequence is returned when decoding input that holds no
	// elements; every container in this package has a length of at
	// least one.
	ErrEmptySequence = errors.New("sequence must not be empty")

	// ErrEmptyFile is returned when building an array from a
	// zero-length file.
	ErrEmptyFile = errors.New("file must not be empty")
)

// ErrRaggedRows indicates decoded matrix rows of unequal width.
type ErrRaggedRows struct {
	Row      int
	Expected int
	Actual   int
}

func (e *ErrRaggedRows) Error() string {
	return fmt.Sprintf("ragged rows: row %d has %d columns, expected %d", e.Row, e.Actual, e.Expected)
}
