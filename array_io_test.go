package fastarr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestNewFromFile(t *testing.T) {
	content := []byte("hello fastarr")
	path := writeTempFile(t, content)

	a, err := NewFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, len(content), a.Len())
	assert.Equal(t, content, a.Data())
}

func TestNewFromFileMissing(t *testing.T) {
	_, err := NewFromFile(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewFromFileEmpty(t *testing.T) {
	path := writeTempFile(t, nil)
	_, err := NewFromFile(path)
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestFillFromFile(t *testing.T) {
	path := writeTempFile(t, []byte{1, 2, 3, 4, 5})

	a := NewDefault[byte](5)
	n, err := FillFromFile(a, path)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, a.Data())
}

func TestFillFromFileShortFile(t *testing.T) {
	path := writeTempFile(t, []byte{9, 8})

	a := New[byte](4, 0xFF)
	n, err := FillFromFile(a, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{9, 8, 0xFF, 0xFF}, a.Data(), "slots past the file keep their contents")
}

func TestFillFromFileLongFile(t *testing.T) {
	path := writeTempFile(t, []byte{1, 2, 3, 4, 5, 6})

	a := NewDefault[byte](3)
	n, err := FillFromFile(a, path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte{1, 2, 3}, a.Data())
}

func TestFillFromFileMissing(t *testing.T) {
	a := NewDefault[byte](4)
	_, err := FillFromFile(a, filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
