package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomicCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "Rectangle.json")

	require.NoError(t, WriteFileAtomic(path, []byte("{}"), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestWriteFileAtomicOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Rectangle.json")
	require.NoError(t, WriteFileAtomic(path, []byte("old"), 0644))
	require.NoError(t, WriteFileAtomic(path, []byte("new"), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestGzipRoundTrip(t *testing.T) {
	original := []byte(`{"id": "Rectangle"}`)

	compressed, err := GzipCompress("Rectangle.json", original)
	require.NoError(t, err)

	decompressed, err := GzipDecompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, decompressed)
}
