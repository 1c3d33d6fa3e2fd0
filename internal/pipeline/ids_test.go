package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeIDFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ids.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadIDFile(t *testing.T) {
	ids, err := ReadIDFile(writeIDFile(t, "1\n2\n3"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids)
}

func TestReadIDFileTrailingNewline(t *testing.T) {
	ids, err := ReadIDFile(writeIDFile(t, "50\n10\n30\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{50, 10, 30}, ids)
}

func TestReadIDFileBlankLineFails(t *testing.T) {
	_, err := ReadIDFile(writeIDFile(t, "1\n\n3"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ":2:")
}

func TestReadIDFileNonIntegerFails(t *testing.T) {
	_, err := ReadIDFile(writeIDFile(t, "1\ntwo\n3"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"two"`)
}

func TestReadIDFileMissing(t *testing.T) {
	_, err := ReadIDFile(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}

func TestChunkIDs(t *testing.T) {
	cases := []struct {
		name string
		ids  []int
		size int
		want [][]int
	}{
		{name: "empty", ids: nil, size: 20, want: nil},
		{name: "under one chunk", ids: []int{5, 1}, size: 20, want: [][]int{{5, 1}}},
		{name: "exact multiple", ids: []int{1, 2, 3, 4}, size: 2, want: [][]int{{1, 2}, {3, 4}}},
		{name: "remainder chunk keeps input order", ids: []int{50, 10, 30}, size: 2, want: [][]int{{50, 10}, {30}}},
		{name: "non-positive size", ids: []int{1}, size: 0, want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ChunkIDs(tc.ids, tc.size))
		})
	}
}
