package pkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type line string

func (l line) String() string { return string(l) }

func TestLineLog(t *testing.T) {
	t.Run("NewLineLog creates the directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "history.txt")

		log, err := NewLineLog[line](path)
		require.NoError(t, err)
		defer log.Close()

		require.Equal(t, path, log.Path())
		_, err = os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("Append writes one line per item", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "h.txt")

		log, err := NewLineLog[line](path)
		require.NoError(t, err)
		defer log.Close()

		require.NoError(t, log.Append("first"))
		require.NoError(t, log.Append("second"))

		lines, err := ReadLines(path)
		require.NoError(t, err)
		require.Equal(t, []string{"first", "second"}, lines)
	})

	t.Run("Len counts appended items", func(t *testing.T) {
		log, err := NewLineLog[line](filepath.Join(t.TempDir(), "h.txt"))
		require.NoError(t, err)
		defer log.Close()

		require.Equal(t, uint64(0), log.Len())
		for _, item := range []line{"a", "b", "c"} {
			require.NoError(t, log.Append(item))
		}
		require.Equal(t, uint64(3), log.Len())
	})

	t.Run("multi-line items stay on one line", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "h.txt")

		log, err := NewLineLog[line](path)
		require.NoError(t, err)
		defer log.Close()

		require.NoError(t, log.Append("a\nb"))
		require.NoError(t, log.Append("c"))
		require.Equal(t, uint64(2), log.Len())

		lines, err := ReadLines(path)
		require.NoError(t, err)
		require.Equal(t, []string{"a b", "c"}, lines)
	})

	t.Run("Close is idempotent", func(t *testing.T) {
		log, err := NewLineLog[line](filepath.Join(t.TempDir(), "h.txt"))
		require.NoError(t, err)

		require.NoError(t, log.Close())
		require.NoError(t, log.Close())
	})
}

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "h.txt")

	log, err := NewLineLog[line](path)
	require.NoError(t, err)
	require.NoError(t, log.Append("one"))
	require.NoError(t, log.Append("two"))
	require.NoError(t, log.Close())

	lines, err := ReadLines(path)
	require.NoError(t, err)
	require.Equal(t, []string{"one", "two"}, lines)

	_, err = ReadLines(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
