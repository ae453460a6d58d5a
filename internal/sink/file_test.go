package sink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileSinkWriteFlushRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patrones.log")
	s, err := File(path)
	require.NoError(t, err)
	require.Equal(t, path, s.Name())

	_, err = s.Write([]byte("1\t[ERROR]\n\tboom\n"))
	require.NoError(t, err)

	// El contenido llega al archivo recién con Flush (escritura buffereada).
	require.NoError(t, s.Flush())
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "1\t[ERROR]\n\tboom\n", string(b))

	require.NoError(t, s.Close())
}

func TestFileSinkAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patrones.log")

	s, err := File(path)
	require.NoError(t, err)
	_, err = s.Write([]byte("primera\n"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = File(path)
	require.NoError(t, err)
	_, err = s.Write([]byte("segunda\n"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "primera\nsegunda\n", string(b))
}

func TestFileSinkClosedOperations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patrones.log")
	s, err := File(path)
	require.NoError(t, err)

	require.NoError(t, s.Close())
	// Close es idempotente; el resto reporta ErrClosed.
	require.NoError(t, s.Close())
	_, err = s.Write([]byte("late"))
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorIs(t, s.Flush(), ErrClosed)
}

func TestFileSinkBadPath(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "no", "such", "dir", "x.log"))
	require.Error(t, err)
}
