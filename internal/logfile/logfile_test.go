package logfile

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T, maxLines int) *File {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), "logs", "lab.log"), maxLines)
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	return l
}

func writeLines(t *testing.T, l *File, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := l.Write([]byte("line\n"))
		require.NoError(t, err)
	}
}

func TestOpen_InvalidMaxLines(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "lab.log"), 0)
	assert.Error(t, err)
}

func TestCheck_OverCeilingTruncates(t *testing.T) {
	l := openTemp(t, 3)
	writeLines(t, l, 4)

	truncated, err := l.Check()
	require.NoError(t, err)
	assert.True(t, truncated)

	info, err := os.Stat(l.Path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestCheck_BelowCeilingUntouched(t *testing.T) {
	l := openTemp(t, 3)
	writeLines(t, l, 3)

	truncated, err := l.Check()
	require.NoError(t, err)
	assert.False(t, truncated)

	data, err := os.ReadFile(l.Path)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(data), "\n"))
}

func TestCheck_WritesContinueAfterTruncate(t *testing.T) {
	l := openTemp(t, 1)
	writeLines(t, l, 2)
	_, err := l.Check()
	require.NoError(t, err)

	_, err = l.Write([]byte("fresh\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(l.Path)
	require.NoError(t, err)
	assert.Equal(t, "fresh\n", string(data))
}

func TestCheck_FileRemoved(t *testing.T) {
	l := openTemp(t, 1)
	require.NoError(t, os.Remove(l.Path))

	truncated, err := l.Check()
	require.NoError(t, err)
	assert.False(t, truncated)
}

func TestCheck_Unreadable(t *testing.T) {
	l := openTemp(t, 1)
	require.NoError(t, os.Remove(l.Path))
	require.NoError(t, os.Mkdir(l.Path, 0755))

	_, err := l.Check()
	assert.Error(t, err)
}

func TestLogger_OneLinePerEvent(t *testing.T) {
	l := openTemp(t, 100)
	log := l.Logger(slog.LevelInfo)
	log.Info("status fetched", "status", "open")
	log.Debug("hidden")
	log.Warn("submit failed", "status_code", 500)

	data, err := os.ReadFile(l.Path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "time=")
	assert.Contains(t, lines[0], "status=open")
	assert.Contains(t, lines[1], "status_code=500")
}

func TestClose_WriteAfterClose(t *testing.T) {
	l, err := Open(filepath.Join(t.TempDir(), "lab.log"), 5)
	require.NoError(t, err)
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	_, err = l.Write([]byte("x\n"))
	assert.ErrorIs(t, err, os.ErrClosed)
}
