package xrotate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLumberjack_WriteAndRotate(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "nested", "xinetctl.log")

	r, err := NewLumberjack(filename, WithMaxSize(1), WithCompress(false), nil)
	require.NoError(t, err)

	_, err = r.Write([]byte("first\n"))
	require.NoError(t, err)
	require.NoError(t, r.Rotate())
	_, err = r.Write([]byte("second\n"))
	require.NoError(t, err)
	require.NoError(t, r.Close())

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(filename))
	require.NoError(t, err)
	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "xinetctl-") {
			backups++
		}
	}
	assert.Equal(t, 1, backups)
}

func TestNewLumberjack_Validation(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a.log")
	tests := []struct {
		name     string
		filename string
		opts     []Option
		want     error
	}{
		{"empty filename", "", nil, ErrEmptyFilename},
		{"zero size", file, []Option{WithMaxSize(0)}, ErrInvalidMaxSize},
		{"huge size", file, []Option{WithMaxSize(maxSizeMB + 1)}, ErrInvalidMaxSize},
		{"negative backups", file, []Option{WithMaxBackups(-1)}, ErrInvalidMaxBackups},
		{"negative age", file, []Option{WithMaxAge(-1)}, ErrInvalidMaxAge},
		{"no cleanup", file, []Option{WithMaxBackups(0), WithMaxAge(0)}, ErrNoCleanupPolicy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLumberjack(tt.filename, tt.opts...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLumberjack_Closed(t *testing.T) {
	r, err := NewLumberjack(filepath.Join(t.TempDir(), "c.log"), WithLocalTime(true))
	require.NoError(t, err)

	require.NoError(t, r.Close())
	assert.ErrorIs(t, r.Close(), ErrClosed)
	_, err = r.Write([]byte("x"))
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, r.Rotate(), ErrClosed)
}
