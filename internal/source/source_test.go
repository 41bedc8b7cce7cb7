package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func collect(t *testing.T, s Source) []string {
	t.Helper()
	ch, err := s.Start(context.Background())
	require.NoError(t, err)
	var lines []string
	for line := range ch {
		lines = append(lines, line)
	}
	return lines
}

func TestReaderSource(t *testing.T) {
	s := FromReader("test", strings.NewReader("one\ntwo\nthree"))

	assert.Equal(t, []string{"one", "two", "three"}, collect(t, s))
	assert.NoError(t, s.Err())
	assert.Equal(t, "test", s.Name())
}

func TestReaderSourceEmpty(t *testing.T) {
	s := FromReader("empty", strings.NewReader(""))
	assert.Empty(t, collect(t, s))
	assert.NoError(t, s.Err())
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\n"), 0644))

	s := NewFileSource(path)
	assert.Equal(t, []string{"a", "b"}, collect(t, s))
	assert.NoError(t, s.Err())
	assert.Equal(t, path, s.Name())
}

func TestFileSourceMissing(t *testing.T) {
	s := NewFileSource(filepath.Join(t.TempDir(), "absent.txt"))
	_, err := s.Start(context.Background())
	assert.ErrorIs(t, err, ErrRead)
}

func TestReaderSourceCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := FromReader("test", strings.NewReader(strings.Repeat("line\n", 10000)))

	ch, err := s.Start(ctx)
	require.NoError(t, err)
	cancel()

	// Drain until the pump notices the cancellation and closes the channel.
	for range ch {
	}
}
