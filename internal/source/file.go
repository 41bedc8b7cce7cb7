package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// FileSource reads lines from a file.
type FileSource struct {
	path string
	err  atomic.Pointer[error]
}

// NewFileSource creates a source that reads from the file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the file path.
func (s *FileSource) Name() string { return s.path }

// Err returns the first read error, or nil.
func (s *FileSource) Err() error {
	if p := s.err.Load(); p != nil {
		return *p
	}
	return nil
}

// Start opens the file and returns a channel of lines.
func (s *FileSource) Start(ctx context.Context) (<-chan string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	ch := make(chan string, 256)
	go func() {
		defer close(ch)
		defer f.Close()
		if err := scanLines(ctx, f, ch); err != nil {
			wrapped := fmt.Errorf("%w: %s: %v", ErrRead, s.path, err)
			s.err.Store(&wrapped)
		}
	}()
	return ch, nil
}

// scanLines pumps lines from r into ch until EOF, error, or cancellation.
func scanLines(ctx context.Context, r io.Reader, ch chan<- string) error {
	scanner := bufio.NewScanner(r)
	// Increase buffer size to 1MB for long lines.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ch <- scanner.Text():
		}
	}
	return scanner.Err()
}
