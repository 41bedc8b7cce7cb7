package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// StdinSource reads lines from os.Stdin (pipe mode).
type StdinSource struct {
	err atomic.Pointer[error]
}

// NewStdinSource creates a source that reads from stdin.
func NewStdinSource() *StdinSource {
	return &StdinSource{}
}

// Name returns the source identifier.
func (s *StdinSource) Name() string { return "(standard input)" }

// Err returns the first read error, or nil.
func (s *StdinSource) Err() error {
	if p := s.err.Load(); p != nil {
		return *p
	}
	return nil
}

// Start reads from stdin and returns a channel of lines.
func (s *StdinSource) Start(ctx context.Context) (<-chan string, error) {
	ch := make(chan string, 256)
	go func() {
		defer close(ch)
		if err := scanLines(ctx, os.Stdin, ch); err != nil {
			wrapped := fmt.Errorf("%w: stdin: %v", ErrRead, err)
			s.err.Store(&wrapped)
		}
	}()
	return ch, nil
}

// ReaderSource reads lines from an arbitrary io.Reader. Used by tests and
// by callers that already hold an open stream.
type ReaderSource struct {
	name string
	r    io.Reader
	err  atomic.Pointer[error]
}

// FromReader creates a source reading from r, identified by name.
func FromReader(name string, r io.Reader) *ReaderSource {
	return &ReaderSource{name: name, r: r}
}

// Name returns the source identifier.
func (s *ReaderSource) Name() string { return s.name }

// Err returns the first read error, or nil.
func (s *ReaderSource) Err() error {
	if p := s.err.Load(); p != nil {
		return *p
	}
	return nil
}

// Start reads from the wrapped reader and returns a channel of lines.
func (s *ReaderSource) Start(ctx context.Context) (<-chan string, error) {
	ch := make(chan string, 256)
	go func() {
		defer close(ch)
		if err := scanLines(ctx, s.r, ch); err != nil {
			wrapped := fmt.Errorf("%w: %s: %v", ErrRead, s.name, err)
			s.err.Store(&wrapped)
		}
	}()
	return ch, nil
}
