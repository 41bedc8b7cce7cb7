// Package source defines the Source interface and the line sources feeding
// the scan pipeline.
package source

import (
	"context"
	"errors"
)

// ErrRead reports an I/O failure while reading a source. A read failure
// aborts the current file's scan but is non-fatal for the run as a whole.
var ErrRead = errors.New("read failed")

// Source reads raw text lines from an input and emits them on a channel,
// in order, none omitted. Implementations must close the channel when the
// source is exhausted, an error occurs, or the context is cancelled;
// callers check Err after the channel closes, mirroring bufio.Scanner.
type Source interface {
	// Start begins reading. The returned channel receives raw lines
	// without trailing newlines and is closed when reading stops.
	Start(ctx context.Context) (<-chan string, error)

	// Err returns the first error encountered while reading, or nil.
	// Only valid after the channel returned by Start has been drained.
	Err() error

	// Name returns a human-readable identifier for this source.
	Name() string
}
