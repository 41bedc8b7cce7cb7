// Package emit renders the engine's output stream to its destinations.
package emit

import (
	"ogrep/internal/outline"
)

// Sink receives emitted lines and breaks and writes them to an output
// destination. It extends outline.Printer with per-file and lifecycle
// hooks.
type Sink interface {
	outline.Printer

	// BeginFile announces the file about to be scanned. Sinks that print
	// filenames do so lazily, on the file's first emitted line.
	BeginFile(name string) error

	// Flush ensures all buffered output is written.
	Flush() error

	// Close releases resources held by the sink.
	Close() error

	// Name returns a human-readable identifier for this sink.
	Name() string
}

// FilenameMode controls when the terminal sink prints filenames.
type FilenameMode int

const (
	// FilenameNone never prints filenames.
	FilenameNone FilenameMode = iota
	// FilenamePerFile prints the filename once before a file's first match.
	FilenamePerFile
	// FilenamePerLine prefixes every printed line with the filename.
	FilenamePerLine
)

var (
	_ Sink = (*TerminalSink)(nil)
	_ Sink = (*JSONSink)(nil)
	_ Sink = (*FileSink)(nil)
)
