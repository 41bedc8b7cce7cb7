package emit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"ogrep/internal/match"
	"ogrep/internal/outline"
	"ogrep/internal/scan"
)

// jsonLine is the serialization format for emitted lines (JSON Lines, one
// object per line).
type jsonLine struct {
	File  string     `json:"file,omitempty"`
	Line  int        `json:"line"`
	Text  string     `json:"text"`
	Match bool       `json:"match"`
	Spans []jsonSpan `json:"spans,omitempty"`
}

type jsonSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// jsonBreak is the serialization format for group separators.
type jsonBreak struct {
	Break   string `json:"break"`
	Skipped int    `json:"skipped,omitempty"`
}

// JSONSink writes the output stream as JSON Lines.
type JSONSink struct {
	w    io.Writer
	enc  *json.Encoder
	file string
}

// NewJSONSink creates a JSON Lines sink writing to w. If w is nil,
// os.Stdout is used.
func NewJSONSink(w io.Writer) *JSONSink {
	if w == nil {
		w = os.Stdout
	}
	return &JSONSink{w: w, enc: json.NewEncoder(w)}
}

// BeginFile records the filename attached to subsequent records.
func (s *JSONSink) BeginFile(name string) error {
	s.file = name
	return nil
}

// PrintLine serializes one emitted line.
func (s *JSONSink) PrintLine(line scan.Line, spans []match.Span, isMatch bool) error {
	jl := jsonLine{
		File:  s.file,
		Line:  line.Number,
		Text:  line.Text,
		Match: isMatch,
	}
	for _, sp := range spans {
		jl.Spans = append(jl.Spans, jsonSpan{Start: sp.Start, End: sp.End})
	}
	return s.enc.Encode(jl)
}

// Break serializes a group separator.
func (s *JSONSink) Break(kind outline.BreakKind, skipped int) error {
	jb := jsonBreak{Break: "blank"}
	if kind == outline.BreakEllipsis {
		jb = jsonBreak{Break: "ellipsis", Skipped: skipped}
	}
	return s.enc.Encode(jb)
}

// Flush is a no-op for JSON sink.
func (s *JSONSink) Flush() error { return nil }

// Close is a no-op for JSON sink.
func (s *JSONSink) Close() error { return nil }

// Name returns the sink identifier.
func (s *JSONSink) Name() string { return "json" }

// FileSink writes results to a file instead of the terminal.
type FileSink struct {
	inner Sink
	file  *os.File
}

// NewFileSink creates a sink that writes to the given path. The format
// parameter selects the inner formatter: "json" or "text" (default).
func NewFileSink(path string, format string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("open output file %s: %w", path, err)
	}

	var inner Sink
	switch format {
	case "json":
		inner = NewJSONSink(f)
	default:
		inner = NewTerminalSink(f, PlainStyles(), FilenamePerFile)
	}
	return &FileSink{inner: inner, file: f}, nil
}

// BeginFile delegates to the inner sink.
func (s *FileSink) BeginFile(name string) error { return s.inner.BeginFile(name) }

// PrintLine delegates to the inner sink.
func (s *FileSink) PrintLine(line scan.Line, spans []match.Span, isMatch bool) error {
	return s.inner.PrintLine(line, spans, isMatch)
}

// Break delegates to the inner sink.
func (s *FileSink) Break(kind outline.BreakKind, skipped int) error {
	return s.inner.Break(kind, skipped)
}

// Flush syncs the file to disk.
func (s *FileSink) Flush() error { return s.file.Sync() }

// Close flushes and closes the file.
func (s *FileSink) Close() error {
	if err := s.Flush(); err != nil {
		return err
	}
	return s.file.Close()
}

// Name returns the sink identifier.
func (s *FileSink) Name() string { return "file:" + s.file.Name() }
