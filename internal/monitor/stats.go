// Package monitor provides statistics collection for the scan pipeline.
package monitor

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Stats collects scan metrics in a lock-free manner.
type Stats struct {
	files        atomic.Uint64
	totalLines   atomic.Uint64
	matchedLines atomic.Uint64
	startTime    time.Time
}

// NewStats creates a new statistics collector.
func NewStats() *Stats {
	return &Stats{startTime: time.Now()}
}

// RecordFile increments the scanned-file counter.
func (s *Stats) RecordFile() {
	s.files.Add(1)
}

// RecordLine increments the total line counter.
func (s *Stats) RecordLine() {
	s.totalLines.Add(1)
}

// AddMatches adds n to the matched line counter.
func (s *Stats) AddMatches(n uint64) {
	s.matchedLines.Add(n)
}

// Files returns the number of scanned files.
func (s *Stats) Files() uint64 {
	return s.files.Load()
}

// Total returns the total number of scanned lines.
func (s *Stats) Total() uint64 {
	return s.totalLines.Load()
}

// Matched returns the total number of matched lines.
func (s *Stats) Matched() uint64 {
	return s.matchedLines.Load()
}

// Elapsed returns the time since the collector was created.
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.startTime)
}

// Rate returns lines scanned per second.
func (s *Stats) Rate() float64 {
	elapsed := s.Elapsed().Seconds()
	if elapsed == 0 {
		return 0
	}
	return float64(s.Total()) / elapsed
}

// Summary returns a formatted summary string.
func (s *Stats) Summary() string {
	return fmt.Sprintf(
		"── Summary ──\n"+
			"  Files scanned: %d\n"+
			"  Total lines:   %d\n"+
			"  Matched lines: %d\n"+
			"  Duration:      %s\n"+
			"  Throughput:    %.0f lines/s\n"+
			"─────────────",
		s.Files(), s.Total(), s.Matched(),
		s.Elapsed().Round(time.Millisecond),
		s.Rate(),
	)
}
