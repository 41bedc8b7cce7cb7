// Package pipeline orchestrates source → engine → sinks for each input
// file. Every file scan owns an independent engine; no state crosses file
// boundaries.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"ogrep/internal/emit"
	"ogrep/internal/match"
	"ogrep/internal/monitor"
	"ogrep/internal/outline"
	"ogrep/internal/scan"
	"ogrep/internal/source"
)

// ErrConfigConflict reports contradictory configuration. Raised before any
// scanning begins.
var ErrConfigConflict = errors.New("conflicting options")

// Config holds the pipeline configuration. Built once by the CLI and
// treated as immutable afterwards.
type Config struct {
	Matcher            match.Matcher
	Branches           outline.BranchSet
	SmartBranches      bool
	TabWidth           int
	IgnorePreprocessor bool

	Before int
	After  int

	Breaks   bool
	Ellipsis bool
	Children bool

	Sinks []emit.Sink
	Stats *monitor.Stats
}

// Validate checks the configuration for conflicts. Fails fast, before any
// input is read.
func (c *Config) Validate() error {
	if c.Matcher == nil {
		return fmt.Errorf("%w: a matcher is required", ErrConfigConflict)
	}
	if len(c.Sinks) == 0 {
		return fmt.Errorf("%w: at least one sink is required", ErrConfigConflict)
	}
	if c.Before < 0 || c.After < 0 {
		return fmt.Errorf("%w: context sizes must not be negative", ErrConfigConflict)
	}
	if c.Children && c.Ellipsis {
		return fmt.Errorf("%w: --children prints contiguous subtrees, --ellipsis marks skipped lines", ErrConfigConflict)
	}
	return nil
}

func (c *Config) engineConfig() outline.Config {
	return outline.Config{
		Matcher:            c.Matcher,
		Branches:           c.Branches,
		SmartBranches:      c.SmartBranches,
		TabWidth:           c.TabWidth,
		IgnorePreprocessor: c.IgnorePreprocessor,
		Before:             c.Before,
		After:              c.After,
		Breaks:             c.Breaks,
		Ellipsis:           c.Ellipsis,
		Children:           c.Children,
	}
}

// fanout delivers engine output to every configured sink.
type fanout []emit.Sink

func (f fanout) PrintLine(line scan.Line, spans []match.Span, isMatch bool) error {
	for _, s := range f {
		if err := s.PrintLine(line, spans, isMatch); err != nil {
			return fmt.Errorf("write to %s: %w", s.Name(), err)
		}
	}
	return nil
}

func (f fanout) Break(kind outline.BreakKind, skipped int) error {
	for _, s := range f {
		if err := s.Break(kind, skipped); err != nil {
			return fmt.Errorf("write to %s: %w", s.Name(), err)
		}
	}
	return nil
}

// Run scans a single source through a fresh engine. It reports whether at
// least one line matched. A source read error aborts the scan with pending
// output discarded; the caller decides whether to continue with other
// files.
func Run(ctx context.Context, cfg *Config, src source.Source) (bool, error) {
	for _, s := range cfg.Sinks {
		if err := s.BeginFile(src.Name()); err != nil {
			return false, fmt.Errorf("pipeline: begin %s: %w", s.Name(), err)
		}
	}

	eng := outline.NewEngine(cfg.engineConfig(), fanout(cfg.Sinks))

	ch, err := src.Start(ctx)
	if err != nil {
		return false, err
	}

	number := 0
	for text := range ch {
		number++
		if cfg.Stats != nil {
			cfg.Stats.RecordLine()
		}
		if err := eng.ProcessLine(number, text); err != nil {
			return eng.Matched(), fmt.Errorf("pipeline: %w", err)
		}
	}

	if err := src.Err(); err != nil {
		// Abandon the file: pending trailing context is dropped, never
		// flushed, so no partial group reaches the sinks.
		return eng.Matched(), err
	}

	if err := eng.End(); err != nil {
		return eng.Matched(), fmt.Errorf("pipeline: %w", err)
	}
	if cfg.Stats != nil {
		cfg.Stats.AddMatches(uint64(eng.Matches()))
	}
	return eng.Matched(), nil
}
