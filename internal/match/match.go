// Package match decides whether a line's text matches the search target.
//
// The variability between literal and regular-expression search is modeled
// as a single Matcher capability with two variants; configuration selects
// the variant once at startup, and scanning never inspects options again.
package match

import (
	"errors"
)

// Span marks a matched byte range within a line, start inclusive, end
// exclusive. Positions always refer to the original text, including in
// case-insensitive mode.
type Span struct {
	Start int
	End   int
}

// Matcher reports where a line matches the search target.
type Matcher interface {
	// Spans returns all non-overlapping match spans in order, or nil when
	// the line does not match.
	Spans(text string) []Span

	// Name returns a human-readable description of this matcher.
	Name() string
}

// ErrInvalidPattern reports a malformed pattern. Raised before any scanning
// begins.
var ErrInvalidPattern = errors.New("invalid pattern")

// Options select the matcher variant and its behavior.
type Options struct {
	Pattern    string
	Regex      bool // treat Pattern as a regular expression
	WholeWord  bool // require non-word characters around every match
	IgnoreCase bool
}

// New compiles a Matcher for the given options.
func New(opts Options) (Matcher, error) {
	if opts.Regex {
		return newRegexMatcher(opts)
	}
	return newLiteralMatcher(opts), nil
}
