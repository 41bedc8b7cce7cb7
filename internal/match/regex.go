package match

import (
	"fmt"
	"regexp"
)

// RegexMatcher matches lines against a pre-compiled regular expression.
// The regex is compiled once at construction, eliminating per-line
// compilation overhead.
type RegexMatcher struct {
	pattern string
	re      *regexp.Regexp
}

func newRegexMatcher(opts Options) (*RegexMatcher, error) {
	p := opts.Pattern
	if opts.WholeWord {
		p = `\b(?:` + p + `)\b`
	}
	if opts.IgnoreCase {
		p = `(?i)` + p
	}
	re, err := regexp.Compile(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return &RegexMatcher{pattern: opts.Pattern, re: re}, nil
}

// Spans returns the spans of all matches of the regex in text.
func (m *RegexMatcher) Spans(text string) []Span {
	locs := m.re.FindAllStringIndex(text, -1)
	if locs == nil {
		return nil
	}
	spans := make([]Span, len(locs))
	for i, loc := range locs {
		spans[i] = Span{Start: loc[0], End: loc[1]}
	}
	return spans
}

// Name returns the matcher description.
func (m *RegexMatcher) Name() string {
	return "regex:" + m.pattern
}
