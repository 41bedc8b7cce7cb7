package match

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// LiteralMatcher finds occurrences of a fixed string. Case-insensitive mode
// compares equal-byte-length windows under Unicode simple folding, so span
// positions stay valid for the original text; folds that change byte length
// (ß against SS, the Kelvin sign against k) are not matched.
type LiteralMatcher struct {
	needle string
	word   bool
	fold   bool
}

func newLiteralMatcher(opts Options) *LiteralMatcher {
	return &LiteralMatcher{
		needle: opts.Pattern,
		word:   opts.WholeWord,
		fold:   opts.IgnoreCase,
	}
}

// Spans returns the spans of all occurrences of the needle in text.
func (m *LiteralMatcher) Spans(text string) []Span {
	n := len(m.needle)
	if n == 0 {
		// An empty pattern matches every line at position zero.
		return []Span{{}}
	}

	var spans []Span
	for i := 0; i+n <= len(text); {
		if !m.fold {
			j := strings.Index(text[i:], m.needle)
			if j < 0 {
				break
			}
			i += j
		} else if !strings.EqualFold(text[i:i+n], m.needle) {
			i++
			continue
		}
		if m.word && !wordBounded(text, i, i+n) {
			i++
			continue
		}
		spans = append(spans, Span{Start: i, End: i + n})
		i += n
	}
	return spans
}

// Name returns the matcher description.
func (m *LiteralMatcher) Name() string {
	return "literal:" + m.needle
}

// wordBounded reports whether the characters immediately around
// text[start:end] are not word characters. Start and end of line satisfy
// this trivially.
func wordBounded(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
