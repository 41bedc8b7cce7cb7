package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMatcher(t *testing.T, opts Options) Matcher {
	t.Helper()
	m, err := New(opts)
	require.NoError(t, err)
	return m
}

func TestLiteralSpans(t *testing.T) {
	m := mustMatcher(t, Options{Pattern: "needle"})

	assert.Nil(t, m.Spans("no match here"))
	assert.Equal(t, []Span{{Start: 4, End: 10}}, m.Spans("the needle"))
	assert.Equal(t,
		[]Span{{Start: 0, End: 6}, {Start: 7, End: 13}},
		m.Spans("needle needle"))
}

func TestLiteralIgnoreCase(t *testing.T) {
	m := mustMatcher(t, Options{Pattern: "Needle", IgnoreCase: true})

	// Spans refer to the original text even in fold mode.
	assert.Equal(t, []Span{{Start: 4, End: 10}}, m.Spans("the NEEDLE"))
	assert.Equal(t, []Span{{Start: 0, End: 6}}, m.Spans("needle"))
	assert.Nil(t, m.Spans("needl"))
}

func TestLiteralIgnoreCaseSimpleFold(t *testing.T) {
	m := mustMatcher(t, Options{Pattern: "σ", IgnoreCase: true})
	assert.Equal(t, []Span{{Start: 0, End: 2}}, m.Spans("Σ"))

	// Simple folding over equal-byte-length windows: folds that change
	// byte length are not matched.
	m = mustMatcher(t, Options{Pattern: "ss", IgnoreCase: true})
	assert.Nil(t, m.Spans("ß"))
}

func TestLiteralWholeWord(t *testing.T) {
	m := mustMatcher(t, Options{Pattern: "arena", WholeWord: true})

	assert.Equal(t, []Span{{Start: 0, End: 5}}, m.Spans("arena allocator"))
	assert.Equal(t, []Span{{Start: 4, End: 9}}, m.Spans("the arena."))
	assert.Nil(t, m.Spans("arenas"))
	assert.Nil(t, m.Spans("my_arena"))
	assert.Nil(t, m.Spans("subarena here"))
}

func TestLiteralEmptyPattern(t *testing.T) {
	m := mustMatcher(t, Options{Pattern: ""})
	assert.Equal(t, []Span{{}}, m.Spans("anything"))
	assert.Equal(t, []Span{{}}, m.Spans(""))
}

func TestRegexSpans(t *testing.T) {
	m := mustMatcher(t, Options{Pattern: `fo+`, Regex: true})

	assert.Nil(t, m.Spans("bar"))
	assert.Equal(t, []Span{{Start: 0, End: 4}}, m.Spans("fooo"))
	assert.Equal(t,
		[]Span{{Start: 0, End: 2}, {Start: 3, End: 6}},
		m.Spans("fo foo"))
}

func TestRegexWholeWordIgnoreCase(t *testing.T) {
	m := mustMatcher(t, Options{Pattern: "if", Regex: true, WholeWord: true, IgnoreCase: true})

	assert.Equal(t, []Span{{Start: 0, End: 2}}, m.Spans("IF (x) {"))
	assert.Nil(t, m.Spans("diff"))
	assert.Nil(t, m.Spans("ifdef"))
}

func TestRegexInvalidPattern(t *testing.T) {
	_, err := New(Options{Pattern: "(", Regex: true})
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestMatcherNames(t *testing.T) {
	lit := mustMatcher(t, Options{Pattern: "x"})
	re := mustMatcher(t, Options{Pattern: "x", Regex: true})
	assert.Equal(t, "literal:x", lit.Name())
	assert.Equal(t, "regex:x", re.Name())
}
