package emit

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ogrep/internal/match"
	"ogrep/internal/outline"
	"ogrep/internal/scan"
)

func TestTerminalLineFormat(t *testing.T) {
	var buf bytes.Buffer
	s := NewTerminalSink(&buf, PlainStyles(), FilenameNone)

	require.NoError(t, s.PrintLine(scan.Line{Number: 3, Text: "def f():"}, nil, false))
	require.NoError(t, s.PrintLine(
		scan.Line{Number: 12, Text: "    needle()"},
		[]match.Span{{Start: 4, End: 10}}, true))

	assert.Equal(t, "   3: def f():\n  12:     needle()\n", buf.String())
}

func TestTerminalBreaks(t *testing.T) {
	var buf bytes.Buffer
	s := NewTerminalSink(&buf, PlainStyles(), FilenameNone)

	require.NoError(t, s.Break(outline.BreakBlank, 0))
	require.NoError(t, s.Break(outline.BreakEllipsis, 1))
	require.NoError(t, s.Break(outline.BreakEllipsis, 42))

	assert.Equal(t, "\n   … 1 line\n   … 42 lines\n", buf.String())
}

func TestTerminalPerFileHeader(t *testing.T) {
	var buf bytes.Buffer
	s := NewTerminalSink(&buf, PlainStyles(), FilenamePerFile)

	// A file with no output prints no header.
	require.NoError(t, s.BeginFile("empty.go"))

	require.NoError(t, s.BeginFile("a.go"))
	require.NoError(t, s.PrintLine(scan.Line{Number: 1, Text: "x"}, nil, true))
	require.NoError(t, s.BeginFile("b.go"))
	require.NoError(t, s.PrintLine(scan.Line{Number: 2, Text: "y"}, nil, true))

	assert.Equal(t, "a.go\n\n   1: x\n\nb.go\n\n   2: y\n", buf.String())
}

func TestTerminalPerLinePrefix(t *testing.T) {
	var buf bytes.Buffer
	s := NewTerminalSink(&buf, PlainStyles(), FilenamePerLine)

	require.NoError(t, s.BeginFile("src/a.go"))
	require.NoError(t, s.PrintLine(scan.Line{Number: 7, Text: "x"}, nil, false))

	assert.Equal(t, "src/a.go:   7: x\n", buf.String())
}

func TestJSONSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewJSONSink(&buf)

	require.NoError(t, s.BeginFile("a.go"))
	require.NoError(t, s.PrintLine(
		scan.Line{Number: 5, Text: "needle()"},
		[]match.Span{{Start: 0, End: 6}}, true))
	require.NoError(t, s.Break(outline.BreakEllipsis, 3))
	require.NoError(t, s.Break(outline.BreakBlank, 0))

	assert.Equal(t,
		`{"file":"a.go","line":5,"text":"needle()","match":true,"spans":[{"start":0,"end":6}]}`+"\n"+
			`{"break":"ellipsis","skipped":3}`+"\n"+
			`{"break":"blank"}`+"\n",
		buf.String())
}
