// Package scan defines the Line type and the indentation classifier used
// throughout the ogrep pipeline.
package scan

import "strings"

// Line is one classified input line. Created once per line and treated as
// immutable afterwards.
type Line struct {
	Number  int    // 1-indexed position in the input
	Text    string // raw text without the trailing newline
	Indent  int    // width of leading whitespace, tabs expanded; meaningless when Blank
	Blank   bool   // line contains only whitespace
	Preproc bool   // line is a preprocessor instruction exempted from ancestry
}

// Trimmed returns the text without leading spaces and tabs.
func (l Line) Trimmed() string {
	return strings.TrimLeft(l.Text, " \t")
}

// Classifier computes each line's nesting depth and blank/preprocessor status.
type Classifier struct {
	// TabWidth is the number of columns a tab advances to. Zero means 8.
	TabWidth int

	// IgnorePreprocessor exempts lines starting with '#' from ancestry:
	// they report the current top-of-stack indentation so they neither
	// push nor pop the context stack.
	IgnorePreprocessor bool
}

// Classify annotates one raw input line. topIndent is the indentation of the
// current top of the context stack; preprocessor lines report it as their
// own, since such lines are often written without indentation and would
// otherwise break the context.
func (c Classifier) Classify(number int, text string, topIndent int) Line {
	tab := c.TabWidth
	if tab <= 0 {
		tab = 8
	}

	indent, i := 0, 0
scan:
	for ; i < len(text); i++ {
		switch text[i] {
		case ' ':
			indent++
		case '\t':
			indent += tab - indent%tab
		default:
			break scan
		}
	}

	if i == len(text) {
		return Line{Number: number, Text: text, Blank: true}
	}

	line := Line{Number: number, Text: text, Indent: indent}
	if c.IgnorePreprocessor && text[i] == '#' {
		line.Preproc = true
		line.Indent = topIndent
	}
	return line
}
