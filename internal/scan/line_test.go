package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIndent(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		tab    int
		indent int
	}{
		{name: "no indent", text: "x := 1", indent: 0},
		{name: "spaces", text: "    x := 1", indent: 4},
		{name: "tab default width", text: "\tx := 1", indent: 8},
		{name: "tab width 4", text: "\tx := 1", tab: 4, indent: 4},
		{name: "space then tab aligns to stop", text: "  \tx := 1", indent: 8},
		{name: "tab then spaces", text: "\t  x := 1", indent: 10},
		{name: "mixed width 4", text: " \t x := 1", tab: 4, indent: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classifier{TabWidth: tt.tab}
			line := c.Classify(1, tt.text, 0)
			assert.Equal(t, tt.indent, line.Indent)
			assert.False(t, line.Blank)
			assert.False(t, line.Preproc)
		})
	}
}

func TestClassifyBlank(t *testing.T) {
	c := Classifier{}
	for _, text := range []string{"", "   ", "\t", " \t "} {
		line := c.Classify(7, text, 4)
		assert.True(t, line.Blank, "%q should be blank", text)
		assert.Equal(t, 7, line.Number)
	}
}

func TestClassifyPreprocessor(t *testing.T) {
	c := Classifier{IgnorePreprocessor: true}

	line := c.Classify(3, "#ifdef FOO", 12)
	assert.True(t, line.Preproc)
	// Preprocessor lines adopt the current top-of-stack indentation so they
	// neither push nor pop the context.
	assert.Equal(t, 12, line.Indent)

	line = c.Classify(4, "  #pragma once", 8)
	assert.True(t, line.Preproc)
	assert.Equal(t, 8, line.Indent)
}

func TestClassifyPreprocessorDisabled(t *testing.T) {
	c := Classifier{IgnorePreprocessor: false}
	line := c.Classify(3, "#ifdef FOO", 12)
	assert.False(t, line.Preproc)
	assert.Equal(t, 0, line.Indent)
}

func TestTrimmed(t *testing.T) {
	l := Line{Text: " \t if x:"}
	assert.Equal(t, "if x:", l.Trimmed())
}
