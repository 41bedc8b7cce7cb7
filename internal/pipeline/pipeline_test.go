package pipeline

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ogrep/internal/emit"
	"ogrep/internal/match"
	"ogrep/internal/monitor"
	"ogrep/internal/outline"
	"ogrep/internal/source"
)

func testConfig(t *testing.T, pattern string, buf *bytes.Buffer) *Config {
	t.Helper()
	m, err := match.New(match.Options{Pattern: pattern})
	require.NoError(t, err)
	return &Config{
		Matcher:            m,
		Branches:           outline.DefaultBranches(),
		SmartBranches:      true,
		IgnorePreprocessor: true,
		Sinks:              []emit.Sink{emit.NewTerminalSink(buf, emit.PlainStyles(), emit.FilenameNone)},
		Stats:              monitor.NewStats(),
	}
}

func TestRunEndToEnd(t *testing.T) {
	input := strings.Join([]string{
		"def outer():",
		"    def inner():",
		"        pass",
		"        needle()",
	}, "\n")

	var buf bytes.Buffer
	cfg := testConfig(t, "needle", &buf)

	matched, err := Run(context.Background(), cfg, source.FromReader("test", strings.NewReader(input)))
	require.NoError(t, err)
	assert.True(t, matched)

	assert.Equal(t,
		"   1: def outer():\n"+
			"   2:     def inner():\n"+
			"   4:         needle()\n",
		buf.String())

	assert.Equal(t, uint64(4), cfg.Stats.Total())
	assert.Equal(t, uint64(1), cfg.Stats.Matched())
}

func TestRunNoMatch(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(t, "absent", &buf)

	matched, err := Run(context.Background(), cfg, source.FromReader("test", strings.NewReader("a\nb\n")))
	require.NoError(t, err)
	assert.False(t, matched)
	assert.Empty(t, buf.String())
}

func TestRunFreshEnginePerSource(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(t, "needle", &buf)

	input := "def f():\n    needle()\n"
	for i := 0; i < 2; i++ {
		_, err := Run(context.Background(), cfg, source.FromReader("test", strings.NewReader(input)))
		require.NoError(t, err)
	}

	// No state crosses the two runs: both print the full outline.
	assert.Equal(t, strings.Repeat("   1: def f():\n   2:     needle()\n", 2), buf.String())
}

func TestValidate(t *testing.T) {
	m, err := match.New(match.Options{Pattern: "x"})
	require.NoError(t, err)
	sinks := []emit.Sink{emit.NewTerminalSink(&bytes.Buffer{}, emit.PlainStyles(), emit.FilenameNone)}

	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{name: "valid", cfg: Config{Matcher: m, Sinks: sinks}, ok: true},
		{name: "missing matcher", cfg: Config{Sinks: sinks}},
		{name: "missing sinks", cfg: Config{Matcher: m}},
		{name: "negative before", cfg: Config{Matcher: m, Sinks: sinks, Before: -1}},
		{name: "children with ellipsis", cfg: Config{Matcher: m, Sinks: sinks, Children: true, Ellipsis: true}},
		{name: "children alone", cfg: Config{Matcher: m, Sinks: sinks, Children: true}, ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrConfigConflict)
			}
		})
	}
}
