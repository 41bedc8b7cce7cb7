package emit

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ogrep/internal/match"
	"ogrep/internal/outline"
	"ogrep/internal/scan"
)

// Styles groups the lipgloss styles used for terminal rendering. The zero
// value renders everything unstyled.
type Styles struct {
	Filename lipgloss.Style
	Context  lipgloss.Style
	Match    lipgloss.Style
}

// DefaultStyles returns the colored scheme: blue underlined filenames,
// faint context lines, bold red matched spans.
func DefaultStyles() Styles {
	return Styles{
		Filename: lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Underline(true),
		Context:  lipgloss.NewStyle().Faint(true),
		Match:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles { return Styles{} }

// TerminalSink writes emitted lines in the classic ogrep format:
// a right-aligned line number, a colon, and the line text.
type TerminalSink struct {
	w      io.Writer
	styles Styles
	mode   FilenameMode

	file        string
	headerDone  bool
	firstHeader bool
}

// NewTerminalSink creates a sink writing to w. If w is nil, os.Stdout is
// used.
func NewTerminalSink(w io.Writer, styles Styles, mode FilenameMode) *TerminalSink {
	if w == nil {
		w = os.Stdout
	}
	return &TerminalSink{w: w, styles: styles, mode: mode, firstHeader: true}
}

// BeginFile records the current filename; nothing is printed until the
// file produces output.
func (s *TerminalSink) BeginFile(name string) error {
	s.file = name
	s.headerDone = false
	return nil
}

// PrintLine outputs one formatted line.
func (s *TerminalSink) PrintLine(line scan.Line, spans []match.Span, isMatch bool) error {
	if err := s.header(); err != nil {
		return err
	}
	prefix := ""
	if s.mode == FilenamePerLine {
		prefix = s.file + ":"
	}
	if isMatch {
		_, err := fmt.Fprintf(s.w, "%s%4d: %s\n", prefix, line.Number, s.highlight(line.Text, spans))
		return err
	}
	_, err := fmt.Fprintf(s.w, "%s%s\n",
		prefix, s.styles.Context.Render(fmt.Sprintf("%4d: %s", line.Number, line.Text)))
	return err
}

// Break outputs a group separator.
func (s *TerminalSink) Break(kind outline.BreakKind, skipped int) error {
	if err := s.header(); err != nil {
		return err
	}
	switch kind {
	case outline.BreakEllipsis:
		noun := "lines"
		if skipped == 1 {
			noun = "line"
		}
		marker := fmt.Sprintf("… %d %s", skipped, noun)
		_, err := fmt.Fprintf(s.w, "   %s\n", s.styles.Context.Render(marker))
		return err
	default:
		_, err := fmt.Fprintln(s.w)
		return err
	}
}

// Flush is a no-op for terminal output.
func (s *TerminalSink) Flush() error { return nil }

// Close is a no-op for terminal output.
func (s *TerminalSink) Close() error { return nil }

// Name returns the sink identifier.
func (s *TerminalSink) Name() string { return "terminal" }

// header lazily prints the per-file filename banner before the file's
// first output. Files after the first are preceded by a blank line.
func (s *TerminalSink) header() error {
	if s.mode != FilenamePerFile || s.headerDone {
		return nil
	}
	s.headerDone = true
	sep := "\n"
	if s.firstHeader {
		sep = ""
		s.firstHeader = false
	}
	_, err := fmt.Fprintf(s.w, "%s%s\n\n", sep, s.styles.Filename.Render(s.file))
	return err
}

// highlight styles the matched spans within the line text.
func (s *TerminalSink) highlight(text string, spans []match.Span) string {
	if len(spans) == 0 {
		return text
	}
	var b strings.Builder
	pos := 0
	for _, sp := range spans {
		if sp.Start < pos || sp.End > len(text) {
			continue
		}
		b.WriteString(text[pos:sp.Start])
		b.WriteString(s.styles.Match.Render(text[sp.Start:sp.End]))
		pos = sp.End
	}
	b.WriteString(text[pos:])
	return b.String()
}
