package outline

import (
	"ogrep/internal/match"
	"ogrep/internal/scan"
)

// BreakKind distinguishes the separator emitted between disjoint output
// groups.
type BreakKind int

const (
	// BreakBlank is a blank-line separator.
	BreakBlank BreakKind = iota
	// BreakEllipsis is a skip marker carrying the number of omitted lines.
	BreakEllipsis
)

// Printer receives the assembled output stream in emission order.
// Implementations live in the emit package; the engine never writes
// anywhere else.
type Printer interface {
	// PrintLine outputs one line. spans is nil for context lines.
	PrintLine(line scan.Line, spans []match.Span, isMatch bool) error

	// Break outputs a separator. skipped is the number of omitted lines
	// and is meaningful for BreakEllipsis only.
	Break(kind BreakKind, skipped int) error
}
