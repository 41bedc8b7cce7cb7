package outline

import (
	"sort"

	"ogrep/internal/match"
	"ogrep/internal/scan"
)

// assembler turns match events plus the live ancestor chain into the final
// ordered emission plan: ancestors, fixed-window context, breaks and
// ellipses. It maintains the last emitted line number across the whole
// scan, so disjoint groups are separated and nothing is printed twice.
type assembler struct {
	printer  Printer
	before   int
	after    int
	breaks   bool
	ellipsis bool

	// window holds the most recent unprinted lines, at most `before`.
	window []scan.Line
	// afterLeft counts trailing-context lines still owed to the last match.
	afterLeft int

	lastEmitted int
	started     bool
	// suppressGap skips the ellipsis check for the first line printed
	// right after a blank break.
	suppressGap bool
}

// observe records a non-matching line: it is emitted immediately when the
// previous match still owes trailing context, otherwise it is retained for
// a potential before-window.
func (a *assembler) observe(line scan.Line) error {
	if a.afterLeft > 0 {
		a.afterLeft--
		return a.print(line, nil, false)
	}
	if a.before > 0 {
		if len(a.window) == a.before {
			copy(a.window, a.window[1:])
			a.window[len(a.window)-1] = line
		} else {
			a.window = append(a.window, line)
		}
	}
	return nil
}

// emitChild prints one line of a match's subtree (children mode).
func (a *assembler) emitChild(line scan.Line) error {
	return a.print(line, nil, false)
}

// emitMatch prints a match event: the ancestor chain merged with the
// before-window, then the matched line itself. A break separates the group
// from earlier output when a gap exists.
func (a *assembler) emitMatch(chain []scan.Line, line scan.Line, spans []match.Span) error {
	candidates := make([]scan.Line, 0, len(chain)+len(a.window))
	for _, c := range chain {
		// Ancestors of an earlier match were already printed; the match
		// line itself may sit on the stack after a branch replace.
		if c.Number <= a.lastEmitted || c.Number >= line.Number {
			continue
		}
		candidates = append(candidates, c)
	}
	for _, w := range a.window {
		if w.Number <= a.lastEmitted || w.Number < line.Number-a.before {
			continue
		}
		candidates = append(candidates, w)
	}
	a.window = a.window[:0]

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Number < candidates[j].Number
	})

	first := line.Number
	if len(candidates) > 0 {
		first = candidates[0].Number
	}
	if a.breaks && a.started && first > a.lastEmitted+1 {
		if err := a.printer.Break(BreakBlank, 0); err != nil {
			return err
		}
		a.suppressGap = true
	}

	prev := 0
	for _, c := range candidates {
		if c.Number == prev {
			continue
		}
		prev = c.Number
		if err := a.print(c, nil, false); err != nil {
			return err
		}
	}
	if err := a.print(line, spans, true); err != nil {
		return err
	}

	a.afterLeft = a.after
	return nil
}

// end flushes state at end of stream. Trailing context is emitted eagerly,
// so only the retained window is dropped here.
func (a *assembler) end() error {
	a.window = a.window[:0]
	return nil
}

// print emits a single line, preceded by an ellipsis marker when lines
// were skipped since the previous emission. Lines at or below the
// last-emitted number were already printed and are silently dropped.
func (a *assembler) print(line scan.Line, spans []match.Span, isMatch bool) error {
	if line.Number <= a.lastEmitted {
		return nil
	}
	if a.ellipsis && !a.suppressGap {
		if skipped := line.Number - a.lastEmitted - 1; skipped > 0 {
			if err := a.printer.Break(BreakEllipsis, skipped); err != nil {
				return err
			}
		}
	}
	a.suppressGap = false
	if err := a.printer.PrintLine(line, spans, isMatch); err != nil {
		return err
	}
	a.lastEmitted = line.Number
	a.started = true
	return nil
}
