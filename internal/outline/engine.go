// Package outline implements the context-reconstruction engine: the live
// ancestor chain of the current cursor position, branch-aware exceptions,
// and the assembly of the final set of lines to emit.
package outline

import (
	"ogrep/internal/match"
	"ogrep/internal/scan"
)

// Config holds the engine configuration. Captured once at construction;
// each file scan owns an independent Engine.
type Config struct {
	Matcher            match.Matcher
	Branches           BranchSet
	SmartBranches      bool
	TabWidth           int
	IgnorePreprocessor bool

	// Before and After add grep-style fixed-window context around matches.
	Before int
	After  int

	// Breaks inserts a blank-line separator between disjoint groups.
	Breaks bool
	// Ellipsis emits skip-count markers where lines were omitted.
	Ellipsis bool
	// Children prints every line nested deeper than a match, after it.
	Children bool
}

// Engine scans one stream of lines and reconstructs the indentation
// outline around matches. State never crosses streams; create a fresh
// Engine per file.
type Engine struct {
	cfg   Config
	cls   scan.Classifier
	stack Stack
	asm   assembler

	matches int

	// children mode: emit lines indented deeper than childFloor.
	childActive bool
	childFloor  int
}

// NewEngine creates an engine writing to p.
func NewEngine(cfg Config, p Printer) *Engine {
	return &Engine{
		cfg: cfg,
		cls: scan.Classifier{
			TabWidth:           cfg.TabWidth,
			IgnorePreprocessor: cfg.IgnorePreprocessor,
		},
		asm: assembler{
			printer:  p,
			before:   cfg.Before,
			after:    cfg.After,
			breaks:   cfg.Breaks,
			ellipsis: cfg.Ellipsis,
		},
	}
}

// ProcessLine feeds the next input line. Lines must arrive in order,
// 1-indexed, none omitted.
func (e *Engine) ProcessLine(number int, text string) error {
	topIndent := 0
	if top := e.stack.Top(); top != nil {
		topIndent = top.Line.Indent
	}
	line := e.cls.Classify(number, text, topIndent)

	// The subtree of the previous match is printed before stack
	// bookkeeping so it survives scope closes. Blank and preprocessor
	// lines belong to the subtree. Subtree lines stay eligible to match;
	// a hit prints as a match and narrows the subtree to its own.
	if e.childActive {
		if line.Blank || line.Preproc || line.Indent > e.childFloor {
			if spans := e.cfg.Matcher.Spans(line.Text); spans != nil {
				e.matches++
				if !line.Blank && !line.Preproc {
					e.childFloor = line.Indent
				}
				return e.asm.emitMatch(nil, line, spans)
			}
			return e.asm.emitChild(line)
		}
		e.childActive = false
	}

	// Blank and preprocessor lines neither push nor pop the stack, but
	// they remain eligible to match and participate in fixed windows.
	onStack := !line.Blank && !line.Preproc

	replaced := false
	if onStack {
		replaced = e.shrink(line)
	}

	spans := e.cfg.Matcher.Spans(line.Text)
	var err error
	if spans != nil {
		e.matches++
		err = e.asm.emitMatch(e.stack.Chain(), line, spans)
		if e.cfg.Children {
			e.childActive, e.childFloor = true, line.Indent
		}
	} else {
		err = e.asm.observe(line)
	}

	if onStack && !replaced {
		role := RoleNormal
		if e.cfg.SmartBranches && e.cfg.Branches.Opens(line.Trimmed()) {
			role = RoleIfHeader
		}
		e.stack.Push(Entry{Line: line, Role: role})
	}
	return err
}

// End signals end of stream and flushes anything still pending.
func (e *Engine) End() error {
	return e.asm.end()
}

// Matched reports whether at least one line matched.
func (e *Engine) Matched() bool { return e.matches > 0 }

// Matches returns the number of matched lines.
func (e *Engine) Matches() int { return e.matches }

// shrink pops entries with indentation >= the new line's, except when the
// line is a confirmed branch continuation: then it replaces the top in
// place, keeping a reference to the originating header. Reports whether a
// replace happened (the line is already on the stack in that case).
func (e *Engine) shrink(line scan.Line) bool {
	trimmed := line.Trimmed()
	for {
		top := e.stack.Top()
		if top == nil || top.Line.Indent < line.Indent {
			return false
		}
		if e.cfg.SmartBranches &&
			top.Line.Indent == line.Indent &&
			top.Role != RoleNormal &&
			e.cfg.Branches.Continues(trimmed) {
			// Reuse the existing link when the top is itself a
			// continuation, so chained else/elif branches all point at
			// the original header.
			linked := top.Linked
			if linked == nil {
				header := *top
				linked = &header
			}
			e.stack.Replace(Entry{Line: line, Role: RoleElseHeader, Linked: linked})
			return true
		}
		e.stack.Pop()
	}
}
