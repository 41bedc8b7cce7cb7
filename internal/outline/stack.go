package outline

import "ogrep/internal/scan"

// Entry is one level of the live nesting chain.
type Entry struct {
	Line scan.Line
	Role Role

	// Linked points at the originating if-header for entries that replaced
	// a sibling branch at the same indentation. The reference survives the
	// replace so the condition can still be shown for matches inside later
	// branches, even though the header is no longer physically on the
	// stack.
	Linked *Entry
}

// Stack is the live ancestor chain of the current cursor position.
// Bottom is the shallowest scope, top the most recently opened one.
// Indentation is strictly increasing from bottom to top; a branch
// continuation preserves the invariant by replacing the top in place
// instead of being pushed after a pop.
type Stack struct {
	entries []Entry
}

// Len returns the current chain depth.
func (s *Stack) Len() int { return len(s.entries) }

// Top returns the most recently opened entry, or nil when the stack is
// empty.
func (s *Stack) Top() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// Push appends a new deepest entry.
func (s *Stack) Push(e Entry) {
	s.entries = append(s.entries, e)
}

// Pop discards the deepest entry.
func (s *Stack) Pop() {
	s.entries = s.entries[:len(s.entries)-1]
}

// Replace swaps the top entry in place. Used for branch continuations.
func (s *Stack) Replace(e Entry) {
	s.entries[len(s.entries)-1] = e
}

// Chain returns the ancestor lines oldest-first. Linked headers are
// inserted ahead of the entries that replaced them, restoring their
// original position in the chain.
func (s *Stack) Chain() []scan.Line {
	chain := make([]scan.Line, 0, len(s.entries)+1)
	for i := range s.entries {
		if s.entries[i].Linked != nil {
			chain = append(chain, s.entries[i].Linked.Line)
		}
		chain = append(chain, s.entries[i].Line)
	}
	return chain
}
