package outline

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Role classifies a stack entry's part in a branch construct.
type Role int

const (
	// RoleNormal is an ordinary line opening a nesting level.
	RoleNormal Role = iota
	// RoleIfHeader is a line that opens a branch construct.
	RoleIfHeader
	// RoleElseHeader is a branch continuation that replaced a sibling
	// header at the same indentation.
	RoleElseHeader
)

// BranchSet holds the marker sets driving smart-branch handling. Markers
// are compared against the start of the trimmed line text, with a word
// boundary right after the marker so "else" does not match "elsewhere".
//
// Branch detection is a heuristic over arbitrary languages; the defaults
// cover common curly-brace and Python constructs and both sets are
// configurable.
type BranchSet struct {
	// Openers mark lines that open a branch construct (IfHeader role).
	Openers []string
	// Continuations mark lines that continue a construct at the same
	// indentation as its header instead of nesting under it.
	Continuations []string
}

// DefaultBranches returns the default marker sets.
func DefaultBranches() BranchSet {
	return BranchSet{
		Openers:       []string{"if", "} else if", "else if", "elif", "switch"},
		Continuations: []string{"} else", "else", "elif", "case", "default"},
	}
}

// Opens reports whether the trimmed line text opens a branch construct.
func (b BranchSet) Opens(trimmed string) bool {
	return anyMarker(trimmed, b.Openers)
}

// Continues reports whether the trimmed line text is a branch-continuation
// candidate.
func (b BranchSet) Continues(trimmed string) bool {
	return anyMarker(trimmed, b.Continuations)
}

func anyMarker(trimmed string, markers []string) bool {
	for _, m := range markers {
		if startsWithWord(trimmed, m) {
			return true
		}
	}
	return false
}

// startsWithWord reports whether text begins with prefix and the next
// character, if any, is not alphanumeric.
func startsWithWord(text, prefix string) bool {
	if !strings.HasPrefix(text, prefix) {
		return false
	}
	rest := text[len(prefix):]
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
