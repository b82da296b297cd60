package ast

import "fmt"

// Location represents the source location of a node in the original record text.
// It enables precise error reporting with source, line, and column information.
type Location struct {
	File   string // Source name (file path or "memory://..." for in-memory input)
	Line   int    // Line number (1-based)
	Column int    // Column number (1-based)
}

// String returns a human-readable representation of the location.
// Format: "file:line:column"
func (l Location) String() string {
	if l.File == "" {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// IsValid returns true if the location has valid source and line information.
func (l Location) IsValid() bool {
	return l.File != "" && l.Line > 0
}
