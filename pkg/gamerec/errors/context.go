package errors

import (
	"fmt"
	"strings"

	"mercator-hq/tally/pkg/gamerec/ast"
)

// ExtractContext extracts the lines surrounding location from source for
// error context display. It returns a formatted string showing the error
// location with line numbers and a caret under the offending column.
func ExtractContext(source string, location ast.Location, contextLines int) string {
	if location.Line <= 0 {
		return ""
	}

	lines := strings.Split(source, "\n")
	errorLine := location.Line - 1
	if errorLine >= len(lines) {
		return ""
	}

	startLine := max(errorLine-contextLines, 0)
	endLine := min(errorLine+contextLines, len(lines)-1)

	var sb strings.Builder
	maxLineNumWidth := len(fmt.Sprintf("%d", endLine+1))

	for i := startLine; i <= endLine; i++ {
		lineNumStr := fmt.Sprintf("%*d", maxLineNumWidth, i+1)
		prefix := "  "
		if i == errorLine {
			prefix = "->"
		}

		sb.WriteString(fmt.Sprintf("%s %s | %s\n", prefix, lineNumStr, strings.TrimRight(lines[i], "\r")))

		if i == errorLine && location.Column > 0 {
			padding := strings.Repeat(" ", location.Column-1)
			sb.WriteString(fmt.Sprintf("   %s | %s^\n", strings.Repeat(" ", maxLineNumWidth), padding))
		}
	}

	return sb.String()
}

// WithContext fills err.Context from source and returns err.
func WithContext(err *Error, source string, contextLines int) *Error {
	if err.Location.Line > 0 {
		err.Context = ExtractContext(source, err.Location, contextLines)
	}
	return err
}

// AddContextToError adds context to an error from the source text.
// Records are single lines, so one line of context either side is shown.
func AddContextToError(err *Error, source string) *Error {
	return WithContext(err, source, 1)
}
