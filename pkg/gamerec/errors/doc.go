// Package errors provides rich error types for game record parsing.
//
// The error types include source location, context, and suggestions to help
// users quickly identify and fix malformed records.
//
// # Error Types
//
// ErrorTypeSyntax: the input does not match the record grammar (missing
// "Game " prefix, wrong separator, trailing text, blank line)
//
// ErrorTypeNumeric: a digit span does not fit the target integer width
//
// ErrorTypeLabel: a quantity is tagged with an unknown color
//
// ErrorTypeDuplicate: a color appears twice within one round
//
// ErrorTypeIO: file I/O errors and size limits
//
// # Error Format
//
// Errors are formatted with location, context, and suggestions:
//
//	[label] Unknown color "rde"
//	  --> games.txt:1:11
//	  |
//	-> 1 | Game 1: 3 rde, 4 red
//	     |           ^
//	  |
//	  = suggestion: Did you mean 'red'?
//
// Every failure the parser returns can be inspected with errors.As:
//
//	var perr *errors.Error
//	if stderrors.As(err, &perr) && perr.Type == errors.ErrorTypeNumeric {
//	    // ...
//	}
package errors
