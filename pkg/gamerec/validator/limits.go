package validator

import "mercator-hq/tally/pkg/gamerec/ast"

// Limits holds the per-color upper bounds a round must respect.
type Limits struct {
	Red   int
	Green int
	Blue  int
}

// DefaultLimits are the fixed bag contents: 12 red, 13 green and 14 blue.
var DefaultLimits = Limits{Red: 12, Green: 13, Blue: 14}

// For returns the limit for a color.
func (l Limits) For(c ast.Color) int {
	switch c {
	case ast.ColorRed:
		return l.Red
	case ast.ColorGreen:
		return l.Green
	case ast.ColorBlue:
		return l.Blue
	}
	return 0
}

// Allows reports whether every count in r is within the limits.
func (l Limits) Allows(r ast.Round) bool {
	return r.Red <= l.Red && r.Green <= l.Green && r.Blue <= l.Blue
}
