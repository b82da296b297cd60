package gamerec

import (
	"mercator-hq/tally/pkg/gamerec/ast"
	"mercator-hq/tally/pkg/gamerec/parser"
	"mercator-hq/tally/pkg/gamerec/validator"
)

// memorySource names in-memory input in error locations.
const memorySource = "memory://input"

// ParseAndSum is a convenience function that parses text and sums the IDs of
// the possible games. Aggregation only runs if the whole input parses.
func ParseAndSum(text string) (int, error) {
	games, err := Parse(text)
	if err != nil {
		return 0, err
	}
	return Sum(games), nil
}

// ParseAndSumFile is like ParseAndSum but reads its input from a file.
func ParseAndSumFile(path string) (int, error) {
	games, err := ParseFile(path)
	if err != nil {
		return 0, err
	}
	return Sum(games), nil
}

// Parse parses text into games without aggregating them.
func Parse(text string) ([]ast.Game, error) {
	return parser.NewParser().ParseString(text, memorySource)
}

// ParseFile parses the file at path into games.
func ParseFile(path string) ([]ast.Game, error) {
	return parser.NewParser().Parse(path)
}

// Sum returns the sum of the IDs of the games whose rounds all fit the
// fixed limits.
func Sum(games []ast.Game) int {
	return validator.NewValidator().Sum(games)
}
