package validator

import (
	"mercator-hq/tally/pkg/gamerec/ast"
)

// Validator filters games against the fixed limits and aggregates the result.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	limits Limits
}

// NewValidator creates a validator using DefaultLimits.
func NewValidator() *Validator {
	return &Validator{limits: DefaultLimits}
}

// Limits returns the limits the validator checks against.
func (v *Validator) Limits() Limits {
	return v.limits
}

// Possible reports whether every round of the game is within limits.
// A game without rounds is possible.
func (v *Validator) Possible(game ast.Game) bool {
	for _, r := range game.Rounds {
		if !v.limits.Allows(r) {
			return false
		}
	}
	return true
}

// Sum returns the sum of the IDs of all possible games.
func (v *Validator) Sum(games []ast.Game) int {
	sum := 0
	for _, g := range games {
		if v.Possible(g) {
			sum += g.ID
		}
	}
	return sum
}

// Check returns every limit violation in the game, in round order and
// canonical color order within a round.
func (v *Validator) Check(game ast.Game) []Violation {
	var violations []Violation
	for i, r := range game.Rounds {
		for _, c := range ast.Colors {
			if n, limit := r.Count(c), v.limits.For(c); n > limit {
				violations = append(violations, Violation{
					GameID: game.ID,
					Round:  i + 1,
					Color:  c,
					Count:  n,
					Limit:  limit,
				})
			}
		}
	}
	return violations
}
