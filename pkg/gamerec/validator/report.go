package validator

import (
	"fmt"

	"mercator-hq/tally/pkg/gamerec/ast"
)

// Violation records one count that exceeds its limit.
type Violation struct {
	GameID int       `json:"game_id" yaml:"game_id"`
	Round  int       `json:"round" yaml:"round"` // 1-based round index
	Color  ast.Color `json:"color" yaml:"color"`
	Count  int       `json:"count" yaml:"count"`
	Limit  int       `json:"limit" yaml:"limit"`
}

// String returns a human-readable description of the violation.
func (v Violation) String() string {
	return fmt.Sprintf("game %d round %d: %d %s exceeds limit %d", v.GameID, v.Round, v.Count, v.Color, v.Limit)
}

// GameResult is the per-game outcome in a Report.
type GameResult struct {
	ID         int         `json:"id" yaml:"id"`
	Rounds     int         `json:"rounds" yaml:"rounds"`
	Possible   bool        `json:"possible" yaml:"possible"`
	Max        ast.Round   `json:"max" yaml:"max"`
	Violations []Violation `json:"violations,omitempty" yaml:"violations,omitempty"`
}

// Report summarizes an aggregation run. Games keep their input order.
type Report struct {
	Games    []GameResult `json:"games" yaml:"games"`
	Total    int          `json:"total" yaml:"total"`
	Possible int          `json:"possible" yaml:"possible"`
	Sum      int          `json:"sum" yaml:"sum"`
}

// Report checks every game and returns the per-game results with the sum.
// Report(games).Sum always equals Sum(games).
func (v *Validator) Report(games []ast.Game) *Report {
	report := &Report{
		Games: make([]GameResult, 0, len(games)),
		Total: len(games),
	}

	for _, g := range games {
		violations := v.Check(g)
		result := GameResult{
			ID:         g.ID,
			Rounds:     g.RoundCount(),
			Possible:   len(violations) == 0,
			Max:        g.MaxRound(),
			Violations: violations,
		}
		if result.Possible {
			report.Possible++
			report.Sum += g.ID
		}
		report.Games = append(report.Games, result)
	}

	return report
}

// Violations returns every violation in the report, flattened in game order.
func (r *Report) Violations() []Violation {
	var all []Violation
	for _, g := range r.Games {
		all = append(all, g.Violations...)
	}
	return all
}
