package ast

// Game represents one parsed record: an identifier and its rounds in source order.
type Game struct {
	ID       int      `json:"id" yaml:"id"`         // Game identifier (not checked for uniqueness)
	Rounds   []Round  `json:"rounds" yaml:"rounds"` // Rounds in source order
	Location Location `json:"-" yaml:"-"`           // Source location of the "Game" keyword
}

// Round holds the counts drawn in one sampling event.
// A category that does not appear in the source text has a count of zero.
// Rounds are comparable with ==.
type Round struct {
	Red   int `json:"red" yaml:"red"`
	Green int `json:"green" yaml:"green"`
	Blue  int `json:"blue" yaml:"blue"`
}

// Count returns the count recorded for the given color.
func (r Round) Count(c Color) int {
	switch c {
	case ColorRed:
		return r.Red
	case ColorGreen:
		return r.Green
	case ColorBlue:
		return r.Blue
	}
	return 0
}

// With returns a copy of the round with the given color's count replaced.
// Unknown colors leave the round unchanged.
func (r Round) With(c Color, n int) Round {
	switch c {
	case ColorRed:
		r.Red = n
	case ColorGreen:
		r.Green = n
	case ColorBlue:
		r.Blue = n
	}
	return r
}

// RoundCount returns the number of rounds in the game.
func (g Game) RoundCount() int {
	return len(g.Rounds)
}

// MaxRound returns the per-color maxima across all rounds.
// A game without rounds yields an all-zero round.
func (g Game) MaxRound() Round {
	var m Round
	for _, r := range g.Rounds {
		m.Red = max(m.Red, r.Red)
		m.Green = max(m.Green, r.Green)
		m.Blue = max(m.Blue, r.Blue)
	}
	return m
}
