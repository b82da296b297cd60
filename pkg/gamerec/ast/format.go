package ast

import (
	"strconv"
	"strings"
)

// String renders the round in canonical record syntax: non-zero counts in
// red, green, blue order, e.g. "4 red, 3 blue". An all-zero round renders
// as the empty string.
func (r Round) String() string {
	var sb strings.Builder
	for _, c := range Colors {
		n := r.Count(c)
		if n == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(n))
		sb.WriteByte(' ')
		sb.WriteString(string(c))
	}
	return sb.String()
}

// String renders the game as one canonical record line without a line
// break, e.g. "Game 1: 4 red, 3 blue; 1 red, 2 green". For a game with at
// least one round, parsing the result yields an equal game. A game with no
// rounds renders as "Game 1: ", which parses as one all-zero round.
func (g Game) String() string {
	var sb strings.Builder
	sb.WriteString("Game ")
	sb.WriteString(strconv.Itoa(g.ID))
	sb.WriteString(": ")
	for i, r := range g.Rounds {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(r.String())
	}
	return sb.String()
}
