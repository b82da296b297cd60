package parser

import (
	stderrors "errors"
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"

	"mercator-hq/tally/pkg/gamerec/ast"
	recErrors "mercator-hq/tally/pkg/gamerec/errors"
)

// builder converts grammar entries into AST values.
// It parses numbers, resolves labels, and folds each round's category list
// into a fixed-shape ast.Round. Errors are accumulated so that one pass
// reports every bad number or label in the input.
type builder struct {
	sourcePath string
	errors     *recErrors.ErrorList
}

// newBuilder creates a new AST builder for the given source.
func newBuilder(sourcePath string) *builder {
	return &builder{
		sourcePath: sourcePath,
		errors:     recErrors.NewErrorList(),
	}
}

// buildGames transforms every parsed record, preserving input order.
func (b *builder) buildGames(entries []*gameEntry) ([]ast.Game, error) {
	games := make([]ast.Game, 0, len(entries))
	for _, entry := range entries {
		games = append(games, b.buildGame(entry))
	}

	if b.errors.HasErrors() {
		return nil, b.errors
	}
	return games, nil
}

// buildGame transforms one record. Failures are recorded on the builder.
func (b *builder) buildGame(entry *gameEntry) ast.Game {
	game := ast.Game{
		Rounds:   make([]ast.Round, 0, len(entry.Rounds)),
		Location: b.location(entry.Pos),
	}

	// The ID token starts after "Game ".
	idPos := entry.Pos
	idPos.Column += len("Game ")
	idPos.Offset += len("Game ")
	game.ID = b.buildNumber(entry.ID, idPos)

	for _, re := range entry.Rounds {
		game.Rounds = append(game.Rounds, b.buildRound(re))
	}

	return game
}

// buildRound folds a list of (count, label) terms into a Round.
// A color that is not listed stays zero; a color listed twice is an error.
func (b *builder) buildRound(entry *roundEntry) ast.Round {
	var round ast.Round
	seen := make(map[ast.Color]lexer.Position, len(ast.Colors))

	for _, cube := range entry.Cubes {
		count := b.buildNumber(cube.Count, cube.Pos)

		labelPos := cube.Pos
		labelPos.Column += len(cube.Count) + 1
		labelPos.Offset += len(cube.Count) + 1

		color, err := ast.ParseColor(cube.Label)
		if err != nil {
			b.errors.Add(&recErrors.Error{
				Type:       recErrors.ErrorTypeLabel,
				Message:    fmt.Sprintf("Unknown color %q", cube.Label),
				Location:   b.location(labelPos),
				Suggestion: recErrors.SuggestLabel(cube.Label, ast.ColorNames()),
				Err:        err,
			})
			continue
		}

		if first, dup := seen[color]; dup {
			b.errors.AddErrorWithSuggestion(
				recErrors.ErrorTypeDuplicate,
				fmt.Sprintf("Color %s appears more than once in a round (first at column %d)", color, first.Column),
				b.location(labelPos),
				"List each color at most once per round",
			)
			continue
		}
		seen[color] = labelPos

		round = round.With(color, count)
	}

	return round
}

// buildNumber converts a digit span to int. Overflow is a numeric error.
func (b *builder) buildNumber(digits string, pos lexer.Position) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		msg := fmt.Sprintf("Invalid number %q", digits)
		if stderrors.Is(err, strconv.ErrRange) {
			msg = fmt.Sprintf("Number %s does not fit in a %d-bit integer", digits, strconv.IntSize)
		}
		b.errors.Add(&recErrors.Error{
			Type:     recErrors.ErrorTypeNumeric,
			Message:  msg,
			Location: b.location(pos),
			Err:      err,
		})
		return 0
	}
	return n
}

// location converts a lexer position into an AST location.
func (b *builder) location(pos lexer.Position) ast.Location {
	return ast.Location{
		File:   b.sourcePath,
		Line:   pos.Line,
		Column: pos.Column,
	}
}
