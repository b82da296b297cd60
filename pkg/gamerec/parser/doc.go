// Package parser turns game record text into ASTs.
//
// Grammar (whitespace is significant, nothing is skipped):
//
//	games    := game ("\n" game)* ["\n"]
//	game     := "Game " number ": " round ("; " round)*
//	round    := [ category (", " category)* ]
//	category := number " " label
//	label    := "red" | "green" | "blue"
//	number   := digit+
//
// # Basic Usage
//
//	p := parser.NewParser()
//	games, err := p.Parse("games.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Parse from memory:
//
//	games, err := p.ParseString("Game 1: 3 blue, 4 red; 2 green", "memory://games")
//
// # Parsing Stages
//
// The parser operates in two stages:
//
// 1. Grammar: a participle grammar over an exact-whitespace lexer matches the
// record structure and captures numbers and labels as raw tokens.
//
// 2. AST building: numbers are converted to int, labels are resolved to
// colors, and each round's category list is folded into a fixed-shape
// ast.Round. The order of categories within a round does not matter; a
// category that is not listed is zero and a category listed twice is an
// error.
//
// A failure in either stage fails the whole input. No partial result is
// returned.
//
// # Error Handling
//
// Failures are *errors.Error values (grammar failures, I/O) or an
// *errors.ErrorList (one entry per bad number, label, or duplicate color):
//
//	games, err := p.ParseString(text, "input")
//	var perr *errors.Error
//	if stderrors.As(err, &perr) {
//	    fmt.Println(perr.Type, perr.Location)
//	}
package parser
