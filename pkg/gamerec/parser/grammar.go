package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// recordLexer tokenizes game records. Nothing is elided: every separator,
// including single spaces and line breaks, must appear exactly where the
// grammar expects it. Characters outside these rules are lexer errors.
var recordLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Word", Pattern: `[A-Za-z]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[:;,]`},
	{Name: "Space", Pattern: ` `},
	{Name: "EOL", Pattern: `\r?\n`},
})

// gameList is the grammar root for a whole input:
//
//	games := game ("\n" game)* ["\n"]
type gameList struct {
	Games []*gameEntry `@@ ( EOL @@ )* EOL?`
}

// gameEntry matches one record:
//
//	game := "Game " number ": " round ("; " round)*
type gameEntry struct {
	Pos lexer.Position

	ID     string        `"Game" Space @Int ":" Space`
	Rounds []*roundEntry `@@ ( ";" Space @@ )*`
}

// roundEntry matches an unordered, possibly empty, list of categories.
// Labels are captured verbatim; folding them into a fixed-shape round
// happens in the builder.
type roundEntry struct {
	Pos lexer.Position

	Cubes []*cubeEntry `( @@ ( "," Space @@ )* )?`
}

// cubeEntry matches one "<number> <label>" term.
type cubeEntry struct {
	Pos lexer.Position

	Count string `@Int Space`
	Label string `@Word`
}

var (
	gamesGrammar = participle.MustBuild[gameList](participle.Lexer(recordLexer))
	gameGrammar  = participle.MustBuild[gameEntry](participle.Lexer(recordLexer))
	roundGrammar = participle.MustBuild[roundEntry](participle.Lexer(recordLexer))
)
